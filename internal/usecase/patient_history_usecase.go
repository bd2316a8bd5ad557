package usecase

import (
	"context"

	"hospital-booking-api/internal/converter"
	"hospital-booking-api/internal/delivery/dto"
	"hospital-booking-api/internal/domain/entity"
	"hospital-booking-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type PatientHistoryUsecase interface {
	GetPatientHistory(ctx context.Context, req *dto.PatientHistoryRequest) (*dto.PatientHistoryResponse, error)
}

type patientHistoryUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	patientRepo repository.PatientRepository
	requestRepo repository.RequestRepository
}

func NewPatientHistoryUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	requestRepo repository.RequestRepository,
) PatientHistoryUsecase {
	return &patientHistoryUsecase{
		db:          db,
		log:         log,
		patientRepo: patientRepo,
		requestRepo: requestRepo,
	}
}

// GetPatientHistory returns the patient's requests plus the distinct
// appointments and tests linked to them, all ordered by ID.
func (u *patientHistoryUsecase) GetPatientHistory(ctx context.Context, req *dto.PatientHistoryRequest) (*dto.PatientHistoryResponse, error) {
	db := u.db.WithContext(ctx)

	patient, err := u.patientRepo.FindByIdentity(db, req.PersonalNumber, req.Name, req.Surname)
	if err != nil {
		u.log.Warnf("Failed to find patient for history: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	requests, err := u.requestRepo.FindByPatientIDWithDetails(db, patient.ID)
	if err != nil {
		u.log.Warnf("Failed to load requests for patient %d: %+v", patient.ID, err)
		return nil, err
	}

	return converter.PatientHistoryToResponse(entity.BuildPatientHistory(requests)), nil
}
