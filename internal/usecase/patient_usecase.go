package usecase

import (
	"context"

	"hospital-booking-api/internal/converter"
	"hospital-booking-api/internal/delivery/dto"
	"hospital-booking-api/internal/domain/entity"
	"hospital-booking-api/internal/domain/repository"
	"hospital-booking-api/pkg/pagination"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type PatientUsecase interface {
	CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	GetPatient(ctx context.Context, id int) (*dto.PatientResponse, error)
	GetAllPatients(ctx context.Context, params pagination.Params) ([]dto.PatientResponse, int64, error)
	UpdatePatient(ctx context.Context, id int, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	DeletePatient(ctx context.Context, id int) error
}

type patientUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	patientRepo repository.PatientRepository
}

func NewPatientUsecase(db *gorm.DB, log *logrus.Logger, patientRepo repository.PatientRepository) PatientUsecase {
	return &patientUsecase{
		db:          db,
		log:         log,
		patientRepo: patientRepo,
	}
}

func (u *patientUsecase) CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	dateOfBirth, err := parseDate(req.DateOfBirth)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	existing, err := u.patientRepo.FindByPersonalNumber(tx, req.PersonalNumber)
	if err != nil {
		u.log.Warnf("Failed to find patient by personal number: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrPersonalNumberExists
	}

	patient := &entity.Patient{
		Name:           req.Name,
		Surname:        req.Surname,
		DateOfBirth:    dateOfBirth,
		Sex:            req.Sex,
		Address:        req.Address,
		PhoneNumber:    req.PhoneNumber,
		PersonalNumber: req.PersonalNumber,
	}
	if err := u.patientRepo.Create(tx, patient); err != nil {
		if isDuplicateKeyError(err, "personal_number") {
			return nil, ErrPersonalNumberExists
		}
		u.log.Warnf("Failed create patient: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) GetPatient(ctx context.Context, id int) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) GetAllPatients(ctx context.Context, params pagination.Params) ([]dto.PatientResponse, int64, error) {
	patients, total, err := u.patientRepo.FindAll(u.db.WithContext(ctx), params.Limit, params.Offset())
	if err != nil {
		u.log.Warnf("Failed find all patients: %+v", err)
		return nil, 0, err
	}

	return converter.PatientsToResponses(patients), total, nil
}

func (u *patientUsecase) UpdatePatient(ctx context.Context, id int, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	dateOfBirth, err := parseDate(req.DateOfBirth)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	if req.PersonalNumber != "" && req.PersonalNumber != patient.PersonalNumber {
		other, err := u.patientRepo.FindByPersonalNumber(tx, req.PersonalNumber)
		if err != nil {
			u.log.Warnf("Failed to find patient by personal number: %+v", err)
			return nil, err
		}
		if other != nil {
			return nil, ErrPersonalNumberExists
		}
		patient.PersonalNumber = req.PersonalNumber
	}
	if req.Name != "" {
		patient.Name = req.Name
	}
	if req.Surname != "" {
		patient.Surname = req.Surname
	}
	if req.PhoneNumber != "" {
		patient.PhoneNumber = req.PhoneNumber
	}
	if dateOfBirth != nil {
		patient.DateOfBirth = dateOfBirth
	}
	if req.Sex != nil {
		patient.Sex = req.Sex
	}
	if req.Address != nil {
		patient.Address = req.Address
	}

	if err := u.patientRepo.Update(tx, patient); err != nil {
		if isDuplicateKeyError(err, "personal_number") {
			return nil, ErrPersonalNumberExists
		}
		u.log.Warnf("Failed update patient: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) DeletePatient(ctx context.Context, id int) error {
	rows, err := u.patientRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		if isForeignKeyError(err) {
			return ErrStillReferenced
		}
		u.log.Warnf("Failed delete patient: %+v", err)
		return err
	}
	if rows == 0 {
		return ErrPatientNotFound
	}

	return nil
}
