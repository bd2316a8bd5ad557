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

type MedicalRecordUsecase interface {
	CreateMedicalRecord(ctx context.Context, req *dto.CreateMedicalRecordRequest) (*dto.MedicalRecordResponse, error)
	GetMedicalRecord(ctx context.Context, id int) (*dto.MedicalRecordResponse, error)
	GetAllMedicalRecords(ctx context.Context, params pagination.Params) ([]dto.MedicalRecordResponse, int64, error)
	GetMedicalRecordsByPatient(ctx context.Context, patientID int) ([]dto.MedicalRecordResponse, error)
	UpdateMedicalRecord(ctx context.Context, id int, req *dto.UpdateMedicalRecordRequest) (*dto.MedicalRecordResponse, error)
	DeleteMedicalRecord(ctx context.Context, id int) error
}

type medicalRecordUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	recordRepo  repository.MedicalRecordRepository
	patientRepo repository.PatientRepository
	doctorRepo  repository.DoctorRepository
}

func NewMedicalRecordUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	recordRepo repository.MedicalRecordRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
) MedicalRecordUsecase {
	return &medicalRecordUsecase{
		db:          db,
		log:         log,
		recordRepo:  recordRepo,
		patientRepo: patientRepo,
		doctorRepo:  doctorRepo,
	}
}

func (u *medicalRecordUsecase) CreateMedicalRecord(ctx context.Context, req *dto.CreateMedicalRecordRequest) (*dto.MedicalRecordResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := ensureExists[entity.Patient](tx, u.patientRepo, req.PatientID, ErrPatientNotFound); err != nil {
		return nil, err
	}
	if err := ensureExists[entity.Doctor](tx, u.doctorRepo, req.DoctorID, ErrDoctorNotFound); err != nil {
		return nil, err
	}

	record := &entity.MedicalRecord{
		Type:      req.Type,
		PatientID: req.PatientID,
		DoctorID:  req.DoctorID,
	}
	if err := u.recordRepo.Create(tx, record); err != nil {
		u.log.Warnf("Failed create medical record: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.MedicalRecordToResponse(record), nil
}

func (u *medicalRecordUsecase) GetMedicalRecord(ctx context.Context, id int) (*dto.MedicalRecordResponse, error) {
	record, err := u.recordRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed find medical record: %+v", err)
		return nil, err
	}
	if record == nil {
		return nil, ErrMedicalRecordNotFound
	}

	return converter.MedicalRecordToResponse(record), nil
}

func (u *medicalRecordUsecase) GetAllMedicalRecords(ctx context.Context, params pagination.Params) ([]dto.MedicalRecordResponse, int64, error) {
	records, total, err := u.recordRepo.FindAll(u.db.WithContext(ctx), params.Limit, params.Offset())
	if err != nil {
		u.log.Warnf("Failed find all medical records: %+v", err)
		return nil, 0, err
	}

	return converter.MedicalRecordsToResponses(records), total, nil
}

func (u *medicalRecordUsecase) GetMedicalRecordsByPatient(ctx context.Context, patientID int) ([]dto.MedicalRecordResponse, error) {
	db := u.db.WithContext(ctx)

	if err := ensureExists[entity.Patient](db, u.patientRepo, patientID, ErrPatientNotFound); err != nil {
		return nil, err
	}

	records, err := u.recordRepo.FindByPatientID(db, patientID)
	if err != nil {
		u.log.Warnf("Failed find medical records by patient: %+v", err)
		return nil, err
	}

	return converter.MedicalRecordsToResponses(records), nil
}

func (u *medicalRecordUsecase) UpdateMedicalRecord(ctx context.Context, id int, req *dto.UpdateMedicalRecordRequest) (*dto.MedicalRecordResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	record, err := u.recordRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed find medical record: %+v", err)
		return nil, err
	}
	if record == nil {
		return nil, ErrMedicalRecordNotFound
	}

	record.Type = req.Type
	if err := u.recordRepo.Update(tx, record); err != nil {
		u.log.Warnf("Failed update medical record: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.MedicalRecordToResponse(record), nil
}

func (u *medicalRecordUsecase) DeleteMedicalRecord(ctx context.Context, id int) error {
	rows, err := u.recordRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed delete medical record: %+v", err)
		return err
	}
	if rows == 0 {
		return ErrMedicalRecordNotFound
	}

	return nil
}
