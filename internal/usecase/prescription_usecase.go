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

type PrescriptionUsecase interface {
	CreatePrescription(ctx context.Context, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error)
	GetPrescription(ctx context.Context, id int) (*dto.PrescriptionResponse, error)
	GetAllPrescriptions(ctx context.Context, params pagination.Params) ([]dto.PrescriptionResponse, int64, error)
	UpdatePrescription(ctx context.Context, id int, req *dto.UpdatePrescriptionRequest) (*dto.PrescriptionResponse, error)
	DeletePrescription(ctx context.Context, id int) error
}

type prescriptionUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	prescriptionRepo repository.PrescriptionRepository
	doctorRepo       repository.DoctorRepository
	medicineRepo     repository.MedicineRepository
}

func NewPrescriptionUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	prescriptionRepo repository.PrescriptionRepository,
	doctorRepo repository.DoctorRepository,
	medicineRepo repository.MedicineRepository,
) PrescriptionUsecase {
	return &prescriptionUsecase{
		db:               db,
		log:              log,
		prescriptionRepo: prescriptionRepo,
		doctorRepo:       doctorRepo,
		medicineRepo:     medicineRepo,
	}
}

func (u *prescriptionUsecase) CreatePrescription(ctx context.Context, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error) {
	if req.DateTo != nil && req.DateTo.Before(req.DateFrom) {
		return nil, ErrInvalidDateRange
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := ensureExists[entity.Doctor](tx, u.doctorRepo, req.DoctorID, ErrDoctorNotFound); err != nil {
		return nil, err
	}
	if err := ensureExists[entity.Medicine](tx, u.medicineRepo, req.MedicineID, ErrMedicineNotFound); err != nil {
		return nil, err
	}

	prescription := &entity.Prescription{
		Dosage:     req.Dosage,
		DateFrom:   req.DateFrom.UTC(),
		DateTo:     req.DateTo,
		DoctorID:   req.DoctorID,
		MedicineID: req.MedicineID,
	}
	if err := u.prescriptionRepo.Create(tx, prescription); err != nil {
		u.log.Warnf("Failed create prescription: %+v", err)
		return nil, err
	}

	created, err := u.prescriptionRepo.FindByID(tx, prescription.ID)
	if err != nil {
		u.log.Warnf("Failed find prescription: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PrescriptionToResponse(created), nil
}

func (u *prescriptionUsecase) GetPrescription(ctx context.Context, id int) (*dto.PrescriptionResponse, error) {
	prescription, err := u.prescriptionRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed find prescription: %+v", err)
		return nil, err
	}
	if prescription == nil {
		return nil, ErrPrescriptionNotFound
	}

	return converter.PrescriptionToResponse(prescription), nil
}

func (u *prescriptionUsecase) GetAllPrescriptions(ctx context.Context, params pagination.Params) ([]dto.PrescriptionResponse, int64, error) {
	prescriptions, total, err := u.prescriptionRepo.FindAll(u.db.WithContext(ctx), params.Limit, params.Offset())
	if err != nil {
		u.log.Warnf("Failed find all prescriptions: %+v", err)
		return nil, 0, err
	}

	return converter.PrescriptionsToResponses(prescriptions), total, nil
}

func (u *prescriptionUsecase) UpdatePrescription(ctx context.Context, id int, req *dto.UpdatePrescriptionRequest) (*dto.PrescriptionResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	prescription, err := u.prescriptionRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed find prescription: %+v", err)
		return nil, err
	}
	if prescription == nil {
		return nil, ErrPrescriptionNotFound
	}

	if req.MedicineID != nil {
		if err := ensureExists[entity.Medicine](tx, u.medicineRepo, *req.MedicineID, ErrMedicineNotFound); err != nil {
			return nil, err
		}
		prescription.MedicineID = *req.MedicineID
		prescription.Medicine = nil
	}
	if req.Dosage != "" {
		prescription.Dosage = req.Dosage
	}
	if req.DateFrom != nil {
		prescription.DateFrom = req.DateFrom.UTC()
	}
	if req.DateTo != nil {
		prescription.DateTo = req.DateTo
	}
	if prescription.DateTo != nil && prescription.DateTo.Before(prescription.DateFrom) {
		return nil, ErrInvalidDateRange
	}

	if err := u.prescriptionRepo.Update(tx, prescription); err != nil {
		u.log.Warnf("Failed update prescription: %+v", err)
		return nil, err
	}

	updated, err := u.prescriptionRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed find prescription: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PrescriptionToResponse(updated), nil
}

func (u *prescriptionUsecase) DeletePrescription(ctx context.Context, id int) error {
	rows, err := u.prescriptionRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed delete prescription: %+v", err)
		return err
	}
	if rows == 0 {
		return ErrPrescriptionNotFound
	}

	return nil
}
