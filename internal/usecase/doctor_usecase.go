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

type DoctorUsecase interface {
	CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	GetDoctor(ctx context.Context, id int) (*dto.DoctorResponse, error)
	GetAllDoctors(ctx context.Context, params pagination.Params) ([]dto.DoctorResponse, int64, error)
	UpdateDoctor(ctx context.Context, id int, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
	DeleteDoctor(ctx context.Context, id int) error
}

type doctorUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	doctorRepo         repository.DoctorRepository
	specializationRepo repository.DoctorSpecializationRepository
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	specializationRepo repository.DoctorSpecializationRepository,
) DoctorUsecase {
	return &doctorUsecase{
		db:                 db,
		log:                log,
		doctorRepo:         doctorRepo,
		specializationRepo: specializationRepo,
	}
}

func (u *doctorUsecase) CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if req.SpecializationID != nil {
		if err := ensureExists[entity.DoctorSpecialization](tx, u.specializationRepo, *req.SpecializationID, ErrSpecializationNotFound); err != nil {
			return nil, err
		}
	}

	doctor := &entity.Doctor{
		Name:             req.Name,
		Surname:          req.Surname,
		Email:            req.Email,
		PhoneNumber:      req.PhoneNumber,
		SpecializationID: req.SpecializationID,
	}
	if err := u.doctorRepo.Create(tx, doctor); err != nil {
		u.log.Warnf("Failed create doctor: %+v", err)
		return nil, err
	}

	// reload so the response carries the specialization
	created, err := u.doctorRepo.FindByID(tx, doctor.ID)
	if err != nil {
		u.log.Warnf("Failed find doctor: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DoctorToResponse(created), nil
}

func (u *doctorUsecase) GetDoctor(ctx context.Context, id int) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) GetAllDoctors(ctx context.Context, params pagination.Params) ([]dto.DoctorResponse, int64, error) {
	doctors, total, err := u.doctorRepo.FindAll(u.db.WithContext(ctx), params.Limit, params.Offset())
	if err != nil {
		u.log.Warnf("Failed find all doctors: %+v", err)
		return nil, 0, err
	}

	return converter.DoctorsToResponses(doctors), total, nil
}

func (u *doctorUsecase) UpdateDoctor(ctx context.Context, id int, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	if req.SpecializationID != nil {
		if err := ensureExists[entity.DoctorSpecialization](tx, u.specializationRepo, *req.SpecializationID, ErrSpecializationNotFound); err != nil {
			return nil, err
		}
		doctor.SpecializationID = req.SpecializationID
		doctor.Specialization = nil
	}
	if req.Name != "" {
		doctor.Name = req.Name
	}
	if req.Surname != "" {
		doctor.Surname = req.Surname
	}
	if req.Email != "" {
		doctor.Email = req.Email
	}
	if req.PhoneNumber != "" {
		doctor.PhoneNumber = req.PhoneNumber
	}

	if err := u.doctorRepo.Update(tx, doctor); err != nil {
		u.log.Warnf("Failed update doctor: %+v", err)
		return nil, err
	}

	updated, err := u.doctorRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed find doctor: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DoctorToResponse(updated), nil
}

func (u *doctorUsecase) DeleteDoctor(ctx context.Context, id int) error {
	rows, err := u.doctorRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		if isForeignKeyError(err) {
			return ErrStillReferenced
		}
		u.log.Warnf("Failed delete doctor: %+v", err)
		return err
	}
	if rows == 0 {
		return ErrDoctorNotFound
	}

	return nil
}
