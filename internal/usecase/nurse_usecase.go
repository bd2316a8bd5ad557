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

type NurseUsecase interface {
	CreateNurse(ctx context.Context, req *dto.CreateNurseRequest) (*dto.NurseResponse, error)
	GetNurse(ctx context.Context, id int) (*dto.NurseResponse, error)
	GetAllNurses(ctx context.Context, params pagination.Params) ([]dto.NurseResponse, int64, error)
	UpdateNurse(ctx context.Context, id int, req *dto.UpdateNurseRequest) (*dto.NurseResponse, error)
	DeleteNurse(ctx context.Context, id int) error
}

type nurseUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	nurseRepo  repository.NurseRepository
	doctorRepo repository.DoctorRepository
}

func NewNurseUsecase(db *gorm.DB, log *logrus.Logger, nurseRepo repository.NurseRepository, doctorRepo repository.DoctorRepository) NurseUsecase {
	return &nurseUsecase{
		db:         db,
		log:        log,
		nurseRepo:  nurseRepo,
		doctorRepo: doctorRepo,
	}
}

func (u *nurseUsecase) CreateNurse(ctx context.Context, req *dto.CreateNurseRequest) (*dto.NurseResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if req.DoctorID != nil {
		if err := ensureExists[entity.Doctor](tx, u.doctorRepo, *req.DoctorID, ErrDoctorNotFound); err != nil {
			return nil, err
		}
	}

	nurse := &entity.Nurse{
		Name:        req.Name,
		Surname:     req.Surname,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		DoctorID:    req.DoctorID,
	}
	if err := u.nurseRepo.Create(tx, nurse); err != nil {
		u.log.Warnf("Failed create nurse: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.NurseToResponse(nurse), nil
}

func (u *nurseUsecase) GetNurse(ctx context.Context, id int) (*dto.NurseResponse, error) {
	nurse, err := u.nurseRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed find nurse: %+v", err)
		return nil, err
	}
	if nurse == nil {
		return nil, ErrNurseNotFound
	}

	return converter.NurseToResponse(nurse), nil
}

func (u *nurseUsecase) GetAllNurses(ctx context.Context, params pagination.Params) ([]dto.NurseResponse, int64, error) {
	nurses, total, err := u.nurseRepo.FindAll(u.db.WithContext(ctx), params.Limit, params.Offset())
	if err != nil {
		u.log.Warnf("Failed find all nurses: %+v", err)
		return nil, 0, err
	}

	return converter.NursesToResponses(nurses), total, nil
}

func (u *nurseUsecase) UpdateNurse(ctx context.Context, id int, req *dto.UpdateNurseRequest) (*dto.NurseResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	nurse, err := u.nurseRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed find nurse: %+v", err)
		return nil, err
	}
	if nurse == nil {
		return nil, ErrNurseNotFound
	}

	if req.DoctorID != nil {
		if err := ensureExists[entity.Doctor](tx, u.doctorRepo, *req.DoctorID, ErrDoctorNotFound); err != nil {
			return nil, err
		}
		nurse.DoctorID = req.DoctorID
	}
	if req.Name != "" {
		nurse.Name = req.Name
	}
	if req.Surname != "" {
		nurse.Surname = req.Surname
	}
	if req.Email != "" {
		nurse.Email = req.Email
	}
	if req.PhoneNumber != "" {
		nurse.PhoneNumber = req.PhoneNumber
	}

	if err := u.nurseRepo.Update(tx, nurse); err != nil {
		u.log.Warnf("Failed update nurse: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.NurseToResponse(nurse), nil
}

func (u *nurseUsecase) DeleteNurse(ctx context.Context, id int) error {
	rows, err := u.nurseRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		if isForeignKeyError(err) {
			return ErrStillReferenced
		}
		u.log.Warnf("Failed delete nurse: %+v", err)
		return err
	}
	if rows == 0 {
		return ErrNurseNotFound
	}

	return nil
}
