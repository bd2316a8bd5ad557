package usecase

import (
	"context"

	"hospital-booking-api/internal/converter"
	"hospital-booking-api/internal/delivery/dto"
	"hospital-booking-api/internal/domain/entity"
	"hospital-booking-api/internal/domain/repository"
	"hospital-booking-api/internal/service"
	"hospital-booking-api/pkg/pagination"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetAppointment(ctx context.Context, id int) (*dto.AppointmentResponse, error)
	GetAllAppointments(ctx context.Context, params pagination.Params) ([]dto.AppointmentResponse, int64, error)
	UpdateAppointment(ctx context.Context, id int, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	DeleteAppointment(ctx context.Context, id int) error
	GetAppointmentHistory(ctx context.Context, id int) ([]dto.AppointmentHistoryResponse, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	doctorRepo      repository.DoctorRepository
	historyRepo     repository.AppointmentHistoryRepository
	historyService  service.AppointmentHistoryService
	termCache       service.TermCache
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	doctorRepo repository.DoctorRepository,
	historyRepo repository.AppointmentHistoryRepository,
	historyService service.AppointmentHistoryService,
	termCache service.TermCache,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		doctorRepo:      doctorRepo,
		historyRepo:     historyRepo,
		historyService:  historyService,
		termCache:       termCache,
	}
}

func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	if req.DateTo.Before(req.DateFrom) {
		return nil, ErrInvalidDateRange
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if req.DoctorID != nil {
		if err := ensureExists[entity.Doctor](tx, u.doctorRepo, *req.DoctorID, ErrDoctorNotFound); err != nil {
			return nil, err
		}
	}

	registrationMandatory := true
	if req.RegistrationMandatory != nil {
		registrationMandatory = *req.RegistrationMandatory
	}

	appointment := &entity.Appointment{
		EventType:             req.EventType,
		DateFrom:              req.DateFrom.UTC(),
		DateTo:                req.DateTo.UTC(),
		RegistrationMandatory: registrationMandatory,
		DoctorID:              req.DoctorID,
	}
	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		u.log.Warnf("Failed create appointment: %+v", err)
		return nil, err
	}

	response := converter.AppointmentToResponse(appointment)
	if err := u.historyService.RecordAppointmentChange(ctx, tx, entity.ChangeAppointmentCreated, appointment, nil, response); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.termCache.Invalidate(ctx)

	return response, nil
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, id int) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetAllAppointments(ctx context.Context, params pagination.Params) ([]dto.AppointmentResponse, int64, error) {
	appointments, total, err := u.appointmentRepo.FindAll(u.db.WithContext(ctx), params.Limit, params.Offset())
	if err != nil {
		u.log.Warnf("Failed find all appointments: %+v", err)
		return nil, 0, err
	}

	return converter.AppointmentsToResponses(appointments), total, nil
}

func (u *appointmentUsecase) UpdateAppointment(ctx context.Context, id int, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	oldValue := converter.AppointmentToResponse(appointment)

	if req.DoctorID != nil {
		if err := ensureExists[entity.Doctor](tx, u.doctorRepo, *req.DoctorID, ErrDoctorNotFound); err != nil {
			return nil, err
		}
		appointment.DoctorID = req.DoctorID
	}
	if req.EventType != "" {
		appointment.EventType = req.EventType
	}
	if req.DateFrom != nil {
		appointment.DateFrom = req.DateFrom.UTC()
	}
	if req.DateTo != nil {
		appointment.DateTo = req.DateTo.UTC()
	}
	if req.RegistrationMandatory != nil {
		appointment.RegistrationMandatory = *req.RegistrationMandatory
	}
	if appointment.DateTo.Before(appointment.DateFrom) {
		return nil, ErrInvalidDateRange
	}

	if err := u.appointmentRepo.Update(tx, appointment); err != nil {
		u.log.Warnf("Failed update appointment: %+v", err)
		return nil, err
	}

	response := converter.AppointmentToResponse(appointment)
	if err := u.historyService.RecordAppointmentChange(ctx, tx, entity.ChangeAppointmentUpdated, appointment, oldValue, response); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.termCache.Invalidate(ctx)

	return response, nil
}

func (u *appointmentUsecase) DeleteAppointment(ctx context.Context, id int) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed find appointment: %+v", err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}

	if _, err := u.appointmentRepo.Delete(tx, id); err != nil {
		if isForeignKeyError(err) {
			return ErrStillReferenced
		}
		u.log.Warnf("Failed delete appointment: %+v", err)
		return err
	}

	oldValue := converter.AppointmentToResponse(appointment)
	if err := u.historyService.RecordAppointmentChange(ctx, tx, entity.ChangeAppointmentDeleted, appointment, oldValue, nil); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.termCache.Invalidate(ctx)

	return nil
}

// GetAppointmentHistory returns the journal of an appointment, oldest first.
func (u *appointmentUsecase) GetAppointmentHistory(ctx context.Context, id int) ([]dto.AppointmentHistoryResponse, error) {
	db := u.db.WithContext(ctx)

	if err := ensureExists[entity.Appointment](db, u.appointmentRepo, id, ErrAppointmentNotFound); err != nil {
		return nil, err
	}

	histories, err := u.historyRepo.FindByAppointmentID(db, id)
	if err != nil {
		u.log.Warnf("Failed find appointment history: %+v", err)
		return nil, err
	}

	return converter.AppointmentHistoriesToResponses(histories), nil
}
