package usecase

import (
	"context"
	"time"

	"hospital-booking-api/internal/converter"
	"hospital-booking-api/internal/delivery/dto"
	"hospital-booking-api/internal/domain/entity"
	"hospital-booking-api/internal/domain/repository"
	"hospital-booking-api/internal/service"
	"hospital-booking-api/pkg/pagination"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type RequestUsecase interface {
	CreateRequest(ctx context.Context, req *dto.CreateRequestRequest) (*dto.RequestResponse, error)
	GetRequest(ctx context.Context, id int) (*dto.RequestResponse, error)
	GetAllRequests(ctx context.Context, params pagination.Params) ([]dto.RequestResponse, int64, error)
	UpdateRequest(ctx context.Context, id int, req *dto.UpdateRequestRequest) (*dto.RequestResponse, error)
	DeleteRequest(ctx context.Context, id int) error
}

type requestUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	requestRepo     repository.RequestRepository
	patientRepo     repository.PatientRepository
	doctorRepo      repository.DoctorRepository
	nurseRepo       repository.NurseRepository
	appointmentRepo repository.AppointmentRepository
	requestTypeRepo repository.RequestTypeRepository
	historyService  service.AppointmentHistoryService
	notifier        *requestNotifier
}

func NewRequestUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	requestRepo repository.RequestRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	nurseRepo repository.NurseRepository,
	appointmentRepo repository.AppointmentRepository,
	requestTypeRepo repository.RequestTypeRepository,
	historyService service.AppointmentHistoryService,
	publisher service.EventPublisher,
	termCache service.TermCache,
) RequestUsecase {
	return &requestUsecase{
		db:              db,
		log:             log,
		requestRepo:     requestRepo,
		patientRepo:     patientRepo,
		doctorRepo:      doctorRepo,
		nurseRepo:       nurseRepo,
		appointmentRepo: appointmentRepo,
		requestTypeRepo: requestTypeRepo,
		historyService:  historyService,
		notifier:        newRequestNotifier(log, publisher, termCache),
	}
}

func (u *requestUsecase) CreateRequest(ctx context.Context, req *dto.CreateRequestRequest) (*dto.RequestResponse, error) {
	state := entity.RequestStatePending
	if req.State != "" {
		state = entity.RequestState(req.State)
	}
	if !state.IsValid() {
		return nil, ErrInvalidRequestState
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := ensureExists[entity.Patient](tx, u.patientRepo, req.PatientID, ErrPatientNotFound); err != nil {
		return nil, err
	}
	if err := ensureExists[entity.Doctor](tx, u.doctorRepo, req.DoctorID, ErrDoctorNotFound); err != nil {
		return nil, err
	}
	if req.NurseID != nil {
		if err := ensureExists[entity.Nurse](tx, u.nurseRepo, *req.NurseID, ErrNurseNotFound); err != nil {
			return nil, err
		}
	}
	if req.AppointmentID != nil {
		if err := ensureExists[entity.Appointment](tx, u.appointmentRepo, *req.AppointmentID, ErrAppointmentNotFound); err != nil {
			return nil, err
		}
		existing, err := u.requestRepo.FindByPatientAppointmentDoctor(tx, req.PatientID, *req.AppointmentID, req.DoctorID)
		if err != nil {
			u.log.Warnf("Failed to check existing request: %+v", err)
			return nil, err
		}
		if existing != nil {
			return nil, ErrRequestAlreadyExists
		}
	}
	if err := ensureExists[entity.RequestType](tx, u.requestTypeRepo, req.RequestTypeID, ErrRequestTypeNotFound); err != nil {
		return nil, err
	}

	request := &entity.Request{
		State:         state,
		Description:   req.Description,
		CreatedAt:     time.Now().UTC(),
		PatientID:     req.PatientID,
		DoctorID:      req.DoctorID,
		NurseID:       req.NurseID,
		AppointmentID: req.AppointmentID,
		RequestTypeID: req.RequestTypeID,
	}
	if err := u.requestRepo.Create(tx, request); err != nil {
		if isDuplicateKeyError(err, "patient_appointment_doctor") {
			return nil, ErrRequestAlreadyExists
		}
		u.log.Warnf("Failed to create request: %+v", err)
		return nil, err
	}

	if err := u.historyService.RecordRequestCreated(ctx, tx, request); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.notifier.afterCommit(ctx, service.EventRequestCreated, request)

	return converter.RequestToResponse(request), nil
}

func (u *requestUsecase) GetRequest(ctx context.Context, id int) (*dto.RequestResponse, error) {
	request, err := u.requestRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find request: %+v", err)
		return nil, err
	}
	if request == nil {
		return nil, ErrRequestNotFound
	}

	return converter.RequestToResponse(request), nil
}

func (u *requestUsecase) GetAllRequests(ctx context.Context, params pagination.Params) ([]dto.RequestResponse, int64, error) {
	requests, total, err := u.requestRepo.FindAll(u.db.WithContext(ctx), params.Limit, params.Offset())
	if err != nil {
		u.log.Warnf("Failed to find all requests: %+v", err)
		return nil, 0, err
	}

	return converter.RequestsToResponses(requests), total, nil
}

// UpdateRequest applies a state transition and/or reassignment. A state
// change is journaled as request.state_changed, anything else as
// request.updated. An update that changes nothing writes nothing.
func (u *requestUsecase) UpdateRequest(ctx context.Context, id int, req *dto.UpdateRequestRequest) (*dto.RequestResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	request, err := u.requestRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find request: %+v", err)
		return nil, err
	}
	if request == nil {
		return nil, ErrRequestNotFound
	}

	oldValue := converter.RequestToResponse(request)
	oldState := request.State

	if req.State != nil {
		state := entity.RequestState(*req.State)
		if !state.IsValid() {
			return nil, ErrInvalidRequestState
		}
		request.State = state
	}
	if req.NurseID != nil {
		if err := ensureExists[entity.Nurse](tx, u.nurseRepo, *req.NurseID, ErrNurseNotFound); err != nil {
			return nil, err
		}
		request.NurseID = req.NurseID
	}
	if req.AppointmentID != nil {
		if err := ensureExists[entity.Appointment](tx, u.appointmentRepo, *req.AppointmentID, ErrAppointmentNotFound); err != nil {
			return nil, err
		}
		existing, err := u.requestRepo.FindByPatientAppointmentDoctor(tx, request.PatientID, *req.AppointmentID, request.DoctorID)
		if err != nil {
			u.log.Warnf("Failed to check existing request: %+v", err)
			return nil, err
		}
		if existing != nil && existing.ID != request.ID {
			return nil, ErrRequestAlreadyExists
		}
		request.AppointmentID = req.AppointmentID
		request.Appointment = nil
	}
	if req.RequestTypeID != nil {
		if err := ensureExists[entity.RequestType](tx, u.requestTypeRepo, *req.RequestTypeID, ErrRequestTypeNotFound); err != nil {
			return nil, err
		}
		request.RequestTypeID = *req.RequestTypeID
		request.RequestType = nil
	}
	if req.Description != nil {
		request.Description = *req.Description
	}

	newValue := converter.RequestToResponse(request)
	stateChanged := request.State != oldState
	if !stateChanged && requestUnchanged(oldValue, newValue) {
		return oldValue, nil
	}

	if err := u.requestRepo.Update(tx, request); err != nil {
		if isDuplicateKeyError(err, "patient_appointment_doctor") {
			return nil, ErrRequestAlreadyExists
		}
		u.log.Warnf("Failed to update request: %+v", err)
		return nil, err
	}

	if stateChanged {
		err = u.historyService.RecordStateChange(ctx, tx, request, oldState, request.State)
	} else {
		err = u.historyService.RecordRequestUpdate(ctx, tx, request, oldValue, newValue)
	}
	if err != nil {
		return nil, err
	}

	// reload so the response carries the current request type
	updated, err := u.requestRepo.FindByID(tx, request.ID)
	if err != nil {
		u.log.Warnf("Failed to reload request: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	if stateChanged {
		u.log.Infof("Request %d moved from %s to %s", request.ID, oldState, request.State)
		u.notifier.afterCommit(ctx, service.EventRequestStateChanged, updated)
	} else {
		u.notifier.invalidateTerms(ctx)
	}

	return converter.RequestToResponse(updated), nil
}

// requestUnchanged compares the editable fields of two snapshots.
func requestUnchanged(before, after *dto.RequestResponse) bool {
	return before.Description == after.Description &&
		before.RequestTypeID == after.RequestTypeID &&
		equalIDs(before.NurseID, after.NurseID) &&
		equalIDs(before.AppointmentID, after.AppointmentID)
}

func equalIDs(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func (u *requestUsecase) DeleteRequest(ctx context.Context, id int) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	request, err := u.requestRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find request: %+v", err)
		return err
	}
	if request == nil {
		return ErrRequestNotFound
	}

	if _, err := u.requestRepo.Delete(tx, id); err != nil {
		if isForeignKeyError(err) {
			return ErrStillReferenced
		}
		u.log.Warnf("Failed delete request: %+v", err)
		return err
	}

	if err := u.historyService.RecordRequestDeleted(ctx, tx, request); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.notifier.afterCommit(ctx, service.EventRequestDeleted, request)

	return nil
}
