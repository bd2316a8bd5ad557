package service

import (
	"context"
	"fmt"

	"hospital-booking-api/internal/domain/entity"
	"hospital-booking-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AppointmentHistoryService journals request and appointment changes. Every
// method writes through the caller's transaction so the journal commits or
// rolls back together with the change it describes.
type AppointmentHistoryService interface {
	RecordBooking(ctx context.Context, tx *gorm.DB, request *entity.Request) error
	RecordRequestCreated(ctx context.Context, tx *gorm.DB, request *entity.Request) error
	RecordStateChange(ctx context.Context, tx *gorm.DB, request *entity.Request, from, to entity.RequestState) error
	RecordRequestUpdate(ctx context.Context, tx *gorm.DB, request *entity.Request, oldValue, newValue interface{}) error
	RecordRequestDeleted(ctx context.Context, tx *gorm.DB, request *entity.Request) error
	RecordAppointmentChange(ctx context.Context, tx *gorm.DB, changeType string, appointment *entity.Appointment, oldValue, newValue interface{}) error
}

type appointmentHistoryService struct {
	log         *logrus.Logger
	historyRepo repository.AppointmentHistoryRepository
}

func NewAppointmentHistoryService(log *logrus.Logger, historyRepo repository.AppointmentHistoryRepository) AppointmentHistoryService {
	return &appointmentHistoryService{
		log:         log,
		historyRepo: historyRepo,
	}
}

func (s *appointmentHistoryService) RecordBooking(ctx context.Context, tx *gorm.DB, request *entity.Request) error {
	return s.recordForRequest(tx, entity.ChangeRequestBooked, request,
		fmt.Sprintf("Request %d booked in state %s", request.ID, request.State),
		datatypes.JSONMap{"state": request.State, "description": request.Description})
}

func (s *appointmentHistoryService) RecordRequestCreated(ctx context.Context, tx *gorm.DB, request *entity.Request) error {
	return s.recordForRequest(tx, entity.ChangeRequestCreated, request,
		fmt.Sprintf("Request %d created in state %s", request.ID, request.State),
		datatypes.JSONMap{"state": request.State})
}

func (s *appointmentHistoryService) RecordStateChange(ctx context.Context, tx *gorm.DB, request *entity.Request, from, to entity.RequestState) error {
	return s.recordForRequest(tx, entity.ChangeRequestStateChanged, request,
		fmt.Sprintf("Request %d moved from %s to %s", request.ID, from, to),
		datatypes.JSONMap{"old_value": from, "new_value": to})
}

func (s *appointmentHistoryService) RecordRequestUpdate(ctx context.Context, tx *gorm.DB, request *entity.Request, oldValue, newValue interface{}) error {
	return s.recordForRequest(tx, entity.ChangeRequestUpdated, request,
		fmt.Sprintf("Request %d updated", request.ID),
		datatypes.JSONMap{"old_value": oldValue, "new_value": newValue})
}

func (s *appointmentHistoryService) RecordRequestDeleted(ctx context.Context, tx *gorm.DB, request *entity.Request) error {
	return s.recordForRequest(tx, entity.ChangeRequestDeleted, request,
		fmt.Sprintf("Request %d deleted", request.ID),
		datatypes.JSONMap{"state": request.State})
}

func (s *appointmentHistoryService) RecordAppointmentChange(ctx context.Context, tx *gorm.DB, changeType string, appointment *entity.Appointment, oldValue, newValue interface{}) error {
	appointmentID := appointment.ID
	history := &entity.AppointmentHistory{
		ChangeType:    changeType,
		Description:   fmt.Sprintf("Appointment %d: %s", appointment.ID, changeType),
		AppointmentID: &appointmentID,
		DoctorID:      appointment.DoctorID,
		Metadata: datatypes.JSONMap{
			"old_value": oldValue,
			"new_value": newValue,
		},
	}

	if err := s.historyRepo.Create(tx, history); err != nil {
		s.log.Warnf("Failed to record appointment history: %+v", err)
		return err
	}
	return nil
}

func (s *appointmentHistoryService) recordForRequest(tx *gorm.DB, changeType string, request *entity.Request, description string, metadata datatypes.JSONMap) error {
	requestID := request.ID
	patientID := request.PatientID
	doctorID := request.DoctorID

	history := &entity.AppointmentHistory{
		ChangeType:    changeType,
		Description:   description,
		AppointmentID: request.AppointmentID,
		DoctorID:      &doctorID,
		PatientID:     &patientID,
		NurseID:       request.NurseID,
		RequestID:     &requestID,
		Metadata:      metadata,
	}

	if err := s.historyRepo.Create(tx, history); err != nil {
		s.log.Warnf("Failed to record appointment history: %+v", err)
		return err
	}
	return nil
}
