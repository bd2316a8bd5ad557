package usecase

import (
	"context"
	"fmt"
	"time"

	"hospital-booking-api/internal/converter"
	"hospital-booking-api/internal/delivery/dto"
	"hospital-booking-api/internal/domain/entity"
	"hospital-booking-api/internal/domain/repository"
	"hospital-booking-api/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const bookingAcknowledgment = "OK, created"

type TermBookingUsecase interface {
	BookTerm(ctx context.Context, req *dto.BookTermRequest) (*dto.BookTermResponse, error)
	ListAllTerms(ctx context.Context) ([]dto.TermResponse, error)
}

type termBookingUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	patientRepo      repository.PatientRepository
	nurseRepo        repository.NurseRepository
	appointmentRepo  repository.AppointmentRepository
	requestRepo      repository.RequestRepository
	requestTypeRepo  repository.RequestTypeRepository
	notificationRepo repository.NotificationRepository
	historyService   service.AppointmentHistoryService
	termCache        service.TermCache
	notifier         *requestNotifier
}

func NewTermBookingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	nurseRepo repository.NurseRepository,
	appointmentRepo repository.AppointmentRepository,
	requestRepo repository.RequestRepository,
	requestTypeRepo repository.RequestTypeRepository,
	notificationRepo repository.NotificationRepository,
	historyService service.AppointmentHistoryService,
	publisher service.EventPublisher,
	termCache service.TermCache,
) TermBookingUsecase {
	return &termBookingUsecase{
		db:               db,
		log:              log,
		patientRepo:      patientRepo,
		nurseRepo:        nurseRepo,
		appointmentRepo:  appointmentRepo,
		requestRepo:      requestRepo,
		requestTypeRepo:  requestTypeRepo,
		notificationRepo: notificationRepo,
		historyService:   historyService,
		termCache:        termCache,
		notifier:         newRequestNotifier(log, publisher, termCache),
	}
}

// BookTerm attaches a new pending request to an existing appointment.
//
// Flow (one transaction, nothing survives a failure):
// 1. Find patient by personal number, register them if unknown
// 2. Resolve the doctor's nurse
// 3. Resolve the appointment
// 4. Reject a second request for the same patient, appointment and doctor
// 5. Resolve the request type
// 6. Insert the request as pending, journal it and notify the patient
// 7. Commit, then invalidate the calendar cache and publish request.booked
func (u *termBookingUsecase) BookTerm(ctx context.Context, req *dto.BookTermRequest) (*dto.BookTermResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.log.Errorf("Failed to begin booking transaction: %+v", tx.Error)
		return nil, tx.Error
	}
	defer tx.Rollback()

	// Step 1: patient lookup-or-create
	patient, err := u.findOrRegisterPatient(tx, req)
	if err != nil {
		return nil, err
	}

	// Step 2: nurse assigned to the doctor
	nurse, err := u.nurseRepo.FindFirstByDoctorID(tx, req.DoctorID)
	if err != nil {
		u.log.Errorf("Failed to find nurse for doctor %d: %+v", req.DoctorID, err)
		return nil, err
	}
	if nurse == nil {
		return nil, ErrNurseForDoctorNotFound
	}

	// Step 3: appointment
	appointment, err := u.appointmentRepo.FindByID(tx, req.AppointmentID)
	if err != nil {
		u.log.Errorf("Failed to find appointment %d: %+v", req.AppointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	// Step 4: duplicate guard on (patient, appointment, doctor)
	existing, err := u.requestRepo.FindByPatientAppointmentDoctor(tx, patient.ID, appointment.ID, req.DoctorID)
	if err != nil {
		u.log.Errorf("Failed to check existing request: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrRequestAlreadyExists
	}

	// Step 5: request type
	requestType, err := u.requestTypeRepo.FindByID(tx, req.RequestTypeID)
	if err != nil {
		u.log.Errorf("Failed to find request type %d: %+v", req.RequestTypeID, err)
		return nil, err
	}
	if requestType == nil {
		return nil, ErrRequestTypeNotFound
	}

	// Step 6: the request itself
	appointmentID := appointment.ID
	nurseID := nurse.ID
	request := &entity.Request{
		State:         entity.RequestStatePending,
		Description:   req.Description,
		CreatedAt:     time.Now().UTC(),
		PatientID:     patient.ID,
		AppointmentID: &appointmentID,
		DoctorID:      req.DoctorID,
		NurseID:       &nurseID,
		RequestTypeID: requestType.ID,
	}
	if err := u.requestRepo.Create(tx, request); err != nil {
		// lost a race against a concurrent identical booking
		if isDuplicateKeyError(err, "patient_appointment_doctor") {
			return nil, ErrRequestAlreadyExists
		}
		u.log.Errorf("Failed to create request: %+v", err)
		return nil, err
	}

	if err := u.historyService.RecordBooking(ctx, tx, request); err != nil {
		return nil, err
	}

	doctorID := req.DoctorID
	notification := &entity.Notification{
		Message: fmt.Sprintf("Your %s request for %s on %s was received and is pending approval.",
			requestType.Name, appointment.EventType, appointment.DateFrom.UTC().Format("2006-01-02 15:04")),
		PatientID: patient.ID,
		DoctorID:  &doctorID,
	}
	if err := u.notificationRepo.Create(tx, notification); err != nil {
		u.log.Errorf("Failed to create booking notification: %+v", err)
		return nil, err
	}

	// Step 7: commit
	if err := tx.Commit().Error; err != nil {
		if isDuplicateKeyError(err, "patient_appointment_doctor") {
			return nil, ErrRequestAlreadyExists
		}
		u.log.Errorf("Failed commit booking transaction: %+v", err)
		return nil, err
	}

	u.log.WithFields(logrus.Fields{
		"request_id":     request.ID,
		"patient_id":     patient.ID,
		"appointment_id": appointment.ID,
		"doctor_id":      req.DoctorID,
	}).Info("Term booked")

	u.notifier.afterCommit(ctx, service.EventRequestBooked, request)

	return &dto.BookTermResponse{Message: bookingAcknowledgment}, nil
}

// findOrRegisterPatient only fills the fields a booking carries; date of
// birth, sex and address stay unset.
func (u *termBookingUsecase) findOrRegisterPatient(tx *gorm.DB, req *dto.BookTermRequest) (*entity.Patient, error) {
	patient, err := u.patientRepo.FindByPersonalNumber(tx, req.PersonalNumber)
	if err != nil {
		u.log.Errorf("Failed to find patient by personal number: %+v", err)
		return nil, err
	}
	if patient != nil {
		return patient, nil
	}

	patient = &entity.Patient{
		Name:           req.Name,
		Surname:        req.Surname,
		PhoneNumber:    req.PhoneNumber,
		PersonalNumber: req.PersonalNumber,
	}
	if err := u.patientRepo.Create(tx, patient); err != nil {
		if isDuplicateKeyError(err, "personal_number") {
			return nil, ErrPersonalNumberExists
		}
		u.log.Errorf("Failed to register patient: %+v", err)
		return nil, err
	}
	return patient, nil
}

// ListAllTerms returns the calendar: every appointment with its requests.
func (u *termBookingUsecase) ListAllTerms(ctx context.Context) ([]dto.TermResponse, error) {
	if terms, ok := u.termCache.Get(ctx); ok {
		return terms, nil
	}

	appointments, err := u.appointmentRepo.FindAllWithRequests(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list terms: %+v", err)
		return nil, err
	}
	if len(appointments) == 0 {
		return nil, ErrNoTermsFound
	}

	terms := converter.AppointmentsToTerms(appointments)
	u.termCache.Set(ctx, terms)

	return terms, nil
}
