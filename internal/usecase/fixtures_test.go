package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"hospital-booking-api/internal/delivery/dto"
	"hospital-booking-api/internal/domain/entity"
	"hospital-booking-api/internal/repository"
	"hospital-booking-api/internal/service"
	"hospital-booking-api/internal/testutil"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeTermCache struct {
	terms          []dto.TermResponse
	hit            bool
	sets           int
	invalidations  int
	invalidatedCtx context.Context
}

func (c *fakeTermCache) Get(ctx context.Context) ([]dto.TermResponse, bool) {
	return c.terms, c.hit
}

func (c *fakeTermCache) Set(ctx context.Context, terms []dto.TermResponse) {
	c.terms = terms
	c.sets++
}

func (c *fakeTermCache) Invalidate(ctx context.Context) {
	c.invalidatedCtx = ctx
	c.hit = false
	c.invalidations++
}

type publishedEvent struct {
	eventType string
	key       string
	data      map[string]interface{}
}

type fakePublisher struct {
	events []publishedEvent
	err    error
}

func (p *fakePublisher) Publish(ctx context.Context, eventType string, key string, data map[string]interface{}) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, publishedEvent{eventType: eventType, key: key, data: data})
	return nil
}

func (p *fakePublisher) Close() error { return nil }

var errBrokerDown = errors.New("broker down")

// clinic is the minimal world a booking needs.
type clinic struct {
	doctor      entity.Doctor
	nurse       entity.Nurse
	appointment entity.Appointment
	requestType entity.RequestType
}

func seedClinic(t *testing.T, db *gorm.DB) clinic {
	t.Helper()

	c := clinic{
		doctor:      entity.Doctor{Name: "Marko", Surname: "Horvat"},
		requestType: entity.RequestType{Name: "Consultation", Length: 30},
	}
	require.NoError(t, db.Create(&c.doctor).Error)
	require.NoError(t, db.Create(&c.requestType).Error)

	c.nurse = entity.Nurse{Name: "Ana", Surname: "Kovac", DoctorID: &c.doctor.ID}
	require.NoError(t, db.Create(&c.nurse).Error)

	from := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	c.appointment = entity.Appointment{
		EventType:             "Checkup",
		DateFrom:              from,
		DateTo:                from.Add(time.Hour),
		RegistrationMandatory: true,
		DoctorID:              &c.doctor.ID,
	}
	require.NoError(t, db.Create(&c.appointment).Error)

	return c
}

func newTestTermBookingUsecase(db *gorm.DB, cache service.TermCache, publisher service.EventPublisher) TermBookingUsecase {
	log := testutil.NewLogger()
	return NewTermBookingUsecase(
		db,
		log,
		repository.NewPatientRepository(),
		repository.NewNurseRepository(),
		repository.NewAppointmentRepository(),
		repository.NewRequestRepository(),
		repository.NewRequestTypeRepository(),
		repository.NewNotificationRepository(),
		service.NewAppointmentHistoryService(log, repository.NewAppointmentHistoryRepository()),
		publisher,
		cache,
	)
}

func bookingRequest(c clinic, personalNumber string) *dto.BookTermRequest {
	return &dto.BookTermRequest{
		AppointmentID:  c.appointment.ID,
		DoctorID:       c.doctor.ID,
		Name:           "Jana",
		Surname:        "Novak",
		PhoneNumber:    "+385911234567",
		PersonalNumber: personalNumber,
		Description:    "Annual checkup",
		RequestTypeID:  c.requestType.ID,
	}
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}
