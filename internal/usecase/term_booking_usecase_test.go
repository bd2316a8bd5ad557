package usecase

import (
	"context"
	"testing"

	"hospital-booking-api/internal/delivery/dto"
	"hospital-booking-api/internal/domain/entity"
	"hospital-booking-api/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestBookTerm_NewPatient(t *testing.T) {
	db := testutil.NewDB(t)
	c := seedClinic(t, db)
	cache := &fakeTermCache{}
	publisher := &fakePublisher{}
	uc := newTestTermBookingUsecase(db, cache, publisher)

	resp, err := uc.BookTerm(context.Background(), bookingRequest(c, "1234567890"))
	require.NoError(t, err)
	assert.Equal(t, "OK, created", resp.Message)

	var patients []entity.Patient
	require.NoError(t, db.Find(&patients).Error)
	require.Len(t, patients, 1)
	assert.Equal(t, "1234567890", patients[0].PersonalNumber)
	assert.Nil(t, patients[0].DateOfBirth)

	var requests []entity.Request
	require.NoError(t, db.Find(&requests).Error)
	require.Len(t, requests, 1)
	request := requests[0]
	assert.Equal(t, entity.RequestStatePending, request.State)
	assert.Equal(t, patients[0].ID, request.PatientID)
	assert.Equal(t, c.doctor.ID, request.DoctorID)
	require.NotNil(t, request.NurseID)
	assert.Equal(t, c.nurse.ID, *request.NurseID)
	require.NotNil(t, request.AppointmentID)
	assert.Equal(t, c.appointment.ID, *request.AppointmentID)
	assert.Equal(t, "Annual checkup", request.Description)
	assert.False(t, request.CreatedAt.IsZero())

	var history []entity.AppointmentHistory
	require.NoError(t, db.Find(&history).Error)
	require.Len(t, history, 1)
	assert.Equal(t, entity.ChangeRequestBooked, history[0].ChangeType)

	assert.EqualValues(t, 1, countRows(t, db, &entity.Notification{}))

	assert.Equal(t, 1, cache.invalidations)
	require.Len(t, publisher.events, 1)
	assert.Equal(t, "request.booked", publisher.events[0].eventType)
	assert.Equal(t, "request-1", publisher.events[0].key)
}

func TestBookTerm_ExistingPatientIsReused(t *testing.T) {
	db := testutil.NewDB(t)
	c := seedClinic(t, db)
	existing := entity.Patient{Name: "Jana", Surname: "Novak", PersonalNumber: "1234567890"}
	require.NoError(t, db.Create(&existing).Error)

	uc := newTestTermBookingUsecase(db, &fakeTermCache{}, &fakePublisher{})

	_, err := uc.BookTerm(context.Background(), bookingRequest(c, "1234567890"))
	require.NoError(t, err)

	assert.EqualValues(t, 1, countRows(t, db, &entity.Patient{}))

	var request entity.Request
	require.NoError(t, db.First(&request).Error)
	assert.Equal(t, existing.ID, request.PatientID)
}

func TestBookTerm_NurseMissingRollsBackPatient(t *testing.T) {
	db := testutil.NewDB(t)
	c := seedClinic(t, db)
	require.NoError(t, db.Delete(&entity.Nurse{}, c.nurse.ID).Error)

	publisher := &fakePublisher{}
	uc := newTestTermBookingUsecase(db, &fakeTermCache{}, publisher)

	_, err := uc.BookTerm(context.Background(), bookingRequest(c, "1234567890"))
	require.ErrorIs(t, err, ErrNurseForDoctorNotFound)
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.Equal(t, "nurse for this doctor not found", err.Error())

	assert.Zero(t, countRows(t, db, &entity.Patient{}))
	assert.Zero(t, countRows(t, db, &entity.Request{}))
	assert.Empty(t, publisher.events)
}

func TestBookTerm_AppointmentMissing(t *testing.T) {
	db := testutil.NewDB(t)
	c := seedClinic(t, db)
	uc := newTestTermBookingUsecase(db, &fakeTermCache{}, &fakePublisher{})

	req := bookingRequest(c, "1234567890")
	req.AppointmentID = 999

	_, err := uc.BookTerm(context.Background(), req)
	require.ErrorIs(t, err, ErrAppointmentNotFound)
	assert.Zero(t, countRows(t, db, &entity.Patient{}))
}

func TestBookTerm_RequestTypeMissing(t *testing.T) {
	db := testutil.NewDB(t)
	c := seedClinic(t, db)
	uc := newTestTermBookingUsecase(db, &fakeTermCache{}, &fakePublisher{})

	req := bookingRequest(c, "1234567890")
	req.RequestTypeID = 999

	_, err := uc.BookTerm(context.Background(), req)
	require.ErrorIs(t, err, ErrRequestTypeNotFound)
	assert.Zero(t, countRows(t, db, &entity.Patient{}))
	assert.Zero(t, countRows(t, db, &entity.Request{}))
	assert.Zero(t, countRows(t, db, &entity.AppointmentHistory{}))
}

func TestBookTerm_DuplicateIsConflict(t *testing.T) {
	db := testutil.NewDB(t)
	c := seedClinic(t, db)
	publisher := &fakePublisher{}
	uc := newTestTermBookingUsecase(db, &fakeTermCache{}, publisher)

	_, err := uc.BookTerm(context.Background(), bookingRequest(c, "1234567890"))
	require.NoError(t, err)

	_, err = uc.BookTerm(context.Background(), bookingRequest(c, "1234567890"))
	require.ErrorIs(t, err, ErrRequestAlreadyExists)
	assert.Equal(t, KindConflict, KindOf(err))

	assert.EqualValues(t, 1, countRows(t, db, &entity.Request{}))
	assert.EqualValues(t, 1, countRows(t, db, &entity.Patient{}))
	assert.Len(t, publisher.events, 1)
}

func TestBookTerm_PublishFailureDoesNotFailBooking(t *testing.T) {
	db := testutil.NewDB(t)
	c := seedClinic(t, db)
	uc := newTestTermBookingUsecase(db, &fakeTermCache{}, &fakePublisher{err: errBrokerDown})

	resp, err := uc.BookTerm(context.Background(), bookingRequest(c, "1234567890"))
	require.NoError(t, err)
	assert.Equal(t, "OK, created", resp.Message)
	assert.EqualValues(t, 1, countRows(t, db, &entity.Request{}))
}

func TestListAllTerms(t *testing.T) {
	db := testutil.NewDB(t)
	c := seedClinic(t, db)
	cache := &fakeTermCache{}
	uc := newTestTermBookingUsecase(db, cache, &fakePublisher{})

	_, err := uc.BookTerm(context.Background(), bookingRequest(c, "1234567890"))
	require.NoError(t, err)

	terms, err := uc.ListAllTerms(context.Background())
	require.NoError(t, err)
	require.Len(t, terms, 1)
	assert.Equal(t, c.appointment.ID, terms[0].ID)
	require.Len(t, terms[0].Requests, 1)
	require.NotNil(t, terms[0].Requests[0].RequestType)
	assert.Equal(t, "Consultation", terms[0].Requests[0].RequestType.Name)
	assert.Equal(t, 1, cache.sets)
}

func TestListAllTerms_CacheHit(t *testing.T) {
	db := testutil.NewDB(t)
	cached := []dto.TermResponse{{AppointmentResponse: dto.AppointmentResponse{ID: 42}}}
	cache := &fakeTermCache{terms: cached, hit: true}
	uc := newTestTermBookingUsecase(db, cache, &fakePublisher{})

	terms, err := uc.ListAllTerms(context.Background())
	require.NoError(t, err)
	assert.Equal(t, cached, terms)
	assert.Zero(t, cache.sets)
}

func TestListAllTerms_Empty(t *testing.T) {
	db := testutil.NewDB(t)
	uc := newTestTermBookingUsecase(db, &fakeTermCache{}, &fakePublisher{})

	_, err := uc.ListAllTerms(context.Background())
	require.ErrorIs(t, err, ErrNoTermsFound)
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestBookTerm_ConcurrentDuplicateIsConflict(t *testing.T) {
	db := testutil.NewDB(t)
	c := seedClinic(t, db)
	publisher := &fakePublisher{}
	uc := newTestTermBookingUsecase(db, &fakeTermCache{}, publisher)

	// A competing booking lands between the duplicate check and the insert,
	// so only the unique index can catch it.
	inserted := false
	require.NoError(t, db.Callback().Create().Before("gorm:create").Register("test:competing_booking", func(tx *gorm.DB) {
		pending, ok := tx.Statement.Dest.(*entity.Request)
		if !ok || inserted {
			return
		}
		inserted = true
		winner := entity.Request{
			State:         entity.RequestStatePending,
			PatientID:     pending.PatientID,
			AppointmentID: pending.AppointmentID,
			DoctorID:      pending.DoctorID,
			RequestTypeID: pending.RequestTypeID,
		}
		require.NoError(t, tx.Session(&gorm.Session{NewDB: true}).Create(&winner).Error)
	}))

	_, err := uc.BookTerm(context.Background(), bookingRequest(c, "1234567890"))
	require.True(t, inserted)
	require.ErrorIs(t, err, ErrRequestAlreadyExists)
	assert.Equal(t, KindConflict, KindOf(err))
	assert.Empty(t, publisher.events)
	assert.Zero(t, countRows(t, db, &entity.Notification{}))
}
