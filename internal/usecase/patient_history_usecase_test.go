package usecase

import (
	"context"
	"testing"
	"time"

	"hospital-booking-api/internal/delivery/dto"
	"hospital-booking-api/internal/domain/entity"
	"hospital-booking-api/internal/repository"
	"hospital-booking-api/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPatientHistory(t *testing.T) {
	db := testutil.NewDB(t)
	c := seedClinic(t, db)

	secondDoctor := entity.Doctor{Name: "Ivan", Surname: "Babic"}
	require.NoError(t, db.Create(&secondDoctor).Error)
	require.NoError(t, db.Create(&entity.Nurse{Name: "Maja", Surname: "Juric", DoctorID: &secondDoctor.ID}).Error)

	booking := newTestTermBookingUsecase(db, &fakeTermCache{}, &fakePublisher{})
	_, err := booking.BookTerm(context.Background(), bookingRequest(c, "0102030405"))
	require.NoError(t, err)

	req := bookingRequest(c, "0102030405")
	req.DoctorID = secondDoctor.ID
	_, err = booking.BookTerm(context.Background(), req)
	require.NoError(t, err)

	var first entity.Request
	require.NoError(t, db.Order("id ASC").First(&first).Error)
	testType := entity.TestType{Name: "Blood panel"}
	require.NoError(t, db.Create(&testType).Error)
	require.NoError(t, db.Create(&entity.Test{
		TestDate:   time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
		State:      entity.TestStateOrdered,
		TestTypeID: testType.ID,
		RequestID:  first.ID,
	}).Error)

	uc := NewPatientHistoryUsecase(db, testutil.NewLogger(), repository.NewPatientRepository(), repository.NewRequestRepository())

	history, err := uc.GetPatientHistory(context.Background(), &dto.PatientHistoryRequest{
		PersonalNumber: "0102030405",
		Name:           "Jana",
		Surname:        "Novak",
	})
	require.NoError(t, err)

	assert.Len(t, history.Requests, 2)
	require.Len(t, history.Appointments, 1)
	assert.Equal(t, c.appointment.ID, history.Appointments[0].ID)
	require.Len(t, history.Tests, 1)
	assert.Equal(t, first.ID, history.Tests[0].RequestID)
}

func TestGetPatientHistory_NoRequests(t *testing.T) {
	db := testutil.NewDB(t)
	require.NoError(t, db.Create(&entity.Patient{Name: "Jana", Surname: "Novak", PersonalNumber: "0102030405"}).Error)

	uc := NewPatientHistoryUsecase(db, testutil.NewLogger(), repository.NewPatientRepository(), repository.NewRequestRepository())

	history, err := uc.GetPatientHistory(context.Background(), &dto.PatientHistoryRequest{
		PersonalNumber: "0102030405",
		Name:           "Jana",
		Surname:        "Novak",
	})
	require.NoError(t, err)
	assert.NotNil(t, history.Requests)
	assert.Empty(t, history.Requests)
	assert.NotNil(t, history.Appointments)
	assert.NotNil(t, history.Tests)
}

func TestGetPatientHistory_IdentityMustMatchExactly(t *testing.T) {
	db := testutil.NewDB(t)
	require.NoError(t, db.Create(&entity.Patient{Name: "Jana", Surname: "Novak", PersonalNumber: "0102030405"}).Error)

	uc := NewPatientHistoryUsecase(db, testutil.NewLogger(), repository.NewPatientRepository(), repository.NewRequestRepository())

	_, err := uc.GetPatientHistory(context.Background(), &dto.PatientHistoryRequest{
		PersonalNumber: "0102030405",
		Name:           "Jana",
		Surname:        "Novakova",
	})
	require.ErrorIs(t, err, ErrPatientNotFound)
	assert.Equal(t, "patient not found with the provided details", err.Error())
}
