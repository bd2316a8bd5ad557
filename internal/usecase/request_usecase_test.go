package usecase

import (
	"context"
	"testing"
	"time"

	"hospital-booking-api/internal/delivery/dto"
	"hospital-booking-api/internal/domain/entity"
	"hospital-booking-api/internal/repository"
	"hospital-booking-api/internal/service"
	"hospital-booking-api/internal/testutil"
	"hospital-booking-api/pkg/pagination"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestRequestUsecase(db *gorm.DB, cache service.TermCache, publisher service.EventPublisher) RequestUsecase {
	log := testutil.NewLogger()
	return NewRequestUsecase(
		db,
		log,
		repository.NewRequestRepository(),
		repository.NewPatientRepository(),
		repository.NewDoctorRepository(),
		repository.NewNurseRepository(),
		repository.NewAppointmentRepository(),
		repository.NewRequestTypeRepository(),
		service.NewAppointmentHistoryService(log, repository.NewAppointmentHistoryRepository()),
		publisher,
		cache,
	)
}

func createPatient(t *testing.T, db *gorm.DB) entity.Patient {
	t.Helper()
	patient := entity.Patient{Name: "Jana", Surname: "Novak", PersonalNumber: "0102030405"}
	require.NoError(t, db.Create(&patient).Error)
	return patient
}

func TestCreateRequest_DefaultsToPending(t *testing.T) {
	db := testutil.NewDB(t)
	c := seedClinic(t, db)
	patient := createPatient(t, db)
	publisher := &fakePublisher{}
	uc := newTestRequestUsecase(db, &fakeTermCache{}, publisher)

	resp, err := uc.CreateRequest(context.Background(), &dto.CreateRequestRequest{
		PatientID:     patient.ID,
		DoctorID:      c.doctor.ID,
		AppointmentID: &c.appointment.ID,
		RequestTypeID: c.requestType.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "pending", resp.State)
	require.Len(t, publisher.events, 1)
	assert.Equal(t, service.EventRequestCreated, publisher.events[0].eventType)
}

func TestCreateRequest_DanglingReferences(t *testing.T) {
	db := testutil.NewDB(t)
	c := seedClinic(t, db)
	patient := createPatient(t, db)
	uc := newTestRequestUsecase(db, &fakeTermCache{}, &fakePublisher{})

	missing := 999
	tests := []struct {
		name    string
		req     dto.CreateRequestRequest
		wantErr error
	}{
		{
			name:    "patient",
			req:     dto.CreateRequestRequest{PatientID: missing, DoctorID: c.doctor.ID, RequestTypeID: c.requestType.ID},
			wantErr: ErrPatientNotFound,
		},
		{
			name:    "doctor",
			req:     dto.CreateRequestRequest{PatientID: patient.ID, DoctorID: missing, RequestTypeID: c.requestType.ID},
			wantErr: ErrDoctorNotFound,
		},
		{
			name:    "nurse",
			req:     dto.CreateRequestRequest{PatientID: patient.ID, DoctorID: c.doctor.ID, NurseID: &missing, RequestTypeID: c.requestType.ID},
			wantErr: ErrNurseNotFound,
		},
		{
			name:    "appointment",
			req:     dto.CreateRequestRequest{PatientID: patient.ID, DoctorID: c.doctor.ID, AppointmentID: &missing, RequestTypeID: c.requestType.ID},
			wantErr: ErrAppointmentNotFound,
		},
		{
			name:    "request type",
			req:     dto.CreateRequestRequest{PatientID: patient.ID, DoctorID: c.doctor.ID, RequestTypeID: missing},
			wantErr: ErrRequestTypeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.CreateRequest(context.Background(), &tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
	assert.Zero(t, countRows(t, db, &entity.Request{}))
}

func TestUpdateRequest_StateChangeIsJournaled(t *testing.T) {
	db := testutil.NewDB(t)
	c := seedClinic(t, db)
	cache := &fakeTermCache{}
	publisher := &fakePublisher{}

	_, err := newTestTermBookingUsecase(db, cache, publisher).BookTerm(context.Background(), bookingRequest(c, "1234567890"))
	require.NoError(t, err)

	uc := newTestRequestUsecase(db, cache, publisher)
	approved := "approved"
	resp, err := uc.UpdateRequest(context.Background(), 1, &dto.UpdateRequestRequest{State: &approved})
	require.NoError(t, err)
	assert.Equal(t, "approved", resp.State)

	var stored entity.Request
	require.NoError(t, db.First(&stored, 1).Error)
	assert.Equal(t, entity.RequestStateApproved, stored.State)

	var entries []entity.AppointmentHistory
	require.NoError(t, db.Where("change_type = ?", entity.ChangeRequestStateChanged).Find(&entries).Error)
	require.Len(t, entries, 1)
	assert.Equal(t, "pending", entries[0].Metadata["old_value"])
	assert.Equal(t, "approved", entries[0].Metadata["new_value"])

	require.Len(t, publisher.events, 2)
	assert.Equal(t, service.EventRequestStateChanged, publisher.events[1].eventType)
	assert.Equal(t, 2, cache.invalidations)
}

func TestUpdateRequest_InvalidState(t *testing.T) {
	db := testutil.NewDB(t)
	c := seedClinic(t, db)
	_, err := newTestTermBookingUsecase(db, &fakeTermCache{}, &fakePublisher{}).BookTerm(context.Background(), bookingRequest(c, "1234567890"))
	require.NoError(t, err)

	uc := newTestRequestUsecase(db, &fakeTermCache{}, &fakePublisher{})
	state := "archived"
	_, err = uc.UpdateRequest(context.Background(), 1, &dto.UpdateRequestRequest{State: &state})
	require.ErrorIs(t, err, ErrInvalidRequestState)
	assert.Equal(t, KindInvalid, KindOf(err))

	var stored entity.Request
	require.NoError(t, db.First(&stored, 1).Error)
	assert.Equal(t, entity.RequestStatePending, stored.State)
}

func TestUpdateRequest_DescriptionOnly(t *testing.T) {
	db := testutil.NewDB(t)
	c := seedClinic(t, db)
	_, err := newTestTermBookingUsecase(db, &fakeTermCache{}, &fakePublisher{}).BookTerm(context.Background(), bookingRequest(c, "1234567890"))
	require.NoError(t, err)

	publisher := &fakePublisher{}
	uc := newTestRequestUsecase(db, &fakeTermCache{}, publisher)
	description := "Bring previous results"
	resp, err := uc.UpdateRequest(context.Background(), 1, &dto.UpdateRequestRequest{Description: &description})
	require.NoError(t, err)
	assert.Equal(t, description, resp.Description)
	assert.Equal(t, "pending", resp.State)

	assert.EqualValues(t, 1, countRows(t, db.Where("change_type = ?", entity.ChangeRequestUpdated), &entity.AppointmentHistory{}))
	assert.Empty(t, publisher.events)
}

func TestUpdateRequest_NotFound(t *testing.T) {
	db := testutil.NewDB(t)
	uc := newTestRequestUsecase(db, &fakeTermCache{}, &fakePublisher{})

	state := "approved"
	_, err := uc.UpdateRequest(context.Background(), 7, &dto.UpdateRequestRequest{State: &state})
	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestDeleteRequest(t *testing.T) {
	db := testutil.NewDB(t)
	c := seedClinic(t, db)
	_, err := newTestTermBookingUsecase(db, &fakeTermCache{}, &fakePublisher{}).BookTerm(context.Background(), bookingRequest(c, "1234567890"))
	require.NoError(t, err)

	publisher := &fakePublisher{}
	uc := newTestRequestUsecase(db, &fakeTermCache{}, publisher)
	require.NoError(t, uc.DeleteRequest(context.Background(), 1))

	assert.Zero(t, countRows(t, db, &entity.Request{}))
	require.Len(t, publisher.events, 1)
	assert.Equal(t, service.EventRequestDeleted, publisher.events[0].eventType)

	assert.ErrorIs(t, uc.DeleteRequest(context.Background(), 1), ErrRequestNotFound)
}

func TestGetAllRequests_Paginates(t *testing.T) {
	db := testutil.NewDB(t)
	c := seedClinic(t, db)
	patient := createPatient(t, db)
	uc := newTestRequestUsecase(db, &fakeTermCache{}, &fakePublisher{})

	for i := 0; i < 3; i++ {
		_, err := uc.CreateRequest(context.Background(), &dto.CreateRequestRequest{
			PatientID:     patient.ID,
			DoctorID:      c.doctor.ID,
			RequestTypeID: c.requestType.ID,
		})
		require.NoError(t, err)
	}

	page, total, err := uc.GetAllRequests(context.Background(), pagination.New(2, 2))
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, page, 1)
	assert.Equal(t, 3, page[0].ID)
}

func TestUpdateRequest_ReassignOntoExistingTripleIsConflict(t *testing.T) {
	db := testutil.NewDB(t)
	c := seedClinic(t, db)
	patient := createPatient(t, db)

	second := c.appointment
	second.ID = 0
	second.DateFrom = second.DateFrom.Add(24 * time.Hour)
	second.DateTo = second.DateTo.Add(24 * time.Hour)
	require.NoError(t, db.Create(&second).Error)

	uc := newTestRequestUsecase(db, &fakeTermCache{}, &fakePublisher{})
	for _, appointmentID := range []int{c.appointment.ID, second.ID} {
		_, err := uc.CreateRequest(context.Background(), &dto.CreateRequestRequest{
			PatientID:     patient.ID,
			DoctorID:      c.doctor.ID,
			AppointmentID: &appointmentID,
			RequestTypeID: c.requestType.ID,
		})
		require.NoError(t, err)
	}

	_, err := uc.UpdateRequest(context.Background(), 1, &dto.UpdateRequestRequest{AppointmentID: &second.ID})
	require.ErrorIs(t, err, ErrRequestAlreadyExists)
	assert.Equal(t, KindConflict, KindOf(err))

	var stored entity.Request
	require.NoError(t, db.First(&stored, 1).Error)
	require.NotNil(t, stored.AppointmentID)
	assert.Equal(t, c.appointment.ID, *stored.AppointmentID)
}

func TestUpdateRequest_SameAppointmentIsNotADuplicate(t *testing.T) {
	db := testutil.NewDB(t)
	c := seedClinic(t, db)
	_, err := newTestTermBookingUsecase(db, &fakeTermCache{}, &fakePublisher{}).BookTerm(context.Background(), bookingRequest(c, "1234567890"))
	require.NoError(t, err)

	uc := newTestRequestUsecase(db, &fakeTermCache{}, &fakePublisher{})
	description := "Moved to the morning slot"
	resp, err := uc.UpdateRequest(context.Background(), 1, &dto.UpdateRequestRequest{
		AppointmentID: &c.appointment.ID,
		Description:   &description,
	})
	require.NoError(t, err)
	assert.Equal(t, description, resp.Description)
}

func TestUpdateRequest_EmptyBodyWritesNothing(t *testing.T) {
	db := testutil.NewDB(t)
	c := seedClinic(t, db)
	cache := &fakeTermCache{}
	_, err := newTestTermBookingUsecase(db, cache, &fakePublisher{}).BookTerm(context.Background(), bookingRequest(c, "1234567890"))
	require.NoError(t, err)

	uc := newTestRequestUsecase(db, cache, &fakePublisher{})
	resp, err := uc.UpdateRequest(context.Background(), 1, &dto.UpdateRequestRequest{})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.ID)
	assert.Equal(t, "pending", resp.State)

	assert.Zero(t, countRows(t, db.Where("change_type = ?", entity.ChangeRequestUpdated), &entity.AppointmentHistory{}))
	assert.Equal(t, 1, cache.invalidations)
}

func TestUpdateRequest_InvalidatesWithDetachedContext(t *testing.T) {
	db := testutil.NewDB(t)
	c := seedClinic(t, db)
	_, err := newTestTermBookingUsecase(db, &fakeTermCache{}, &fakePublisher{}).BookTerm(context.Background(), bookingRequest(c, "1234567890"))
	require.NoError(t, err)

	cache := &fakeTermCache{}
	uc := newTestRequestUsecase(db, cache, &fakePublisher{})
	description := "Fasting required"
	_, err = uc.UpdateRequest(context.Background(), 1, &dto.UpdateRequestRequest{Description: &description})
	require.NoError(t, err)

	require.Equal(t, 1, cache.invalidations)
	_, hasDeadline := cache.invalidatedCtx.Deadline()
	assert.True(t, hasDeadline)
}

func TestUpdateRequest_RequestTypeChangeIsReloaded(t *testing.T) {
	db := testutil.NewDB(t)
	c := seedClinic(t, db)
	_, err := newTestTermBookingUsecase(db, &fakeTermCache{}, &fakePublisher{}).BookTerm(context.Background(), bookingRequest(c, "1234567890"))
	require.NoError(t, err)

	control := entity.RequestType{Name: "Control", Length: 15}
	require.NoError(t, db.Create(&control).Error)

	uc := newTestRequestUsecase(db, &fakeTermCache{}, &fakePublisher{})
	resp, err := uc.UpdateRequest(context.Background(), 1, &dto.UpdateRequestRequest{RequestTypeID: &control.ID})
	require.NoError(t, err)
	assert.Equal(t, control.ID, resp.RequestTypeID)
	require.NotNil(t, resp.RequestType)
	assert.Equal(t, "Control", resp.RequestType.Name)
}
