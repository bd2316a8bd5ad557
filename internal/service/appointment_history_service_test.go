package service

import (
	"context"
	"testing"

	"hospital-booking-api/internal/domain/entity"
	"hospital-booking-api/internal/repository"
	"hospital-booking-api/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppointmentHistoryService_RecordStateChange(t *testing.T) {
	db := testutil.NewDB(t)
	historyRepo := repository.NewAppointmentHistoryRepository()
	svc := NewAppointmentHistoryService(testutil.NewLogger(), historyRepo)

	appointmentID := 5
	nurseID := 3
	request := &entity.Request{
		ID:            9,
		State:         entity.RequestStateApproved,
		PatientID:     1,
		DoctorID:      2,
		NurseID:       &nurseID,
		AppointmentID: &appointmentID,
	}

	require.NoError(t, svc.RecordStateChange(context.Background(), db, request, entity.RequestStatePending, entity.RequestStateApproved))

	entries, err := historyRepo.FindByAppointmentID(db, appointmentID)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	entry := entries[0]
	assert.Equal(t, entity.ChangeRequestStateChanged, entry.ChangeType)
	require.NotNil(t, entry.RequestID)
	assert.Equal(t, 9, *entry.RequestID)
	require.NotNil(t, entry.NurseID)
	assert.Equal(t, 3, *entry.NurseID)
	assert.Equal(t, "pending", entry.Metadata["old_value"])
	assert.Equal(t, "approved", entry.Metadata["new_value"])
}

func TestAppointmentHistoryService_RecordAppointmentChange(t *testing.T) {
	db := testutil.NewDB(t)
	historyRepo := repository.NewAppointmentHistoryRepository()
	svc := NewAppointmentHistoryService(testutil.NewLogger(), historyRepo)

	appointment := &entity.Appointment{ID: 4, EventType: "surgery"}
	require.NoError(t, svc.RecordAppointmentChange(context.Background(), db, entity.ChangeAppointmentCreated, appointment, nil, map[string]interface{}{"event_type": "surgery"}))

	entries, err := historyRepo.FindByAppointmentID(db, 4)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entity.ChangeAppointmentCreated, entries[0].ChangeType)
	assert.Nil(t, entries[0].RequestID)
}
