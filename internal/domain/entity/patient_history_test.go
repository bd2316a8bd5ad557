package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestBuildPatientHistory_DeduplicatesSharedAppointment(t *testing.T) {
	slot := &Appointment{ID: 5, EventType: "consultation"}
	requests := []Request{
		{ID: 1, AppointmentID: intPtr(5), Appointment: slot, Tests: []Test{{ID: 10}, {ID: 11}}},
		{ID: 2, AppointmentID: intPtr(5), Appointment: slot, Tests: []Test{{ID: 12}}},
	}

	history := BuildPatientHistory(requests)

	assert.Len(t, history.Requests, 2)
	assert.Len(t, history.Appointments, 1)
	assert.Equal(t, 5, history.Appointments[0].ID)
	assert.Len(t, history.Tests, 3)
}

func TestBuildPatientHistory_LastOccurrenceWins(t *testing.T) {
	requests := []Request{
		{ID: 1, Appointment: &Appointment{ID: 7, EventType: "old"}, Tests: []Test{{ID: 3, Results: "first"}}},
		{ID: 2, Appointment: &Appointment{ID: 8, EventType: "other"}},
		{ID: 3, Appointment: &Appointment{ID: 7, EventType: "new"}, Tests: []Test{{ID: 3, Results: "second"}}},
	}

	history := BuildPatientHistory(requests)

	assert.Len(t, history.Appointments, 2)
	assert.Equal(t, 7, history.Appointments[0].ID)
	assert.Equal(t, "new", history.Appointments[0].EventType)
	assert.Equal(t, 8, history.Appointments[1].ID)
	assert.Len(t, history.Tests, 1)
	assert.Equal(t, "second", history.Tests[0].Results)
}

func TestBuildPatientHistory_SkipsRequestsWithoutAppointment(t *testing.T) {
	requests := []Request{
		{ID: 1},
		{ID: 2, Appointment: &Appointment{ID: 4}},
	}

	history := BuildPatientHistory(requests)

	assert.Len(t, history.Requests, 2)
	assert.Len(t, history.Appointments, 1)
	assert.Empty(t, history.Tests)
}

func TestBuildPatientHistory_Empty(t *testing.T) {
	history := BuildPatientHistory(nil)

	assert.NotNil(t, history.Requests)
	assert.NotNil(t, history.Appointments)
	assert.NotNil(t, history.Tests)
	assert.Empty(t, history.Requests)
}

func TestRequestState_IsValid(t *testing.T) {
	for _, state := range RequestStates {
		assert.True(t, state.IsValid(), string(state))
	}
	assert.False(t, RequestState("cancelled").IsValid())
	assert.False(t, RequestState("").IsValid())
	assert.False(t, RequestState("Pending").IsValid())
}

func TestTestState_IsValid(t *testing.T) {
	assert.True(t, TestStateCompleted.IsValid())
	assert.False(t, TestState("done").IsValid())
}
