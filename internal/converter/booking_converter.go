package converter

import (
	"hospital-booking-api/internal/delivery/dto"
	"hospital-booking-api/internal/domain/entity"
)

// PatientHistoryToResponse converts the aggregated history. Every list is
// non-nil so it serialises as [] rather than null.
func PatientHistoryToResponse(history *entity.PatientHistory) *dto.PatientHistoryResponse {
	return &dto.PatientHistoryResponse{
		Requests:     RequestsToResponses(history.Requests),
		Appointments: AppointmentsToResponses(history.Appointments),
		Tests:        TestsToResponses(history.Tests),
	}
}

// AppointmentsToTerms converts appointments loaded with their requests into
// the calendar view.
func AppointmentsToTerms(appointments []entity.Appointment) []dto.TermResponse {
	terms := make([]dto.TermResponse, len(appointments))
	for i := range appointments {
		terms[i] = dto.TermResponse{
			AppointmentResponse: *AppointmentToResponse(&appointments[i]),
			Requests:            RequestsToResponses(appointments[i].Requests),
		}
	}
	return terms
}
