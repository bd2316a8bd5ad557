package converter

import (
	"hospital-booking-api/internal/delivery/dto"
	"hospital-booking-api/internal/domain/entity"
)

func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}
	return &dto.AppointmentResponse{
		ID:                    appointment.ID,
		EventType:             appointment.EventType,
		DateFrom:              appointment.DateFrom,
		DateTo:                appointment.DateTo,
		RegistrationMandatory: appointment.RegistrationMandatory,
		DoctorID:              appointment.DoctorID,
		CreatedAt:             appointment.CreatedAt,
	}
}

func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}

// AppointmentHistoriesToResponses converts journal entries
func AppointmentHistoriesToResponses(histories []entity.AppointmentHistory) []dto.AppointmentHistoryResponse {
	responses := make([]dto.AppointmentHistoryResponse, len(histories))
	for i, history := range histories {
		responses[i] = dto.AppointmentHistoryResponse{
			ID:            history.ID,
			ChangeType:    history.ChangeType,
			Description:   history.Description,
			AppointmentID: history.AppointmentID,
			DoctorID:      history.DoctorID,
			PatientID:     history.PatientID,
			NurseID:       history.NurseID,
			RequestID:     history.RequestID,
			Metadata:      history.Metadata,
			CreatedAt:     history.CreatedAt,
		}
	}
	return responses
}
