package converter

import (
	"hospital-booking-api/internal/delivery/dto"
	"hospital-booking-api/internal/domain/entity"
)

const dateLayout = "2006-01-02"

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	var dateOfBirth *string
	if patient.DateOfBirth != nil {
		formatted := patient.DateOfBirth.Format(dateLayout)
		dateOfBirth = &formatted
	}

	return &dto.PatientResponse{
		ID:             patient.ID,
		Name:           patient.Name,
		Surname:        patient.Surname,
		DateOfBirth:    dateOfBirth,
		Sex:            patient.Sex,
		Address:        patient.Address,
		PhoneNumber:    patient.PhoneNumber,
		PersonalNumber: patient.PersonalNumber,
	}
}

func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		responses[i] = *PatientToResponse(&patients[i])
	}
	return responses
}
