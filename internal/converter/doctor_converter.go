package converter

import (
	"hospital-booking-api/internal/delivery/dto"
	"hospital-booking-api/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:               doctor.ID,
		Name:             doctor.Name,
		Surname:          doctor.Surname,
		Email:            doctor.Email,
		PhoneNumber:      doctor.PhoneNumber,
		SpecializationID: doctor.SpecializationID,
		Specialization:   SpecializationToResponse(doctor.Specialization),
	}
}

func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}

func SpecializationToResponse(specialization *entity.DoctorSpecialization) *dto.DoctorSpecializationResponse {
	if specialization == nil {
		return nil
	}
	return &dto.DoctorSpecializationResponse{
		ID:   specialization.ID,
		Name: specialization.Name,
	}
}

func SpecializationsToResponses(specializations []entity.DoctorSpecialization) []dto.DoctorSpecializationResponse {
	responses := make([]dto.DoctorSpecializationResponse, len(specializations))
	for i := range specializations {
		responses[i] = *SpecializationToResponse(&specializations[i])
	}
	return responses
}

func NurseToResponse(nurse *entity.Nurse) *dto.NurseResponse {
	if nurse == nil {
		return nil
	}
	return &dto.NurseResponse{
		ID:          nurse.ID,
		Name:        nurse.Name,
		Surname:     nurse.Surname,
		Email:       nurse.Email,
		PhoneNumber: nurse.PhoneNumber,
		DoctorID:    nurse.DoctorID,
	}
}

func NursesToResponses(nurses []entity.Nurse) []dto.NurseResponse {
	responses := make([]dto.NurseResponse, len(nurses))
	for i := range nurses {
		responses[i] = *NurseToResponse(&nurses[i])
	}
	return responses
}
