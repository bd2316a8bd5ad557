package dto

// Request DTOs

type CreateDoctorRequest struct {
	Name             string `json:"name" validate:"required,max=100"`
	Surname          string `json:"surname" validate:"required,max=100"`
	Email            string `json:"email" validate:"omitempty,email"`
	PhoneNumber      string `json:"phone_number" validate:"omitempty,max=20"`
	SpecializationID *int   `json:"specialization_id" validate:"omitempty,gt=0"`
}

type UpdateDoctorRequest struct {
	Name             string `json:"name" validate:"omitempty,max=100"`
	Surname          string `json:"surname" validate:"omitempty,max=100"`
	Email            string `json:"email" validate:"omitempty,email"`
	PhoneNumber      string `json:"phone_number" validate:"omitempty,max=20"`
	SpecializationID *int   `json:"specialization_id" validate:"omitempty,gt=0"`
}

type DoctorSpecializationRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// Response DTOs

type DoctorResponse struct {
	ID               int                           `json:"id"`
	Name             string                        `json:"name"`
	Surname          string                        `json:"surname"`
	Email            string                        `json:"email"`
	PhoneNumber      string                        `json:"phone_number"`
	SpecializationID *int                          `json:"specialization_id,omitempty"`
	Specialization   *DoctorSpecializationResponse `json:"specialization,omitempty"`
}

type DoctorSpecializationResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
