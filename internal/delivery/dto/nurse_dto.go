package dto

// Request DTOs

type CreateNurseRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Surname     string `json:"surname" validate:"required,max=100"`
	Email       string `json:"email" validate:"omitempty,email"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,max=20"`
	DoctorID    *int   `json:"doctor_id" validate:"omitempty,gt=0"`
}

type UpdateNurseRequest struct {
	Name        string `json:"name" validate:"omitempty,max=100"`
	Surname     string `json:"surname" validate:"omitempty,max=100"`
	Email       string `json:"email" validate:"omitempty,email"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,max=20"`
	DoctorID    *int   `json:"doctor_id" validate:"omitempty,gt=0"`
}

// Response DTOs

type NurseResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Surname     string `json:"surname"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	DoctorID    *int   `json:"doctor_id,omitempty"`
}
