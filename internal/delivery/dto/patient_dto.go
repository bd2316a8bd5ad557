package dto

// Request DTOs

type CreatePatientRequest struct {
	Name           string  `json:"name" validate:"required,max=100"`
	Surname        string  `json:"surname" validate:"required,max=100"`
	DateOfBirth    *string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Sex            *string `json:"sex" validate:"omitempty,oneof=M F"`
	Address        *string `json:"address" validate:"omitempty,max=255"`
	PhoneNumber    string  `json:"phone_number" validate:"omitempty,max=20"`
	PersonalNumber string  `json:"personal_number" validate:"required,len=10"`
}

type UpdatePatientRequest struct {
	Name           string  `json:"name" validate:"omitempty,max=100"`
	Surname        string  `json:"surname" validate:"omitempty,max=100"`
	DateOfBirth    *string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Sex            *string `json:"sex" validate:"omitempty,oneof=M F"`
	Address        *string `json:"address" validate:"omitempty,max=255"`
	PhoneNumber    string  `json:"phone_number" validate:"omitempty,max=20"`
	PersonalNumber string  `json:"personal_number" validate:"omitempty,len=10"`
}

// Response DTOs

type PatientResponse struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	Surname        string  `json:"surname"`
	DateOfBirth    *string `json:"date_of_birth,omitempty"`
	Sex            *string `json:"sex,omitempty"`
	Address        *string `json:"address,omitempty"`
	PhoneNumber    string  `json:"phone_number"`
	PersonalNumber string  `json:"personal_number"`
}
