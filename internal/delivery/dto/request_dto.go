package dto

import "time"

// Request DTOs

type CreateRequestRequest struct {
	PatientID     int    `json:"patient_id" validate:"required,gt=0"`
	DoctorID      int    `json:"doctor_id" validate:"required,gt=0"`
	NurseID       *int   `json:"nurse_id" validate:"omitempty,gt=0"`
	AppointmentID *int   `json:"appointment_id" validate:"omitempty,gt=0"`
	RequestTypeID int    `json:"request_type_id" validate:"required,gt=0"`
	State         string `json:"state" validate:"omitempty,oneof=pending approved declined completed"`
	Description   string `json:"description"`
}

// UpdateRequestRequest changes the state and/or reassigns the request.
// Omitted fields are left untouched.
type UpdateRequestRequest struct {
	State         *string `json:"state" validate:"omitempty,oneof=pending approved declined completed"`
	NurseID       *int    `json:"nurse_id" validate:"omitempty,gt=0"`
	AppointmentID *int    `json:"appointment_id" validate:"omitempty,gt=0"`
	RequestTypeID *int    `json:"request_type_id" validate:"omitempty,gt=0"`
	Description   *string `json:"description"`
}

type RequestTypeRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description"`
	Length      int    `json:"length" validate:"gte=0"`
}

// Response DTOs

type RequestResponse struct {
	ID            int                  `json:"id"`
	State         string               `json:"state"`
	Description   string               `json:"description"`
	CreatedAt     time.Time            `json:"created_at"`
	PatientID     int                  `json:"patient_id"`
	DoctorID      int                  `json:"doctor_id"`
	NurseID       *int                 `json:"nurse_id,omitempty"`
	AppointmentID *int                 `json:"appointment_id,omitempty"`
	RequestTypeID int                  `json:"request_type_id"`
	RequestType   *RequestTypeResponse `json:"request_type,omitempty"`
}

type RequestTypeResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Length      int    `json:"length"`
}
