package dto

import "time"

// Request DTOs

type CreateAppointmentRequest struct {
	EventType             string    `json:"event_type" validate:"required,max=100"`
	DateFrom              time.Time `json:"date_from" validate:"required"`
	DateTo                time.Time `json:"date_to" validate:"required,gtefield=DateFrom"`
	RegistrationMandatory *bool     `json:"registration_mandatory"`
	DoctorID              *int      `json:"doctor_id" validate:"omitempty,gt=0"`
}

type UpdateAppointmentRequest struct {
	EventType             string     `json:"event_type" validate:"omitempty,max=100"`
	DateFrom              *time.Time `json:"date_from"`
	DateTo                *time.Time `json:"date_to"`
	RegistrationMandatory *bool      `json:"registration_mandatory"`
	DoctorID              *int       `json:"doctor_id" validate:"omitempty,gt=0"`
}

// Response DTOs

type AppointmentResponse struct {
	ID                    int       `json:"id"`
	EventType             string    `json:"event_type"`
	DateFrom              time.Time `json:"date_from"`
	DateTo                time.Time `json:"date_to"`
	RegistrationMandatory bool      `json:"registration_mandatory"`
	DoctorID              *int      `json:"doctor_id,omitempty"`
	CreatedAt             time.Time `json:"created_at"`
}

type AppointmentHistoryResponse struct {
	ID            int64                  `json:"id"`
	ChangeType    string                 `json:"change_type"`
	Description   string                 `json:"description"`
	AppointmentID *int                   `json:"appointment_id,omitempty"`
	DoctorID      *int                   `json:"doctor_id,omitempty"`
	PatientID     *int                   `json:"patient_id,omitempty"`
	NurseID       *int                   `json:"nurse_id,omitempty"`
	RequestID     *int                   `json:"request_id,omitempty"`
	Metadata      map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt     time.Time              `json:"created_at"`
}
