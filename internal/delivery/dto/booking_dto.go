package dto

// Request DTOs

type BookTermRequest struct {
	AppointmentID  int    `json:"appointment_id" validate:"required,gt=0"`
	DoctorID       int    `json:"doctor_id" validate:"required,gt=0"`
	Name           string `json:"name" validate:"required,max=100"`
	Surname        string `json:"surname" validate:"required,max=100"`
	PhoneNumber    string `json:"phone_number" validate:"required,max=20"`
	PersonalNumber string `json:"personal_number" validate:"required,len=10"`
	Description    string `json:"description" validate:"required"`
	RequestTypeID  int    `json:"request_type_id" validate:"required,gt=0"`
}

type PatientHistoryRequest struct {
	PersonalNumber string `json:"personal_number" validate:"required,len=10"`
	Name           string `json:"name" validate:"required"`
	Surname        string `json:"surname" validate:"required"`
}

// Response DTOs

// BookTermResponse is a bare acknowledgment; the created request is not echoed.
type BookTermResponse struct {
	Message string `json:"message"`
}

type PatientHistoryResponse struct {
	Requests     []RequestResponse     `json:"requests"`
	Appointments []AppointmentResponse `json:"appointments"`
	Tests        []TestResponse        `json:"tests"`
}

// TermResponse is one calendar slot together with the requests booked on it.
type TermResponse struct {
	AppointmentResponse
	Requests []RequestResponse `json:"requests"`
}
