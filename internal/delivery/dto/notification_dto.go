package dto

import "time"

type NotificationResponse struct {
	ID        int       `json:"id"`
	Message   string    `json:"message"`
	Opened    bool      `json:"opened"`
	CreatedAt time.Time `json:"created_at"`
	PatientID int       `json:"patient_id"`
	DoctorID  *int      `json:"doctor_id,omitempty"`
}
