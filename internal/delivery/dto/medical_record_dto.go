package dto

import "time"

// Request DTOs

type CreateMedicalRecordRequest struct {
	Type      string `json:"type" validate:"required,max=100"`
	PatientID int    `json:"patient_id" validate:"required,gt=0"`
	DoctorID  int    `json:"doctor_id" validate:"required,gt=0"`
}

type UpdateMedicalRecordRequest struct {
	Type string `json:"type" validate:"required,max=100"`
}

// Response DTOs

type MedicalRecordResponse struct {
	ID        int       `json:"id"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
	PatientID int       `json:"patient_id"`
	DoctorID  int       `json:"doctor_id"`
}
