package dto

import "time"

// Request DTOs

type MedicineRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description"`
}

type CreatePrescriptionRequest struct {
	Dosage     string     `json:"dosage" validate:"required,max=100"`
	DateFrom   time.Time  `json:"date_from" validate:"required"`
	DateTo     *time.Time `json:"date_to"`
	DoctorID   int        `json:"doctor_id" validate:"required,gt=0"`
	MedicineID int        `json:"medicine_id" validate:"required,gt=0"`
}

type UpdatePrescriptionRequest struct {
	Dosage     string     `json:"dosage" validate:"omitempty,max=100"`
	DateFrom   *time.Time `json:"date_from"`
	DateTo     *time.Time `json:"date_to"`
	MedicineID *int       `json:"medicine_id" validate:"omitempty,gt=0"`
}

// Response DTOs

type MedicineResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type PrescriptionResponse struct {
	ID         int               `json:"id"`
	Dosage     string            `json:"dosage"`
	DateFrom   time.Time         `json:"date_from"`
	DateTo     *time.Time        `json:"date_to,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
	DoctorID   int               `json:"doctor_id"`
	MedicineID int               `json:"medicine_id"`
	Medicine   *MedicineResponse `json:"medicine,omitempty"`
}
