package entity

import (
	"time"

	"gorm.io/datatypes"
)

// AppointmentHistory is an append-only journal of changes around an
// appointment and the requests attached to it.
type AppointmentHistory struct {
	ID            int64             `gorm:"primaryKey;autoIncrement" json:"id"`
	ChangeType    string            `gorm:"type:varchar(100);not null;index" json:"change_type"`
	Description   string            `gorm:"type:text" json:"description"`
	AppointmentID *int              `gorm:"index" json:"appointment_id,omitempty"`
	DoctorID      *int              `json:"doctor_id,omitempty"`
	PatientID     *int              `gorm:"index" json:"patient_id,omitempty"`
	NurseID       *int              `json:"nurse_id,omitempty"`
	RequestID     *int              `gorm:"index" json:"request_id,omitempty"`
	Metadata      datatypes.JSONMap `json:"metadata,omitempty"`
	CreatedAt     time.Time         `gorm:"autoCreateTime;index" json:"created_at"`
}

func (AppointmentHistory) TableName() string {
	return "appointment_histories"
}

// Change types
const (
	ChangeRequestBooked       = "request.booked"
	ChangeRequestCreated      = "request.created"
	ChangeRequestStateChanged = "request.state_changed"
	ChangeRequestUpdated      = "request.updated"
	ChangeRequestDeleted      = "request.deleted"
	ChangeAppointmentCreated  = "appointment.created"
	ChangeAppointmentUpdated  = "appointment.updated"
	ChangeAppointmentDeleted  = "appointment.deleted"
)
