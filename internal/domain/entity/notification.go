package entity

import "time"

// Notification is addressed to a patient, optionally on behalf of a doctor.
type Notification struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Opened    bool      `gorm:"not null;default:false" json:"opened"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	PatientID int       `gorm:"not null;index" json:"patient_id"`
	DoctorID  *int      `gorm:"index" json:"doctor_id,omitempty"`
}

func (Notification) TableName() string {
	return "notifications"
}

// NotificationFilter narrows notification listings. Zero values match all.
type NotificationFilter struct {
	PatientID  int
	DoctorID   int
	UnreadOnly bool
}
