package entity

import "time"

// Appointment is a pre-existing calendar slot ("term"). Booking attaches
// requests to it and never creates new slots.
type Appointment struct {
	ID                    int       `gorm:"primaryKey;autoIncrement" json:"id"`
	EventType             string    `gorm:"type:varchar(100);not null" json:"event_type"`
	DateFrom              time.Time `gorm:"not null;index" json:"date_from"`
	DateTo                time.Time `gorm:"not null" json:"date_to"`
	RegistrationMandatory bool      `gorm:"not null" json:"registration_mandatory"`
	DoctorID              *int      `gorm:"index" json:"doctor_id,omitempty"`
	CreatedAt             time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Doctor   *Doctor   `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Requests []Request `gorm:"foreignKey:AppointmentID" json:"requests,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}
