package entity

import "time"

type MedicalRecord struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Type      string    `gorm:"type:varchar(100);not null" json:"type"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	PatientID int       `gorm:"not null;index" json:"patient_id"`
	DoctorID  int       `gorm:"not null;index" json:"doctor_id"`

	// Relationships
	Patient *Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  *Doctor  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (MedicalRecord) TableName() string {
	return "medical_records"
}
