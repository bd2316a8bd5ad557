package entity

import "time"

type Medicine struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"type:varchar(100);not null;uniqueIndex" json:"name"`
	Description string `gorm:"type:text" json:"description"`
}

func (Medicine) TableName() string {
	return "medicines"
}

type Prescription struct {
	ID         int        `gorm:"primaryKey;autoIncrement" json:"id"`
	Dosage     string     `gorm:"type:varchar(100);not null" json:"dosage"`
	DateFrom   time.Time  `gorm:"not null" json:"date_from"`
	DateTo     *time.Time `json:"date_to,omitempty"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`
	DoctorID   int        `gorm:"not null;index" json:"doctor_id"`
	MedicineID int        `gorm:"not null;index" json:"medicine_id"`

	// Relationships
	Doctor   *Doctor   `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Medicine *Medicine `gorm:"foreignKey:MedicineID" json:"medicine,omitempty"`
}

func (Prescription) TableName() string {
	return "prescriptions"
}
