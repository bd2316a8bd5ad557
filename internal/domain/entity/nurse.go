package entity

// Nurse assists a single doctor. Booking resolves the nurse through DoctorID.
type Nurse struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"type:varchar(100);not null" json:"name"`
	Surname     string `gorm:"type:varchar(100);not null" json:"surname"`
	Email       string `gorm:"type:varchar(255)" json:"email"`
	PhoneNumber string `gorm:"type:varchar(20)" json:"phone_number"`
	DoctorID    *int   `gorm:"index" json:"doctor_id,omitempty"`

	// Relationships
	Doctor *Doctor `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Nurse) TableName() string {
	return "nurses"
}
