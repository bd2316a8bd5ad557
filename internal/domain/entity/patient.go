package entity

import "time"

// Patient is identified by a 10 character personal number in addition to
// its surrogate key.
type Patient struct {
	ID             int        `gorm:"primaryKey;autoIncrement" json:"id"`
	Name           string     `gorm:"type:varchar(100);not null" json:"name"`
	Surname        string     `gorm:"type:varchar(100);not null" json:"surname"`
	DateOfBirth    *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`
	Sex            *string    `gorm:"type:char(1)" json:"sex,omitempty"`
	Address        *string    `gorm:"type:varchar(255)" json:"address,omitempty"`
	PhoneNumber    string     `gorm:"type:varchar(20)" json:"phone_number"`
	PersonalNumber string     `gorm:"type:char(10);not null;uniqueIndex" json:"personal_number"`

	// Relationships
	Requests []Request `gorm:"foreignKey:PatientID" json:"requests,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

// Sex constants
const (
	SexMale   = "M"
	SexFemale = "F"
)
