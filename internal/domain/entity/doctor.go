package entity

// DoctorSpecialization is a catalog entry such as "Cardiology".
type DoctorSpecialization struct {
	ID   int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"type:varchar(100);not null;uniqueIndex" json:"name"`
}

func (DoctorSpecialization) TableName() string {
	return "doctor_specializations"
}

type Doctor struct {
	ID               int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name             string `gorm:"type:varchar(100);not null" json:"name"`
	Surname          string `gorm:"type:varchar(100);not null" json:"surname"`
	Email            string `gorm:"type:varchar(255)" json:"email"`
	PhoneNumber      string `gorm:"type:varchar(20)" json:"phone_number"`
	SpecializationID *int   `gorm:"index" json:"specialization_id,omitempty"`

	// Relationships
	Specialization *DoctorSpecialization `gorm:"foreignKey:SpecializationID" json:"specialization,omitempty"`
	Nurses         []Nurse               `gorm:"foreignKey:DoctorID" json:"nurses,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}
