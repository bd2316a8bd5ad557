package repository

import (
	"hospital-booking-api/internal/domain/entity"

	"gorm.io/gorm"
)

type NurseRepository interface {
	CrudRepository[entity.Nurse]
	// FindFirstByDoctorID returns the doctor's nurse with the lowest ID.
	FindFirstByDoctorID(db *gorm.DB, doctorID int) (*entity.Nurse, error)
}
