package repository

import (
	"hospital-booking-api/internal/domain/entity"

	"gorm.io/gorm"
)

type PatientRepository interface {
	CrudRepository[entity.Patient]
	FindByPersonalNumber(db *gorm.DB, personalNumber string) (*entity.Patient, error)
	FindByIdentity(db *gorm.DB, personalNumber, name, surname string) (*entity.Patient, error)
}
