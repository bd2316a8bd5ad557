package repository

import (
	"errors"

	"hospital-booking-api/internal/domain/entity"
	domainRepo "hospital-booking-api/internal/domain/repository"

	"gorm.io/gorm"
)

type patientRepository struct {
	crudRepository[entity.Patient]
}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) FindByPersonalNumber(db *gorm.DB, personalNumber string) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.Where("personal_number = ?", personalNumber).Order("id ASC").First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

// FindByIdentity matches all three fields exactly (case-sensitive).
func (r *patientRepository) FindByIdentity(db *gorm.DB, personalNumber, name, surname string) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.
		Where("personal_number = ? AND name = ? AND surname = ?", personalNumber, name, surname).
		Order("id ASC").
		First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}
