package repository

import (
	"errors"

	"hospital-booking-api/internal/domain/entity"
	domainRepo "hospital-booking-api/internal/domain/repository"

	"gorm.io/gorm"
)

type nurseRepository struct {
	crudRepository[entity.Nurse]
}

func NewNurseRepository() domainRepo.NurseRepository {
	return &nurseRepository{}
}

func (r *nurseRepository) FindFirstByDoctorID(db *gorm.DB, doctorID int) (*entity.Nurse, error) {
	var nurse entity.Nurse
	err := db.Where("doctor_id = ?", doctorID).Order("id ASC").First(&nurse).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &nurse, nil
}
