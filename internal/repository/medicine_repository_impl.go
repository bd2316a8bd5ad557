package repository

import (
	"hospital-booking-api/internal/domain/entity"
	domainRepo "hospital-booking-api/internal/domain/repository"
)

type medicineRepository struct {
	catalogRepository[entity.Medicine]
}

func NewMedicineRepository() domainRepo.MedicineRepository {
	return &medicineRepository{}
}

type prescriptionRepository struct {
	crudRepository[entity.Prescription]
}

func NewPrescriptionRepository() domainRepo.PrescriptionRepository {
	return &prescriptionRepository{
		crudRepository: crudRepository[entity.Prescription]{preloads: []string{"Medicine"}},
	}
}
