package repository

import (
	"hospital-booking-api/internal/domain/entity"
)

type MedicineRepository interface {
	CatalogRepository[entity.Medicine]
}

type PrescriptionRepository interface {
	CrudRepository[entity.Prescription]
}
