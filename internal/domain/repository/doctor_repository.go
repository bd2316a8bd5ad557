package repository

import (
	"hospital-booking-api/internal/domain/entity"
)

type DoctorRepository interface {
	CrudRepository[entity.Doctor]
}

type DoctorSpecializationRepository interface {
	CatalogRepository[entity.DoctorSpecialization]
}
