package repository

import (
	"hospital-booking-api/internal/domain/entity"
	domainRepo "hospital-booking-api/internal/domain/repository"
)

type doctorRepository struct {
	crudRepository[entity.Doctor]
}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{
		crudRepository: crudRepository[entity.Doctor]{preloads: []string{"Specialization"}},
	}
}

type doctorSpecializationRepository struct {
	catalogRepository[entity.DoctorSpecialization]
}

func NewDoctorSpecializationRepository() domainRepo.DoctorSpecializationRepository {
	return &doctorSpecializationRepository{}
}
