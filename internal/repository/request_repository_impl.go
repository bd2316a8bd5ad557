package repository

import (
	"errors"

	"hospital-booking-api/internal/domain/entity"
	domainRepo "hospital-booking-api/internal/domain/repository"

	"gorm.io/gorm"
)

type requestRepository struct {
	crudRepository[entity.Request]
}

func NewRequestRepository() domainRepo.RequestRepository {
	return &requestRepository{
		crudRepository: crudRepository[entity.Request]{preloads: []string{"RequestType"}},
	}
}

func (r *requestRepository) FindByPatientAppointmentDoctor(db *gorm.DB, patientID, appointmentID, doctorID int) (*entity.Request, error) {
	var request entity.Request
	err := db.
		Where("patient_id = ? AND appointment_id = ? AND doctor_id = ?", patientID, appointmentID, doctorID).
		First(&request).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &request, nil
}

// FindByPatientIDWithDetails eager loads each request's appointment and tests.
func (r *requestRepository) FindByPatientIDWithDetails(db *gorm.DB, patientID int) ([]entity.Request, error) {
	var requests []entity.Request
	err := db.
		Preload("Appointment").
		Preload("Tests", func(db *gorm.DB) *gorm.DB {
			return db.Order("tests.id ASC")
		}).
		Where("patient_id = ?", patientID).
		Order("id ASC").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

type requestTypeRepository struct {
	catalogRepository[entity.RequestType]
}

func NewRequestTypeRepository() domainRepo.RequestTypeRepository {
	return &requestTypeRepository{}
}
