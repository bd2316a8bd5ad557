package repository

import (
	"hospital-booking-api/internal/domain/entity"

	"gorm.io/gorm"
)

type RequestRepository interface {
	CrudRepository[entity.Request]
	FindByPatientAppointmentDoctor(db *gorm.DB, patientID, appointmentID, doctorID int) (*entity.Request, error)
	FindByPatientIDWithDetails(db *gorm.DB, patientID int) ([]entity.Request, error)
}

type RequestTypeRepository interface {
	CatalogRepository[entity.RequestType]
}
