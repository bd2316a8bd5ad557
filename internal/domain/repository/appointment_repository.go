package repository

import (
	"hospital-booking-api/internal/domain/entity"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	CrudRepository[entity.Appointment]
	FindAllWithRequests(db *gorm.DB) ([]entity.Appointment, error)
}

type AppointmentHistoryRepository interface {
	Create(db *gorm.DB, history *entity.AppointmentHistory) error
	FindByAppointmentID(db *gorm.DB, appointmentID int) ([]entity.AppointmentHistory, error)
}
