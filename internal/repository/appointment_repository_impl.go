package repository

import (
	"hospital-booking-api/internal/domain/entity"
	domainRepo "hospital-booking-api/internal/domain/repository"

	"gorm.io/gorm"
)

type appointmentRepository struct {
	crudRepository[entity.Appointment]
}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

// FindAllWithRequests loads the whole calendar with each slot's requests and
// their request type.
func (r *appointmentRepository) FindAllWithRequests(db *gorm.DB) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.
		Preload("Requests", func(db *gorm.DB) *gorm.DB {
			return db.Order("requests.id ASC")
		}).
		Preload("Requests.RequestType").
		Order("date_from ASC, id ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

type appointmentHistoryRepository struct{}

func NewAppointmentHistoryRepository() domainRepo.AppointmentHistoryRepository {
	return &appointmentHistoryRepository{}
}

func (r *appointmentHistoryRepository) Create(db *gorm.DB, history *entity.AppointmentHistory) error {
	return db.Create(history).Error
}

func (r *appointmentHistoryRepository) FindByAppointmentID(db *gorm.DB, appointmentID int) ([]entity.AppointmentHistory, error) {
	var histories []entity.AppointmentHistory
	err := db.Where("appointment_id = ?", appointmentID).Order("created_at ASC, id ASC").Find(&histories).Error
	if err != nil {
		return nil, err
	}
	return histories, nil
}
