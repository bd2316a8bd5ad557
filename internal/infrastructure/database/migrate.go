package database

import (
	"fmt"

	"hospital-booking-api/internal/domain/entity"

	"gorm.io/gorm"
)

// Models lists every table in dependency order.
func Models() []interface{} {
	return []interface{}{
		&entity.DoctorSpecialization{},
		&entity.Doctor{},
		&entity.Nurse{},
		&entity.Patient{},
		&entity.Appointment{},
		&entity.RequestType{},
		&entity.Request{},
		&entity.TestType{},
		&entity.Test{},
		&entity.Medicine{},
		&entity.Prescription{},
		&entity.MedicalRecord{},
		&entity.Notification{},
		&entity.AppointmentHistory{},
	}
}

// AutoMigrate creates missing tables, columns and indexes. It never drops.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
