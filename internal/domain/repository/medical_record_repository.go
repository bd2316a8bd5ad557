package repository

import (
	"hospital-booking-api/internal/domain/entity"

	"gorm.io/gorm"
)

type MedicalRecordRepository interface {
	CrudRepository[entity.MedicalRecord]
	FindByPatientID(db *gorm.DB, patientID int) ([]entity.MedicalRecord, error)
}
