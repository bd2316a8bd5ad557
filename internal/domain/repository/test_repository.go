package repository

import (
	"hospital-booking-api/internal/domain/entity"

	"gorm.io/gorm"
)

type TestRepository interface {
	CrudRepository[entity.Test]
	FindByRequestID(db *gorm.DB, requestID int) ([]entity.Test, error)
}

type TestTypeRepository interface {
	CatalogRepository[entity.TestType]
}
