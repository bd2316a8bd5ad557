package repository

import (
	"hospital-booking-api/internal/domain/entity"
	domainRepo "hospital-booking-api/internal/domain/repository"

	"gorm.io/gorm"
)

type testRepository struct {
	crudRepository[entity.Test]
}

func NewTestRepository() domainRepo.TestRepository {
	return &testRepository{
		crudRepository: crudRepository[entity.Test]{preloads: []string{"TestType"}},
	}
}

func (r *testRepository) FindByRequestID(db *gorm.DB, requestID int) ([]entity.Test, error) {
	var tests []entity.Test
	err := db.Preload("TestType").Where("request_id = ?", requestID).Order("test_date ASC, id ASC").Find(&tests).Error
	if err != nil {
		return nil, err
	}
	return tests, nil
}

type testTypeRepository struct {
	catalogRepository[entity.TestType]
}

func NewTestTypeRepository() domainRepo.TestTypeRepository {
	return &testTypeRepository{}
}
