package repository

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// crudRepository implements domainRepo.CrudRepository for any entity with an
// integer "id" primary key. Associations are never written through; related
// rows are managed by their own repositories.
type crudRepository[T any] struct {
	preloads []string
}

func (r *crudRepository[T]) withPreloads(db *gorm.DB) *gorm.DB {
	for _, association := range r.preloads {
		db = db.Preload(association)
	}
	return db
}

func (r *crudRepository[T]) Create(db *gorm.DB, item *T) error {
	return db.Omit(clause.Associations).Create(item).Error
}

func (r *crudRepository[T]) FindByID(db *gorm.DB, id int) (*T, error) {
	var item T
	err := r.withPreloads(db).Where("id = ?", id).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *crudRepository[T]) FindAll(db *gorm.DB, limit, offset int) ([]T, int64, error) {
	var total int64
	if err := db.Model(new(T)).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []T
	err := r.withPreloads(db).Order("id ASC").Limit(limit).Offset(offset).Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *crudRepository[T]) Update(db *gorm.DB, item *T) error {
	return db.Omit(clause.Associations).Save(item).Error
}

func (r *crudRepository[T]) Delete(db *gorm.DB, id int) (int64, error) {
	result := db.Where("id = ?", id).Delete(new(T))
	return result.RowsAffected, result.Error
}

// catalogRepository adds lookup by the unique name column.
type catalogRepository[T any] struct {
	crudRepository[T]
}

func (r *catalogRepository[T]) FindByName(db *gorm.DB, name string) (*T, error) {
	var item T
	err := db.Where("name = ?", name).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}
