package repository

import "gorm.io/gorm"

// CrudRepository is the store contract shared by every entity. The db
// argument is either the root handle or an open transaction; the caller owns
// the transaction boundary. Find methods return (nil, nil) when no row matches.
type CrudRepository[T any] interface {
	Create(db *gorm.DB, item *T) error
	FindByID(db *gorm.DB, id int) (*T, error)
	FindAll(db *gorm.DB, limit, offset int) ([]T, int64, error)
	Update(db *gorm.DB, item *T) error
	Delete(db *gorm.DB, id int) (int64, error)
}

// CatalogRepository is implemented by name-keyed catalog tables.
type CatalogRepository[T any] interface {
	CrudRepository[T]
	FindByName(db *gorm.DB, name string) (*T, error)
}
