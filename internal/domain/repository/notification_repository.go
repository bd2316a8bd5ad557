package repository

import (
	"hospital-booking-api/internal/domain/entity"

	"gorm.io/gorm"
)

type NotificationRepository interface {
	Create(db *gorm.DB, notification *entity.Notification) error
	FindByID(db *gorm.DB, id int) (*entity.Notification, error)
	FindByFilter(db *gorm.DB, filter entity.NotificationFilter, limit, offset int) ([]entity.Notification, int64, error)
	MarkOpened(db *gorm.DB, id int) (int64, error)
}
