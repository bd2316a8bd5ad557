package usecase

import (
	"context"

	"hospital-booking-api/internal/converter"
	"hospital-booking-api/internal/delivery/dto"
	"hospital-booking-api/internal/domain/entity"
	"hospital-booking-api/internal/domain/repository"
	"hospital-booking-api/pkg/pagination"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type NotificationUsecase interface {
	GetNotifications(ctx context.Context, filter entity.NotificationFilter, params pagination.Params) ([]dto.NotificationResponse, int64, error)
	MarkAsOpened(ctx context.Context, id int) (*dto.NotificationResponse, error)
}

type notificationUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	notificationRepo repository.NotificationRepository
}

func NewNotificationUsecase(db *gorm.DB, log *logrus.Logger, notificationRepo repository.NotificationRepository) NotificationUsecase {
	return &notificationUsecase{
		db:               db,
		log:              log,
		notificationRepo: notificationRepo,
	}
}

func (u *notificationUsecase) GetNotifications(ctx context.Context, filter entity.NotificationFilter, params pagination.Params) ([]dto.NotificationResponse, int64, error) {
	notifications, total, err := u.notificationRepo.FindByFilter(u.db.WithContext(ctx), filter, params.Limit, params.Offset())
	if err != nil {
		u.log.Warnf("Failed find notifications: %+v", err)
		return nil, 0, err
	}

	return converter.NotificationsToResponses(notifications), total, nil
}

// MarkAsOpened is idempotent; opening an opened notification succeeds.
func (u *notificationUsecase) MarkAsOpened(ctx context.Context, id int) (*dto.NotificationResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	notification, err := u.notificationRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed find notification: %+v", err)
		return nil, err
	}
	if notification == nil {
		return nil, ErrNotificationNotFound
	}

	if !notification.Opened {
		if _, err := u.notificationRepo.MarkOpened(tx, id); err != nil {
			u.log.Warnf("Failed mark notification opened: %+v", err)
			return nil, err
		}
		notification.Opened = true
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.NotificationToResponse(notification), nil
}
