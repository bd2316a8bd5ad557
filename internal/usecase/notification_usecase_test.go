package usecase

import (
	"context"
	"testing"

	"hospital-booking-api/internal/domain/entity"
	"hospital-booking-api/internal/repository"
	"hospital-booking-api/internal/testutil"
	"hospital-booking-api/pkg/pagination"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationUsecase(t *testing.T) {
	db := testutil.NewDB(t)
	c := seedClinic(t, db)
	_, err := newTestTermBookingUsecase(db, &fakeTermCache{}, &fakePublisher{}).BookTerm(context.Background(), bookingRequest(c, "1234567890"))
	require.NoError(t, err)

	uc := NewNotificationUsecase(db, testutil.NewLogger(), repository.NewNotificationRepository())
	ctx := context.Background()

	list, total, err := uc.GetNotifications(ctx, entity.NotificationFilter{DoctorID: c.doctor.ID}, pagination.New(1, 10))
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, list, 1)
	assert.False(t, list[0].Opened)

	opened, err := uc.MarkAsOpened(ctx, list[0].ID)
	require.NoError(t, err)
	assert.True(t, opened.Opened)

	_, total, err = uc.GetNotifications(ctx, entity.NotificationFilter{DoctorID: c.doctor.ID, UnreadOnly: true}, pagination.New(1, 10))
	require.NoError(t, err)
	assert.Zero(t, total)

	_, err = uc.MarkAsOpened(ctx, 999)
	assert.ErrorIs(t, err, ErrNotificationNotFound)
}
