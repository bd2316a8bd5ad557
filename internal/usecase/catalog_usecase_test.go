package usecase

import (
	"context"
	"testing"

	"hospital-booking-api/internal/delivery/dto"
	"hospital-booking-api/internal/repository"
	"hospital-booking-api/internal/testutil"
	"hospital-booking-api/pkg/pagination"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestTypeUsecase_CRUD(t *testing.T) {
	db := testutil.NewDB(t)
	uc := NewRequestTypeUsecase(db, testutil.NewLogger(), repository.NewRequestTypeRepository())
	ctx := context.Background()

	created, err := uc.CreateRequestType(ctx, &dto.RequestTypeRequest{Name: "Consultation", Length: 30})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	_, err = uc.CreateRequestType(ctx, &dto.RequestTypeRequest{Name: "Consultation"})
	assert.ErrorIs(t, err, ErrNameExists)

	updated, err := uc.UpdateRequestType(ctx, created.ID, &dto.RequestTypeRequest{Name: "Consultation", Length: 45})
	require.NoError(t, err)
	assert.Equal(t, 45, updated.Length)

	got, err := uc.GetRequestType(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 45, got.Length)

	list, total, err := uc.GetAllRequestTypes(ctx, pagination.New(1, 10))
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Len(t, list, 1)

	require.NoError(t, uc.DeleteRequestType(ctx, created.ID))
	_, err = uc.GetRequestType(ctx, created.ID)
	assert.ErrorIs(t, err, ErrRequestTypeNotFound)
	assert.ErrorIs(t, uc.DeleteRequestType(ctx, created.ID), ErrRequestTypeNotFound)
}

func TestSpecializationUsecase_RenameToTakenName(t *testing.T) {
	db := testutil.NewDB(t)
	uc := NewSpecializationUsecase(db, testutil.NewLogger(), repository.NewDoctorSpecializationRepository())
	ctx := context.Background()

	_, err := uc.CreateSpecialization(ctx, &dto.DoctorSpecializationRequest{Name: "Cardiology"})
	require.NoError(t, err)
	neurology, err := uc.CreateSpecialization(ctx, &dto.DoctorSpecializationRequest{Name: "Neurology"})
	require.NoError(t, err)

	_, err = uc.UpdateSpecialization(ctx, neurology.ID, &dto.DoctorSpecializationRequest{Name: "Cardiology"})
	assert.ErrorIs(t, err, ErrNameExists)
	assert.Equal(t, KindConflict, KindOf(err))
}
