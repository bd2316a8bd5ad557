package usecase

import (
	"context"
	"testing"

	"hospital-booking-api/internal/delivery/dto"
	"hospital-booking-api/internal/repository"
	"hospital-booking-api/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatientUsecase_Create(t *testing.T) {
	db := testutil.NewDB(t)
	uc := NewPatientUsecase(db, testutil.NewLogger(), repository.NewPatientRepository())
	ctx := context.Background()

	dob := "1990-05-17"
	sex := "F"
	created, err := uc.CreatePatient(ctx, &dto.CreatePatientRequest{
		Name:           "Jana",
		Surname:        "Novak",
		DateOfBirth:    &dob,
		Sex:            &sex,
		PersonalNumber: "0102030405",
	})
	require.NoError(t, err)
	require.NotNil(t, created.DateOfBirth)
	assert.Equal(t, "1990-05-17", *created.DateOfBirth)

	_, err = uc.CreatePatient(ctx, &dto.CreatePatientRequest{Name: "Other", Surname: "Person", PersonalNumber: "0102030405"})
	assert.ErrorIs(t, err, ErrPersonalNumberExists)

	bad := "17.05.1990"
	_, err = uc.CreatePatient(ctx, &dto.CreatePatientRequest{Name: "A", Surname: "B", DateOfBirth: &bad, PersonalNumber: "9999999999"})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestPatientUsecase_Update(t *testing.T) {
	db := testutil.NewDB(t)
	uc := NewPatientUsecase(db, testutil.NewLogger(), repository.NewPatientRepository())
	ctx := context.Background()

	jana, err := uc.CreatePatient(ctx, &dto.CreatePatientRequest{Name: "Jana", Surname: "Novak", PersonalNumber: "0102030405"})
	require.NoError(t, err)
	_, err = uc.CreatePatient(ctx, &dto.CreatePatientRequest{Name: "Ivo", Surname: "Maric", PersonalNumber: "1111111111"})
	require.NoError(t, err)

	updated, err := uc.UpdatePatient(ctx, jana.ID, &dto.UpdatePatientRequest{PhoneNumber: "+38511222333"})
	require.NoError(t, err)
	assert.Equal(t, "+38511222333", updated.PhoneNumber)
	assert.Equal(t, "Jana", updated.Name)

	_, err = uc.UpdatePatient(ctx, jana.ID, &dto.UpdatePatientRequest{PersonalNumber: "1111111111"})
	assert.ErrorIs(t, err, ErrPersonalNumberExists)

	_, err = uc.UpdatePatient(ctx, 999, &dto.UpdatePatientRequest{Name: "Ghost"})
	assert.ErrorIs(t, err, ErrPatientNotFound)
}
