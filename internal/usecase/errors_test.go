package usecase

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(ErrNurseForDoctorNotFound))
	assert.Equal(t, KindConflict, KindOf(ErrRequestAlreadyExists))
	assert.Equal(t, KindInvalid, KindOf(ErrInvalidRequestState))
	assert.Equal(t, KindConflict, KindOf(fmt.Errorf("book term: %w", ErrRequestAlreadyExists)))
	assert.Equal(t, KindUnexpected, KindOf(errors.New("connection reset")))
	assert.Equal(t, KindUnexpected, KindOf(nil))
}

func TestErrorsAreDistinct(t *testing.T) {
	assert.True(t, errors.Is(ErrAppointmentNotFound, ErrAppointmentNotFound))
	assert.False(t, errors.Is(ErrAppointmentNotFound, ErrRequestTypeNotFound))
}

func TestIsDuplicateKeyError(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "idx_requests_patient_appointment_doctor"}

	assert.True(t, isDuplicateKeyError(pgErr, "patient_appointment_doctor"))
	assert.True(t, isDuplicateKeyError(fmt.Errorf("insert: %w", pgErr), ""))
	assert.False(t, isDuplicateKeyError(pgErr, "personal_number"))
	assert.True(t, isDuplicateKeyError(gorm.ErrDuplicatedKey, "personal_number"))
	assert.False(t, isDuplicateKeyError(&pgconn.PgError{Code: "23503"}, ""))
	assert.False(t, isDuplicateKeyError(errors.New("boom"), ""))
}

func TestIsForeignKeyError(t *testing.T) {
	assert.True(t, isForeignKeyError(&pgconn.PgError{Code: "23503"}))
	assert.True(t, isForeignKeyError(gorm.ErrForeignKeyViolated))
	assert.False(t, isForeignKeyError(&pgconn.PgError{Code: "23505"}))
}
