package usecase

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Kind classifies usecase failures so callers can react without matching
// on message text.
type Kind int

const (
	KindUnexpected Kind = iota
	KindNotFound
	KindConflict
	KindInvalid
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindInvalid:
		return "invalid"
	default:
		return "unexpected"
	}
}

// Error is a domain failure whose message is safe to show to API clients.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// KindOf reports the kind of err; anything that is not an *Error is unexpected.
func KindOf(err error) Kind {
	var ucErr *Error
	if errors.As(err, &ucErr) {
		return ucErr.Kind
	}
	return KindUnexpected
}

var (
	ErrPatientNotFound        = newError(KindNotFound, "patient not found with the provided details")
	ErrNurseForDoctorNotFound = newError(KindNotFound, "nurse for this doctor not found")
	ErrAppointmentNotFound    = newError(KindNotFound, "appointment not found")
	ErrRequestTypeNotFound    = newError(KindNotFound, "request type not found")
	ErrRequestNotFound        = newError(KindNotFound, "request not found")
	ErrNoTermsFound           = newError(KindNotFound, "no terms found")
	ErrDoctorNotFound         = newError(KindNotFound, "doctor not found")
	ErrSpecializationNotFound = newError(KindNotFound, "doctor specialization not found")
	ErrNurseNotFound          = newError(KindNotFound, "nurse not found")
	ErrTestNotFound           = newError(KindNotFound, "test not found")
	ErrTestTypeNotFound       = newError(KindNotFound, "test type not found")
	ErrMedicineNotFound       = newError(KindNotFound, "medicine not found")
	ErrPrescriptionNotFound   = newError(KindNotFound, "prescription not found")
	ErrMedicalRecordNotFound  = newError(KindNotFound, "medical record not found")
	ErrNotificationNotFound   = newError(KindNotFound, "notification not found")

	ErrRequestAlreadyExists = newError(KindConflict, "request already exists")
	ErrPersonalNumberExists = newError(KindConflict, "personal number already exists")
	ErrNameExists           = newError(KindConflict, "name already exists")
	ErrStillReferenced      = newError(KindConflict, "resource is still referenced by other records")

	ErrInvalidRequestState = newError(KindInvalid, "invalid request state")
	ErrInvalidTestState    = newError(KindInvalid, "invalid test state")
	ErrInvalidDateRange    = newError(KindInvalid, "date_to must not be before date_from")
	ErrInvalidDate         = newError(KindInvalid, "date must use the format YYYY-MM-DD")
)

// isDuplicateKeyError checks if the error is a unique violation, optionally
// restricted to a constraint whose name contains constraintName. Errors
// translated to gorm.ErrDuplicatedKey carry no constraint name and always
// match, so callers only use it right after a single-table write.
func isDuplicateKeyError(err error, constraintName string) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		return pgErr.Code == "23505" &&
			strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName))
	}
	return false
}

// isForeignKeyError checks if the error is a foreign key violation
func isForeignKeyError(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23503 = foreign_key_violation
		return pgErr.Code == "23503"
	}
	return false
}
