package usecase

import (
	"context"
	"fmt"
	"time"

	"hospital-booking-api/internal/domain/entity"
	"hospital-booking-api/internal/domain/repository"
	"hospital-booking-api/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	dateLayout = "2006-01-02"

	// Timeout for side effects that run after a commit
	afterCommitTimeout = 5 * time.Second
)

// ensureExists returns notFound when the repository has no row with id.
func ensureExists[T any](db *gorm.DB, repo repository.CrudRepository[T], id int, notFound error) error {
	item, err := repo.FindByID(db, id)
	if err != nil {
		return err
	}
	if item == nil {
		return notFound
	}
	return nil
}

// parseDate parses an optional YYYY-MM-DD string.
func parseDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	parsed, err := time.Parse(dateLayout, *value)
	if err != nil {
		return nil, ErrInvalidDate
	}
	return &parsed, nil
}

// requestNotifier runs the side effects of a committed request change: the
// calendar cache is dropped and an event is published. The change is already
// durable, so failures here are logged and swallowed.
type requestNotifier struct {
	log       *logrus.Logger
	publisher service.EventPublisher
	termCache service.TermCache
}

func newRequestNotifier(log *logrus.Logger, publisher service.EventPublisher, termCache service.TermCache) *requestNotifier {
	return &requestNotifier{
		log:       log,
		publisher: publisher,
		termCache: termCache,
	}
}

// detach drops the caller's cancellation and bounds the side effects with a timeout.
func detach(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), afterCommitTimeout)
}

func (n *requestNotifier) invalidateTerms(ctx context.Context) {
	ctx, cancel := detach(ctx)
	defer cancel()
	n.termCache.Invalidate(ctx)
}

func (n *requestNotifier) afterCommit(ctx context.Context, eventType string, request *entity.Request) {
	ctx, cancel := detach(ctx)
	defer cancel()

	n.termCache.Invalidate(ctx)

	data := map[string]interface{}{
		"request_id":      request.ID,
		"state":           request.State,
		"patient_id":      request.PatientID,
		"doctor_id":       request.DoctorID,
		"nurse_id":        request.NurseID,
		"appointment_id":  request.AppointmentID,
		"request_type_id": request.RequestTypeID,
	}
	key := fmt.Sprintf("request-%d", request.ID)
	if err := n.publisher.Publish(ctx, eventType, key, data); err != nil {
		n.log.Warnf("Failed to publish %s for request %d (non-fatal): %+v", eventType, request.ID, err)
	}
}
