package booking

import (
	"context"
	"fmt"

	"dev-events/db"
	"dev-events/models"
	"dev-events/validation"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// EventLookup resolves an event id. A (nil, nil) result means the event
// does not exist; a non-nil error means the lookup itself failed. The
// capability is injected so the validator stays free of storage imports
// and tests can run against a map.
type EventLookup func(ctx context.Context, eventID string) (*models.Event, error)

// ValidateBooking is the pre-commit guard for bookings: it normalizes the
// email in place and verifies the referenced event exists. A missing event
// is ErrDanglingReference; an unreachable store is ErrLookupFailed, kept
// separate so callers can retry the latter but not the former.
func ValidateBooking(ctx context.Context, b *models.Booking, lookup EventLookup) error {
	email, err := validation.NormalizeEmail(b.Email)
	if err != nil {
		return err
	}
	b.Email = email

	if b.EventID == "" {
		return fmt.Errorf("%w: eventid", validation.ErrMissingRequiredField)
	}

	event, err := lookup(ctx, b.EventID)
	if err != nil {
		return fmt.Errorf("%w: %v", validation.ErrLookupFailed, err)
	}
	if event == nil {
		return fmt.Errorf("%w: %s", validation.ErrDanglingReference, b.EventID)
	}

	return nil
}

// bookingUpdate is the wire shape of a partial booking update.
type bookingUpdate struct {
	EventID *string `json:"eventid"`
	Email   *string `json:"email"`
}

// applyBookingUpdate copies the submitted fields onto the booking and
// re-runs only the checks the change calls for: email shape when the
// email changes, the reference check only when the event reference
// actually changes. Event deletion does not cascade to bookings, so
// correcting the email on a booking whose event has since been deleted
// must still succeed.
func applyBookingUpdate(ctx context.Context, b *models.Booking, upd bookingUpdate, lookup EventLookup) error {
	if upd.Email != nil {
		email, err := validation.NormalizeEmail(*upd.Email)
		if err != nil {
			return err
		}
		b.Email = email
	}

	if upd.EventID != nil && *upd.EventID != b.EventID {
		b.EventID = *upd.EventID
		return ValidateBooking(ctx, b, lookup)
	}

	return nil
}

// LookupEventByID is the production EventLookup, backed by the events
// collection.
func LookupEventByID(ctx context.Context, eventID string) (*models.Event, error) {
	var event models.Event
	err := db.EventsCollection.FindOne(ctx, bson.M{"eventid": eventID}).Decode(&event)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}
