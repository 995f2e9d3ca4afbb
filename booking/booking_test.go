package booking

import (
	"context"
	"errors"
	"testing"

	"dev-events/models"
	"dev-events/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLookup is an in-memory EventLookup for tests.
type fakeLookup struct {
	events map[string]*models.Event
	err    error // if set, lookups fail with this error
}

func (f *fakeLookup) lookup(ctx context.Context, eventID string) (*models.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.events[eventID], nil
}

func TestValidateBooking(t *testing.T) {
	lookup := &fakeLookup{events: map[string]*models.Event{
		"ev-1": {EventID: "ev-1", Title: "Tech Conf"},
	}}

	booking := models.Booking{EventID: "ev-1", Email: "  Alice@Example.COM "}
	require.NoError(t, ValidateBooking(context.Background(), &booking, lookup.lookup))
	assert.Equal(t, "alice@example.com", booking.Email, "email is normalized in place")
}

func TestValidateBookingInvalidEmail(t *testing.T) {
	lookup := &fakeLookup{events: map[string]*models.Event{}}

	booking := models.Booking{EventID: "ev-1", Email: "not-an-email"}
	err := ValidateBooking(context.Background(), &booking, lookup.lookup)
	assert.ErrorIs(t, err, validation.ErrInvalidEmail)
}

func TestValidateBookingDanglingReference(t *testing.T) {
	// event was deleted after the id was handed out
	lookup := &fakeLookup{events: map[string]*models.Event{}}

	booking := models.Booking{EventID: "ev-gone", Email: "a@example.com"}
	err := ValidateBooking(context.Background(), &booking, lookup.lookup)
	require.ErrorIs(t, err, validation.ErrDanglingReference)
	assert.Contains(t, err.Error(), "ev-gone")
	assert.NotErrorIs(t, err, validation.ErrLookupFailed)
}

func TestValidateBookingLookupFailed(t *testing.T) {
	lookup := &fakeLookup{err: errors.New("connection refused")}

	booking := models.Booking{EventID: "ev-1", Email: "a@example.com"}
	err := ValidateBooking(context.Background(), &booking, lookup.lookup)
	require.ErrorIs(t, err, validation.ErrLookupFailed)
	assert.NotErrorIs(t, err, validation.ErrDanglingReference, "transient failure must not read as nonexistence")
}

func TestApplyBookingUpdateEmailOnlySkipsReferenceCheck(t *testing.T) {
	// the event was deleted after booking; fixing an email typo must work
	lookup := &fakeLookup{events: map[string]*models.Event{}}

	booking := models.Booking{BookingID: "bk-1", EventID: "ev-gone", Email: "old@example.com"}
	email := "  New@Example.COM "
	err := applyBookingUpdate(context.Background(), &booking, bookingUpdate{Email: &email}, lookup.lookup)
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", booking.Email)
	assert.Equal(t, "ev-gone", booking.EventID)
}

func TestApplyBookingUpdateUnchangedReferenceSkipsLookup(t *testing.T) {
	// resubmitting the same event id is not a reference change
	lookup := &fakeLookup{err: errors.New("connection refused")}

	booking := models.Booking{BookingID: "bk-1", EventID: "ev-1", Email: "a@example.com"}
	same := "ev-1"
	err := applyBookingUpdate(context.Background(), &booking, bookingUpdate{EventID: &same}, lookup.lookup)
	require.NoError(t, err)
	assert.Equal(t, "ev-1", booking.EventID)
}

func TestApplyBookingUpdateReferenceChangeRevalidates(t *testing.T) {
	lookup := &fakeLookup{events: map[string]*models.Event{
		"ev-2": {EventID: "ev-2", Title: "Other Conf"},
	}}

	booking := models.Booking{BookingID: "bk-1", EventID: "ev-1", Email: "a@example.com"}
	target := "ev-2"
	require.NoError(t, applyBookingUpdate(context.Background(), &booking, bookingUpdate{EventID: &target}, lookup.lookup))
	assert.Equal(t, "ev-2", booking.EventID)

	missing := "ev-404"
	err := applyBookingUpdate(context.Background(), &booking, bookingUpdate{EventID: &missing}, lookup.lookup)
	assert.ErrorIs(t, err, validation.ErrDanglingReference)
}

func TestApplyBookingUpdateInvalidEmail(t *testing.T) {
	lookup := &fakeLookup{events: map[string]*models.Event{}}

	booking := models.Booking{BookingID: "bk-1", EventID: "ev-1", Email: "a@example.com"}
	bad := "not-an-email"
	err := applyBookingUpdate(context.Background(), &booking, bookingUpdate{Email: &bad}, lookup.lookup)
	require.ErrorIs(t, err, validation.ErrInvalidEmail)
	assert.Equal(t, "a@example.com", booking.Email, "rejected value must not be applied")
}

func TestValidateBookingMissingEventID(t *testing.T) {
	lookup := &fakeLookup{events: map[string]*models.Event{}}

	booking := models.Booking{Email: "a@example.com"}
	err := ValidateBooking(context.Background(), &booking, lookup.lookup)
	assert.ErrorIs(t, err, validation.ErrMissingRequiredField)
}
