package models

import "time"

// Booking reserves a spot at an event for an email address. EventID is a
// non-owning reference; the event must exist when the booking is created
// or when the reference changes, but event deletion does not cascade here.
type Booking struct {
	BookingID string    `json:"bookingid" bson:"bookingid"`
	EventID   string    `json:"eventid" bson:"eventid"`
	Email     string    `json:"email" bson:"email"` // stored lowercase, trimmed
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updated_at"`
}
