package models

import "time"

// Event is the persisted shape of a published event. Slug is the public,
// URL-safe identity derived from the title; EventID is the stable key
// bookings reference, so retitling an event never strands its bookings.
type Event struct {
	EventID     string    `json:"eventid" bson:"eventid"`
	Title       string    `json:"title" bson:"title"`
	Slug        string    `json:"slug" bson:"slug"`
	Description string    `json:"description" bson:"description"`
	Overview    string    `json:"overview" bson:"overview"`
	BannerImage string    `json:"bannerimage,omitempty" bson:"bannerimage,omitempty"`
	Venue       string    `json:"venue" bson:"venue"`
	Location    string    `json:"location" bson:"location"`
	Date        string    `json:"date" bson:"date"` // YYYY-MM-DD
	Time        string    `json:"time" bson:"time"` // HH:MM, 24-hour
	Mode        string    `json:"mode" bson:"mode"` // online | offline | hybrid
	Audience    string    `json:"audience" bson:"audience"`
	Agenda      []string  `json:"agenda" bson:"agenda"`
	Organizer   string    `json:"organizer" bson:"organizer"`
	Tags        []string  `json:"tags" bson:"tags"`
	CreatorID   string    `json:"creatorid,omitempty" bson:"creatorid,omitempty"`
	CreatedAt   time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updated_at"`
}
