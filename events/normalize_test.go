package events

import (
	"testing"

	"dev-events/models"
	"dev-events/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEvent() models.Event {
	return models.Event{
		Title:       "Tech Conf 2024!! — Keynote",
		Description: "The annual keynote.",
		Overview:    "A day of talks.",
		Venue:       "Main Hall",
		Location:    "Berlin",
		Date:        "2024-3-5",
		Time:        "9:30",
		Mode:        "ONLINE",
		Audience:    "Developers",
		Agenda:      []string{"Opening", "Keynote"},
		Organizer:   "DevEvents",
		Tags:        []string{"go", "conference"},
	}
}

func TestNormalizeEventCanonicalizes(t *testing.T) {
	event := validEvent()
	require.NoError(t, NormalizeEvent(&event, AllFields))

	assert.Equal(t, "tech-conf-2024-keynote", event.Slug)
	assert.Equal(t, "2024-03-05", event.Date)
	assert.Equal(t, "09:30", event.Time)
	assert.Equal(t, "online", event.Mode)
}

func TestNormalizeEventPartialUpdate(t *testing.T) {
	event := validEvent()
	require.NoError(t, NormalizeEvent(&event, AllFields))

	// changing only the venue must not touch slug, date or time
	event.Venue = "Side Stage"
	event.Date = "garbage" // stored canonical value is not re-parsed
	require.NoError(t, NormalizeEvent(&event, []string{"venue"}))
	assert.Equal(t, "tech-conf-2024-keynote", event.Slug)

	// changing the title re-derives the slug
	event.Title = "Renamed Conf"
	require.NoError(t, NormalizeEvent(&event, []string{"title"}))
	assert.Equal(t, "renamed-conf", event.Slug)
}

func TestNormalizeEventRejectsBadFields(t *testing.T) {
	event := validEvent()
	event.Date = "not-a-date"
	assert.ErrorIs(t, NormalizeEvent(&event, AllFields), validation.ErrInvalidDate)

	event = validEvent()
	event.Time = "23:60"
	assert.ErrorIs(t, NormalizeEvent(&event, AllFields), validation.ErrInvalidTime)

	event = validEvent()
	event.Mode = "virtual"
	assert.ErrorIs(t, NormalizeEvent(&event, AllFields), validation.ErrInvalidMode)

	event = validEvent()
	event.Tags = nil
	assert.ErrorIs(t, NormalizeEvent(&event, AllFields), validation.ErrEmptyCollection)

	event = validEvent()
	event.Agenda = []string{}
	assert.ErrorIs(t, NormalizeEvent(&event, AllFields), validation.ErrEmptyCollection)

	event = validEvent()
	event.Organizer = "   "
	assert.ErrorIs(t, NormalizeEvent(&event, AllFields), validation.ErrMissingRequiredField)
}

func TestNormalizeEventRejectsEmptySlug(t *testing.T) {
	event := validEvent()
	event.Title = "!!!???"
	err := NormalizeEvent(&event, AllFields)
	assert.ErrorIs(t, err, validation.ErrMissingRequiredField)
}
