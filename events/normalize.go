package events

import (
	"fmt"
	"strings"

	"dev-events/models"
	"dev-events/validation"
)

// AllFields marks every field as changed; used when normalizing a freshly
// submitted event.
var AllFields = []string{
	"title", "description", "overview", "venue", "location",
	"date", "time", "mode", "audience", "agenda", "organizer", "tags",
}

// NormalizeEvent rewrites the fields named in changed into their canonical
// stored form and validates them: the slug is re-derived from the title,
// the date becomes YYYY-MM-DD, the time becomes zero-padded HH:MM and the
// mode is lowercased. Fields not listed are left untouched, so a partial
// update only pays for what it changes. Runs before the slug uniqueness
// check at the store; performs no I/O itself.
func NormalizeEvent(event *models.Event, changed []string) error {
	ch := make(map[string]bool, len(changed))
	for _, f := range changed {
		ch[strings.ToLower(f)] = true
	}

	if ch["title"] {
		event.Title = strings.TrimSpace(event.Title)
		if event.Title == "" {
			return fmt.Errorf("%w: title", validation.ErrMissingRequiredField)
		}
		slug := validation.GenerateSlug(event.Title)
		if slug == "" {
			// punctuation-only titles would produce an empty unique key
			return fmt.Errorf("%w: title must contain at least one letter or digit", validation.ErrMissingRequiredField)
		}
		event.Slug = slug
	}

	if ch["date"] {
		date, err := validation.NormalizeDate(event.Date)
		if err != nil {
			return err
		}
		event.Date = date
	}

	if ch["time"] {
		t, err := validation.NormalizeTime(event.Time)
		if err != nil {
			return err
		}
		event.Time = t
	}

	if ch["mode"] {
		mode, err := validation.NormalizeMode(event.Mode)
		if err != nil {
			return err
		}
		event.Mode = mode
	}

	required := []struct {
		name  string
		value *string
	}{
		{"description", &event.Description},
		{"overview", &event.Overview},
		{"venue", &event.Venue},
		{"location", &event.Location},
		{"audience", &event.Audience},
		{"organizer", &event.Organizer},
	}
	for _, f := range required {
		if !ch[f.name] {
			continue
		}
		*f.value = strings.TrimSpace(*f.value)
		if *f.value == "" {
			return fmt.Errorf("%w: %s", validation.ErrMissingRequiredField, f.name)
		}
	}

	if ch["agenda"] && len(event.Agenda) == 0 {
		return fmt.Errorf("%w: agenda", validation.ErrEmptyCollection)
	}
	if ch["tags"] && len(event.Tags) == 0 {
		return fmt.Errorf("%w: tags", validation.ErrEmptyCollection)
	}

	return nil
}
