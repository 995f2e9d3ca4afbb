package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Validation failures are sentinel errors so callers can branch with
// errors.Is. ErrLookupFailed is deliberately distinct from
// ErrDanglingReference: a caller may retry the former, never the latter.
var (
	ErrMissingRequiredField = errors.New("missing required field")
	ErrInvalidEmail         = errors.New("invalid email address")
	ErrInvalidDate          = errors.New("invalid date format")
	ErrInvalidTime          = errors.New("invalid time format, use HH:MM")
	ErrInvalidMode          = errors.New("invalid mode, must be online, offline or hybrid")
	ErrEmptyCollection      = errors.New("collection must contain at least one item")
	ErrDanglingReference    = errors.New("referenced event does not exist")
	ErrLookupFailed         = errors.New("failed to verify event reference")
)

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	timeRegex  = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):([0-5][0-9])$`)
)

// Accepted input layouts for event dates. Go has no general date parser,
// so the formats tolerated by the old stack are spelled out; unpadded
// layout digits also match their zero-padded forms.
var dateLayouts = []string{
	"2006-1-2",
	time.RFC3339,
	"2006/01/02",
	"Jan 2, 2006",
	"January 2, 2006",
	"02 Jan 2006",
	"2006-01-02 15:04:05",
}

// NormalizeEmail lowercases and trims an address, then checks it has
// exactly one "@" with non-blank parts and a dotted domain.
func NormalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailRegex.MatchString(email) {
		return "", fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}
	return email, nil
}

// NormalizeDate parses a date string and rewrites it to YYYY-MM-DD.
// Already-canonical dates are a fixed point.
func NormalizeDate(date string) (string, error) {
	date = strings.TrimSpace(date)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, date); err == nil {
			return t.Format("2006-01-02"), nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDate, date)
}

// NormalizeTime validates a 24-hour HH:MM string (1- or 2-digit hour,
// 2-digit minute) and zero-pads both parts.
func NormalizeTime(t string) (string, error) {
	t = strings.TrimSpace(t)
	m := timeRegex.FindStringSubmatch(t)
	if m == nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTime, t)
	}
	hour, minute := m[1], m[2]
	if len(hour) == 1 {
		hour = "0" + hour
	}
	return hour + ":" + minute, nil
}

// NormalizeMode lowercases the event mode and restricts it to the three
// supported values.
func NormalizeMode(mode string) (string, error) {
	mode = strings.ToLower(strings.TrimSpace(mode))
	switch mode {
	case "online", "offline", "hybrid":
		return mode, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMode, mode)
}
