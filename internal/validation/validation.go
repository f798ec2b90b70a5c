// Package validation holds the pure input checks applied before anything
// reaches persistence. Validators accumulate every error they find rather
// than stopping at the first, and sanitization HTML-escapes free text as a
// defense-in-depth measure (the rendering layer must still escape on output).
package validation

import (
	"html"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Text bounds are counted in characters, not bytes.
const (
	// MinTextLength is the minimum trimmed length of submission text
	MinTextLength = 10
	// MaxTextLength is the maximum raw length of submission text
	MaxTextLength = 500
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// SanitizeText trims and HTML-escapes free text before storage
func SanitizeText(text string) string {
	if text == "" {
		return ""
	}
	return html.EscapeString(strings.TrimSpace(text))
}

// ValidEmail reports whether email has a standard address shape.
// An empty value is valid: every email field in the system is optional
// unless the caller checks presence separately.
func ValidEmail(email string) bool {
	if email == "" {
		return true
	}
	return emailRegex.MatchString(email)
}

// ValidDate reports whether s parses as a YYYY-MM-DD calendar date
func ValidDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// oneOf reports membership in a fixed allowed set
func oneOf(value string, allowed []string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}

// SubmissionInput carries the fields checked before creating a submission
type SubmissionInput struct {
	Type           string
	Text           string
	Tags           []string
	RelatedEventID string
	SubmitterEmail string
}

// ValidateSubmission returns every validation error for a submission payload
func ValidateSubmission(in SubmissionInput) []string {
	var errs []string

	if !oneOf(in.Type, []string{"feedback", "idea"}) {
		errs = append(errs, "Invalid submission type")
	}

	if utf8.RuneCountInString(strings.TrimSpace(in.Text)) < MinTextLength {
		errs = append(errs, "Text must be at least 10 characters")
	}
	if utf8.RuneCountInString(in.Text) > MaxTextLength {
		errs = append(errs, "Text must not exceed 500 characters")
	}

	// The column is typed uuid, so a malformed id must fail here rather
	// than as a storage error
	if in.RelatedEventID != "" && uuid.Validate(in.RelatedEventID) != nil {
		errs = append(errs, "Invalid related event ID")
	}

	if in.SubmitterEmail != "" && !ValidEmail(in.SubmitterEmail) {
		errs = append(errs, "Invalid email address")
	}

	return errs
}

// CollaborationInput carries the fields checked before creating an offer
type CollaborationInput struct {
	ContactName       string
	Email             string
	Offerings         []string
	CollaborationType string
}

// ValidateCollaboration returns every validation error for a collaboration payload
func ValidateCollaboration(in CollaborationInput) []string {
	var errs []string

	if strings.TrimSpace(in.ContactName) == "" {
		errs = append(errs, "Contact name is required")
	}

	if in.Email == "" || !ValidEmail(in.Email) {
		errs = append(errs, "Valid email is required")
	}

	if len(in.Offerings) == 0 {
		errs = append(errs, "At least one offering must be selected")
	}

	if in.CollaborationType != "" && !oneOf(in.CollaborationType, []string{"one-time", "ongoing"}) {
		errs = append(errs, "Invalid collaboration type")
	}

	return errs
}

// EventInput carries the fields checked before creating or updating an event
type EventInput struct {
	Title       string
	Date        string
	EventType   string
	Description string
}

// ValidateEvent returns every validation error for an event payload
func ValidateEvent(in EventInput) []string {
	var errs []string

	if strings.TrimSpace(in.Title) == "" {
		errs = append(errs, "Title is required")
	}

	if in.Date == "" || !ValidDate(in.Date) {
		errs = append(errs, "Valid date is required")
	}

	if strings.TrimSpace(in.EventType) == "" {
		errs = append(errs, "Event type is required")
	}

	if utf8.RuneCountInString(in.Description) > MaxTextLength {
		errs = append(errs, "Description must not exceed 500 characters")
	}

	return errs
}

// ValidVoteType reports whether v names a vote direction. The empty string
// is handled by callers as the explicit "no vote" case.
func ValidVoteType(v string) bool {
	return oneOf(v, []string{"upvote", "downvote"})
}
