package domain

import "time"

// CollaborationOffer represents a public offer to collaborate on events.
// Offers are created by visitors and managed (status, notes) by the admin;
// the system never deletes them.
type CollaborationOffer struct {
	ID                  string    `json:"id"`
	ContactName         string    `json:"contact_name"`
	Email               string    `json:"email"`
	Organization        *string   `json:"organization,omitempty"`
	Offerings           []string  `json:"offerings"`
	OtherOffering       *string   `json:"other_offering,omitempty"`
	BudgetRange         *string   `json:"budget_range,omitempty"`
	VenueCapacity       *int      `json:"venue_capacity,omitempty"`
	Location            *string   `json:"location,omitempty"`
	PreferredEventTypes []string  `json:"preferred_event_types"`
	Availability        *string   `json:"availability,omitempty"`
	CollaborationType   string    `json:"collaboration_type"` // one-time, ongoing
	AdditionalDetails   *string   `json:"additional_details,omitempty"`
	EmailOptin          bool      `json:"email_optin"`
	Status              string    `json:"status"`
	AdminNotes          *string   `json:"admin_notes,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
}

// Collaboration type constants
const (
	CollaborationOneTime = "one-time"
	CollaborationOngoing = "ongoing"
)

// Collaboration status constants
const (
	CollabStatusNew          = "new"
	CollabStatusContacted    = "contacted"
	CollabStatusInDiscussion = "in_discussion"
	CollabStatusConfirmed    = "confirmed"
	CollabStatusPassed       = "passed"
)

// CollabStatuses enumerates every valid collaboration status
var CollabStatuses = []string{
	CollabStatusNew,
	CollabStatusContacted,
	CollabStatusInDiscussion,
	CollabStatusConfirmed,
	CollabStatusPassed,
}

// IsCollabStatus reports whether s is a valid collaboration status
func IsCollabStatus(s string) bool {
	for _, v := range CollabStatuses {
		if v == s {
			return true
		}
	}
	return false
}
