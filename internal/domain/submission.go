package domain

import "time"

// Submission represents a feedback or idea entry created by a visitor
type Submission struct {
	ID             string     `json:"id"`
	Type           string     `json:"type"` // feedback, idea
	Text           string     `json:"text"`
	Tags           []string   `json:"tags"`
	RelatedEventID *string    `json:"related_event_id,omitempty"`
	SubmitterName  *string    `json:"submitter_name,omitempty"`
	SubmitterEmail *string    `json:"submitter_email,omitempty"`
	EmailOptin     bool       `json:"email_optin"`
	Status         string     `json:"status"`
	Upvotes        int        `json:"upvotes"`
	Downvotes      int        `json:"downvotes"`
	CreatedAt      time.Time  `json:"created_at"`
	ApprovedAt     *time.Time `json:"approved_at,omitempty"`
	AdminNotes     *string    `json:"admin_notes,omitempty"`
}

// Submission type constants
const (
	SubmissionTypeFeedback = "feedback"
	SubmissionTypeIdea     = "idea"
)

// Submission status constants. StatusRejected exists in the schema but is
// never written: rejection deletes the row instead of flagging it.
const (
	StatusPending    = "pending"
	StatusExploring  = "exploring"
	StatusLetsDoThis = "lets-do-this"
	StatusDone       = "done"
	StatusMaybeLater = "maybe-later"
	StatusRejected   = "rejected"
)

// PublishedStatuses are the statuses an admin may set after approval
var PublishedStatuses = []string{StatusExploring, StatusLetsDoThis, StatusDone, StatusMaybeLater}

// IsPublishedStatus reports whether s is a valid post-approval status
func IsPublishedStatus(s string) bool {
	for _, v := range PublishedStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// NetVotes returns upvotes minus downvotes
func (s *Submission) NetVotes() int {
	return s.Upvotes - s.Downvotes
}

// AdminResponse is an admin reply attached to a submission. Rows are owned
// by their parent submission and removed with it.
type AdminResponse struct {
	ID           string    `json:"id"`
	SubmissionID string    `json:"submission_id"`
	ResponseText string    `json:"response_text"`
	AdminName    string    `json:"admin_name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// DefaultAdminName is used when no admin name accompanies a response
const DefaultAdminName = "Event Organizer"

// Vote type constants
const (
	VoteUp   = "upvote"
	VoteDown = "downvote"
)
