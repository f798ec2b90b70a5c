package dto

import (
	"time"

	"github.com/maydeploy/event-feedback-app/internal/domain"
	"github.com/maydeploy/event-feedback-app/internal/validation"
)

// CreateSubmissionRequest represents a public feedback or idea submission.
// Field names follow the browser client's camelCase payloads.
type CreateSubmissionRequest struct {
	Type           string   `json:"type"`
	Text           string   `json:"text"`
	Tags           []string `json:"tags"`
	RelatedEventID *string  `json:"relatedEventId"`
	SubmitterName  *string  `json:"submitterName"`
	SubmitterEmail *string  `json:"submitterEmail"`
	EmailOptin     bool     `json:"emailOptin"`
}

// Validate returns every validation error in the payload
func (r *CreateSubmissionRequest) Validate() []string {
	email := ""
	if r.SubmitterEmail != nil {
		email = *r.SubmitterEmail
	}
	relatedEventID := ""
	if r.RelatedEventID != nil {
		relatedEventID = *r.RelatedEventID
	}
	return validation.ValidateSubmission(validation.SubmissionInput{
		Type:           r.Type,
		Text:           r.Text,
		Tags:           r.Tags,
		RelatedEventID: relatedEventID,
		SubmitterEmail: email,
	})
}

// ListSubmissionsQuery represents query parameters for the public browse feed
type ListSubmissionsQuery struct {
	Sort   string `form:"sort"`
	Tag    string `form:"tag"`
	Status string `form:"status"`
}

// SetDefaults sets default values for query parameters
func (q *ListSubmissionsQuery) SetDefaults() {
	if q.Sort == "" {
		q.Sort = "recent"
	}
}

// VoteRequest carries a vote direction. A null voteType is an accepted no-op
// so the client can clear a vote without a dedicated endpoint.
type VoteRequest struct {
	VoteType *string `json:"voteType"`
}

// SubmissionResponse represents a submission in API responses
type SubmissionResponse struct {
	ID             string                  `json:"id"`
	Type           string                  `json:"type"`
	Text           string                  `json:"text"`
	Tags           []string                `json:"tags"`
	RelatedEventID *string                 `json:"related_event_id,omitempty"`
	SubmitterName  *string                 `json:"submitter_name,omitempty"`
	Status         string                  `json:"status"`
	Upvotes        int                     `json:"upvotes"`
	Downvotes      int                     `json:"downvotes"`
	CreatedAt      string                  `json:"created_at"`
	ApprovedAt     *string                 `json:"approved_at,omitempty"`
	Responses      []AdminResponseResponse `json:"responses,omitempty"`
}

// AdminResponseResponse represents an admin reply in API responses
type AdminResponseResponse struct {
	ID           string `json:"id"`
	SubmissionID string `json:"submission_id"`
	ResponseText string `json:"response_text"`
	AdminName    string `json:"admin_name"`
	CreatedAt    string `json:"created_at"`
}

// AdminSubmissionResponse represents a submission in admin responses; it
// includes the submitter contact fields the public shape withholds.
type AdminSubmissionResponse struct {
	SubmissionResponse
	SubmitterEmail *string `json:"submitter_email,omitempty"`
	EmailOptin     bool    `json:"email_optin"`
	AdminNotes     *string `json:"admin_notes,omitempty"`
}

// ToSubmissionResponse converts a domain submission to its public shape
func ToSubmissionResponse(s *domain.Submission) *SubmissionResponse {
	resp := &SubmissionResponse{
		ID:             s.ID,
		Type:           s.Type,
		Text:           s.Text,
		Tags:           s.Tags,
		RelatedEventID: s.RelatedEventID,
		SubmitterName:  s.SubmitterName,
		Status:         s.Status,
		Upvotes:        s.Upvotes,
		Downvotes:      s.Downvotes,
		CreatedAt:      s.CreatedAt.Format(time.RFC3339),
	}
	if s.ApprovedAt != nil {
		approved := s.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &approved
	}
	return resp
}

// ToAdminSubmissionResponse converts a domain submission to its admin shape
func ToAdminSubmissionResponse(s *domain.Submission) *AdminSubmissionResponse {
	return &AdminSubmissionResponse{
		SubmissionResponse: *ToSubmissionResponse(s),
		SubmitterEmail:     s.SubmitterEmail,
		EmailOptin:         s.EmailOptin,
		AdminNotes:         s.AdminNotes,
	}
}

// ToAdminResponseResponse converts a domain admin response to its API shape
func ToAdminResponseResponse(r *domain.AdminResponse) AdminResponseResponse {
	return AdminResponseResponse{
		ID:           r.ID,
		SubmissionID: r.SubmissionID,
		ResponseText: r.ResponseText,
		AdminName:    r.AdminName,
		CreatedAt:    r.CreatedAt.Format(time.RFC3339),
	}
}
