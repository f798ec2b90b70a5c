package dto

import (
	"time"

	"github.com/maydeploy/event-feedback-app/internal/domain"
	"github.com/maydeploy/event-feedback-app/internal/validation"
)

// CreateCollaborationRequest represents a public collaboration offer.
// Field names follow the browser client's camelCase payloads.
type CreateCollaborationRequest struct {
	ContactName         string   `json:"contactName"`
	Email               string   `json:"email"`
	Organization        *string  `json:"organization"`
	Offerings           []string `json:"offerings"`
	OtherOffering       *string  `json:"otherOffering"`
	BudgetRange         *string  `json:"budgetRange"`
	VenueCapacity       *int     `json:"venueCapacity"`
	Location            *string  `json:"location"`
	PreferredEventTypes []string `json:"preferredEventTypes"`
	Availability        *string  `json:"availability"`
	CollaborationType   string   `json:"collaborationType"`
	AdditionalDetails   *string  `json:"additionalDetails"`
	EmailOptin          *bool    `json:"emailOptin"`
}

// Validate returns every validation error in the payload
func (r *CreateCollaborationRequest) Validate() []string {
	return validation.ValidateCollaboration(validation.CollaborationInput{
		ContactName:       r.ContactName,
		Email:             r.Email,
		Offerings:         r.Offerings,
		CollaborationType: r.CollaborationType,
	})
}

// UpdateCollaborationRequest represents the admin status/notes update
type UpdateCollaborationRequest struct {
	Status string  `json:"status"`
	Notes  *string `json:"notes"`
}

// CollaborationResponse represents a collaboration offer in admin responses
type CollaborationResponse struct {
	ID                  string   `json:"id"`
	ContactName         string   `json:"contact_name"`
	Email               string   `json:"email"`
	Organization        *string  `json:"organization,omitempty"`
	Offerings           []string `json:"offerings"`
	OtherOffering       *string  `json:"other_offering,omitempty"`
	BudgetRange         *string  `json:"budget_range,omitempty"`
	VenueCapacity       *int     `json:"venue_capacity,omitempty"`
	Location            *string  `json:"location,omitempty"`
	PreferredEventTypes []string `json:"preferred_event_types"`
	Availability        *string  `json:"availability,omitempty"`
	CollaborationType   string   `json:"collaboration_type"`
	AdditionalDetails   *string  `json:"additional_details,omitempty"`
	EmailOptin          bool     `json:"email_optin"`
	Status              string   `json:"status"`
	AdminNotes          *string  `json:"admin_notes,omitempty"`
	CreatedAt           string   `json:"created_at"`
}

// ToCollaborationResponse converts a domain offer to its API shape
func ToCollaborationResponse(c *domain.CollaborationOffer) *CollaborationResponse {
	return &CollaborationResponse{
		ID:                  c.ID,
		ContactName:         c.ContactName,
		Email:               c.Email,
		Organization:        c.Organization,
		Offerings:           c.Offerings,
		OtherOffering:       c.OtherOffering,
		BudgetRange:         c.BudgetRange,
		VenueCapacity:       c.VenueCapacity,
		Location:            c.Location,
		PreferredEventTypes: c.PreferredEventTypes,
		Availability:        c.Availability,
		CollaborationType:   c.CollaborationType,
		AdditionalDetails:   c.AdditionalDetails,
		EmailOptin:          c.EmailOptin,
		Status:              c.Status,
		AdminNotes:          c.AdminNotes,
		CreatedAt:           c.CreatedAt.Format(time.RFC3339),
	}
}
