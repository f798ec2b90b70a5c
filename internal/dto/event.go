package dto

import (
	"time"

	"github.com/maydeploy/event-feedback-app/internal/domain"
	"github.com/maydeploy/event-feedback-app/internal/validation"
)

// EventRequest represents the admin create/update payload for an event.
// Unlike the public forms these fields arrive in snake_case.
type EventRequest struct {
	Title       string               `json:"title"`
	Date        string               `json:"date"` // YYYY-MM-DD
	EventType   string               `json:"event_type"`
	TopicTags   []string             `json:"topic_tags"`
	FoodDrinks  *string              `json:"food_drinks"`
	Description *string              `json:"description"`
	Links       []domain.EventLink   `json:"links"`
	Speakers    []domain.EventPerson `json:"speakers"`
	Sponsors    []domain.EventPerson `json:"sponsors"`
}

// Validate returns every validation error in the payload
func (r *EventRequest) Validate() []string {
	desc := ""
	if r.Description != nil {
		desc = *r.Description
	}
	return validation.ValidateEvent(validation.EventInput{
		Title:       r.Title,
		Date:        r.Date,
		EventType:   r.EventType,
		Description: desc,
	})
}

// ListEventsQuery represents query parameters for the public events listing
type ListEventsQuery struct {
	Topic     string `form:"topic"`
	EventType string `form:"eventType"`
	Speaker   string `form:"speaker"`
	Sponsor   string `form:"sponsor"`
	Year      int    `form:"year"`
}

// Filter converts the query to a domain filter
func (q *ListEventsQuery) Filter() domain.EventFilter {
	return domain.EventFilter{
		Topic:     q.Topic,
		EventType: q.EventType,
		Speaker:   q.Speaker,
		Sponsor:   q.Sponsor,
		Year:      q.Year,
	}
}

// EventResponse represents an event in API responses
type EventResponse struct {
	ID          string               `json:"id"`
	Title       string               `json:"title"`
	Date        string               `json:"date"`
	EventType   string               `json:"event_type"`
	TopicTags   []string             `json:"topic_tags"`
	FoodDrinks  *string              `json:"food_drinks,omitempty"`
	Description *string              `json:"description,omitempty"`
	Links       []domain.EventLink   `json:"links"`
	Speakers    []domain.EventPerson `json:"speakers"`
	Sponsors    []domain.EventPerson `json:"sponsors"`
	CreatedAt   string               `json:"created_at"`
}

// ToEventResponse converts a domain event to its API shape
func ToEventResponse(e *domain.Event) *EventResponse {
	return &EventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Date:        e.Date.Format("2006-01-02"),
		EventType:   e.EventType,
		TopicTags:   e.TopicTags,
		FoodDrinks:  e.FoodDrinks,
		Description: e.Description,
		Links:       e.Links,
		Speakers:    e.Speakers,
		Sponsors:    e.Sponsors,
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
	}
}
