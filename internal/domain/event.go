package domain

import "time"

// Event represents a community event. Events are fully admin-managed and
// read-only to the public.
type Event struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Date        time.Time     `json:"date"`
	EventType   string        `json:"event_type"`
	TopicTags   []string      `json:"topic_tags"`
	FoodDrinks  *string       `json:"food_drinks,omitempty"`
	Description *string       `json:"description,omitempty"`
	Links       []EventLink   `json:"links"`
	Speakers    []EventPerson `json:"speakers"`
	Sponsors    []EventPerson `json:"sponsors"`
	CreatedAt   time.Time     `json:"created_at"`
}

// EventLink is an ordered reference attached to an event (slides, recap, ...)
type EventLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// EventPerson is a speaker or sponsor entry, ordered as entered by the admin
type EventPerson struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

// EventFilter holds the optional public listing filters
type EventFilter struct {
	Topic     string
	EventType string
	Speaker   string
	Sponsor   string
	Year      int
}
