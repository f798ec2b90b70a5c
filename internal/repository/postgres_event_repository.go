package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/maydeploy/event-feedback-app/internal/domain"
)

const eventColumns = `
	id, title, date, event_type, topic_tags, food_drinks, description,
	links, speakers, sponsors, created_at
`

// PostgresEventRepository implements EventRepository using PostgreSQL.
// Ordered structured lists (links, speakers, sponsors) are jsonb columns;
// topic tags are a native text[].
type PostgresEventRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresEventRepository creates a new PostgresEventRepository
func NewPostgresEventRepository(pool *pgxpool.Pool) *PostgresEventRepository {
	return &PostgresEventRepository{pool: pool}
}

// Create inserts a new event
func (r *PostgresEventRepository) Create(ctx context.Context, e *domain.Event) error {
	links, speakers, sponsors, err := marshalEventLists(e)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO events (
			id, title, date, event_type, topic_tags, food_drinks, description,
			links, speakers, sponsors, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err = r.pool.Exec(ctx, query,
		e.ID,
		e.Title,
		e.Date,
		e.EventType,
		e.TopicTags,
		e.FoodDrinks,
		e.Description,
		links,
		speakers,
		sponsors,
		e.CreatedAt,
	)
	return err
}

func marshalEventLists(e *domain.Event) ([]byte, []byte, []byte, error) {
	links, err := json.Marshal(orEmptyLinks(e.Links))
	if err != nil {
		return nil, nil, nil, err
	}
	speakers, err := json.Marshal(orEmptyPeople(e.Speakers))
	if err != nil {
		return nil, nil, nil, err
	}
	sponsors, err := json.Marshal(orEmptyPeople(e.Sponsors))
	if err != nil {
		return nil, nil, nil, err
	}
	return links, speakers, sponsors, nil
}

func orEmptyLinks(l []domain.EventLink) []domain.EventLink {
	if l == nil {
		return []domain.EventLink{}
	}
	return l
}

func orEmptyPeople(p []domain.EventPerson) []domain.EventPerson {
	if p == nil {
		return []domain.EventPerson{}
	}
	return p
}

func scanEvent(row pgx.Row) (*domain.Event, error) {
	e := &domain.Event{}
	var links, speakers, sponsors []byte
	err := row.Scan(
		&e.ID,
		&e.Title,
		&e.Date,
		&e.EventType,
		&e.TopicTags,
		&e.FoodDrinks,
		&e.Description,
		&links,
		&speakers,
		&sponsors,
		&e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(links, &e.Links); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(speakers, &e.Speakers); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(sponsors, &e.Sponsors); err != nil {
		return nil, err
	}
	if e.TopicTags == nil {
		e.TopicTags = []string{}
	}
	return e, nil
}

// GetByID retrieves an event by ID
func (r *PostgresEventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := fmt.Sprintf(`SELECT %s FROM events WHERE id = $1`, eventColumns)
	return scanEvent(r.pool.QueryRow(ctx, query, id))
}

// List lists events matching the filter, newest date first
func (r *PostgresEventRepository) List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error) {
	where := "TRUE"
	args := []interface{}{}
	argIndex := 1

	if filter.Topic != "" {
		where += fmt.Sprintf(" AND $%d = ANY(topic_tags)", argIndex)
		args = append(args, filter.Topic)
		argIndex++
	}
	if filter.EventType != "" {
		where += fmt.Sprintf(" AND event_type = $%d", argIndex)
		args = append(args, filter.EventType)
		argIndex++
	}
	if filter.Year != 0 {
		where += fmt.Sprintf(" AND EXTRACT(YEAR FROM date) = $%d", argIndex)
		args = append(args, filter.Year)
		argIndex++
	}
	if filter.Speaker != "" {
		needle, err := json.Marshal([]map[string]string{{"name": filter.Speaker}})
		if err != nil {
			return nil, err
		}
		where += fmt.Sprintf(" AND speakers @> $%d::jsonb", argIndex)
		args = append(args, needle)
		argIndex++
	}
	if filter.Sponsor != "" {
		needle, err := json.Marshal([]map[string]string{{"name": filter.Sponsor}})
		if err != nil {
			return nil, err
		}
		where += fmt.Sprintf(" AND sponsors @> $%d::jsonb", argIndex)
		args = append(args, needle)
		argIndex++
	}

	query := fmt.Sprintf(`
		SELECT %s FROM events
		WHERE %s
		ORDER BY date DESC
	`, eventColumns, where)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// Update replaces the event's fields
func (r *PostgresEventRepository) Update(ctx context.Context, e *domain.Event) (*domain.Event, error) {
	links, speakers, sponsors, err := marshalEventLists(e)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		UPDATE events
		SET title = $2, date = $3, event_type = $4, topic_tags = $5,
		    food_drinks = $6, description = $7, links = $8, speakers = $9, sponsors = $10
		WHERE id = $1
		RETURNING %s
	`, eventColumns)
	return scanEvent(r.pool.QueryRow(ctx, query,
		e.ID,
		e.Title,
		e.Date,
		e.EventType,
		e.TopicTags,
		e.FoodDrinks,
		e.Description,
		links,
		speakers,
		sponsors,
	))
}

// Delete removes an event
func (r *PostgresEventRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	return err
}
