package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/maydeploy/event-feedback-app/internal/domain"
)

const collaborationColumns = `
	id, contact_name, email, organization, offerings, other_offering,
	budget_range, venue_capacity, location, preferred_event_types,
	availability, collaboration_type, additional_details, email_optin,
	status, admin_notes, created_at
`

// PostgresCollaborationRepository implements CollaborationRepository using PostgreSQL
type PostgresCollaborationRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresCollaborationRepository creates a new PostgresCollaborationRepository
func NewPostgresCollaborationRepository(pool *pgxpool.Pool) *PostgresCollaborationRepository {
	return &PostgresCollaborationRepository{pool: pool}
}

// Create inserts a new collaboration offer
func (r *PostgresCollaborationRepository) Create(ctx context.Context, c *domain.CollaborationOffer) error {
	query := `
		INSERT INTO collaborations (
			id, contact_name, email, organization, offerings, other_offering,
			budget_range, venue_capacity, location, preferred_event_types,
			availability, collaboration_type, additional_details, email_optin,
			status, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`
	_, err := r.pool.Exec(ctx, query,
		c.ID,
		c.ContactName,
		c.Email,
		c.Organization,
		c.Offerings,
		c.OtherOffering,
		c.BudgetRange,
		c.VenueCapacity,
		c.Location,
		c.PreferredEventTypes,
		c.Availability,
		c.CollaborationType,
		c.AdditionalDetails,
		c.EmailOptin,
		c.Status,
		c.CreatedAt,
	)
	return err
}

func scanCollaboration(row pgx.Row) (*domain.CollaborationOffer, error) {
	c := &domain.CollaborationOffer{}
	err := row.Scan(
		&c.ID,
		&c.ContactName,
		&c.Email,
		&c.Organization,
		&c.Offerings,
		&c.OtherOffering,
		&c.BudgetRange,
		&c.VenueCapacity,
		&c.Location,
		&c.PreferredEventTypes,
		&c.Availability,
		&c.CollaborationType,
		&c.AdditionalDetails,
		&c.EmailOptin,
		&c.Status,
		&c.AdminNotes,
		&c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if c.Offerings == nil {
		c.Offerings = []string{}
	}
	if c.PreferredEventTypes == nil {
		c.PreferredEventTypes = []string{}
	}
	return c, nil
}

// List lists every offer, newest first
func (r *PostgresCollaborationRepository) List(ctx context.Context) ([]*domain.CollaborationOffer, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM collaborations
		ORDER BY created_at DESC
	`, collaborationColumns)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	offers := make([]*domain.CollaborationOffer, 0)
	for rows.Next() {
		c, err := scanCollaboration(rows)
		if err != nil {
			return nil, err
		}
		offers = append(offers, c)
	}
	return offers, rows.Err()
}

// Update sets status and admin notes
func (r *PostgresCollaborationRepository) Update(ctx context.Context, id string, status string, notes *string) (*domain.CollaborationOffer, error) {
	query := fmt.Sprintf(`
		UPDATE collaborations
		SET status = $2, admin_notes = $3
		WHERE id = $1
		RETURNING %s
	`, collaborationColumns)
	return scanCollaboration(r.pool.QueryRow(ctx, query, id, status, notes))
}
