package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/maydeploy/event-feedback-app/internal/domain"
)

const submissionColumns = `
	id, type, text, tags, related_event_id, submitter_name, submitter_email,
	email_optin, status, upvotes, downvotes, created_at, approved_at, admin_notes
`

// PostgresSubmissionRepository implements SubmissionRepository using PostgreSQL
type PostgresSubmissionRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresSubmissionRepository creates a new PostgresSubmissionRepository
func NewPostgresSubmissionRepository(pool *pgxpool.Pool) *PostgresSubmissionRepository {
	return &PostgresSubmissionRepository{pool: pool}
}

// Create inserts a new submission
func (r *PostgresSubmissionRepository) Create(ctx context.Context, s *domain.Submission) error {
	query := `
		INSERT INTO submissions (
			id, type, text, tags, related_event_id, submitter_name, submitter_email,
			email_optin, status, upvotes, downvotes, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.pool.Exec(ctx, query,
		s.ID,
		s.Type,
		s.Text,
		s.Tags,
		s.RelatedEventID,
		s.SubmitterName,
		s.SubmitterEmail,
		s.EmailOptin,
		s.Status,
		s.Upvotes,
		s.Downvotes,
		s.CreatedAt,
	)
	return err
}

func scanSubmission(row pgx.Row) (*domain.Submission, error) {
	s := &domain.Submission{}
	err := row.Scan(
		&s.ID,
		&s.Type,
		&s.Text,
		&s.Tags,
		&s.RelatedEventID,
		&s.SubmitterName,
		&s.SubmitterEmail,
		&s.EmailOptin,
		&s.Status,
		&s.Upvotes,
		&s.Downvotes,
		&s.CreatedAt,
		&s.ApprovedAt,
		&s.AdminNotes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if s.Tags == nil {
		s.Tags = []string{}
	}
	return s, nil
}

// GetByID retrieves any submission by ID
func (r *PostgresSubmissionRepository) GetByID(ctx context.Context, id string) (*domain.Submission, error) {
	query := fmt.Sprintf(`SELECT %s FROM submissions WHERE id = $1`, submissionColumns)
	return scanSubmission(r.pool.QueryRow(ctx, query, id))
}

// GetPublished retrieves a submission visible to the public
func (r *PostgresSubmissionRepository) GetPublished(ctx context.Context, id string) (*domain.Submission, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM submissions
		WHERE id = $1 AND status NOT IN ('pending', 'rejected')
	`, submissionColumns)
	return scanSubmission(r.pool.QueryRow(ctx, query, id))
}

// ListPublic lists published submissions for the browse feed
func (r *PostgresSubmissionRepository) ListPublic(ctx context.Context, opts SubmissionListOptions) ([]*domain.Submission, error) {
	orderBy := "created_at DESC"
	switch opts.Sort {
	case "loved":
		orderBy = "(upvotes - downvotes) DESC, created_at DESC"
	case "status":
		orderBy = "status, created_at DESC"
	}

	where := "status NOT IN ('pending', 'rejected')"
	args := []interface{}{}
	argIndex := 1

	if opts.Tag != "" {
		where += fmt.Sprintf(" AND $%d = ANY(tags)", argIndex)
		args = append(args, opts.Tag)
		argIndex++
	}
	if opts.Status != "" && opts.Status != "all" {
		where += fmt.Sprintf(" AND status = $%d", argIndex)
		args = append(args, opts.Status)
		argIndex++
	}

	limit := opts.Limit
	if limit <= 0 || limit > 100 {
		limit = 100
	}

	query := fmt.Sprintf(`
		SELECT %s FROM submissions
		WHERE %s
		ORDER BY %s
		LIMIT $%d
	`, submissionColumns, where, orderBy, argIndex)
	args = append(args, limit)

	return r.querySubmissions(ctx, query, args...)
}

// ListPending lists the moderation queue, oldest first
func (r *PostgresSubmissionRepository) ListPending(ctx context.Context) ([]*domain.Submission, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM submissions
		WHERE status = 'pending'
		ORDER BY created_at ASC
	`, submissionColumns)
	return r.querySubmissions(ctx, query)
}

// ListPublished lists every published submission, newest first
func (r *PostgresSubmissionRepository) ListPublished(ctx context.Context) ([]*domain.Submission, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM submissions
		WHERE status NOT IN ('pending', 'rejected')
		ORDER BY created_at DESC
	`, submissionColumns)
	return r.querySubmissions(ctx, query)
}

func (r *PostgresSubmissionRepository) querySubmissions(ctx context.Context, query string, args ...interface{}) ([]*domain.Submission, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	submissions := make([]*domain.Submission, 0)
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		submissions = append(submissions, s)
	}
	return submissions, rows.Err()
}

// Approve transitions a pending submission to exploring
func (r *PostgresSubmissionRepository) Approve(ctx context.Context, id string, tags []string, approvedAt time.Time) (*domain.Submission, error) {
	query := fmt.Sprintf(`
		UPDATE submissions
		SET status = 'exploring', approved_at = $2, tags = COALESCE($3, tags)
		WHERE id = $1 AND status = 'pending'
		RETURNING %s
	`, submissionColumns)
	return scanSubmission(r.pool.QueryRow(ctx, query, id, approvedAt, tags))
}

// UpdateStatus sets a post-approval status
func (r *PostgresSubmissionRepository) UpdateStatus(ctx context.Context, id string, status string) (*domain.Submission, error) {
	query := fmt.Sprintf(`
		UPDATE submissions
		SET status = $2
		WHERE id = $1
		RETURNING %s
	`, submissionColumns)
	return scanSubmission(r.pool.QueryRow(ctx, query, id, status))
}

// Delete removes a submission; admin_responses cascade with it
func (r *PostgresSubmissionRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM submissions WHERE id = $1`, id)
	return err
}

// IncrementVote bumps the named counter
func (r *PostgresSubmissionRepository) IncrementVote(ctx context.Context, id string, voteType string) error {
	var query string
	switch voteType {
	case domain.VoteUp:
		query = `UPDATE submissions SET upvotes = upvotes + 1 WHERE id = $1`
	case domain.VoteDown:
		query = `UPDATE submissions SET downvotes = downvotes + 1 WHERE id = $1`
	default:
		return nil
	}
	_, err := r.pool.Exec(ctx, query, id)
	return err
}

// GetVoteCounts returns the current counters
func (r *PostgresSubmissionRepository) GetVoteCounts(ctx context.Context, id string) (*VoteCounts, error) {
	counts := &VoteCounts{}
	err := r.pool.QueryRow(ctx,
		`SELECT upvotes, downvotes FROM submissions WHERE id = $1`, id,
	).Scan(&counts.Upvotes, &counts.Downvotes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return counts, nil
}

// AddResponse appends an admin response
func (r *PostgresSubmissionRepository) AddResponse(ctx context.Context, resp *domain.AdminResponse) error {
	query := `
		INSERT INTO admin_responses (id, submission_id, response_text, admin_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.pool.Exec(ctx, query,
		resp.ID,
		resp.SubmissionID,
		resp.ResponseText,
		resp.AdminName,
		resp.CreatedAt,
		resp.UpdatedAt,
	)
	return err
}

// ListResponses lists responses for a submission ordered by creation time
func (r *PostgresSubmissionRepository) ListResponses(ctx context.Context, submissionID string) ([]*domain.AdminResponse, error) {
	query := `
		SELECT id, submission_id, response_text, admin_name, created_at, updated_at
		FROM admin_responses
		WHERE submission_id = $1
		ORDER BY created_at ASC
	`
	rows, err := r.pool.Query(ctx, query, submissionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	responses := make([]*domain.AdminResponse, 0)
	for rows.Next() {
		resp := &domain.AdminResponse{}
		err := rows.Scan(
			&resp.ID,
			&resp.SubmissionID,
			&resp.ResponseText,
			&resp.AdminName,
			&resp.CreatedAt,
			&resp.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return responses, rows.Err()
}
