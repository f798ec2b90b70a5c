package repository

import (
	"context"

	"github.com/maydeploy/event-feedback-app/pkg/database"
)

// schema is applied at startup. Statements are idempotent so restarts are
// safe without an external migration tool.
//
// The status CHECK on submissions still lists 'rejected' even though the
// application deletes on reject; keeping the value documents the schema the
// product defined without changing live behavior.
const schema = `
CREATE TABLE IF NOT EXISTS submissions (
	id UUID PRIMARY KEY,
	type TEXT NOT NULL CHECK (type IN ('feedback', 'idea')),
	text TEXT NOT NULL,
	tags TEXT[] NOT NULL DEFAULT '{}',
	related_event_id UUID,
	submitter_name TEXT,
	submitter_email TEXT,
	email_optin BOOLEAN NOT NULL DEFAULT FALSE,
	status TEXT NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'exploring', 'lets-do-this', 'done', 'maybe-later', 'rejected')),
	upvotes INTEGER NOT NULL DEFAULT 0 CHECK (upvotes >= 0),
	downvotes INTEGER NOT NULL DEFAULT 0 CHECK (downvotes >= 0),
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	approved_at TIMESTAMPTZ,
	admin_notes TEXT
);

CREATE TABLE IF NOT EXISTS admin_responses (
	id UUID PRIMARY KEY,
	submission_id UUID NOT NULL REFERENCES submissions(id) ON DELETE CASCADE,
	response_text TEXT NOT NULL,
	admin_name TEXT NOT NULL DEFAULT 'Event Organizer',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS collaborations (
	id UUID PRIMARY KEY,
	contact_name TEXT NOT NULL,
	email TEXT NOT NULL,
	organization TEXT,
	offerings TEXT[] NOT NULL,
	other_offering TEXT,
	budget_range TEXT,
	venue_capacity INTEGER,
	location TEXT,
	preferred_event_types TEXT[] NOT NULL DEFAULT '{}',
	availability TEXT,
	collaboration_type TEXT NOT NULL DEFAULT 'one-time' CHECK (collaboration_type IN ('one-time', 'ongoing')),
	additional_details TEXT,
	email_optin BOOLEAN NOT NULL DEFAULT TRUE,
	status TEXT NOT NULL DEFAULT 'new' CHECK (status IN ('new', 'contacted', 'in_discussion', 'confirmed', 'passed')),
	admin_notes TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS events (
	id UUID PRIMARY KEY,
	title TEXT NOT NULL,
	date DATE NOT NULL,
	event_type TEXT NOT NULL,
	topic_tags TEXT[] NOT NULL DEFAULT '{}',
	food_drinks TEXT,
	description TEXT,
	links JSONB NOT NULL DEFAULT '[]',
	speakers JSONB NOT NULL DEFAULT '[]',
	sponsors JSONB NOT NULL DEFAULT '[]',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS rate_limits (
	id UUID PRIMARY KEY,
	session_id TEXT NOT NULL,
	action_type TEXT NOT NULL,
	ts TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_submissions_status ON submissions(status);
CREATE INDEX IF NOT EXISTS idx_submissions_created_at ON submissions(created_at DESC);
CREATE INDEX IF NOT EXISTS idx_submissions_type ON submissions(type);
CREATE INDEX IF NOT EXISTS idx_admin_responses_submission ON admin_responses(submission_id);
CREATE INDEX IF NOT EXISTS idx_collaborations_status ON collaborations(status);
CREATE INDEX IF NOT EXISTS idx_events_date ON events(date DESC);
CREATE INDEX IF NOT EXISTS idx_rate_limits_session ON rate_limits(session_id, action_type);
CREATE INDEX IF NOT EXISTS idx_rate_limits_ts ON rate_limits(ts);
`

// Migrate creates the schema if it does not exist
func Migrate(ctx context.Context, db *database.PostgresDB) error {
	return db.Exec(ctx, schema)
}
