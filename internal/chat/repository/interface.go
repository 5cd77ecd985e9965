package repository

import (
	"context"

	"emoch-backend/internal/model"
)

// SessionRepository owns every conversation session for the lifetime of the
// process. Sessions are only ever mutated through Append; callers never hold
// a mutable reference into a session's history.
type SessionRepository interface {
	// Resolve returns the session token and a consistent snapshot of its
	// history. An empty or unknown id creates a fresh empty session with a
	// newly generated token.
	Resolve(ctx context.Context, id string) (string, []model.Message)

	// Append atomically appends all given messages to the session, then
	// truncates from the front to enforce the history bound. Appends for the
	// same session never interleave; appends for different sessions never
	// block each other.
	Append(ctx context.Context, id string, messages ...model.Message)

	// Snapshot returns a copy of the session's history at the moment of the
	// call, or nil for an unknown id. It never observes a half-applied
	// Append.
	Snapshot(ctx context.Context, id string) []model.Message
}
