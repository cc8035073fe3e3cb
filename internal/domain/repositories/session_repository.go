package repositories

import "context"

// SessionRepository summarizes the credential context the batch header
// shows, so the user can tell why fetches might prompt or fail.
type SessionRepository interface {
	Summary(ctx context.Context) string
}
