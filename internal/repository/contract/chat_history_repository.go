package contract

import (
	"context"

	"chatdesk-be/internal/entity"
	"chatdesk-be/internal/repository/specification"
)

// ChatHistoryRepository reads the message log. Rows are written by the
// external workflow engine, so there is no Create here.
type ChatHistoryRepository interface {
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatHistory, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// ListOverviews groups the message log by session id, yielding message
	// count plus min/max timestamps per group, ordered by last activity
	// descending with offset/limit applied.
	ListOverviews(ctx context.Context, limit, offset int) ([]*entity.SessionOverview, error)

	// CountSessions returns the distinct session-id cardinality of the log.
	CountSessions(ctx context.Context) (int64, error)
}
