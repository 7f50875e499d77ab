package contract

import (
	"context"

	"chatdesk-be/internal/entity"
	"chatdesk-be/internal/repository/specification"
)

type ConversationSummaryRepository interface {
	Create(ctx context.Context, summary *entity.ConversationSummary) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ConversationSummary, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ConversationSummary, error)
}
