package implementation

import (
	"context"

	"chatdesk-be/internal/entity"
	"chatdesk-be/internal/mapper"
	"chatdesk-be/internal/model"
	"chatdesk-be/internal/repository/contract"
	"chatdesk-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ChatHistoryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ConversationMapper
}

func NewChatHistoryRepository(db *gorm.DB) contract.ChatHistoryRepository {
	return &ChatHistoryRepositoryImpl{
		db:     db,
		mapper: mapper.NewConversationMapper(),
	}
}

func (r *ChatHistoryRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ChatHistoryRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatHistory, error) {
	var models []model.ChatHistory
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	messages := make([]*entity.ChatHistory, 0, len(models))
	for i := range models {
		messages = append(messages, r.mapper.ChatHistoryToEntity(&models[i]))
	}
	return messages, nil
}

func (r *ChatHistoryRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ChatHistory{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ListOverviews aggregates the history table per session, newest activity first.
func (r *ChatHistoryRepositoryImpl) ListOverviews(ctx context.Context, limit, offset int) ([]*entity.SessionOverview, error) {
	var overviews []*entity.SessionOverview
	err := r.db.WithContext(ctx).
		Model(&model.ChatHistory{}).
		Select("session_id, COUNT(*) AS message_count, MIN(created_at) AS started_at, MAX(created_at) AS last_message_at").
		Group("session_id").
		Order("MAX(created_at) DESC").
		Limit(limit).
		Offset(offset).
		Scan(&overviews).Error
	if err != nil {
		return nil, err
	}
	return overviews, nil
}

func (r *ChatHistoryRepositoryImpl) CountSessions(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.ChatHistory{}).
		Distinct("session_id").
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
