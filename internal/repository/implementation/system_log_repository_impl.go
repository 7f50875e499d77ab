package implementation

import (
	"context"
	"encoding/json"

	"chatdesk-be/internal/model"
	"chatdesk-be/internal/repository/contract"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SystemLogRepositoryImpl struct {
	db *gorm.DB
}

func NewSystemLogRepository(db *gorm.DB) contract.SystemLogRepository {
	return &SystemLogRepositoryImpl{db: db}
}

func (r *SystemLogRepositoryImpl) Append(ctx context.Context, eventType string, details json.RawMessage) error {
	if len(details) == 0 {
		details = json.RawMessage("{}")
	}
	row := &model.SystemLog{
		EventType: eventType,
		Details:   datatypes.JSON(details),
	}
	return r.db.WithContext(ctx).Create(row).Error
}
