package contract

import (
	"context"

	"chatdesk-be/internal/entity"
	"chatdesk-be/internal/repository/specification"
)

type SettingRepository interface {
	Upsert(ctx context.Context, key, value string) (*entity.Setting, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Setting, error)
}
