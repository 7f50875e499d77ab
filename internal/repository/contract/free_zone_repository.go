package contract

import (
	"context"

	"chatdesk-be/internal/entity"
	"chatdesk-be/internal/repository/specification"

	"github.com/google/uuid"
)

type FreeZoneRepository interface {
	Create(ctx context.Context, zone *entity.FreeZoneIntegration) error
	Update(ctx context.Context, zone *entity.FreeZoneIntegration) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.FreeZoneIntegration, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FreeZoneIntegration, error)
}
