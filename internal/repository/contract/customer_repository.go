package contract

import (
	"context"

	"chatdesk-be/internal/entity"
	"chatdesk-be/internal/repository/specification"

	"github.com/google/uuid"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Customer, error)

	// FindPage returns customers with derived session/invoice counts,
	// newest first, filtered by the given specs.
	FindPage(ctx context.Context, specs ...specification.Specification) ([]*entity.Customer, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type CustomerSessionRepository interface {
	Create(ctx context.Context, link *entity.CustomerSession) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CustomerSession, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CustomerSession, error)
}
