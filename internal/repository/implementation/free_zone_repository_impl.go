package implementation

import (
	"context"
	"errors"

	"chatdesk-be/internal/entity"
	"chatdesk-be/internal/mapper"
	"chatdesk-be/internal/model"
	"chatdesk-be/internal/repository/contract"
	"chatdesk-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FreeZoneRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CrmMapper
}

func NewFreeZoneRepository(db *gorm.DB) contract.FreeZoneRepository {
	return &FreeZoneRepositoryImpl{
		db:     db,
		mapper: mapper.NewCrmMapper(),
	}
}

func (r *FreeZoneRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *FreeZoneRepositoryImpl) Create(ctx context.Context, zone *entity.FreeZoneIntegration) error {
	m := r.mapper.FreeZoneToModel(zone)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*zone = *r.mapper.FreeZoneToEntity(m)
	return nil
}

func (r *FreeZoneRepositoryImpl) Update(ctx context.Context, zone *entity.FreeZoneIntegration) error {
	m := r.mapper.FreeZoneToModel(zone)
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *FreeZoneRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.FreeZoneIntegration{}, "id = ?", id).Error
}

func (r *FreeZoneRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.FreeZoneIntegration, error) {
	var m model.FreeZoneIntegration
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.FreeZoneToEntity(&m), nil
}

func (r *FreeZoneRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FreeZoneIntegration, error) {
	var models []model.FreeZoneIntegration
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	zones := make([]*entity.FreeZoneIntegration, 0, len(models))
	for i := range models {
		zones = append(zones, r.mapper.FreeZoneToEntity(&models[i]))
	}
	return zones, nil
}
