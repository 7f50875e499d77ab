package implementation

import (
	"context"
	"time"

	"chatdesk-be/internal/entity"
	"chatdesk-be/internal/mapper"
	"chatdesk-be/internal/model"
	"chatdesk-be/internal/repository/contract"
	"chatdesk-be/internal/repository/specification"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CrmMapper
}

func NewSettingRepository(db *gorm.DB) contract.SettingRepository {
	return &SettingRepositoryImpl{
		db:     db,
		mapper: mapper.NewCrmMapper(),
	}
}

func (r *SettingRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SettingRepositoryImpl) Upsert(ctx context.Context, key, value string) (*entity.Setting, error) {
	m := &model.Setting{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now(),
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(m).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.SettingToEntity(m), nil
}

func (r *SettingRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Setting, error) {
	var models []model.Setting
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	settings := make([]*entity.Setting, 0, len(models))
	for i := range models {
		settings = append(settings, r.mapper.SettingToEntity(&models[i]))
	}
	return settings, nil
}
