package service

import (
	"context"
	"log"

	"chatdesk-be/internal/config"
	"chatdesk-be/internal/dto"
	"chatdesk-be/internal/repository/specification"
	"chatdesk-be/internal/repository/unitofwork"
)

// Keys exposed without authentication.
var publicSettingKeys = []string{"phone_number", "whatsapp_number"}

type ISettingsService interface {
	GetAll(ctx context.Context) (map[string]string, error)
	UpdateMany(ctx context.Context, values map[string]string) (map[string]string, error)
	UpdateOne(ctx context.Context, key, value string) (map[string]string, error)
	GetPublic(ctx context.Context) *dto.PublicSettingsResponse
}

type settingsService struct {
	uowFactory unitofwork.RepositoryFactory
	cfg        *config.Config
}

func NewSettingsService(uowFactory unitofwork.RepositoryFactory, cfg *config.Config) ISettingsService {
	return &settingsService{
		uowFactory: uowFactory,
		cfg:        cfg,
	}
}

func (s *settingsService) GetAll(ctx context.Context) (map[string]string, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	rows, err := uow.SettingRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make(map[string]string, len(rows))
	for _, row := range rows {
		result[row.Key] = row.Value
	}
	return result, nil
}

func (s *settingsService) UpdateMany(ctx context.Context, values map[string]string) (map[string]string, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	for key, value := range values {
		if _, err := uow.SettingRepository().Upsert(ctx, key, value); err != nil {
			return nil, err
		}
	}
	return s.GetAll(ctx)
}

func (s *settingsService) UpdateOne(ctx context.Context, key, value string) (map[string]string, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := uow.SettingRepository().Upsert(ctx, key, value); err != nil {
		return nil, err
	}
	return s.GetAll(ctx)
}

// GetPublic degrades to analytics-only when the database is unreachable, so
// the public landing page keeps rendering.
func (s *settingsService) GetPublic(ctx context.Context) *dto.PublicSettingsResponse {
	resp := &dto.PublicSettingsResponse{
		YandexMetrikaId: s.cfg.Keys.YandexMetrikaID,
		GaMeasurementId: s.cfg.Keys.GAMeasurementID,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	rows, err := uow.SettingRepository().FindAll(ctx, specification.ByKeyIn{Keys: publicSettingKeys})
	if err != nil {
		log.Printf("[WARN] Failed to load public settings: %v", err)
		return resp
	}

	for _, row := range rows {
		switch row.Key {
		case "phone_number":
			resp.PhoneNumber = row.Value
		case "whatsapp_number":
			resp.WhatsappNumber = row.Value
		}
	}
	return resp
}
