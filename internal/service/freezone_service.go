package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"chatdesk-be/internal/dto"
	"chatdesk-be/internal/entity"
	"chatdesk-be/internal/repository/specification"
	"chatdesk-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

var ErrFreeZoneNotFound = errors.New("Free zone not found")

type IFreeZoneService interface {
	List(ctx context.Context) ([]*dto.FreeZoneResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.FreeZoneResponse, error)
	Create(ctx context.Context, req *dto.CreateFreeZoneRequest) (*dto.FreeZoneResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateFreeZoneRequest) (*dto.FreeZoneResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type freeZoneService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewFreeZoneService(uowFactory unitofwork.RepositoryFactory) IFreeZoneService {
	return &freeZoneService{uowFactory: uowFactory}
}

func (s *freeZoneService) List(ctx context.Context) ([]*dto.FreeZoneResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	zones, err := uow.FreeZoneRepository().FindAll(ctx, specification.OrderBy{Field: "name"})
	if err != nil {
		return nil, err
	}

	result := make([]*dto.FreeZoneResponse, 0, len(zones))
	for _, zone := range zones {
		result = append(result, freeZoneToDto(zone))
	}
	return result, nil
}

func (s *freeZoneService) Get(ctx context.Context, id uuid.UUID) (*dto.FreeZoneResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	zone, err := uow.FreeZoneRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if zone == nil {
		return nil, ErrFreeZoneNotFound
	}
	return freeZoneToDto(zone), nil
}

func (s *freeZoneService) Create(ctx context.Context, req *dto.CreateFreeZoneRequest) (*dto.FreeZoneResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	now := time.Now()
	zone := &entity.FreeZoneIntegration{
		Id:          uuid.New(),
		Name:        req.Name,
		Code:        strings.ToLower(req.Code),
		ApiEndpoint: req.ApiEndpoint,
		ApiKey:      req.ApiKey,
		IsActive:    isActive,
		Config:      req.Config,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uow.FreeZoneRepository().Create(ctx, zone); err != nil {
		return nil, err
	}
	return freeZoneToDto(zone), nil
}

func (s *freeZoneService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateFreeZoneRequest) (*dto.FreeZoneResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	zone, err := uow.FreeZoneRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if zone == nil {
		return nil, ErrFreeZoneNotFound
	}

	if req.Name != nil {
		zone.Name = *req.Name
	}
	if req.Code != nil {
		zone.Code = strings.ToLower(*req.Code)
	}
	if req.ApiEndpoint != nil {
		zone.ApiEndpoint = req.ApiEndpoint
	}
	if req.ApiKey != nil {
		zone.ApiKey = req.ApiKey
	}
	if req.IsActive != nil {
		zone.IsActive = *req.IsActive
	}
	if len(req.Config) > 0 {
		zone.Config = req.Config
	}
	zone.UpdatedAt = time.Now()

	if err := uow.FreeZoneRepository().Update(ctx, zone); err != nil {
		return nil, err
	}
	return freeZoneToDto(zone), nil
}

func (s *freeZoneService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	zone, err := uow.FreeZoneRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if zone == nil {
		return ErrFreeZoneNotFound
	}
	return uow.FreeZoneRepository().Delete(ctx, id)
}

func freeZoneToDto(zone *entity.FreeZoneIntegration) *dto.FreeZoneResponse {
	return &dto.FreeZoneResponse{
		Id:          zone.Id,
		Name:        zone.Name,
		Code:        zone.Code,
		ApiEndpoint: zone.ApiEndpoint,
		ApiKey:      zone.ApiKey,
		IsActive:    zone.IsActive,
		Config:      zone.Config,
		CreatedAt:   zone.CreatedAt,
		UpdatedAt:   zone.UpdatedAt,
	}
}
