package service

import (
	"context"
	"time"

	"chatdesk-be/internal/config"
	"chatdesk-be/internal/dto"
	"chatdesk-be/internal/model"
	"chatdesk-be/internal/repository/specification"
	"chatdesk-be/internal/repository/unitofwork"
)

type IDashboardService interface {
	GetStats(ctx context.Context) (*dto.DashboardStatsResponse, error)
	GetAnalyticsConfig() *dto.AnalyticsConfigResponse
}

type dashboardService struct {
	uowFactory unitofwork.RepositoryFactory
	cfg        *config.Config
}

func NewDashboardService(uowFactory unitofwork.RepositoryFactory, cfg *config.Config) IDashboardService {
	return &dashboardService{
		uowFactory: uowFactory,
		cfg:        cfg,
	}
}

func (s *dashboardService) GetStats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	conversationsToday, err := uow.SessionRepository().Count(ctx,
		specification.CreatedSince{Field: "started_at", Since: todayStart})
	if err != nil {
		return nil, err
	}

	messagesToday, err := uow.ChatHistoryRepository().Count(ctx,
		specification.CreatedSince{Field: "created_at", Since: todayStart})
	if err != nil {
		return nil, err
	}

	totalMessages, err := uow.ChatHistoryRepository().Count(ctx)
	if err != nil {
		return nil, err
	}

	totalInvoiced, err := uow.InvoiceRepository().SumAmount(ctx)
	if err != nil {
		return nil, err
	}

	totalPaid, err := uow.InvoiceRepository().SumAmount(ctx,
		specification.Filter("status", model.InvoiceStatusPaid))
	if err != nil {
		return nil, err
	}

	dealsInProgress, err := uow.InvoiceRepository().Count(ctx,
		specification.Filter("status", model.InvoiceStatusInProgress))
	if err != nil {
		return nil, err
	}

	return &dto.DashboardStatsResponse{
		ConversationsToday: conversationsToday,
		MessagesToday:      messagesToday,
		TotalMessages:      totalMessages,
		AiTokens:           totalMessages * int64(s.cfg.Ai.TokensPerMessage),
		TotalInvoiced:      totalInvoiced,
		TotalPaid:          totalPaid,
		DealsInProgress:    dealsInProgress,
	}, nil
}

func (s *dashboardService) GetAnalyticsConfig() *dto.AnalyticsConfigResponse {
	return &dto.AnalyticsConfigResponse{
		YandexMetrikaId: s.cfg.Keys.YandexMetrikaID,
		GaMeasurementId: s.cfg.Keys.GAMeasurementID,
	}
}
