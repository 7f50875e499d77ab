package service

import (
	"context"
	"errors"
	"time"

	"chatdesk-be/internal/config"
	"chatdesk-be/internal/dto"
	"chatdesk-be/internal/entity"
	"chatdesk-be/internal/repository/specification"
	"chatdesk-be/internal/repository/unitofwork"
	"chatdesk-be/pkg/aiwebhook"

	"github.com/google/uuid"
)

var ErrWebhookNotConfigured = errors.New("AI webhook is not configured")

type IChatService interface {
	RegisterMessage(ctx context.Context, req *dto.ChatMessageRequest) (*dto.ChatMessageResponse, error)
	Send(ctx context.Context, req *dto.ChatSendRequest) (*dto.ChatSendResponse, error)
}

type chatService struct {
	uowFactory    unitofwork.RepositoryFactory
	webhookClient *aiwebhook.Client
	cfg           *config.Config
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	webhookClient *aiwebhook.Client,
	cfg *config.Config,
) IChatService {
	return &chatService{
		uowFactory:    uowFactory,
		webhookClient: webhookClient,
		cfg:           cfg,
	}
}

// RegisterMessage upserts the session registry row. The messages themselves
// are written by the external workflow engine, not here.
func (s *chatService) RegisterMessage(ctx context.Context, req *dto.ChatMessageRequest) (*dto.ChatMessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.SessionRepository().FindOne(ctx, specification.ByStringID{ID: req.SessionId})
	if err != nil {
		return nil, err
	}

	now := time.Now()

	if session == nil {
		session = &entity.Session{
			Id:            req.SessionId,
			UserId:        req.UserId,
			UserEmail:     req.UserEmail,
			UserName:      req.UserName,
			StartedAt:     now,
			LastMessageAt: now,
		}
		if err := uow.SessionRepository().Create(ctx, session); err != nil {
			return nil, err
		}
		return &dto.ChatMessageResponse{
			SessionId:     session.Id,
			StartedAt:     session.StartedAt,
			LastMessageAt: session.LastMessageAt,
			Created:       true,
		}, nil
	}

	session.LastMessageAt = now
	if req.UserId != nil {
		session.UserId = req.UserId
	}
	if req.UserEmail != nil {
		session.UserEmail = req.UserEmail
	}
	if req.UserName != nil {
		session.UserName = req.UserName
	}
	if err := uow.SessionRepository().Update(ctx, session); err != nil {
		return nil, err
	}

	return &dto.ChatMessageResponse{
		SessionId:     session.Id,
		StartedAt:     session.StartedAt,
		LastMessageAt: session.LastMessageAt,
		Created:       false,
	}, nil
}

// Send proxies a chat turn to the conversational-AI workflow webhook and
// returns whatever reply text could be unwrapped from its response.
func (s *chatService) Send(ctx context.Context, req *dto.ChatSendRequest) (*dto.ChatSendResponse, error) {
	if s.cfg.Ai.WebhookURL == "" {
		return nil, ErrWebhookNotConfigured
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := uow.SessionRepository().FindOne(ctx, specification.ByStringID{ID: req.SessionId})
	if err != nil {
		return nil, err
	}

	// The workflow expects the prompt mirrored into systemPrompt and a fresh
	// message id per turn. Anonymous visitors get guest identity fields.
	env := aiwebhook.Envelope{
		SystemPrompt: req.Message,
		UserEmail:    "guest@oqta.ai",
		UserName:     "Guest User",
		UserRole:     "user",
		ChatID:       req.SessionId,
		MessageID:    uuid.New().String(),
		ChatInput:    req.Message,
	}
	if session != nil {
		if session.UserId != nil {
			env.UserID = *session.UserId
		}
		if session.UserEmail != nil {
			env.UserEmail = *session.UserEmail
		}
		if session.UserName != nil {
			env.UserName = *session.UserName
		}
	}

	reply, err := s.webhookClient.Send(ctx, s.cfg.Ai.WebhookURL, env)
	if err != nil {
		return nil, err
	}

	return &dto.ChatSendResponse{Reply: reply}, nil
}
