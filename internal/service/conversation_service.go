package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"chatdesk-be/internal/config"
	"chatdesk-be/internal/dto"
	"chatdesk-be/internal/entity"
	"chatdesk-be/internal/repository/specification"
	"chatdesk-be/internal/repository/unitofwork"
	"chatdesk-be/pkg/llm"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound  = errors.New("Session not found")
	ErrLLMNotConfigured = errors.New("LLM provider is not configured")
)

const summarySystemPrompt = `You are an assistant that summarizes business chat conversations.
Given a transcript, extract the customer's name (or "Unknown"), their phone
number in international format if mentioned (otherwise null), a concise
summary of what was discussed, and the recommended next action for the team.`

type IConversationService interface {
	ListSessions(ctx context.Context, page, limit int) (*dto.SessionListResponse, error)
	GetSession(ctx context.Context, sessionId string) (*dto.SessionDetailResponse, error)
	GenerateSummary(ctx context.Context, sessionId string) (*dto.SummaryResponse, error)
	GetSummary(ctx context.Context, sessionId string) (*dto.SummaryResponse, error)
}

type conversationService struct {
	uowFactory       unitofwork.RepositoryFactory
	llmProvider      llm.Provider
	cfg              *config.Config
	publisherService IPublisherService
}

func NewConversationService(
	uowFactory unitofwork.RepositoryFactory,
	llmProvider llm.Provider,
	cfg *config.Config,
	publisherService IPublisherService,
) IConversationService {
	return &conversationService{
		uowFactory:       uowFactory,
		llmProvider:      llmProvider,
		cfg:              cfg,
		publisherService: publisherService,
	}
}

func (s *conversationService) ListSessions(ctx context.Context, page, limit int) (*dto.SessionListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	uow := s.uowFactory.NewUnitOfWork(ctx)

	overviews, err := uow.ChatHistoryRepository().ListOverviews(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	total, err := uow.ChatHistoryRepository().CountSessions(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.SessionListItem, 0, len(overviews))
	for _, ov := range overviews {
		item := &dto.SessionListItem{
			SessionId:     ov.SessionId,
			MessageCount:  ov.MessageCount,
			StartedAt:     ov.StartedAt,
			LastMessageAt: ov.LastMessageAt,
		}

		// Registry metadata is optional; absence is tolerated.
		session, err := uow.SessionRepository().FindOne(ctx, specification.ByStringID{ID: ov.SessionId})
		if err != nil {
			return nil, err
		}
		if session != nil {
			item.UserName = session.UserName
			item.UserEmail = session.UserEmail
		}

		summary, err := uow.ConversationSummaryRepository().FindOne(ctx, specification.BySessionID{SessionID: ov.SessionId})
		if err != nil {
			return nil, err
		}
		if summary != nil {
			item.Summary = summaryToDto(summary, true)
		}

		link, err := uow.CustomerSessionRepository().FindOne(ctx, specification.Filter("session_id", ov.SessionId))
		if err != nil {
			return nil, err
		}
		if link != nil {
			customer, err := uow.CustomerRepository().FindOne(ctx, specification.ByID{ID: link.CustomerId})
			if err != nil {
				return nil, err
			}
			if customer != nil {
				item.Customer = &dto.LinkedCustomerInfo{
					Id:   customer.Id.String(),
					Name: customer.Name,
				}
			}
		}

		items = append(items, item)
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &dto.SessionListResponse{
		Sessions:   items,
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}

func (s *conversationService) GetSession(ctx context.Context, sessionId string) (*dto.SessionDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.SessionRepository().FindOne(ctx, specification.ByStringID{ID: sessionId})
	if err != nil {
		return nil, err
	}

	messages, err := uow.ChatHistoryRepository().FindAll(ctx,
		specification.BySessionID{SessionID: sessionId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	if session == nil && len(messages) == 0 {
		return nil, ErrSessionNotFound
	}

	resp := &dto.SessionDetailResponse{
		SessionId: sessionId,
		Messages:  make([]*dto.MessageItem, 0, len(messages)),
	}
	if session != nil {
		resp.UserName = session.UserName
		resp.UserEmail = session.UserEmail
		resp.StartedAt = session.StartedAt
		resp.LastMessageAt = session.LastMessageAt
	} else if len(messages) > 0 {
		resp.StartedAt = messages[0].CreatedAt
		resp.LastMessageAt = messages[len(messages)-1].CreatedAt
	}

	for _, msg := range messages {
		resp.Messages = append(resp.Messages, &dto.MessageItem{
			Id:        msg.Id,
			Type:      msg.Payload.Type,
			Content:   msg.Payload.Content,
			ToolCalls: msg.Payload.ToolCalls,
			CreatedAt: msg.CreatedAt,
		})
	}

	return resp, nil
}

// GenerateSummary is cache-then-compute: an existing summary row wins
// unconditionally, otherwise the transcript goes through the structured LLM
// and the result is persisted. No locking; a concurrent first call that loses
// the race on the unique session index falls back to the winner's row.
func (s *conversationService) GenerateSummary(ctx context.Context, sessionId string) (*dto.SummaryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.ConversationSummaryRepository().FindOne(ctx, specification.BySessionID{SessionID: sessionId})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return summaryToDto(existing, true), nil
	}

	messages, err := uow.ChatHistoryRepository().FindAll(ctx,
		specification.BySessionID{SessionID: sessionId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}
	if len(messages) == 0 {
		return nil, ErrSessionNotFound
	}

	if s.llmProvider == nil {
		return nil, ErrLLMNotConfigured
	}

	transcript := BuildTranscript(messages)

	result, err := s.llmProvider.Summarize(ctx, summarySystemPrompt, transcript,
		llm.WithModel(s.cfg.Ai.SummaryModel),
		llm.WithTemperature(0.2))
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(result.CustomerName) == "" {
		result.CustomerName = "Unknown"
	}

	summary := &entity.ConversationSummary{
		Id:           uuid.New(),
		SessionId:    sessionId,
		CustomerName: result.CustomerName,
		PhoneNumber:  result.PhoneNumber,
		Summary:      result.Summary,
		NextAction:   result.NextAction,
		CreatedAt:    time.Now(),
	}
	if err := uow.ConversationSummaryRepository().Create(ctx, summary); err != nil {
		// A concurrent call won the unique-index race; serve its row.
		stored, findErr := uow.ConversationSummaryRepository().FindOne(ctx, specification.BySessionID{SessionID: sessionId})
		if findErr == nil && stored != nil {
			return summaryToDto(stored, true), nil
		}
		return nil, err
	}

	s.publisherService.PublishAudit(ctx, "SUMMARY_GENERATED", map[string]interface{}{
		"sessionId": sessionId,
	})

	return summaryToDto(summary, false), nil
}

func (s *conversationService) GetSummary(ctx context.Context, sessionId string) (*dto.SummaryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	summary, err := uow.ConversationSummaryRepository().FindOne(ctx, specification.BySessionID{SessionID: sessionId})
	if err != nil {
		return nil, err
	}
	if summary == nil {
		return nil, ErrSessionNotFound
	}
	return summaryToDto(summary, true), nil
}

// BuildTranscript renders the message log as a role-tagged transcript.
// The workflow writes "human" for customer turns; everything else is
// treated as an assistant turn.
func BuildTranscript(messages []*entity.ChatHistory) string {
	var b strings.Builder
	for _, msg := range messages {
		role := "assistant"
		if msg.Payload.Type == entity.MessageTypeHuman {
			role = "user"
		}
		fmt.Fprintf(&b, "%s: %s\n", role, msg.Payload.Content)
	}
	return b.String()
}

func summaryToDto(summary *entity.ConversationSummary, cached bool) *dto.SummaryResponse {
	return &dto.SummaryResponse{
		SessionId:    summary.SessionId,
		CustomerName: summary.CustomerName,
		PhoneNumber:  summary.PhoneNumber,
		Summary:      summary.Summary,
		NextAction:   summary.NextAction,
		Cached:       cached,
		CreatedAt:    summary.CreatedAt,
	}
}
