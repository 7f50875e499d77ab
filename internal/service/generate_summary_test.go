package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"chatdesk-be/internal/config"
	"chatdesk-be/internal/entity"
	"chatdesk-be/internal/repository/contract"
	"chatdesk-be/internal/repository/specification"
	"chatdesk-be/internal/repository/unitofwork"
	"chatdesk-be/pkg/llm"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubSummaryRepo struct {
	contract.ConversationSummaryRepository
	findResults []*entity.ConversationSummary
	createErr   error
	created     *entity.ConversationSummary
}

func (r *stubSummaryRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ConversationSummary, error) {
	if len(r.findResults) == 0 {
		return nil, nil
	}
	head := r.findResults[0]
	r.findResults = r.findResults[1:]
	return head, nil
}

func (r *stubSummaryRepo) Create(ctx context.Context, summary *entity.ConversationSummary) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.created = summary
	return nil
}

type stubHistoryRepo struct {
	contract.ChatHistoryRepository
	messages []*entity.ChatHistory
}

func (r *stubHistoryRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatHistory, error) {
	return r.messages, nil
}

type stubUnitOfWork struct {
	unitofwork.UnitOfWork
	summaries *stubSummaryRepo
	histories *stubHistoryRepo
}

func (u *stubUnitOfWork) ConversationSummaryRepository() contract.ConversationSummaryRepository {
	return u.summaries
}

func (u *stubUnitOfWork) ChatHistoryRepository() contract.ChatHistoryRepository {
	return u.histories
}

type stubFactory struct {
	uow unitofwork.UnitOfWork
}

func (f *stubFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

type stubLLM struct {
	result *llm.SummaryResult
	err    error
	calls  int
}

func (p *stubLLM) Summarize(ctx context.Context, systemPrompt, transcript string, options ...llm.Option) (*llm.SummaryResult, error) {
	p.calls++
	return p.result, p.err
}

type noopPublisher struct{}

func (noopPublisher) Publish(ctx context.Context, payload []byte) error { return nil }
func (noopPublisher) PublishAudit(ctx context.Context, eventType string, details map[string]interface{}) {
}

func summaryTestConfig() *config.Config {
	return &config.Config{Ai: config.AIConfig{SummaryModel: "gpt-4o-mini"}}
}

func humanMessage(content string) *entity.ChatHistory {
	return &entity.ChatHistory{
		Payload:   entity.MessagePayload{Type: entity.MessageTypeHuman, Content: content},
		CreatedAt: time.Now(),
	}
}

func TestGenerateSummaryCached(t *testing.T) {
	stored := &entity.ConversationSummary{
		Id:           uuid.New(),
		SessionId:    "session-1",
		CustomerName: "Jane",
		Summary:      "Asked about visas.",
		NextAction:   "Follow up",
		CreatedAt:    time.Now(),
	}
	provider := &stubLLM{}
	svc := NewConversationService(
		&stubFactory{uow: &stubUnitOfWork{
			summaries: &stubSummaryRepo{findResults: []*entity.ConversationSummary{stored, stored}},
			histories: &stubHistoryRepo{},
		}},
		provider,
		summaryTestConfig(),
		noopPublisher{},
	)

	res, err := svc.GenerateSummary(context.Background(), "session-1")

	assert.NoError(t, err)
	assert.True(t, res.Cached)
	assert.Equal(t, "Jane", res.CustomerName)
	// A cached summary never touches the model.
	assert.Equal(t, 0, provider.calls)

	// Repeat calls keep serving the same row unchanged.
	again, err := svc.GenerateSummary(context.Background(), "session-1")
	assert.NoError(t, err)
	assert.True(t, again.Cached)
	assert.Equal(t, res.Summary, again.Summary)
}

func TestGenerateSummaryNoMessages(t *testing.T) {
	svc := NewConversationService(
		&stubFactory{uow: &stubUnitOfWork{
			summaries: &stubSummaryRepo{},
			histories: &stubHistoryRepo{},
		}},
		&stubLLM{},
		summaryTestConfig(),
		noopPublisher{},
	)

	_, err := svc.GenerateSummary(context.Background(), "empty-session")

	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestGenerateSummaryProviderMissing(t *testing.T) {
	svc := NewConversationService(
		&stubFactory{uow: &stubUnitOfWork{
			summaries: &stubSummaryRepo{},
			histories: &stubHistoryRepo{messages: []*entity.ChatHistory{humanMessage("hi")}},
		}},
		nil,
		summaryTestConfig(),
		noopPublisher{},
	)

	_, err := svc.GenerateSummary(context.Background(), "session-1")

	assert.ErrorIs(t, err, ErrLLMNotConfigured)
}

func TestGenerateSummaryFirstCall(t *testing.T) {
	phone := "+971501234567"
	repo := &stubSummaryRepo{}
	svc := NewConversationService(
		&stubFactory{uow: &stubUnitOfWork{
			summaries: repo,
			histories: &stubHistoryRepo{messages: []*entity.ChatHistory{humanMessage("I need a quote")}},
		}},
		&stubLLM{result: &llm.SummaryResult{
			CustomerName: "Jane",
			PhoneNumber:  &phone,
			Summary:      "Wants a quote.",
			NextAction:   "Send pricing",
		}},
		summaryTestConfig(),
		noopPublisher{},
	)

	res, err := svc.GenerateSummary(context.Background(), "session-1")

	assert.NoError(t, err)
	assert.False(t, res.Cached)
	assert.Equal(t, "Jane", res.CustomerName)
	assert.NotNil(t, repo.created)
	assert.Equal(t, "session-1", repo.created.SessionId)
}

func TestGenerateSummaryBlankNameFallback(t *testing.T) {
	svc := NewConversationService(
		&stubFactory{uow: &stubUnitOfWork{
			summaries: &stubSummaryRepo{},
			histories: &stubHistoryRepo{messages: []*entity.ChatHistory{humanMessage("hi")}},
		}},
		&stubLLM{result: &llm.SummaryResult{
			CustomerName: "  ",
			Summary:      "Short chat.",
			NextAction:   "None",
		}},
		summaryTestConfig(),
		noopPublisher{},
	)

	res, err := svc.GenerateSummary(context.Background(), "session-1")

	assert.NoError(t, err)
	assert.Equal(t, "Unknown", res.CustomerName)
}

func TestGenerateSummaryInsertRaceFallsBack(t *testing.T) {
	winner := &entity.ConversationSummary{
		Id:           uuid.New(),
		SessionId:    "session-1",
		CustomerName: "Jane",
		Summary:      "Winner's summary.",
		NextAction:   "Follow up",
		CreatedAt:    time.Now(),
	}
	// First FindOne misses, Create hits the unique index, second FindOne
	// returns the row the concurrent winner stored.
	repo := &stubSummaryRepo{
		findResults: []*entity.ConversationSummary{nil, winner},
		createErr:   errors.New("duplicate key value violates unique constraint"),
	}
	svc := NewConversationService(
		&stubFactory{uow: &stubUnitOfWork{
			summaries: repo,
			histories: &stubHistoryRepo{messages: []*entity.ChatHistory{humanMessage("hi")}},
		}},
		&stubLLM{result: &llm.SummaryResult{
			CustomerName: "Loser",
			Summary:      "Loser's summary.",
			NextAction:   "None",
		}},
		summaryTestConfig(),
		noopPublisher{},
	)

	res, err := svc.GenerateSummary(context.Background(), "session-1")

	assert.NoError(t, err)
	assert.True(t, res.Cached)
	assert.Equal(t, "Winner's summary.", res.Summary)
}
