package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"chatdesk-be/internal/config"
	"chatdesk-be/internal/dto"
	"chatdesk-be/internal/entity"
	"chatdesk-be/internal/repository/contract"
	"chatdesk-be/internal/repository/specification"
	"chatdesk-be/pkg/aiwebhook"

	"github.com/stretchr/testify/assert"
)

type stubSessionRepo struct {
	contract.SessionRepository
	session *entity.Session
}

func (r *stubSessionRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Session, error) {
	return r.session, nil
}

type stubSessionUow struct {
	stubUnitOfWork
	sessions *stubSessionRepo
}

func (u *stubSessionUow) SessionRepository() contract.SessionRepository {
	return u.sessions
}

func newChatService(webhookURL string, session *entity.Session) IChatService {
	cfg := &config.Config{Ai: config.AIConfig{WebhookURL: webhookURL}}
	uow := &stubSessionUow{sessions: &stubSessionRepo{session: session}}
	return NewChatService(&stubFactory{uow: uow}, aiwebhook.NewClient(), cfg)
}

func TestChatSendGuestEnvelope(t *testing.T) {
	var received map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Write([]byte(`{"output": "reply"}`))
	}))
	defer srv.Close()

	svc := newChatService(srv.URL, nil)
	res, err := svc.Send(context.Background(), &dto.ChatSendRequest{
		SessionId: "session-1",
		Message:   "hello there",
	})

	assert.NoError(t, err)
	assert.Equal(t, "reply", res.Reply)

	// The workflow contract mirrors the message into systemPrompt and tags
	// every turn with a fresh message id.
	assert.Equal(t, "hello there", received["systemPrompt"])
	assert.Equal(t, "hello there", received["chatInput"])
	assert.Equal(t, "session-1", received["chat_id"])
	assert.NotEmpty(t, received["message_id"])
	assert.Equal(t, "user", received["user_role"])
	assert.Equal(t, "guest@oqta.ai", received["user_email"])
	assert.Equal(t, "Guest User", received["user_name"])
}

func TestChatSendKnownSessionEnvelope(t *testing.T) {
	var received map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Write([]byte(`{"output": "reply"}`))
	}))
	defer srv.Close()

	userId := "u-1"
	email := "jane@example.com"
	name := "Jane"
	svc := newChatService(srv.URL, &entity.Session{
		Id:            "session-1",
		UserId:        &userId,
		UserEmail:     &email,
		UserName:      &name,
		StartedAt:     time.Now(),
		LastMessageAt: time.Now(),
	})

	_, err := svc.Send(context.Background(), &dto.ChatSendRequest{
		SessionId: "session-1",
		Message:   "hi",
	})

	assert.NoError(t, err)
	assert.Equal(t, "u-1", received["user_id"])
	assert.Equal(t, "jane@example.com", received["user_email"])
	assert.Equal(t, "Jane", received["user_name"])
	assert.Equal(t, "user", received["user_role"])
}

func TestChatSendWebhookUnconfigured(t *testing.T) {
	svc := newChatService("", nil)

	_, err := svc.Send(context.Background(), &dto.ChatSendRequest{
		SessionId: "session-1",
		Message:   "hi",
	})

	assert.ErrorIs(t, err, ErrWebhookNotConfigured)
}
