package mapper

import (
	"encoding/json"

	"chatdesk-be/internal/entity"
	"chatdesk-be/internal/model"

	"gorm.io/datatypes"
)

type ConversationMapper struct{}

func NewConversationMapper() *ConversationMapper {
	return &ConversationMapper{}
}

// Session Mappers

func (m *ConversationMapper) SessionToEntity(s *model.Session) *entity.Session {
	if s == nil {
		return nil
	}
	return &entity.Session{
		Id:            s.Id,
		UserId:        s.UserId,
		UserEmail:     s.UserEmail,
		UserName:      s.UserName,
		StartedAt:     s.StartedAt,
		LastMessageAt: s.LastMessageAt,
	}
}

func (m *ConversationMapper) SessionToModel(s *entity.Session) *model.Session {
	if s == nil {
		return nil
	}
	return &model.Session{
		Id:            s.Id,
		UserId:        s.UserId,
		UserEmail:     s.UserEmail,
		UserName:      s.UserName,
		StartedAt:     s.StartedAt,
		LastMessageAt: s.LastMessageAt,
	}
}

// Message Mappers

// ChatHistoryToEntity parses the workflow JSON payload. A malformed payload
// yields an empty body rather than an error; the rows are external input.
func (m *ConversationMapper) ChatHistoryToEntity(h *model.ChatHistory) *entity.ChatHistory {
	if h == nil {
		return nil
	}

	var payload entity.MessagePayload
	if len(h.Message) > 0 {
		_ = json.Unmarshal(h.Message, &payload)
	}

	return &entity.ChatHistory{
		Id:        h.Id,
		SessionId: h.SessionId,
		Payload:   payload,
		CreatedAt: h.CreatedAt,
	}
}

func (m *ConversationMapper) ChatHistoryToModel(h *entity.ChatHistory) *model.ChatHistory {
	if h == nil {
		return nil
	}

	raw, _ := json.Marshal(h.Payload)

	return &model.ChatHistory{
		Id:        h.Id,
		SessionId: h.SessionId,
		Message:   datatypes.JSON(raw),
		CreatedAt: h.CreatedAt,
	}
}

// Summary Mappers

func (m *ConversationMapper) SummaryToEntity(s *model.ConversationSummary) *entity.ConversationSummary {
	if s == nil {
		return nil
	}
	return &entity.ConversationSummary{
		Id:           s.Id,
		SessionId:    s.SessionId,
		CustomerName: s.CustomerName,
		PhoneNumber:  s.PhoneNumber,
		Summary:      s.Summary,
		NextAction:   s.NextAction,
		CreatedAt:    s.CreatedAt,
	}
}

func (m *ConversationMapper) SummaryToModel(s *entity.ConversationSummary) *model.ConversationSummary {
	if s == nil {
		return nil
	}
	return &model.ConversationSummary{
		Id:           s.Id,
		SessionId:    s.SessionId,
		CustomerName: s.CustomerName,
		PhoneNumber:  s.PhoneNumber,
		Summary:      s.Summary,
		NextAction:   s.NextAction,
		CreatedAt:    s.CreatedAt,
	}
}
