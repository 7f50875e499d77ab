package entity

import (
	"time"

	"github.com/google/uuid"
)

type ConversationSummary struct {
	Id           uuid.UUID
	SessionId    string
	CustomerName string
	PhoneNumber  *string
	Summary      string
	NextAction   string
	CreatedAt    time.Time
}
