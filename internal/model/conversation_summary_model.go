package model

import (
	"time"

	"github.com/google/uuid"
)

// ConversationSummary is a strict cache: at most one row per session,
// created lazily and never regenerated. The unique index on session_id is
// what surfaces the double-generation race under concurrent first requests.
type ConversationSummary struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId    string    `gorm:"type:varchar(64);uniqueIndex;not null"`
	CustomerName string    `gorm:"type:varchar(255);not null"`
	PhoneNumber  *string   `gorm:"type:varchar(32)"`
	Summary      string    `gorm:"type:text;not null"`
	NextAction   string    `gorm:"type:text;not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (ConversationSummary) TableName() string {
	return "conversation_summaries"
}
