package model

import (
	"time"

	"gorm.io/datatypes"
)

// ChatHistory rows are written by the external workflow engine, one per
// message. This codebase only reads them. Message is the engine's opaque
// payload: {type, content, tool_calls, additional_kwargs, ...}.
type ChatHistory struct {
	Id        int64          `gorm:"primaryKey;autoIncrement"`
	SessionId string         `gorm:"type:varchar(64);not null;index"`
	Message   datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt time.Time      `gorm:"autoCreateTime;index"`
}

func (ChatHistory) TableName() string {
	return "chat_histories"
}
