package model

import (
	"time"
)

// Session is the conversation registry. The id is supplied by the landing
// page widget, not generated here. Rows are created on first message and
// never deleted by this system.
type Session struct {
	Id            string    `gorm:"type:varchar(64);primaryKey"`
	UserId        *string   `gorm:"type:varchar(64)"`
	UserEmail     *string   `gorm:"type:varchar(255)"`
	UserName      *string   `gorm:"type:varchar(255)"`
	StartedAt     time.Time `gorm:"not null"`
	LastMessageAt time.Time `gorm:"not null;index"`
}

func (Session) TableName() string {
	return "sessions"
}
