package model

import (
	"time"

	"github.com/google/uuid"
)

// CustomerSession links a CRM customer to a chat session. The session side
// is a bare string id because sessions live in the registry table keyed by
// the widget-supplied identifier.
type CustomerSession struct {
	Id         uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CustomerId uuid.UUID  `gorm:"type:uuid;not null;index"`
	SessionId  string     `gorm:"type:varchar(64);not null;index"`
	LinkedBy   *uuid.UUID `gorm:"type:uuid"`
	Notes      *string    `gorm:"type:text"`
	LinkedAt   time.Time  `gorm:"autoCreateTime"`
}

func (CustomerSession) TableName() string {
	return "customer_sessions"
}
