package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type FreeZoneIntegration struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string         `gorm:"type:varchar(255);not null"`
	Code        string         `gorm:"type:varchar(64);uniqueIndex;not null"` // lowercase
	ApiEndpoint *string        `gorm:"type:varchar(500)"`
	ApiKey      *string        `gorm:"type:varchar(255)"`
	IsActive    bool           `gorm:"not null;default:false"`
	Config      datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
}

func (FreeZoneIntegration) TableName() string {
	return "free_zone_integrations"
}
