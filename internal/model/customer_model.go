package model

import (
	"time"

	"github.com/google/uuid"
)

type Customer struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Email     *string   `gorm:"type:varchar(255)"`
	Phone     *string   `gorm:"type:varchar(32)"`
	Company   *string   `gorm:"type:varchar(255)"`
	Notes     *string   `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	Sessions []CustomerSession `gorm:"foreignKey:CustomerId;constraint:OnDelete:CASCADE"`
	Invoices []Invoice         `gorm:"foreignKey:CustomerId"`
}

func (Customer) TableName() string {
	return "customers"
}
