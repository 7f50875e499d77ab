package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	InvoiceStatusDraft      = "draft"
	InvoiceStatusSent       = "sent"
	InvoiceStatusInProgress = "in_progress"
	InvoiceStatusPaid       = "paid"
)

type Invoice struct {
	Id            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CustomerId    *uuid.UUID `gorm:"type:uuid;index"`
	Customer      *Customer  `gorm:"foreignKey:CustomerId"`
	InvoiceNumber string     `gorm:"type:varchar(64);not null"`
	Amount        float64    `gorm:"type:numeric(12,2);not null"`
	Currency      string     `gorm:"type:varchar(8);not null;default:'AED'"`
	Status        string     `gorm:"type:varchar(20);not null;default:'draft';index"`
	Description   *string    `gorm:"type:text"`
	DueDate       *time.Time
	SentAt        *time.Time
	CreatedAt     time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

func (Invoice) TableName() string {
	return "invoices"
}
