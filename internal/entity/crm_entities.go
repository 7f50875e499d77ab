package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type Customer struct {
	Id        uuid.UUID
	Name      string
	Email     *string
	Phone     *string
	Company   *string
	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time

	// Derived counters, populated by list queries only.
	SessionCount int64
	InvoiceCount int64
}

type Invoice struct {
	Id            uuid.UUID
	CustomerId    *uuid.UUID
	Customer      *Customer
	InvoiceNumber string
	Amount        float64
	Currency      string
	Status        string
	Description   *string
	DueDate       *time.Time
	SentAt        *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type CustomerSession struct {
	Id         uuid.UUID
	CustomerId uuid.UUID
	SessionId  string
	LinkedBy   *uuid.UUID
	Notes      *string
	LinkedAt   time.Time
}

type FreeZoneIntegration struct {
	Id          uuid.UUID
	Name        string
	Code        string
	ApiEndpoint *string
	ApiKey      *string
	IsActive    bool
	Config      json.RawMessage
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Setting struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}
