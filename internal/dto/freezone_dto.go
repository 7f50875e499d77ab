package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type CreateFreeZoneRequest struct {
	Name        string          `json:"name" validate:"required"`
	Code        string          `json:"code" validate:"required"`
	ApiEndpoint *string         `json:"apiEndpoint"`
	ApiKey      *string         `json:"apiKey"`
	IsActive    *bool           `json:"isActive"`
	Config      json.RawMessage `json:"config"`
}

type UpdateFreeZoneRequest struct {
	Name        *string         `json:"name"`
	Code        *string         `json:"code"`
	ApiEndpoint *string         `json:"apiEndpoint"`
	ApiKey      *string         `json:"apiKey"`
	IsActive    *bool           `json:"isActive"`
	Config      json.RawMessage `json:"config"`
}

type FreeZoneResponse struct {
	Id          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Code        string          `json:"code"`
	ApiEndpoint *string         `json:"apiEndpoint"`
	ApiKey      *string         `json:"apiKey"`
	IsActive    bool            `json:"isActive"`
	Config      json.RawMessage `json:"config"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
