package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateCustomerRequest struct {
	Name    string  `json:"name" validate:"required"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Company *string `json:"company"`
	Notes   *string `json:"notes"`
}

type UpdateCustomerRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Company *string `json:"company"`
	Notes   *string `json:"notes"`
}

type CustomerResponse struct {
	Id           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        *string   `json:"email"`
	Phone        *string   `json:"phone"`
	Company      *string   `json:"company"`
	Notes        *string   `json:"notes"`
	SessionCount int64     `json:"sessionCount"`
	InvoiceCount int64     `json:"invoiceCount"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type CustomerListResponse struct {
	Customers  []*CustomerResponse `json:"customers"`
	Page       int                 `json:"page"`
	Limit      int                 `json:"limit"`
	Total      int64               `json:"total"`
	TotalPages int                 `json:"totalPages"`
}

type CustomerDetailResponse struct {
	CustomerResponse
	Sessions []*CustomerSessionResponse `json:"sessions"`
	Invoices []*InvoiceResponse         `json:"invoices"`
}

type LinkSessionRequest struct {
	CustomerId string  `json:"customerId" validate:"required,uuid"`
	SessionId  string  `json:"sessionId" validate:"required"`
	Notes      *string `json:"notes"`
}

type CustomerSessionResponse struct {
	Id         uuid.UUID `json:"id"`
	CustomerId uuid.UUID `json:"customerId"`
	SessionId  string    `json:"sessionId"`
	Notes      *string   `json:"notes"`
	LinkedAt   time.Time `json:"linkedAt"`
}
