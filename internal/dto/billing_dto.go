package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateInvoiceRequest struct {
	CustomerId    *string    `json:"customerId"`
	InvoiceNumber string     `json:"invoiceNumber" validate:"required"`
	Amount        float64    `json:"amount" validate:"required,gt=0"`
	Currency      string     `json:"currency"`
	Description   *string    `json:"description"`
	DueDate       *time.Time `json:"dueDate"`
}

type UpdateInvoiceRequest struct {
	CustomerId  *string    `json:"customerId"`
	Amount      *float64   `json:"amount"`
	Currency    *string    `json:"currency"`
	Status      *string    `json:"status"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
}

type InvoiceResponse struct {
	Id            uuid.UUID         `json:"id"`
	CustomerId    *uuid.UUID        `json:"customerId"`
	Customer      *CustomerResponse `json:"customer,omitempty"`
	InvoiceNumber string            `json:"invoiceNumber"`
	Amount        float64           `json:"amount"`
	Currency      string            `json:"currency"`
	Status        string            `json:"status"`
	Description   *string           `json:"description"`
	DueDate       *time.Time        `json:"dueDate"`
	SentAt        *time.Time        `json:"sentAt"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

type InvoiceListResponse struct {
	Invoices []*InvoiceResponse `json:"invoices"`
	Total    int64              `json:"total"`
}
