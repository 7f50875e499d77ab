package service

import (
	"context"
	"errors"
	"log"
	"time"

	"chatdesk-be/internal/dto"
	"chatdesk-be/internal/entity"
	"chatdesk-be/internal/model"
	"chatdesk-be/internal/pkg/mailer"
	"chatdesk-be/internal/repository/specification"
	"chatdesk-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

var ErrInvoiceNotFound = errors.New("Invoice not found")

type IBillingService interface {
	List(ctx context.Context, status, customerId string) (*dto.InvoiceListResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.InvoiceResponse, error)
	Create(ctx context.Context, req *dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error)
	Send(ctx context.Context, id uuid.UUID) (*dto.InvoiceResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type billingService struct {
	uowFactory       unitofwork.RepositoryFactory
	emailService     mailer.IEmailService
	publisherService IPublisherService
}

func NewBillingService(
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
	publisherService IPublisherService,
) IBillingService {
	return &billingService{
		uowFactory:       uowFactory,
		emailService:     emailService,
		publisherService: publisherService,
	}
}

func (s *billingService) List(ctx context.Context, status, customerId string) (*dto.InvoiceListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{}
	if status != "" {
		specs = append(specs, specification.Filter("status", status))
	}
	if customerId != "" {
		if id, err := uuid.Parse(customerId); err == nil {
			specs = append(specs, specification.Filter("customer_id", id))
		}
	}
	countSpecs := make([]specification.Specification, len(specs))
	copy(countSpecs, specs)

	specs = append(specs, specification.OrderBy{Field: "created_at", Desc: true})

	invoices, err := uow.InvoiceRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	total, err := uow.InvoiceRepository().Count(ctx, countSpecs...)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		result = append(result, invoiceToDto(inv))
	}

	return &dto.InvoiceListResponse{
		Invoices: result,
		Total:    total,
	}, nil
}

func (s *billingService) Get(ctx context.Context, id uuid.UUID) (*dto.InvoiceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	invoice, err := uow.InvoiceRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, ErrInvoiceNotFound
	}
	return invoiceToDto(invoice), nil
}

func (s *billingService) Create(ctx context.Context, req *dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	currency := req.Currency
	if currency == "" {
		currency = "AED"
	}

	now := time.Now()
	invoice := &entity.Invoice{
		Id:            uuid.New(),
		InvoiceNumber: req.InvoiceNumber,
		Amount:        req.Amount,
		Currency:      currency,
		Status:        model.InvoiceStatusDraft,
		Description:   req.Description,
		DueDate:       req.DueDate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if req.CustomerId != nil {
		if customerId, err := uuid.Parse(*req.CustomerId); err == nil {
			invoice.CustomerId = &customerId
		}
	}

	if err := uow.InvoiceRepository().Create(ctx, invoice); err != nil {
		return nil, err
	}

	s.publisherService.PublishAudit(ctx, "INVOICE_CREATED", map[string]interface{}{
		"invoiceId":     invoice.Id.String(),
		"invoiceNumber": invoice.InvoiceNumber,
		"amount":        invoice.Amount,
	})

	return invoiceToDto(invoice), nil
}

func (s *billingService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	invoice, err := uow.InvoiceRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, ErrInvoiceNotFound
	}

	if req.CustomerId != nil {
		if customerId, err := uuid.Parse(*req.CustomerId); err == nil {
			invoice.CustomerId = &customerId
		}
	}
	if req.Amount != nil {
		invoice.Amount = *req.Amount
	}
	if req.Currency != nil {
		invoice.Currency = *req.Currency
	}
	if req.Status != nil {
		invoice.Status = *req.Status
	}
	if req.Description != nil {
		invoice.Description = req.Description
	}
	if req.DueDate != nil {
		invoice.DueDate = req.DueDate
	}
	invoice.UpdatedAt = time.Now()

	if err := uow.InvoiceRepository().Update(ctx, invoice); err != nil {
		return nil, err
	}
	return invoiceToDto(invoice), nil
}

// Send marks the invoice sent and emails it when the linked customer has an
// email address. Email failure does not roll the status back.
func (s *billingService) Send(ctx context.Context, id uuid.UUID) (*dto.InvoiceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	invoice, err := uow.InvoiceRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, ErrInvoiceNotFound
	}

	now := time.Now()
	invoice.Status = model.InvoiceStatusSent
	invoice.SentAt = &now
	invoice.UpdatedAt = now

	if err := uow.InvoiceRepository().Update(ctx, invoice); err != nil {
		return nil, err
	}

	if invoice.Customer != nil && invoice.Customer.Email != nil {
		description := ""
		if invoice.Description != nil {
			description = *invoice.Description
		}
		if err := s.emailService.SendInvoice(
			*invoice.Customer.Email,
			invoice.InvoiceNumber,
			invoice.Amount,
			invoice.Currency,
			description,
		); err != nil {
			log.Printf("[WARN] Failed to email invoice %s: %v", invoice.InvoiceNumber, err)
		}
	}

	s.publisherService.PublishAudit(ctx, "INVOICE_SENT", map[string]interface{}{
		"invoiceId":     invoice.Id.String(),
		"invoiceNumber": invoice.InvoiceNumber,
	})

	return invoiceToDto(invoice), nil
}

func (s *billingService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	invoice, err := uow.InvoiceRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if invoice == nil {
		return ErrInvoiceNotFound
	}
	return uow.InvoiceRepository().Delete(ctx, id)
}

func invoiceToDto(inv *entity.Invoice) *dto.InvoiceResponse {
	resp := &dto.InvoiceResponse{
		Id:            inv.Id,
		CustomerId:    inv.CustomerId,
		InvoiceNumber: inv.InvoiceNumber,
		Amount:        inv.Amount,
		Currency:      inv.Currency,
		Status:        inv.Status,
		Description:   inv.Description,
		DueDate:       inv.DueDate,
		SentAt:        inv.SentAt,
		CreatedAt:     inv.CreatedAt,
		UpdatedAt:     inv.UpdatedAt,
	}
	if inv.Customer != nil {
		resp.Customer = customerToDto(inv.Customer)
	}
	return resp
}
