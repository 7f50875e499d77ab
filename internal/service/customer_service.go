package service

import (
	"context"
	"errors"
	"time"

	"chatdesk-be/internal/dto"
	"chatdesk-be/internal/entity"
	"chatdesk-be/internal/repository/specification"
	"chatdesk-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

var (
	ErrCustomerNotFound = errors.New("Customer not found")
	ErrLinkNotFound     = errors.New("Session link not found")
)

type ICustomerService interface {
	List(ctx context.Context, page, limit int, search string) (*dto.CustomerListResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.CustomerDetailResponse, error)
	Create(ctx context.Context, req *dto.CreateCustomerRequest) (*dto.CustomerResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateCustomerRequest) (*dto.CustomerResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	LinkSession(ctx context.Context, adminId *uuid.UUID, req *dto.LinkSessionRequest) (*dto.CustomerSessionResponse, error)
	UnlinkSession(ctx context.Context, linkId uuid.UUID) error
}

type customerService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
}

func NewCustomerService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
) ICustomerService {
	return &customerService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
	}
}

func (s *customerService) List(ctx context.Context, page, limit int, search string) (*dto.CustomerListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{}
	countSpecs := []specification.Specification{}
	if search != "" {
		specs = append(specs, specification.CustomerSearch{Term: search})
		countSpecs = append(countSpecs, specification.CustomerSearch{Term: search})
	}
	specs = append(specs,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)

	customers, err := uow.CustomerRepository().FindPage(ctx, specs...)
	if err != nil {
		return nil, err
	}

	total, err := uow.CustomerRepository().Count(ctx, countSpecs...)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		result = append(result, customerToDto(c))
	}

	return &dto.CustomerListResponse{
		Customers:  result,
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: int((total + int64(limit) - 1) / int64(limit)),
	}, nil
}

func (s *customerService) Get(ctx context.Context, id uuid.UUID) (*dto.CustomerDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	customer, err := uow.CustomerRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}

	links, err := uow.CustomerSessionRepository().FindAll(ctx,
		specification.Filter("customer_id", id),
		specification.OrderBy{Field: "linked_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	invoices, err := uow.InvoiceRepository().FindAll(ctx,
		specification.Filter("customer_id", id),
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	resp := &dto.CustomerDetailResponse{
		CustomerResponse: *customerToDto(customer),
		Sessions:         make([]*dto.CustomerSessionResponse, 0, len(links)),
		Invoices:         make([]*dto.InvoiceResponse, 0, len(invoices)),
	}
	resp.SessionCount = int64(len(links))
	resp.InvoiceCount = int64(len(invoices))

	for _, link := range links {
		resp.Sessions = append(resp.Sessions, linkToDto(link))
	}
	for _, inv := range invoices {
		resp.Invoices = append(resp.Invoices, invoiceToDto(inv))
	}

	return resp, nil
}

func (s *customerService) Create(ctx context.Context, req *dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	now := time.Now()
	customer := &entity.Customer{
		Id:        uuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Company:   req.Company,
		Notes:     req.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uow.CustomerRepository().Create(ctx, customer); err != nil {
		return nil, err
	}

	s.publisherService.PublishAudit(ctx, "CUSTOMER_CREATED", map[string]interface{}{
		"customerId": customer.Id.String(),
		"name":       customer.Name,
	})

	return customerToDto(customer), nil
}

func (s *customerService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	customer, err := uow.CustomerRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}

	if req.Name != nil {
		customer.Name = *req.Name
	}
	if req.Email != nil {
		customer.Email = req.Email
	}
	if req.Phone != nil {
		customer.Phone = req.Phone
	}
	if req.Company != nil {
		customer.Company = req.Company
	}
	if req.Notes != nil {
		customer.Notes = req.Notes
	}
	customer.UpdatedAt = time.Now()

	if err := uow.CustomerRepository().Update(ctx, customer); err != nil {
		return nil, err
	}
	return customerToDto(customer), nil
}

func (s *customerService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	customer, err := uow.CustomerRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if customer == nil {
		return ErrCustomerNotFound
	}
	return uow.CustomerRepository().Delete(ctx, id)
}

func (s *customerService) LinkSession(ctx context.Context, adminId *uuid.UUID, req *dto.LinkSessionRequest) (*dto.CustomerSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	customerId, err := uuid.Parse(req.CustomerId)
	if err != nil {
		return nil, ErrCustomerNotFound
	}
	customer, err := uow.CustomerRepository().FindOne(ctx, specification.ByID{ID: customerId})
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}

	link := &entity.CustomerSession{
		Id:         uuid.New(),
		CustomerId: customerId,
		SessionId:  req.SessionId,
		LinkedBy:   adminId,
		Notes:      req.Notes,
		LinkedAt:   time.Now(),
	}
	if err := uow.CustomerSessionRepository().Create(ctx, link); err != nil {
		return nil, err
	}

	return linkToDto(link), nil
}

func (s *customerService) UnlinkSession(ctx context.Context, linkId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	link, err := uow.CustomerSessionRepository().FindOne(ctx, specification.ByID{ID: linkId})
	if err != nil {
		return err
	}
	if link == nil {
		return ErrLinkNotFound
	}
	return uow.CustomerSessionRepository().Delete(ctx, linkId)
}

func customerToDto(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		Id:           c.Id,
		Name:         c.Name,
		Email:        c.Email,
		Phone:        c.Phone,
		Company:      c.Company,
		Notes:        c.Notes,
		SessionCount: c.SessionCount,
		InvoiceCount: c.InvoiceCount,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func linkToDto(link *entity.CustomerSession) *dto.CustomerSessionResponse {
	return &dto.CustomerSessionResponse{
		Id:         link.Id,
		CustomerId: link.CustomerId,
		SessionId:  link.SessionId,
		Notes:      link.Notes,
		LinkedAt:   link.LinkedAt,
	}
}
