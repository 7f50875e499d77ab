package implementation

import (
	"context"
	"errors"

	"chatdesk-be/internal/entity"
	"chatdesk-be/internal/mapper"
	"chatdesk-be/internal/model"
	"chatdesk-be/internal/repository/contract"
	"chatdesk-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CustomerRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CrmMapper
}

func NewCustomerRepository(db *gorm.DB) contract.CustomerRepository {
	return &CustomerRepositoryImpl{
		db:     db,
		mapper: mapper.NewCrmMapper(),
	}
}

func (r *CustomerRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CustomerRepositoryImpl) Create(ctx context.Context, customer *entity.Customer) error {
	m := r.mapper.CustomerToModel(customer)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*customer = *r.mapper.CustomerToEntity(m)
	return nil
}

func (r *CustomerRepositoryImpl) Update(ctx context.Context, customer *entity.Customer) error {
	m := r.mapper.CustomerToModel(customer)
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *CustomerRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Customer{}, "id = ?", id).Error
}

func (r *CustomerRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Customer, error) {
	var m model.Customer
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.CustomerToEntity(&m), nil
}

type customerRow struct {
	model.Customer
	SessionCount int64
	InvoiceCount int64
}

func (r *CustomerRepositoryImpl) FindPage(ctx context.Context, specs ...specification.Specification) ([]*entity.Customer, error) {
	var rows []customerRow
	query := r.db.WithContext(ctx).
		Model(&model.Customer{}).
		Select(`customers.*,
			(SELECT COUNT(*) FROM customer_sessions cs WHERE cs.customer_id = customers.id) AS session_count,
			(SELECT COUNT(*) FROM invoices i WHERE i.customer_id = customers.id) AS invoice_count`)
	query = r.applySpecifications(query, specs...)
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}
	customers := make([]*entity.Customer, 0, len(rows))
	for i := range rows {
		c := r.mapper.CustomerToEntity(&rows[i].Customer)
		c.SessionCount = rows[i].SessionCount
		c.InvoiceCount = rows[i].InvoiceCount
		customers = append(customers, c)
	}
	return customers, nil
}

func (r *CustomerRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Customer{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

type CustomerSessionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CrmMapper
}

func NewCustomerSessionRepository(db *gorm.DB) contract.CustomerSessionRepository {
	return &CustomerSessionRepositoryImpl{
		db:     db,
		mapper: mapper.NewCrmMapper(),
	}
}

func (r *CustomerSessionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CustomerSessionRepositoryImpl) Create(ctx context.Context, link *entity.CustomerSession) error {
	m := r.mapper.CustomerSessionToModel(link)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*link = *r.mapper.CustomerSessionToEntity(m)
	return nil
}

func (r *CustomerSessionRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.CustomerSession{}, "id = ?", id).Error
}

func (r *CustomerSessionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CustomerSession, error) {
	var models []model.CustomerSession
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	links := make([]*entity.CustomerSession, 0, len(models))
	for i := range models {
		links = append(links, r.mapper.CustomerSessionToEntity(&models[i]))
	}
	return links, nil
}

func (r *CustomerSessionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CustomerSession, error) {
	var m model.CustomerSession
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.CustomerSessionToEntity(&m), nil
}
