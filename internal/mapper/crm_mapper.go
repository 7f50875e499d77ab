package mapper

import (
	"encoding/json"

	"chatdesk-be/internal/entity"
	"chatdesk-be/internal/model"

	"gorm.io/datatypes"
)

type CrmMapper struct{}

func NewCrmMapper() *CrmMapper {
	return &CrmMapper{}
}

func (m *CrmMapper) CustomerToEntity(c *model.Customer) *entity.Customer {
	if c == nil {
		return nil
	}
	return &entity.Customer{
		Id:        c.Id,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Company:   c.Company,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (m *CrmMapper) CustomerToModel(c *entity.Customer) *model.Customer {
	if c == nil {
		return nil
	}
	return &model.Customer{
		Id:        c.Id,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Company:   c.Company,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (m *CrmMapper) InvoiceToEntity(i *model.Invoice) *entity.Invoice {
	if i == nil {
		return nil
	}
	return &entity.Invoice{
		Id:            i.Id,
		CustomerId:    i.CustomerId,
		Customer:      m.CustomerToEntity(i.Customer),
		InvoiceNumber: i.InvoiceNumber,
		Amount:        i.Amount,
		Currency:      i.Currency,
		Status:        i.Status,
		Description:   i.Description,
		DueDate:       i.DueDate,
		SentAt:        i.SentAt,
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     i.UpdatedAt,
	}
}

func (m *CrmMapper) InvoiceToModel(i *entity.Invoice) *model.Invoice {
	if i == nil {
		return nil
	}
	return &model.Invoice{
		Id:            i.Id,
		CustomerId:    i.CustomerId,
		InvoiceNumber: i.InvoiceNumber,
		Amount:        i.Amount,
		Currency:      i.Currency,
		Status:        i.Status,
		Description:   i.Description,
		DueDate:       i.DueDate,
		SentAt:        i.SentAt,
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     i.UpdatedAt,
	}
}

func (m *CrmMapper) CustomerSessionToEntity(cs *model.CustomerSession) *entity.CustomerSession {
	if cs == nil {
		return nil
	}
	return &entity.CustomerSession{
		Id:         cs.Id,
		CustomerId: cs.CustomerId,
		SessionId:  cs.SessionId,
		LinkedBy:   cs.LinkedBy,
		Notes:      cs.Notes,
		LinkedAt:   cs.LinkedAt,
	}
}

func (m *CrmMapper) CustomerSessionToModel(cs *entity.CustomerSession) *model.CustomerSession {
	if cs == nil {
		return nil
	}
	return &model.CustomerSession{
		Id:         cs.Id,
		CustomerId: cs.CustomerId,
		SessionId:  cs.SessionId,
		LinkedBy:   cs.LinkedBy,
		Notes:      cs.Notes,
		LinkedAt:   cs.LinkedAt,
	}
}

func (m *CrmMapper) FreeZoneToEntity(f *model.FreeZoneIntegration) *entity.FreeZoneIntegration {
	if f == nil {
		return nil
	}
	return &entity.FreeZoneIntegration{
		Id:          f.Id,
		Name:        f.Name,
		Code:        f.Code,
		ApiEndpoint: f.ApiEndpoint,
		ApiKey:      f.ApiKey,
		IsActive:    f.IsActive,
		Config:      json.RawMessage(f.Config),
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}

func (m *CrmMapper) FreeZoneToModel(f *entity.FreeZoneIntegration) *model.FreeZoneIntegration {
	if f == nil {
		return nil
	}
	cfg := f.Config
	if len(cfg) == 0 {
		cfg = json.RawMessage("{}")
	}
	return &model.FreeZoneIntegration{
		Id:          f.Id,
		Name:        f.Name,
		Code:        f.Code,
		ApiEndpoint: f.ApiEndpoint,
		ApiKey:      f.ApiKey,
		IsActive:    f.IsActive,
		Config:      datatypes.JSON(cfg),
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}

func (m *CrmMapper) SettingToEntity(s *model.Setting) *entity.Setting {
	if s == nil {
		return nil
	}
	return &entity.Setting{Key: s.Key, Value: s.Value, UpdatedAt: s.UpdatedAt}
}

func (m *CrmMapper) AdminUserToEntity(a *model.AdminUser) *entity.AdminUser {
	if a == nil {
		return nil
	}
	return &entity.AdminUser{
		Id:           a.Id,
		Email:        a.Email,
		PasswordHash: a.Password,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func (m *CrmMapper) AdminUserToModel(a *entity.AdminUser) *model.AdminUser {
	if a == nil {
		return nil
	}
	return &model.AdminUser{
		Id:        a.Id,
		Email:     a.Email,
		Password:  a.PasswordHash,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
