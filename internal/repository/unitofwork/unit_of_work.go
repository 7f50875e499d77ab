package unitofwork

import (
	"context"

	"chatdesk-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	AdminUserRepository() contract.AdminUserRepository
	SessionRepository() contract.SessionRepository
	ChatHistoryRepository() contract.ChatHistoryRepository
	ConversationSummaryRepository() contract.ConversationSummaryRepository

	CustomerRepository() contract.CustomerRepository
	CustomerSessionRepository() contract.CustomerSessionRepository
	InvoiceRepository() contract.InvoiceRepository
	FreeZoneRepository() contract.FreeZoneRepository
	SettingRepository() contract.SettingRepository
	SystemLogRepository() contract.SystemLogRepository
}
