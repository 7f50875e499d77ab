package main

import (
	"context"
	"log"
	"time"

	"chatdesk-be/internal/config"
	"chatdesk-be/internal/entity"
	"chatdesk-be/internal/repository/specification"
	"chatdesk-be/internal/repository/unitofwork"
	"chatdesk-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var defaultSettings = map[string]string{
	"phone_number":    "",
	"whatsapp_number": "",
	"n8n_webhook_url": "",
}

func main() {
	cfg := config.Load()

	color.Cyan("🌱 Seeding database\n")

	db, err := database.NewGormDB(cfg.Database.Connection)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	ctx := context.Background()
	uow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(ctx)

	// 1. Admin user from env
	color.Yellow("[1/2] Admin user")
	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		color.Red("ADMIN_EMAIL / ADMIN_PASSWORD not set, skipping admin seed")
	} else {
		existing, err := uow.AdminUserRepository().FindOne(ctx, specification.ByEmail{Email: cfg.Admin.Email})
		if err != nil {
			log.Fatal("Error: Failed to query admin user:", err)
		}
		if existing != nil {
			color.Green("Admin %s already exists", cfg.Admin.Email)
		} else {
			hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Admin.Password), bcrypt.DefaultCost)
			if err != nil {
				log.Fatal("Error: Failed to hash admin password:", err)
			}
			admin := &entity.AdminUser{
				Id:           uuid.New(),
				Email:        cfg.Admin.Email,
				PasswordHash: string(hash),
				CreatedAt:    time.Now(),
			}
			if err := uow.AdminUserRepository().Create(ctx, admin); err != nil {
				log.Fatal("Error: Failed to create admin user:", err)
			}
			color.Green("Created admin %s", cfg.Admin.Email)
		}
	}

	// 2. Default settings (upsert keeps existing values)
	color.Yellow("[2/2] Default settings")
	existing, err := uow.SettingRepository().FindAll(ctx)
	if err != nil {
		log.Fatal("Error: Failed to query settings:", err)
	}
	present := make(map[string]bool, len(existing))
	for _, row := range existing {
		present[row.Key] = true
	}
	for key, value := range defaultSettings {
		if present[key] {
			color.Green("Setting %s already present", key)
			continue
		}
		if _, err := uow.SettingRepository().Upsert(ctx, key, value); err != nil {
			log.Fatal("Error: Failed to seed setting:", err)
		}
		color.Green("Seeded setting %s", key)
	}

	color.Cyan("\n✅ Seed complete")
}
