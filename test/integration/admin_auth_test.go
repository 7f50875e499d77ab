package integration

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"chatdesk-be/internal/bootstrap"
	"chatdesk-be/internal/config"
	"chatdesk-be/internal/model"
	"chatdesk-be/internal/server"
	"chatdesk-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestAdminAuth(t *testing.T) {
	// Load .env from root (2 levels up) because tests run in package dir
	if err := godotenv.Load("../../.env"); err != nil {
		t.Logf("Warning: Could not load ../../.env: %v", err)
	}
	cfg := config.Load()
	if cfg.Database.Connection == "" {
		t.Skip("DB_CONNECTION_STRING not set, skipping integration test")
	}
	if cfg.Admin.Email == "" || cfg.Admin.Password == "" || cfg.Admin.JWTSecret == "" {
		t.Skip("ADMIN_EMAIL / ADMIN_PASSWORD / JWT_SECRET not set, skipping integration test")
	}

	db, err := database.NewGormDB(cfg.Database.Connection)
	if err != nil {
		t.Skipf("Could not connect to DB: %v", err)
	}

	container := bootstrap.NewContainer(db, cfg)
	srv := server.New(cfg, container)
	app := srv.GetApp()

	// Seed an admin user
	adminPass := "admin123"
	adminHash, _ := bcrypt.GenerateFromPassword([]byte(adminPass), bcrypt.DefaultCost)

	adminId := uuid.New()
	adminEmail := "testadmin@example.com"
	adminUser := model.AdminUser{
		Id:        adminId,
		Email:     adminEmail,
		Password:  string(adminHash),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	db.Create(&adminUser)
	defer db.Exec("DELETE FROM admin_users WHERE id = ?", adminId)

	t.Run("login with valid credentials", func(t *testing.T) {
		body := `{"email": "` + adminEmail + `", "password": "` + adminPass + `"}`
		req := httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		res, err := app.Test(req, 10000)
		assert.NoError(t, err)
		assert.Equal(t, 200, res.StatusCode)

		var parsed struct {
			Success bool `json:"success"`
			Data    struct {
				Token string `json:"token"`
				User  struct {
					Email string `json:"email"`
				} `json:"user"`
			} `json:"data"`
		}
		assert.NoError(t, json.NewDecoder(res.Body).Decode(&parsed))
		assert.True(t, parsed.Success)
		assert.NotEmpty(t, parsed.Data.Token)
		assert.Equal(t, adminEmail, parsed.Data.User.Email)

		// Cookie is set for browser clients
		cookieSet := false
		for _, c := range res.Cookies() {
			if c.Name == "auth_token" && c.Value != "" {
				cookieSet = true
				assert.True(t, c.HttpOnly)
			}
		}
		assert.True(t, cookieSet)

		// Token works against the verify endpoint
		verifyReq := httptest.NewRequest("GET", "/api/auth/verify", nil)
		verifyReq.Header.Set("Authorization", "Bearer "+parsed.Data.Token)
		verifyRes, err := app.Test(verifyReq, 10000)
		assert.NoError(t, err)
		assert.Equal(t, 200, verifyRes.StatusCode)
	})

	t.Run("login with wrong password", func(t *testing.T) {
		body := `{"email": "` + adminEmail + `", "password": "wrong"}`
		req := httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		res, err := app.Test(req, 10000)
		assert.NoError(t, err)
		assert.Equal(t, 401, res.StatusCode)
	})

	t.Run("login with malformed body", func(t *testing.T) {
		body := `{"email": "not-an-email"}`
		req := httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		res, err := app.Test(req, 10000)
		assert.NoError(t, err)
		assert.Equal(t, 400, res.StatusCode)
	})

	t.Run("verify without token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/auth/verify", nil)
		res, err := app.Test(req, 10000)
		assert.NoError(t, err)
		assert.Equal(t, 401, res.StatusCode)
	})
}
