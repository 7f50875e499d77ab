package controller

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func passthrough(ctx *fiber.Ctx) error { return ctx.Next() }

// The CRM resources mount under /api/billing and /api/free-zones. The bad-id
// guard fires before any service call, so nil services are safe here.
func TestResourceRoutePaths(t *testing.T) {
	app := fiber.New()
	api := app.Group("/api")
	NewBillingController(nil, passthrough).RegisterRoutes(api)
	NewFreeZoneController(nil, passthrough).RegisterRoutes(api)

	tests := []struct {
		name       string
		path       string
		wantStatus int
	}{
		{"billing detail by bad id", "/api/billing/not-a-uuid", 400},
		{"free zone detail by bad id", "/api/free-zones/not-a-uuid", 400},
		{"no route at invoices", "/api/invoices/not-a-uuid", 404},
		{"no route at freezones", "/api/freezones/not-a-uuid", 404},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := app.Test(httptest.NewRequest("GET", tt.path, nil))
			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, res.StatusCode)
		})
	}
}
