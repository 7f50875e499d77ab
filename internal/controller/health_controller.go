package controller

import (
	"chatdesk-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type IHealthController interface {
	RegisterRoutes(r fiber.Router)
	Health(ctx *fiber.Ctx) error
}

type healthController struct {
	db *gorm.DB
}

func NewHealthController(db *gorm.DB) IHealthController {
	return &healthController{db: db}
}

func (c *healthController) RegisterRoutes(r fiber.Router) {
	r.Get("/health", c.Health)
}

// Health reports degraded rather than failing when the database is down, so
// load balancers can still distinguish process-up from fully-healthy.
func (c *healthController) Health(ctx *fiber.Ctx) error {
	status := "ok"
	dbStatus := "ok"

	sqlDB, err := c.db.DB()
	if err != nil {
		status, dbStatus = "degraded", "error"
	} else if err := sqlDB.PingContext(ctx.Context()); err != nil {
		status, dbStatus = "degraded", "error"
	}

	return ctx.JSON(serverutils.SuccessResponse("Health", fiber.Map{
		"status":   status,
		"database": dbStatus,
	}))
}
