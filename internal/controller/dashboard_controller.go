package controller

import (
	"chatdesk-be/internal/pkg/logger"
	"chatdesk-be/internal/pkg/serverutils"
	"chatdesk-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IDashboardController interface {
	RegisterRoutes(r fiber.Router)
	Stats(ctx *fiber.Ctx) error
	AnalyticsConfig(ctx *fiber.Ctx) error
	Logs(ctx *fiber.Ctx) error
}

type dashboardController struct {
	service   service.IDashboardService
	sysLogger logger.ILogger
	jwtMw     fiber.Handler
}

func NewDashboardController(service service.IDashboardService, sysLogger logger.ILogger, jwtMw fiber.Handler) IDashboardController {
	return &dashboardController{
		service:   service,
		sysLogger: sysLogger,
		jwtMw:     jwtMw,
	}
}

func (c *dashboardController) RegisterRoutes(r fiber.Router) {
	r.Get("/analytics/config", c.AnalyticsConfig)

	h := r.Group("/dashboard")
	h.Use(c.jwtMw)
	h.Get("/stats", c.Stats)
	h.Get("/logs", c.Logs)
}

func (c *dashboardController) Stats(ctx *fiber.Ctx) error {
	res, err := c.service.GetStats(ctx.Context())
	if err != nil {
		c.sysLogger.Error("dashboard", "Failed to compute stats", map[string]interface{}{"error": err.Error()})
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Failed to load dashboard stats"))
	}
	return ctx.JSON(serverutils.SuccessResponse("Dashboard stats", res))
}

func (c *dashboardController) AnalyticsConfig(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Analytics config", c.service.GetAnalyticsConfig()))
}

func (c *dashboardController) Logs(ctx *fiber.Ctx) error {
	level := ctx.Query("level")
	limit := ctx.QueryInt("limit", 100)
	offset := ctx.QueryInt("offset", 0)

	entries, err := c.sysLogger.GetLogs(level, limit, offset)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Failed to read logs"))
	}
	return ctx.JSON(serverutils.SuccessResponse("System logs", entries))
}
