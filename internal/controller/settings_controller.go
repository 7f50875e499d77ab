package controller

import (
	"chatdesk-be/internal/dto"
	"chatdesk-be/internal/pkg/serverutils"
	"chatdesk-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISettingsController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	UpdateMany(ctx *fiber.Ctx) error
	UpdateOne(ctx *fiber.Ctx) error
	GetPublic(ctx *fiber.Ctx) error
}

type settingsController struct {
	service service.ISettingsService
	jwtMw   fiber.Handler
}

func NewSettingsController(service service.ISettingsService, jwtMw fiber.Handler) ISettingsController {
	return &settingsController{service: service, jwtMw: jwtMw}
}

func (c *settingsController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/settings")
	h.Get("/public", c.GetPublic)
	h.Get("", c.jwtMw, c.GetAll)
	h.Put("", c.jwtMw, c.UpdateMany)
	h.Put("/:key", c.jwtMw, c.UpdateOne)
}

func (c *settingsController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.GetAll(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Failed to load settings"))
	}
	return ctx.JSON(serverutils.SuccessResponse("Settings", res))
}

func (c *settingsController) UpdateMany(ctx *fiber.Ctx) error {
	var req dto.UpdateSettingsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if len(req) == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "No settings provided"))
	}

	res, err := c.service.UpdateMany(ctx.Context(), req)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Failed to update settings"))
	}
	return ctx.JSON(serverutils.SuccessResponse("Settings updated", res))
}

func (c *settingsController) UpdateOne(ctx *fiber.Ctx) error {
	key := ctx.Params("key")

	var req dto.UpdateSettingRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.UpdateOne(ctx.Context(), key, req.Value)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Failed to update setting"))
	}
	return ctx.JSON(serverutils.SuccessResponse("Setting updated", res))
}

func (c *settingsController) GetPublic(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Public settings", c.service.GetPublic(ctx.Context())))
}
