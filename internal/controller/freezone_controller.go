package controller

import (
	"errors"

	"chatdesk-be/internal/dto"
	"chatdesk-be/internal/pkg/serverutils"
	"chatdesk-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IFreeZoneController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Get(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type freeZoneController struct {
	service service.IFreeZoneService
	jwtMw   fiber.Handler
}

func NewFreeZoneController(service service.IFreeZoneService, jwtMw fiber.Handler) IFreeZoneController {
	return &freeZoneController{service: service, jwtMw: jwtMw}
}

func (c *freeZoneController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/free-zones")
	h.Use(c.jwtMw)
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Get("/:id", c.Get)
	h.Put("/:id", c.Update)
	h.Delete("/:id", c.Delete)
}

func (c *freeZoneController) List(ctx *fiber.Ctx) error {
	res, err := c.service.List(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Failed to list free zones"))
	}
	return ctx.JSON(serverutils.SuccessResponse("Free zones", res))
}

func (c *freeZoneController) Get(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid free zone ID"))
	}

	res, err := c.service.Get(ctx.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrFreeZoneNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Free zone not found"))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Failed to load free zone"))
	}
	return ctx.JSON(serverutils.SuccessResponse("Free zone detail", res))
}

func (c *freeZoneController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateFreeZoneRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.Create(ctx.Context(), &req)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Failed to create free zone"))
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Free zone created", res))
}

func (c *freeZoneController) Update(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid free zone ID"))
	}

	var req dto.UpdateFreeZoneRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	res, err := c.service.Update(ctx.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrFreeZoneNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Free zone not found"))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Failed to update free zone"))
	}
	return ctx.JSON(serverutils.SuccessResponse("Free zone updated", res))
}

func (c *freeZoneController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid free zone ID"))
	}

	if err := c.service.Delete(ctx.Context(), id); err != nil {
		if errors.Is(err, service.ErrFreeZoneNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Free zone not found"))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Failed to delete free zone"))
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Free zone deleted", nil))
}
