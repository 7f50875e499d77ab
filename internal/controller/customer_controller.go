package controller

import (
	"errors"

	"chatdesk-be/internal/dto"
	"chatdesk-be/internal/pkg/serverutils"
	"chatdesk-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ICustomerController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Get(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	LinkSession(ctx *fiber.Ctx) error
	UnlinkSession(ctx *fiber.Ctx) error
}

type customerController struct {
	service service.ICustomerService
	jwtMw   fiber.Handler
}

func NewCustomerController(service service.ICustomerService, jwtMw fiber.Handler) ICustomerController {
	return &customerController{service: service, jwtMw: jwtMw}
}

func (c *customerController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/customers")
	h.Use(c.jwtMw)
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Post("/link-session", c.LinkSession)
	h.Delete("/sessions/:id", c.UnlinkSession)
	h.Get("/:id", c.Get)
	h.Put("/:id", c.Update)
	h.Delete("/:id", c.Delete)
}

func (c *customerController) List(ctx *fiber.Ctx) error {
	page := ctx.QueryInt("page", 1)
	limit := ctx.QueryInt("limit", 20)
	search := ctx.Query("search")

	res, err := c.service.List(ctx.Context(), page, limit, search)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Failed to list customers"))
	}
	return ctx.JSON(serverutils.SuccessResponse("Customers", res))
}

func (c *customerController) Get(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid customer ID"))
	}

	res, err := c.service.Get(ctx.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrCustomerNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Customer not found"))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Failed to load customer"))
	}
	return ctx.JSON(serverutils.SuccessResponse("Customer detail", res))
}

func (c *customerController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateCustomerRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.Create(ctx.Context(), &req)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Failed to create customer"))
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Customer created", res))
}

func (c *customerController) Update(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid customer ID"))
	}

	var req dto.UpdateCustomerRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	res, err := c.service.Update(ctx.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrCustomerNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Customer not found"))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Failed to update customer"))
	}
	return ctx.JSON(serverutils.SuccessResponse("Customer updated", res))
}

func (c *customerController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid customer ID"))
	}

	if err := c.service.Delete(ctx.Context(), id); err != nil {
		if errors.Is(err, service.ErrCustomerNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Customer not found"))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Failed to delete customer"))
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Customer deleted", nil))
}

func (c *customerController) LinkSession(ctx *fiber.Ctx) error {
	var req dto.LinkSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	var adminId *uuid.UUID
	if userIdStr, ok := ctx.Locals("user_id").(string); ok {
		if parsed, err := uuid.Parse(userIdStr); err == nil {
			adminId = &parsed
		}
	}

	res, err := c.service.LinkSession(ctx.Context(), adminId, &req)
	if err != nil {
		if errors.Is(err, service.ErrCustomerNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Customer not found"))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Failed to link session"))
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Session linked", res))
}

func (c *customerController) UnlinkSession(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid link ID"))
	}

	if err := c.service.UnlinkSession(ctx.Context(), id); err != nil {
		if errors.Is(err, service.ErrLinkNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Session link not found"))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Failed to unlink session"))
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Session unlinked", nil))
}
