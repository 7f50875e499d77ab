package controller

import (
	"errors"

	"chatdesk-be/internal/dto"
	"chatdesk-be/internal/pkg/serverutils"
	"chatdesk-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IBillingController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Get(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Send(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type billingController struct {
	service service.IBillingService
	jwtMw   fiber.Handler
}

func NewBillingController(service service.IBillingService, jwtMw fiber.Handler) IBillingController {
	return &billingController{service: service, jwtMw: jwtMw}
}

func (c *billingController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/billing")
	h.Use(c.jwtMw)
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Get("/:id", c.Get)
	h.Put("/:id", c.Update)
	h.Post("/:id/send", c.Send)
	h.Delete("/:id", c.Delete)
}

func (c *billingController) List(ctx *fiber.Ctx) error {
	status := ctx.Query("status")
	customerId := ctx.Query("customerId")

	res, err := c.service.List(ctx.Context(), status, customerId)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Failed to list invoices"))
	}
	return ctx.JSON(serverutils.SuccessResponse("Invoices", res))
}

func (c *billingController) Get(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid invoice ID"))
	}

	res, err := c.service.Get(ctx.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrInvoiceNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Invoice not found"))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Failed to load invoice"))
	}
	return ctx.JSON(serverutils.SuccessResponse("Invoice detail", res))
}

func (c *billingController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateInvoiceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.Create(ctx.Context(), &req)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Failed to create invoice"))
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Invoice created", res))
}

func (c *billingController) Update(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid invoice ID"))
	}

	var req dto.UpdateInvoiceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	res, err := c.service.Update(ctx.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrInvoiceNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Invoice not found"))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Failed to update invoice"))
	}
	return ctx.JSON(serverutils.SuccessResponse("Invoice updated", res))
}

func (c *billingController) Send(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid invoice ID"))
	}

	res, err := c.service.Send(ctx.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrInvoiceNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Invoice not found"))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Failed to send invoice"))
	}
	return ctx.JSON(serverutils.SuccessResponse("Invoice sent", res))
}

func (c *billingController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid invoice ID"))
	}

	if err := c.service.Delete(ctx.Context(), id); err != nil {
		if errors.Is(err, service.ErrInvoiceNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Invoice not found"))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Failed to delete invoice"))
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Invoice deleted", nil))
}
