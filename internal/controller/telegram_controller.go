package controller

import (
	"errors"

	"chatdesk-be/internal/dto"
	"chatdesk-be/internal/pkg/serverutils"
	"chatdesk-be/internal/service"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/gofiber/fiber/v2"
)

type ITelegramController interface {
	RegisterRoutes(r fiber.Router)
	Webhook(ctx *fiber.Ctx) error
	SetWebhook(ctx *fiber.Ctx) error
	WebhookInfo(ctx *fiber.Ctx) error
}

type telegramController struct {
	service      service.ITelegramService
	jwtMw        fiber.Handler
	webhookLimit fiber.Handler
}

func NewTelegramController(service service.ITelegramService, jwtMw, webhookLimit fiber.Handler) ITelegramController {
	return &telegramController{
		service:      service,
		jwtMw:        jwtMw,
		webhookLimit: webhookLimit,
	}
}

func (c *telegramController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/telegram")
	h.Post("/webhook", c.webhookLimit, c.Webhook)
	h.Post("/set-webhook", c.jwtMw, c.SetWebhook)
	h.Get("/webhook-info", c.jwtMw, c.WebhookInfo)
}

func (c *telegramController) Webhook(ctx *fiber.Ctx) error {
	var update tgbotapi.Update
	if err := ctx.BodyParser(&update); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid update payload"))
	}

	if err := c.service.HandleUpdate(ctx.Context(), &update); err != nil {
		// The user-facing error already went to the chat; the webhook caller
		// only needs a JSON error.
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Failed to process update"))
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("ok", nil))
}

func (c *telegramController) SetWebhook(ctx *fiber.Ctx) error {
	var req dto.SetWebhookRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	if err := c.service.SetWebhook(ctx.Context(), req.URL); err != nil {
		if errors.Is(err, service.ErrBotNotConfigured) {
			return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Server configuration error"))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Failed to set webhook"))
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Webhook set", nil))
}

func (c *telegramController) WebhookInfo(ctx *fiber.Ctx) error {
	res, err := c.service.WebhookInfo(ctx.Context())
	if err != nil {
		if errors.Is(err, service.ErrBotNotConfigured) {
			return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Server configuration error"))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Failed to load webhook info"))
	}
	return ctx.JSON(serverutils.SuccessResponse("Webhook info", res))
}
