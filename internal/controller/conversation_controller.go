package controller

import (
	"errors"

	"chatdesk-be/internal/pkg/serverutils"
	"chatdesk-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IConversationController interface {
	RegisterRoutes(r fiber.Router)
	ListSessions(ctx *fiber.Ctx) error
	GetSession(ctx *fiber.Ctx) error
	GenerateSummary(ctx *fiber.Ctx) error
	GetSummary(ctx *fiber.Ctx) error
}

type conversationController struct {
	service service.IConversationService
	jwtMw   fiber.Handler
	aiLimit fiber.Handler
}

func NewConversationController(service service.IConversationService, jwtMw, aiLimit fiber.Handler) IConversationController {
	return &conversationController{
		service: service,
		jwtMw:   jwtMw,
		aiLimit: aiLimit,
	}
}

func (c *conversationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/conversations")
	h.Use(c.jwtMw)
	h.Get("/sessions", c.ListSessions)
	h.Get("/sessions/:sessionId", c.GetSession)
	h.Post("/sessions/:sessionId/summary", c.aiLimit, c.GenerateSummary)
	h.Get("/sessions/:sessionId/summary", c.GetSummary)
}

func (c *conversationController) ListSessions(ctx *fiber.Ctx) error {
	page := ctx.QueryInt("page", 1)
	limit := ctx.QueryInt("limit", 20)

	res, err := c.service.ListSessions(ctx.Context(), page, limit)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Failed to list conversations"))
	}
	return ctx.JSON(serverutils.SuccessResponse("Conversations", res))
}

func (c *conversationController) GetSession(ctx *fiber.Ctx) error {
	sessionId := ctx.Params("sessionId")

	res, err := c.service.GetSession(ctx.Context(), sessionId)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Session not found"))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Failed to load conversation"))
	}
	return ctx.JSON(serverutils.SuccessResponse("Conversation detail", res))
}

func (c *conversationController) GenerateSummary(ctx *fiber.Ctx) error {
	sessionId := ctx.Params("sessionId")

	res, err := c.service.GenerateSummary(ctx.Context(), sessionId)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Session not found"))
		}
		if errors.Is(err, service.ErrLLMNotConfigured) {
			return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Server configuration error"))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Failed to generate summary"))
	}
	return ctx.JSON(serverutils.SuccessResponse("Conversation summary", res))
}

func (c *conversationController) GetSummary(ctx *fiber.Ctx) error {
	sessionId := ctx.Params("sessionId")

	res, err := c.service.GetSummary(ctx.Context(), sessionId)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Summary not found"))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Failed to load summary"))
	}
	return ctx.JSON(serverutils.SuccessResponse("Conversation summary", res))
}
