package controller

import (
	"encoding/json"
	"errors"
	"io"
	"strings"

	"chatdesk-be/internal/dto"
	"chatdesk-be/internal/pkg/serverutils"
	"chatdesk-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

const maxUploadBytes = 10 * 1024 * 1024

type IKnowledgeController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Upload(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type knowledgeController struct {
	service     service.IKnowledgeService
	jwtMw       fiber.Handler
	exportLimit fiber.Handler
}

func NewKnowledgeController(service service.IKnowledgeService, jwtMw, exportLimit fiber.Handler) IKnowledgeController {
	return &knowledgeController{
		service:     service,
		jwtMw:       jwtMw,
		exportLimit: exportLimit,
	}
}

func (c *knowledgeController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/knowledge")
	h.Use(c.jwtMw)
	h.Use(c.exportLimit)
	h.Get("/documents", c.List)
	h.Post("/documents", c.Upload)
	h.Delete("/documents/:id", c.Delete)
}

func (c *knowledgeController) List(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", 100)
	offset := ctx.Query("offset")

	res, err := c.service.ListDocuments(ctx.Context(), limit, offset)
	if err != nil {
		if errors.Is(err, service.ErrVectorStoreNotConfigured) {
			return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Server configuration error"))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Failed to list documents"))
	}
	return ctx.JSON(serverutils.SuccessResponse("Knowledge documents", res))
}

// Upload accepts either a JSON body with a text field or a multipart file of
// a text-like content type.
func (c *knowledgeController) Upload(ctx *fiber.Ctx) error {
	text, fileName, metadata, err := c.extractUpload(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.UploadDocument(ctx.Context(), text, fileName, metadata)
	if err != nil {
		if errors.Is(err, service.ErrVectorStoreNotConfigured) {
			return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Server configuration error"))
		}
		if errors.Is(err, service.ErrEmptyDocument) {
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Document text is empty"))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Failed to upload document"))
	}
	return ctx.JSON(serverutils.SuccessResponse("Document uploaded", res))
}

func (c *knowledgeController) extractUpload(ctx *fiber.Ctx) (text, fileName string, metadata map[string]interface{}, err error) {
	fileHeader, ferr := ctx.FormFile("file")
	if ferr == nil && fileHeader != nil {
		if fileHeader.Size > maxUploadBytes {
			return "", "", nil, errors.New("File exceeds 10MB limit")
		}
		contentType := fileHeader.Header.Get("Content-Type")
		if contentType != "" && !isTextContentType(contentType) {
			return "", "", nil, errors.New("Only text files are supported")
		}

		f, err := fileHeader.Open()
		if err != nil {
			return "", "", nil, errors.New("Failed to read uploaded file")
		}
		defer f.Close()

		raw, err := io.ReadAll(io.LimitReader(f, maxUploadBytes))
		if err != nil {
			return "", "", nil, errors.New("Failed to read uploaded file")
		}

		// Optional metadata form field, JSON-encoded.
		if rawMeta := ctx.FormValue("metadata"); rawMeta != "" {
			if err := json.Unmarshal([]byte(rawMeta), &metadata); err != nil {
				return "", "", nil, errors.New("Invalid metadata field")
			}
		}
		return string(raw), fileHeader.Filename, metadata, nil
	}

	var req dto.UploadDocumentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return "", "", nil, errors.New("Invalid request body")
	}
	if strings.TrimSpace(req.Text) == "" {
		return "", "", nil, errors.New("Either a file or a text field is required")
	}
	fileName = req.FileName
	if fileName == "" {
		fileName = "pasted-text.txt"
	}
	return req.Text, fileName, req.Metadata, nil
}

func isTextContentType(contentType string) bool {
	if strings.HasPrefix(contentType, "text/") {
		return true
	}
	switch contentType {
	case "application/json", "application/xml", "application/x-yaml",
		"application/octet-stream", "text/markdown":
		return true
	}
	return false
}

func (c *knowledgeController) Delete(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	if err := c.service.DeleteDocument(ctx.Context(), id); err != nil {
		if errors.Is(err, service.ErrVectorStoreNotConfigured) {
			return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Server configuration error"))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Failed to delete document"))
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Document deleted", nil))
}
