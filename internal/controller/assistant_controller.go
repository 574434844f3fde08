package controller

import (
	"catholic-discovery-be/internal/dto"
	"catholic-discovery-be/internal/pkg/serverutils"
	"catholic-discovery-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAssistantController interface {
	RegisterRoutes(r fiber.Router, limiter fiber.Handler)
	Query(ctx *fiber.Ctx) error
	CreateSession(ctx *fiber.Ctx) error
	DeleteSession(ctx *fiber.Ctx) error
}

type assistantController struct {
	service service.IAssistantService
}

func NewAssistantController(service service.IAssistantService) IAssistantController {
	return &assistantController{service: service}
}

func (c *assistantController) RegisterRoutes(r fiber.Router, limiter fiber.Handler) {
	h := r.Group("/assistant")
	h.Post("/query", limiter, c.Query)
	h.Post("/sessions", c.CreateSession)
	h.Delete("/sessions/:id", c.DeleteSession)
}

func (c *assistantController) Query(ctx *fiber.Ctx) error {
	var req dto.AssistantQueryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid request body"))
	}
	if req.Query == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "query is required"))
	}

	res, err := c.service.Query(ctx.Context(), req)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse(res))
}

func (c *assistantController) CreateSession(ctx *fiber.Ctx) error {
	id := c.service.CreateConversation()
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse(dto.ConversationCreateResponse{
		ConversationId: id,
	}))
}

func (c *assistantController) DeleteSession(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if id == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "conversation id is required"))
	}

	c.service.ResetConversation(id)
	return ctx.SendStatus(fiber.StatusNoContent)
}
