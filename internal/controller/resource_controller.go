package controller

import (
	"catholic-discovery-be/internal/dto"
	"catholic-discovery-be/internal/pkg/serverutils"
	"catholic-discovery-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IResourceController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler)
	Submit(ctx *fiber.Ctx) error
}

type resourceController struct {
	service service.IResourceService
}

func NewResourceController(service service.IResourceService) IResourceController {
	return &resourceController{service: service}
}

func (c *resourceController) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	h := r.Group("/resources")
	h.Post("/", auth, c.Submit)
}

func (c *resourceController) Submit(ctx *fiber.Ctx) error {
	var req dto.ResourceSubmitRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid request body"))
	}

	res, err := c.service.Submit(ctx.Context(), req)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse(res))
}
