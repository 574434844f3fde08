package controller

import (
	"catholic-discovery-be/internal/dto"
	"catholic-discovery-be/internal/pkg/serverutils"
	"catholic-discovery-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler)
	InvalidateCache(ctx *fiber.Ctx) error
	CacheStats(ctx *fiber.Ctx) error
}

type adminController struct {
	service service.IAssistantService
}

func NewAdminController(service service.IAssistantService) IAdminController {
	return &adminController{service: service}
}

func (c *adminController) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	h := r.Group("/admin", auth)
	h.Post("/cache/invalidate", c.InvalidateCache)
	h.Get("/cache/stats", c.CacheStats)
}

func (c *adminController) InvalidateCache(ctx *fiber.Ctx) error {
	var body struct {
		Reason string `json:"reason"`
	}
	_ = ctx.BodyParser(&body)
	if body.Reason == "" {
		body.Reason = "manual"
	}

	c.service.InvalidateCache(ctx.Context(), body.Reason)
	return ctx.JSON(serverutils.SuccessResponse(fiber.Map{"invalidated": true}))
}

func (c *adminController) CacheStats(ctx *fiber.Ctx) error {
	stats := c.service.CacheStats()
	return ctx.JSON(serverutils.SuccessResponse(dto.CacheStatsResponse{
		LoadedAt:           stats.LoadedAt,
		RecordsPerCategory: stats.RecordsPerCategory,
	}))
}
