package controller

import (
	"antrian-truk-be/internal/pkg/serverutils"
	"antrian-truk-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IDashboardController interface {
	RegisterRoutes(r fiber.Router, authMiddleware fiber.Handler)
	Summary(ctx *fiber.Ctx) error
	Hourly(ctx *fiber.Ctx) error
	StatusBreakdown(ctx *fiber.Ctx) error
}

type dashboardController struct {
	dashboardService service.IDashboardService
}

func NewDashboardController(dashboardService service.IDashboardService) IDashboardController {
	return &dashboardController{dashboardService: dashboardService}
}

func (c *dashboardController) RegisterRoutes(r fiber.Router, authMiddleware fiber.Handler) {
	h := r.Group("/dashboard/v1")
	h.Use(authMiddleware)
	h.Get("summary", c.Summary)
	h.Get("hourly", c.Hourly)
	h.Get("status", c.StatusBreakdown)
}

func (c *dashboardController) Summary(ctx *fiber.Ctx) error {
	res, err := c.dashboardService.Summary(ctx.Context(), ctx.Query("date"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *dashboardController) Hourly(ctx *fiber.Ctx) error {
	res, err := c.dashboardService.Hourly(ctx.Context(), ctx.Query("date"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *dashboardController) StatusBreakdown(ctx *fiber.Ctx) error {
	res, err := c.dashboardService.StatusBreakdown(ctx.Context(), ctx.Query("date"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}
