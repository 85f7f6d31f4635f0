package controller

import (
	"antrian-truk-be/internal/dto"
	"antrian-truk-be/internal/pkg/apperror"
	"antrian-truk-be/internal/pkg/serverutils"
	"antrian-truk-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router, authMiddleware fiber.Handler)
	Login(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
	Me(ctx *fiber.Ctx) error
}

type authController struct {
	authService service.IAuthService
}

func NewAuthController(authService service.IAuthService) IAuthController {
	return &authController{authService: authService}
}

func (c *authController) RegisterRoutes(r fiber.Router, authMiddleware fiber.Handler) {
	h := r.Group("/auth/v1")
	h.Post("login", c.Login)
	h.Post("logout", authMiddleware, c.Logout)
	h.Get("me", authMiddleware, c.Me)
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation("Request body tidak valid")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.authService.Login(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Login berhasil", res))
}

func (c *authController) Me(ctx *fiber.Ctx) error {
	raw, _ := ctx.Locals(serverutils.LocalsUserId).(string)
	userId, err := uuid.Parse(raw)
	if err != nil {
		return apperror.Unauthorized("Sesi tidak valid")
	}

	res, err := c.authService.Me(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *authController) Logout(ctx *fiber.Ctx) error {
	token, _ := ctx.Locals(serverutils.LocalsToken).(string)
	if err := c.authService.Logout(ctx.Context(), token); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Logout berhasil", nil))
}
