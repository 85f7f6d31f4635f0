package controller

import (
	"antrian-truk-be/internal/dto"
	"antrian-truk-be/internal/entity"
	"antrian-truk-be/internal/pkg/apperror"
	"antrian-truk-be/internal/pkg/serverutils"
	"antrian-truk-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAdminUserController interface {
	RegisterRoutes(r fiber.Router, authMiddleware fiber.Handler)
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type adminUserController struct {
	adminUserService service.IAdminUserService
}

func NewAdminUserController(adminUserService service.IAdminUserService) IAdminUserController {
	return &adminUserController{adminUserService: adminUserService}
}

func (c *adminUserController) RegisterRoutes(r fiber.Router, authMiddleware fiber.Handler) {
	h := r.Group("/admin/v1/users")
	h.Use(authMiddleware)
	h.Use(serverutils.RoleAuth(entity.RoleAdmin))
	h.Get("", c.List)
	h.Get(":id", c.Show)
	h.Post("", c.Create)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *adminUserController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateAdminUserRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation("Request body tidak valid")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.adminUserService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Admin berhasil dibuat", res))
}

func (c *adminUserController) Update(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperror.Validation("Id tidak valid")
	}

	var req dto.UpdateAdminUserRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation("Request body tidak valid")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	req.Id = id

	res, err := c.adminUserService.Update(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Admin berhasil diubah", res))
}

func (c *adminUserController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperror.Validation("Id tidak valid")
	}

	if err := c.adminUserService.Delete(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Admin berhasil dihapus", nil))
}

func (c *adminUserController) List(ctx *fiber.Ctx) error {
	res, err := c.adminUserService.List(ctx.Context(), ctx.Query("search"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *adminUserController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperror.Validation("Id tidak valid")
	}

	res, err := c.adminUserService.GetById(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}
