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

type ICustomerController interface {
	RegisterRoutes(r fiber.Router, authMiddleware fiber.Handler)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Import(ctx *fiber.Ctx) error
}

type customerController struct {
	customerService service.ICustomerService
	exportService   service.IExportService
}

func NewCustomerController(customerService service.ICustomerService, exportService service.IExportService) ICustomerController {
	return &customerController{
		customerService: customerService,
		exportService:   exportService,
	}
}

func (c *customerController) RegisterRoutes(r fiber.Router, authMiddleware fiber.Handler) {
	h := r.Group("/customer/v1")
	h.Use(authMiddleware)
	h.Get("", c.List)

	adminOnly := serverutils.RoleAuth(entity.RoleAdmin)
	h.Post("", adminOnly, c.Create)
	h.Post("import", adminOnly, c.Import)
	h.Delete(":id", adminOnly, c.Delete)
}

func (c *customerController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateCustomerRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation("Request body tidak valid")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.customerService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Customer berhasil dibuat", res))
}

func (c *customerController) List(ctx *fiber.Ctx) error {
	res, err := c.customerService.List(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *customerController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperror.Validation("Id tidak valid")
	}

	if err := c.customerService.Delete(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Customer berhasil dihapus", nil))
}

func (c *customerController) Import(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return apperror.Validation("File wajib diunggah")
	}
	file, err := fileHeader.Open()
	if err != nil {
		return apperror.Validation("File tidak bisa dibaca")
	}
	defer file.Close()

	names, err := c.exportService.ParseCustomerImport(file)
	if err != nil {
		return err
	}

	report, err := c.customerService.Import(ctx.Context(), names)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Import customer selesai", report))
}
