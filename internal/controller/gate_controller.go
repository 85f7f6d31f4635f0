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

type IGateController interface {
	RegisterRoutes(r fiber.Router, authMiddleware fiber.Handler)
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Import(ctx *fiber.Ctx) error
	Export(ctx *fiber.Ctx) error
}

type gateController struct {
	gateService   service.IGateService
	exportService service.IExportService
}

func NewGateController(gateService service.IGateService, exportService service.IExportService) IGateController {
	return &gateController{
		gateService:   gateService,
		exportService: exportService,
	}
}

func (c *gateController) RegisterRoutes(r fiber.Router, authMiddleware fiber.Handler) {
	h := r.Group("/gate/v1")
	h.Use(authMiddleware)
	h.Get("", c.List)
	h.Get("export", c.Export)

	adminOnly := serverutils.RoleAuth(entity.RoleAdmin)
	h.Post("", adminOnly, c.Create)
	h.Post("import", adminOnly, c.Import)
	h.Put(":id", adminOnly, c.Update)
	h.Delete(":id", adminOnly, c.Delete)
}

func (c *gateController) Create(ctx *fiber.Ctx) error {
	var req dto.SaveGateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation("Request body tidak valid")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.gateService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Gate berhasil dibuat", res))
}

func (c *gateController) Update(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperror.Validation("Id tidak valid")
	}

	var req dto.SaveGateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation("Request body tidak valid")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.gateService.Update(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Gate berhasil diubah", res))
}

func (c *gateController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperror.Validation("Id tidak valid")
	}

	if err := c.gateService.Delete(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Gate berhasil dihapus", nil))
}

func (c *gateController) List(ctx *fiber.Ctx) error {
	var req dto.ListGateRequest
	if err := ctx.QueryParser(&req); err != nil {
		return apperror.Validation("Query parameter tidak valid")
	}

	res, err := c.gateService.List(ctx.Context(), req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *gateController) Import(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return apperror.Validation("File wajib diunggah")
	}
	file, err := fileHeader.Open()
	if err != nil {
		return apperror.Validation("File tidak bisa dibaca")
	}
	defer file.Close()

	rows, err := c.exportService.ParseGateImport(file)
	if err != nil {
		return err
	}

	report, err := c.gateService.Import(ctx.Context(), rows)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Import gate selesai", report))
}

func (c *gateController) Export(ctx *fiber.Ctx) error {
	filename, content, err := c.exportService.GateExport(ctx.Context())
	if err != nil {
		return err
	}

	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return ctx.Send(content)
}
