package controller

import (
	"antrian-truk-be/internal/dto"
	"antrian-truk-be/internal/pkg/apperror"
	"antrian-truk-be/internal/pkg/serverutils"
	"antrian-truk-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IQueueController interface {
	RegisterRoutes(r fiber.Router, authMiddleware fiber.Handler)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	ChangeStatus(ctx *fiber.Ctx) error
	Export(ctx *fiber.Ctx) error
	Display(ctx *fiber.Ctx) error
}

type queueController struct {
	queueService  service.IQueueService
	exportService service.IExportService
}

func NewQueueController(queueService service.IQueueService, exportService service.IExportService) IQueueController {
	return &queueController{
		queueService:  queueService,
		exportService: exportService,
	}
}

func (c *queueController) RegisterRoutes(r fiber.Router, authMiddleware fiber.Handler) {
	// Display feeds the floor monitor and stays public.
	r.Get("/display/v1", c.Display)

	h := r.Group("/queue/v1")
	h.Use(authMiddleware)
	h.Get("", c.List)
	h.Get("export", c.Export)
	h.Get(":id", c.Show)
	h.Post("", c.Create)
	h.Put(":id", c.Update)
	h.Patch(":id/status", c.ChangeStatus)
}

func (c *queueController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateQueueRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation("Request body tidak valid")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.queueService.Create(ctx.Context(), &req, serverutils.ActorFromLocals(ctx))
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Antrian berhasil dibuat", res))
}

func (c *queueController) List(ctx *fiber.Ctx) error {
	var req dto.ListQueueRequest
	if err := ctx.QueryParser(&req); err != nil {
		return apperror.Validation("Query parameter tidak valid")
	}

	res, err := c.queueService.List(ctx.Context(), req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *queueController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperror.Validation("Id tidak valid")
	}

	res, err := c.queueService.GetById(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *queueController) Update(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperror.Validation("Id tidak valid")
	}

	var req dto.UpdateQueueRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation("Request body tidak valid")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	req.Id = id

	res, err := c.queueService.Update(ctx.Context(), &req, serverutils.ActorFromLocals(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Antrian berhasil diubah", res))
}

func (c *queueController) ChangeStatus(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperror.Validation("Id tidak valid")
	}

	var req dto.ChangeStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation("Request body tidak valid")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.queueService.ChangeStatus(ctx.Context(), id, &req, serverutils.ActorFromLocals(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Status berhasil diubah", res))
}

func (c *queueController) Export(ctx *fiber.Ctx) error {
	var req dto.ExportQueueRequest
	if err := ctx.QueryParser(&req); err != nil {
		return apperror.Validation("Query parameter tidak valid")
	}

	filename, content, err := c.exportService.QueueReport(ctx.Context(), req)
	if err != nil {
		return err
	}

	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return ctx.Send(content)
}

func (c *queueController) Display(ctx *fiber.Ctx) error {
	res, err := c.queueService.Display(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}
