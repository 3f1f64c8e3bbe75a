package controller

import (
	"net/url"

	"voter-registry-be/internal/dto"
	"voter-registry-be/internal/pkg/serverutils"
	"voter-registry-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IRegistryController interface {
	RegisterRoutes(r fiber.Router)
	EnsureBatch(ctx *fiber.Ctx) error
	ListBatches(ctx *fiber.Ctx) error
	DeleteBatch(ctx *fiber.Ctx) error
	BatchRecords(ctx *fiber.Ctx) error
	BatchFiles(ctx *fiber.Ctx) error
	FileRecords(ctx *fiber.Ctx) error
	CreateRecord(ctx *fiber.Ctx) error
	UpdateRecord(ctx *fiber.Ctx) error
	SearchRecords(ctx *fiber.Ctx) error
	ShowRecord(ctx *fiber.Ctx) error
	ShowRecordByVoterNo(ctx *fiber.Ctx) error
	AssignEvents(ctx *fiber.Ctx) error
	UpdateRelationshipStatus(ctx *fiber.Ctx) error
	RecordsByStatus(ctx *fiber.Ctx) error
	UpdateRecordAge(ctx *fiber.Ctx) error
	RecalculateAges(ctx *fiber.Ctx) error
}

type registryController struct {
	registryService service.IRegistryService
}

func NewRegistryController(registryService service.IRegistryService) IRegistryController {
	return &registryController{
		registryService: registryService,
	}
}

func (c *registryController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/registry/v1")
	h.Post("batches", c.EnsureBatch)
	h.Get("batches", c.ListBatches)
	h.Delete("batches/:id", c.DeleteBatch)
	h.Get("batches/:id/records", c.BatchRecords)
	h.Get("batches/:id/files", c.BatchFiles)
	h.Get("batches/:id/files/:fileName/records", c.FileRecords)
	h.Get("records/search", c.SearchRecords)
	h.Post("records", c.CreateRecord)
	h.Post("records/recalculate-ages", c.RecalculateAges)
	h.Get("records/voter/:voterNo", c.ShowRecordByVoterNo)
	h.Get("records/status/:status", c.RecordsByStatus)
	h.Get("records/:id", c.ShowRecord)
	h.Put("records/:id", c.UpdateRecord)
	h.Put("records/:id/events", c.AssignEvents)
	h.Put("records/:id/relationship-status", c.UpdateRelationshipStatus)
	h.Put("records/:id/age", c.UpdateRecordAge)
}

func (c *registryController) EnsureBatch(ctx *fiber.Ctx) error {
	var req dto.EnsureBatchRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.registryService.EnsureBatch(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success ensure batch", res))
}

func (c *registryController) ListBatches(ctx *fiber.Ctx) error {
	res, err := c.registryService.ListBatches(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list batches", res))
}

func (c *registryController) DeleteBatch(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}

	if err := c.registryService.DeleteBatch(ctx.Context(), uint(id)); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete batch", nil))
}

func (c *registryController) BatchRecords(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}

	res, err := c.registryService.BatchRecords(ctx.Context(), uint(id))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list batch records", res))
}

func (c *registryController) BatchFiles(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}

	res, err := c.registryService.BatchFiles(ctx.Context(), uint(id))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list batch files", res))
}

func (c *registryController) FileRecords(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}
	fileName, err := url.PathUnescape(ctx.Params("fileName"))
	if err != nil || fileName == "" {
		return fiber.NewError(fiber.StatusBadRequest, "file name is required")
	}

	res, err := c.registryService.FileRecords(ctx.Context(), uint(id), fileName)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list file records", res))
}

func (c *registryController) CreateRecord(ctx *fiber.Ctx) error {
	var req dto.CreateRecordRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.registryService.CreateRecord(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create record", res))
}

func (c *registryController) UpdateRecord(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}

	var req dto.UpdateRecordRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = uint(id)

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.registryService.UpdateRecord(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update record", res))
}

func (c *registryController) SearchRecords(ctx *fiber.Ctx) error {
	var req dto.SearchRecordsRequest
	if err := ctx.QueryParser(&req); err != nil {
		return err
	}

	// A bare q= means "name or voter number", the common search box case.
	if q := ctx.Query("q"); q != "" {
		req.Name = q
		req.VoterNo = q
	}

	res, err := c.registryService.SearchRecords(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success search records", res))
}

func (c *registryController) ShowRecord(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}

	res, err := c.registryService.GetRecordByID(ctx.Context(), uint(id))
	if err != nil {
		return err
	}
	if res == nil {
		return serverutils.ErrNotFound
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show record", res))
}

func (c *registryController) ShowRecordByVoterNo(ctx *fiber.Ctx) error {
	voterNo := ctx.Params("voterNo")

	res, err := c.registryService.GetRecordByVoterNo(ctx.Context(), voterNo)
	if err != nil {
		return err
	}
	if res == nil {
		return serverutils.ErrNotFound
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show record", res))
}

func (c *registryController) AssignEvents(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}

	var req dto.AssignEventsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.RecordId = uint(id)

	if err := c.registryService.AssignEvents(ctx.Context(), &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success assign events", nil))
}

func (c *registryController) UpdateRelationshipStatus(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}

	var req dto.UpdateRelationshipStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.RecordId = uint(id)

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.registryService.UpdateRelationshipStatus(ctx.Context(), &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success update relationship status", nil))
}

func (c *registryController) RecordsByStatus(ctx *fiber.Ctx) error {
	status, err := url.PathUnescape(ctx.Params("status"))
	if err != nil || status == "" {
		return fiber.NewError(fiber.StatusBadRequest, "status is required")
	}

	res, err := c.registryService.RecordsByStatus(ctx.Context(), status)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list records by status", res))
}

func (c *registryController) UpdateRecordAge(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}

	var req dto.UpdateRecordAgeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.RecordId = uint(id)

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.registryService.UpdateRecordAge(ctx.Context(), &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success update record age", nil))
}

func (c *registryController) RecalculateAges(ctx *fiber.Ctx) error {
	res, err := c.registryService.RecalculateAges(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success recalculate ages", res))
}
