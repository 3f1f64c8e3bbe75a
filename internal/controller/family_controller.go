package controller

import (
	"voter-registry-be/internal/dto"
	"voter-registry-be/internal/pkg/serverutils"
	"voter-registry-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IFamilyController interface {
	RegisterRoutes(r fiber.Router)
	AddExistingMember(ctx *fiber.Ctx) error
	AddNewMember(ctx *fiber.Ctx) error
	RemoveConnection(ctx *fiber.Ctx) error
	Connections(ctx *fiber.Ctx) error
	RelationshipOptions(ctx *fiber.Ctx) error
}

type familyController struct {
	familyService service.IFamilyService
}

func NewFamilyController(familyService service.IFamilyService) IFamilyController {
	return &familyController{
		familyService: familyService,
	}
}

func (c *familyController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/family/v1")
	h.Get("relationships", c.RelationshipOptions)
	h.Get("records/:id/connections", c.Connections)
	h.Post("records/:id/connections", c.AddExistingMember)
	h.Post("records/:id/members", c.AddNewMember)
	h.Delete("records/:id/connections", c.RemoveConnection)
}

func (c *familyController) AddExistingMember(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}

	var req dto.AddExistingMemberRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.SourceRecordId = uint(id)

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.familyService.AddExistingMember(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success add family member", res))
}

func (c *familyController) AddNewMember(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}

	var req dto.AddNewMemberRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.SourceRecordId = uint(id)

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.familyService.AddNewMember(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success add family member", res))
}

func (c *familyController) RemoveConnection(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}

	var req dto.RemoveConnectionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.SourceRecordId = uint(id)

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.familyService.RemoveConnection(ctx.Context(), &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success remove family connection", nil))
}

func (c *familyController) Connections(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}

	res, err := c.familyService.Connections(ctx.Context(), uint(id))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list family connections", res))
}

func (c *familyController) RelationshipOptions(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success list relationships", c.familyService.RelationshipOptions()))
}
