package controller

import (
	"voter-registry-be/internal/pkg/logger"
	"voter-registry-be/internal/pkg/serverutils"
	"voter-registry-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IStatsController interface {
	RegisterRoutes(r fiber.Router)
	Dashboard(ctx *fiber.Ctx) error
	Gender(ctx *fiber.Ctx) error
	Occupation(ctx *fiber.Ctx) error
	Logs(ctx *fiber.Ctx) error
	LogById(ctx *fiber.Ctx) error
}

type statsController struct {
	statsService service.IStatsService
	logger       logger.ILogger
}

func NewStatsController(statsService service.IStatsService, sysLogger logger.ILogger) IStatsController {
	return &statsController{
		statsService: statsService,
		logger:       sysLogger,
	}
}

func (c *statsController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/stats/v1")
	h.Get("dashboard", c.Dashboard)
	h.Get("genders", c.Gender)
	h.Get("occupations", c.Occupation)
	h.Get("logs", c.Logs)
	h.Get("logs/:id", c.LogById)
}

func (c *statsController) Dashboard(ctx *fiber.Ctx) error {
	res, err := c.statsService.Dashboard(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success load dashboard", res))
}

func (c *statsController) Gender(ctx *fiber.Ctx) error {
	res, err := c.statsService.GenderStats(ctx.Context(), batchIDQuery(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success load gender stats", res))
}

func (c *statsController) Occupation(ctx *fiber.Ctx) error {
	res, err := c.statsService.OccupationStats(ctx.Context(), batchIDQuery(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success load occupation stats", res))
}

func (c *statsController) Logs(ctx *fiber.Ctx) error {
	level := ctx.Query("level")
	limit := ctx.QueryInt("limit", 100)
	offset := ctx.QueryInt("offset", 0)

	entries, err := c.logger.GetLogs(level, limit, offset)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list logs", entries))
}

func (c *statsController) LogById(ctx *fiber.Ctx) error {
	entry, err := c.logger.GetLogById(ctx.Params("id"))
	if err != nil {
		return serverutils.ErrNotFound
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show log", entry))
}

// batchIDQuery reads the optional batch_id filter; absent or malformed means
// the whole registry.
func batchIDQuery(ctx *fiber.Ctx) *uint {
	raw := ctx.QueryInt("batch_id", -1)
	if raw < 0 {
		return nil
	}
	id := uint(raw)
	return &id
}
