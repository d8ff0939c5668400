package drone

import (
	"errors"

	"drone-config/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for drone configs.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the drone routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/api/drones")
	group.Get("/", h.HandleList)
	group.Get("/:key", h.HandleGet)
	group.Post("/:key/update", h.HandleUpdate)
}

// HandleList returns every drone config.
// @Summary List Drone Configs
// @Description Returns the display configuration of every drone profile.
// @Tags drones
// @Produce json
// @Success 200 {array} drone.Config
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/drones [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	configs, err := h.service.List(c.Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(configs)
}

// HandleGet returns one drone config.
// @Summary Get Drone Config
// @Description Returns the display configuration of a single drone profile.
// @Tags drones
// @Produce json
// @Param key path string true "Drone key (e.g. 'quadcopter')"
// @Success 200 {object} drone.Config
// @Failure 404 {object} map[string]string "Drone not found"
// @Router /api/drones/{key} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	cfg, err := h.service.Get(c.Context(), c.Params("key"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(cfg)
}

// HandleUpdate applies a partial update and broadcasts the changed fields.
// @Summary Update Drone Config
// @Description Updates any subset of style, color, scale, animate and simulator. Connected live sessions receive the changed fields.
// @Tags drones
// @Accept json
// @Produce json
// @Param key path string true "Drone key (e.g. 'quadcopter')"
// @Param patch body drone.Patch true "Fields to change"
// @Success 200 {object} drone.Config
// @Failure 404 {object} map[string]string "Drone not found"
// @Failure 422 {object} map[string]string "Invalid body or field value"
// @Router /api/drones/{key}/update [post]
func (h *Handler) HandleUpdate(c *fiber.Ctx) error {
	var p Patch
	if err := c.BodyParser(&p); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"detail": "invalid request body: " + err.Error(),
		})
	}

	cfg, err := h.service.Update(c.Context(), c.Params("key"), p)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(cfg)
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	var ve *ValidationError
	switch {
	case errors.Is(err, ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"detail": "Drone not found"})
	case errors.As(err, &ve):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"detail": ve.Error()})
	}

	logger.WithRayID(h.service.logger, c).Error("Drone request failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": err.Error()})
}
