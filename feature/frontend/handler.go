package frontend

import (
	"errors"
	"fmt"
	"html"

	"drone-config/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"go.uber.org/zap"
)

// Handler serves the landing page and static assets.
type Handler struct {
	source    Source
	indexFile string
	logger    *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(source Source, indexFile string, logger *zap.Logger) *Handler {
	return &Handler{source: source, indexFile: indexFile, logger: logger}
}

// RegisterRoutes registers the frontend routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/", h.HandleIndex)
	app.Use("/static", filesystem.New(filesystem.Config{
		Root: h.source,
	}))
	app.Get("/static/*", h.HandleMissing)
}

// HandleIndex serves the landing page, or a placeholder when it is missing.
func (h *Handler) HandleIndex(c *fiber.Ctx) error {
	err := filesystem.SendFile(c, h.source, "/"+cleanName(h.indexFile))
	if errors.Is(err, fiber.ErrNotFound) || errors.Is(err, fiber.ErrForbidden) {
		c.Status(fiber.StatusOK)
		c.Type("html", "utf-8")
		return c.SendString(placeholder(h.source.Describe(), h.indexFile))
	}
	if err != nil {
		return h.fail(c, err)
	}
	return nil
}

// HandleMissing answers assets the filesystem middleware could not find.
func (h *Handler) HandleMissing(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"detail": "Not Found"})
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	logger.WithRayID(h.logger, c).Error("Failed to serve frontend asset", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Internal Server Error"})
}

func placeholder(location, index string) string {
	return fmt.Sprintf(`<!doctype html>
<html>
<head><meta charset="utf-8"><title>Drone Config</title></head>
<body>
<h1>Drone Config</h1>
<p>No frontend found. Place <code>%s</code> in <code>%s</code>.</p>
<p>API: <a href="/api/drones">/api/drones</a> &middot; Docs: <a href="/swagger/index.html">/swagger</a></p>
</body>
</html>
`, html.EscapeString(index), html.EscapeString(location))
}
