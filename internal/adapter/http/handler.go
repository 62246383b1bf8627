package http

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"cv-exporter/internal/domain"
	"cv-exporter/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// VersionsRepo is the persistence surface the version endpoints need.
type VersionsRepo interface {
	Save(ctx context.Context, entity string, entityID uuid.UUID, snapshot json.RawMessage) (*domain.ContentVersion, error)
	List(ctx context.Context, entity string, entityID uuid.UUID) ([]domain.ContentVersion, error)
	Get(ctx context.Context, entity string, entityID uuid.UUID, version int) (*domain.ContentVersion, error)
	Restore(ctx context.Context, entity string, entityID uuid.UUID, version int) (*domain.ContentVersion, error)
}

type Handler struct {
	exporter *usecase.Exporter
	versions VersionsRepo
	log      *zap.Logger
}

func NewHandler(e *usecase.Exporter, versions VersionsRepo, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{exporter: e, versions: versions, log: log}
}

func (h *Handler) Register(app *fiber.App) {
	app.Get("/api/cv", h.Preview)
	app.Get("/api/cv/export/pdf", h.ExportPDF)
	app.Get("/api/versions/:entity/:entityID", h.ListVersions)
	app.Get("/api/versions/:entity/:entityID/diff", h.DiffVersions)
	app.Post("/api/versions/:entity/:entityID/restore/:version", h.RestoreVersion)
}

// Preview returns the locale-resolved DocumentModel. It always
// answers 200: missing or broken content degrades to the fallback
// document inside the pipeline.
func (h *Handler) Preview(c *fiber.Ctx) error {
	locale := c.Query("locale", "fr")
	doc := h.exporter.Preview(c.Context(), locale)
	return c.JSON(doc)
}

// ExportPDF streams the rendered CV as an attachment. Rendering is the
// one failure that surfaces to the caller.
func (h *Handler) ExportPDF(c *fiber.Ctx) error {
	locale := c.Query("locale", "fr")
	pdf, filename, err := h.exporter.ExportPDF(c.Context(), locale)
	if err != nil {
		h.log.Error("pdf export failed", zap.String("locale", locale), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).SendString("PDF generation failed")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdf)
}

func (h *Handler) ListVersions(c *fiber.Ctx) error {
	entity, entityID, err := h.entityParams(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	versions, err := h.versions.List(c.Context(), entity, entityID)
	if err != nil {
		h.log.Error("version list failed", zap.String("entity", entity), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not load versions"})
	}
	return c.JSON(fiber.Map{"entity": entity, "entity_id": entityID, "versions": versions})
}

// DiffVersions compares two stored versions: ?from=2&to=5. Display
// values are truncated; the stored snapshots are not touched.
func (h *Handler) DiffVersions(c *fiber.Ctx) error {
	entity, entityID, err := h.entityParams(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	from, err1 := strconv.Atoi(c.Query("from"))
	to, err2 := strconv.Atoi(c.Query("to"))
	if err1 != nil || err2 != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "from and to query parameters are required"})
	}

	oldV, err := h.versions.Get(c.Context(), entity, entityID, from)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": fmt.Sprintf("version %d not found", from)})
	}
	newV, err := h.versions.Get(c.Context(), entity, entityID, to)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": fmt.Sprintf("version %d not found", to)})
	}

	changes := usecase.DiffFields(oldV.Snapshot, newV.Snapshot)
	return c.JSON(fiber.Map{
		"entity":    entity,
		"entity_id": entityID,
		"from":      from,
		"to":        to,
		"changes":   usecase.DisplayChanges(changes),
	})
}

func (h *Handler) RestoreVersion(c *fiber.Ctx) error {
	entity, entityID, err := h.entityParams(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	version, err := strconv.Atoi(c.Params("version"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid version"})
	}
	restored, err := h.versions.Restore(c.Context(), entity, entityID, version)
	if err != nil {
		h.log.Error("version restore failed", zap.String("entity", entity), zap.Int("version", version), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "restore failed"})
	}
	return c.JSON(restored)
}

func (h *Handler) entityParams(c *fiber.Ctx) (string, uuid.UUID, error) {
	entity := c.Params("entity")
	if entity == "" {
		return "", uuid.Nil, fmt.Errorf("entity is required")
	}
	id, err := uuid.Parse(c.Params("entityID"))
	if err != nil {
		return "", uuid.Nil, fmt.Errorf("invalid entity id")
	}
	return entity, id, nil
}
