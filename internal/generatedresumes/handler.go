package generatedresumes

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-styler/internal/shared/server/respond"
	"resume-styler/resume/model"
	"resume-styler/resume/render"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches template and render routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/templates", h.templates)
	rg.POST("/resumes/render", h.render)
	rg.POST("/resumes/preview", h.preview)
}

type renderRequest struct {
	Template string          `json:"template"`
	Format   string          `json:"format"`
	Record   json.RawMessage `json:"record"`
}

type previewRequest struct {
	Record json.RawMessage `json:"record"`
}

func (h *Handler) templates(c *gin.Context) {
	respond.OK(c, gin.H{"templates": h.Svc.Templates()})
}

func (h *Handler) render(c *gin.Context) {
	var req renderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	c.Set("template", req.Template)

	out, err := h.Svc.Render(c.Request.Context(), req.Template, req.Format, req.Record)
	if err != nil {
		writeError(c, err)
		return
	}

	respond.Attachment(c, out.FileName, out.ContentType, out.Bytes)
}

func (h *Handler) preview(c *gin.Context) {
	var req previewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	out, err := h.Svc.Preview(c.Request.Context(), req.Record)
	if err != nil {
		writeError(c, err)
		return
	}
	respond.Attachment(c, PreviewFileName, "application/zip", out)
}

func writeError(c *gin.Context, err error) {
	var schemaErr *model.SchemaError
	var renderErr *render.RenderError
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, render.ErrUnsupportedFormat) && !errors.As(err, &renderErr):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), gin.H{"formats": []string{"pdf", "html", "outline"}})
	case errors.As(err, &schemaErr):
		respond.Error(c, http.StatusUnprocessableEntity, "invalid_record", "record does not match the expected shape", gin.H{"problems": schemaErr.Problems})
	case errors.Is(err, model.ErrInvalidJSON):
		respond.Error(c, http.StatusUnprocessableEntity, "invalid_record", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "render_failed", "failed to render resume", nil)
	}
}
