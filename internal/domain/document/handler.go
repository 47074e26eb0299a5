package document

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/superbill/superbill/internal/platform/auth"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("", auth.RequireRole("admin", "billing"))
	g.GET("/superbills/:id/cover-letter", h.CoverLetter)
	g.GET("/superbills/:id/reimbursement-guide", h.ReimbursementGuide)
	g.GET("/superbills/:id/printable", h.Printable)
	g.POST("/superbills/:id/export", h.Export)
	g.POST("/cover-letters", h.GroupedCoverLetter)
}

func (h *Handler) CoverLetter(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	html, err := h.svc.CoverLetter(c.Request().Context(), id, boolParam(c, "invoice_note"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "superbill not found")
	}
	return c.HTML(http.StatusOK, html)
}

type groupedRequest struct {
	SuperbillIDs []uuid.UUID `json:"superbill_ids"`
	InvoiceNote  bool        `json:"invoice_note"`
}

func (h *Handler) GroupedCoverLetter(c echo.Context) error {
	var req groupedRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	html, err := h.svc.GroupedCoverLetter(c.Request().Context(), req.SuperbillIDs, req.InvoiceNote)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return c.HTML(http.StatusOK, html)
}

func (h *Handler) ReimbursementGuide(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	html, err := h.svc.ReimbursementGuide(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "superbill not found")
	}
	return c.HTML(http.StatusOK, html)
}

func (h *Handler) Printable(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	html, err := h.svc.Printable(c.Request().Context(), id, boolParam(c, "invoice_note"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "superbill not found")
	}
	return c.HTML(http.StatusOK, html)
}

// Export streams the generated PDF as a download. Rasterization happens in
// an external browser process, so its failures map to 502 rather than 500.
func (h *Handler) Export(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	filename, data, err := h.svc.ExportPDF(c.Request().Context(), id, boolParam(c, "invoice_note"))
	if err != nil {
		var rerr *RenderError
		if errors.As(err, &rerr) {
			return echo.NewHTTPError(http.StatusBadGateway, "document rendering failed")
		}
		if strings.Contains(err.Error(), "not found") {
			return echo.NewHTTPError(http.StatusNotFound, "superbill not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Blob(http.StatusOK, "application/pdf", data)
}

func boolParam(c echo.Context, name string) bool {
	v := strings.ToLower(c.QueryParam(name))
	return v == "1" || v == "true" || v == "yes"
}
