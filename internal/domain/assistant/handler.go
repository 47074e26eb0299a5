// Package assistant exposes the AI-assisted coding endpoint: it asks the LLM
// proxy for CPT code suggestions matching a visit's complaints and returns
// the extracted (code, description, fee) triples.
package assistant

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/superbill/superbill/internal/platform/ai"
	"github.com/superbill/superbill/internal/platform/auth"
)

// Completer is the slice of the ai client the handler needs.
type Completer interface {
	Complete(ctx context.Context, req ai.Request) (string, error)
}

type Handler struct {
	client Completer
}

func NewHandler(client Completer) *Handler {
	return &Handler{client: client}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("", auth.RequireRole("admin", "billing"))
	g.POST("/ai/suggest-codes", h.SuggestCodes)
}

type suggestRequest struct {
	Complaints []string `json:"complaints"`
	Notes      string   `json:"notes"`
	Model      string   `json:"model"`
}

type suggestResponse struct {
	Suggestions []ai.CodeSuggestion `json:"suggestions"`
	Raw         string              `json:"raw"`
}

func (h *Handler) SuggestCodes(c echo.Context) error {
	var req suggestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if len(req.Complaints) == 0 && req.Notes == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "complaints or notes are required")
	}

	prompt := buildPrompt(req)
	content, err := h.client.Complete(c.Request().Context(), ai.Request{
		Type:    "suggest-codes",
		Prompt:  prompt,
		Context: req.Notes,
		Model:   req.Model,
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, "code suggestion failed")
	}

	return c.JSON(http.StatusOK, suggestResponse{
		Suggestions: ai.ParseCodeSuggestions(content),
		Raw:         content,
	})
}

func buildPrompt(req suggestRequest) string {
	var b strings.Builder
	b.WriteString("Suggest CPT codes for a chiropractic visit with the following presentation. ")
	b.WriteString("Answer one code per line as: CODE - description - $fee.\n")
	if len(req.Complaints) > 0 {
		fmt.Fprintf(&b, "Complaints: %s.\n", strings.Join(req.Complaints, "; "))
	}
	if req.Notes != "" {
		fmt.Fprintf(&b, "Clinical notes: %s\n", req.Notes)
	}
	return b.String()
}
