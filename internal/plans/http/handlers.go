package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/career-compass/career-compass-backend/internal/plans/domain"
	"github.com/career-compass/career-compass-backend/internal/plans/pdf"
)

// PlanGenerator produces a learning plan for a request.
type PlanGenerator interface {
	Generate(ctx context.Context, req domain.PlanRequest) (*domain.LearningPlan, error)
}

type Handler struct {
	generator PlanGenerator
}

func NewHandler(g PlanGenerator) *Handler {
	return &Handler{generator: g}
}

func (h *Handler) Register(r gin.IRouter) {
	r.POST("/generate", h.generatePlan)
	r.POST("/download_pdf", h.downloadPDF)
}

func (h *Handler) generatePlan(c *gin.Context) {
	var req domain.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	plan, err := h.generator.Generate(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate plan from AI. Check the server logs for details."})
		return
	}

	c.JSON(http.StatusOK, plan)
}

func (h *Handler) downloadPDF(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil || len(bytes.TrimSpace(body)) == 0 {
		c.String(http.StatusBadRequest, "Invalid data")
		return
	}

	var plan domain.LearningPlan
	if err := json.Unmarshal(body, &plan); err != nil {
		c.String(http.StatusBadRequest, "Invalid data")
		return
	}

	out, err := pdf.Render(&plan)
	if err != nil {
		if errors.Is(err, domain.ErrMalformedPlan) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render plan"})
		return
	}

	c.Header("Content-Disposition", "attachment; filename=Career_Compass_Plan.pdf")
	c.Data(http.StatusOK, "application/pdf", out)
}
