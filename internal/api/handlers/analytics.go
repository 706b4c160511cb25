package handlers

import (
	"net/http"
	"strconv"

	apperrors "esports-club-backend/internal/errors"
	"esports-club-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AnalyticsHandler handles HTTP requests for traffic analytics
type AnalyticsHandler struct {
	analyticsService service.AnalyticsServiceInterface
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService service.AnalyticsServiceInterface) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// RecordPageView handles POST /analytics/pageview
// @Summary Record a page view
// @Description Store a page view. Admin and API paths are skipped but still report success.
// @Tags analytics
// @Accept json
// @Produce json
// @Param view body service.RecordPageViewRequest true "Page view data"
// @Success 200 {object} service.RecordPageViewResponse "Recorded or skipped"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /analytics/pageview [post]
func (h *AnalyticsHandler) RecordPageView(c *gin.Context) {
	var req service.RecordPageViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.UserAgent == "" {
		req.UserAgent = c.Request.UserAgent()
	}

	resp, err := h.analyticsService.RecordPageView(&req)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Summary handles GET /admin/analytics
// @Summary Traffic summary
// @Description Aggregate views, unique visitors and top paths over the trailing N days
// @Tags admin
// @Produce json
// @Param days query int false "Trailing window in days" default(30)
// @Success 200 {object} service.AnalyticsSummaryResponse "Summary"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /admin/analytics [get]
func (h *AnalyticsHandler) Summary(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))

	summary, err := h.analyticsService.Summary(days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, summary)
}
