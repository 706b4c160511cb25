package handlers

import (
	"net/http"
	"strconv"

	apperrors "esports-club-backend/internal/errors"
	"esports-club-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ApplicantHandler handles HTTP requests for join form submissions
type ApplicantHandler struct {
	applicantService service.ApplicantServiceInterface
}

// NewApplicantHandler creates a new applicant handler
func NewApplicantHandler(applicantService service.ApplicantServiceInterface) *ApplicantHandler {
	return &ApplicantHandler{applicantService: applicantService}
}

// SubmitApplicant handles POST /applicants
// @Summary Submit the join form
// @Description Store a club membership application
// @Tags applicants
// @Accept json
// @Produce json
// @Param applicant body service.SubmitApplicantRequest true "Application data"
// @Success 201 {object} service.ApplicantResponse "Stored application"
// @Failure 400 {object} ErrorResponse "Invalid or incomplete application"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /applicants [post]
func (h *ApplicantHandler) SubmitApplicant(c *gin.Context) {
	var req service.SubmitApplicantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	applicant, err := h.applicantService.Submit(&req)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, applicant)
}

// ListApplicants handles GET /admin/applicants
// @Summary List applicants
// @Description Get join form submissions newest first, paginated
// @Tags admin
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(50)
// @Success 200 {object} service.ApplicantListResponse "Applicants"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /admin/applicants [get]
func (h *ApplicantHandler) ListApplicants(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "50"))

	applicants, err := h.applicantService.List(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, applicants)
}
