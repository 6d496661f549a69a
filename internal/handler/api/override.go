package api

import (
	"errors"
	"net/http"

	"registrar/internal/domain/override"
	reqdto "registrar/internal/handler/dto/request"
	resdto "registrar/internal/handler/dto/response"
	"registrar/internal/handler/middleware"
	"registrar/internal/usecase/commands"
	"registrar/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OverrideHandler struct {
	overrideCommands commands.OverrideCommands
	overrideQueries  queries.OverrideQueries
}

func NewOverrideHandler(overrideCommands commands.OverrideCommands, overrideQueries queries.OverrideQueries) *OverrideHandler {
	return &OverrideHandler{
		overrideCommands: overrideCommands,
		overrideQueries:  overrideQueries,
	}
}

// @Summary Request exception
// @Description File a prerequisite or capacity override request for an offering
// @Tags exceptions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateOverrideRequest true "Exception request"
// @Success 201 {object} resdto.OverrideResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /exceptions [post]
func (h *OverrideHandler) RequestOverride(c *gin.Context) {
	studentID, ok := middleware.GetActorID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CreateOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	kind, err := override.ParseType(req.Type)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid override type"})
		return
	}

	created, err := h.overrideCommands.Request(c.Request.Context(), studentID, req.OfferingID, kind, req.TrimmedReason())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrOfferingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Offering not found"})
		case errors.Is(err, override.ErrEmptyReason):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Reason is required"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromOverrideRequest(created))
}

// @Summary List exceptions
// @Description List the current student's exception requests
// @Tags exceptions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.OverrideResponse
// @Failure 401 {object} map[string]string
// @Router /exceptions [get]
func (h *OverrideHandler) ListOverrides(c *gin.Context) {
	studentID, ok := middleware.GetActorID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	views, err := h.overrideQueries.ListByStudent(c.Request.Context(), studentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]*resdto.OverrideResponse, 0, len(views))
	for _, view := range views {
		resp, err := resdto.FromOverrideView(view)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		response = append(response, resp)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Review exception
// @Description Approve or reject a request; only the instructor of record may review
// @Tags exceptions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Exception request ID"
// @Param request body reqdto.ReviewOverrideRequest true "Review decision"
// @Success 200 {object} resdto.OverrideResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /exceptions/{id}/review [post]
func (h *OverrideHandler) ReviewOverride(c *gin.Context) {
	reviewerID, ok := middleware.GetActorID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid exception request ID format"})
		return
	}

	var req reqdto.ReviewOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	reviewed, err := h.overrideCommands.Review(c.Request.Context(), id, reviewerID, req.Approve, req.TrimmedComment())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrOverrideNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Exception request not found"})
		case errors.Is(err, commands.ErrNotInstructorOfRecord):
			c.JSON(http.StatusForbidden, gin.H{"error": "Only the instructor of record may review"})
		case errors.Is(err, commands.ErrAlreadyReviewed):
			c.JSON(http.StatusConflict, gin.H{"error": "Exception request already reviewed"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromOverrideRequest(reviewed))
}
