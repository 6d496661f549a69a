package api

import (
	"errors"
	"net/http"

	reqdto "registrar/internal/handler/dto/request"
	resdto "registrar/internal/handler/dto/response"
	"registrar/internal/usecase/commands"
	"registrar/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OfferingHandler struct {
	regCommands     commands.RegistrationCommands
	offeringQueries queries.OfferingQueries
}

func NewOfferingHandler(regCommands commands.RegistrationCommands, offeringQueries queries.OfferingQueries) *OfferingHandler {
	return &OfferingHandler{
		regCommands:     regCommands,
		offeringQueries: offeringQueries,
	}
}

// @Summary Get seats
// @Description Live seat counts for an offering
// @Tags offerings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offering ID"
// @Success 200 {object} resdto.OfferingSeatsResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /offerings/{id}/seats [get]
func (h *OfferingHandler) GetSeats(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid offering ID format"})
		return
	}

	view, err := h.offeringQueries.Seats(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrOfferingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Offering not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	resp, err := resdto.FromOfferingSeatsView(view)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Resize offering
// @Description Change offering capacity; growth promotes from the waitlist
// @Tags offerings
// @Accept json
// @Security BearerAuth
// @Param id path string true "Offering ID"
// @Param request body reqdto.ResizeOfferingRequest true "New capacity"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /offerings/{id}/capacity [patch]
func (h *OfferingHandler) ResizeOffering(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid offering ID format"})
		return
	}

	var req reqdto.ResizeOfferingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.regCommands.ResizeOffering(c.Request.Context(), id, req.Capacity); err != nil {
		switch {
		case errors.Is(err, commands.ErrOfferingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Offering not found"})
		case errors.Is(err, commands.ErrCapacityBelowEnrollment):
			c.JSON(http.StatusConflict, gin.H{"error": "Capacity cannot drop below current enrollment"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Promote from waitlist
// @Description Admit the waitlist head if a seat is free
// @Tags offerings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offering ID"
// @Success 200 {object} resdto.PromotionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /offerings/{id}/promote [post]
func (h *OfferingHandler) PromoteFromWaitlist(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid offering ID format"})
		return
	}

	promoted, err := h.regCommands.PromoteFromWaitlist(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrOfferingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Offering not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.PromotionResponse{Promoted: promoted})
}
