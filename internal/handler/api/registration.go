package api

import (
	"errors"
	"net/http"

	reqdto "registrar/internal/handler/dto/request"
	resdto "registrar/internal/handler/dto/response"
	"registrar/internal/handler/middleware"
	"registrar/internal/pkg/config"
	"registrar/internal/usecase/commands"
	"registrar/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RegistrationHandler struct {
	regCommands commands.RegistrationCommands
	regQueries  queries.RegistrationQueries
	maxCredits  int32
}

func NewRegistrationHandler(
	regCommands commands.RegistrationCommands,
	regQueries queries.RegistrationQueries,
	cfg config.RegistrationConfig,
) *RegistrationHandler {
	return &RegistrationHandler{
		regCommands: regCommands,
		regQueries:  regQueries,
		maxCredits:  cfg.MaxCredits,
	}
}

// @Summary Submit cart
// @Description Process the staged cart through admission control, one record per item
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Success 201 {object} resdto.SubmissionResponse
// @Failure 401 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /registrations [post]
func (h *RegistrationHandler) Submit(c *gin.Context) {
	studentID, ok := middleware.GetActorID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	records, err := h.regCommands.Submit(c.Request.Context(), studentID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrEmptyCart):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Cart is empty"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromSubmission(records))
}

// @Summary List registrations
// @Description List the current student's registration records
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.RegistrationResponse
// @Failure 401 {object} map[string]string
// @Router /registrations [get]
func (h *RegistrationHandler) ListRegistrations(c *gin.Context) {
	studentID, ok := middleware.GetActorID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	views, err := h.regQueries.ListByStudent(c.Request.Context(), studentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]*resdto.RegistrationResponse, 0, len(views))
	for _, view := range views {
		resp, err := resdto.FromRegistrationView(view)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		response = append(response, resp)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Get registration
// @Description Get one of the current student's registration records
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Registration ID"
// @Success 200 {object} resdto.RegistrationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /registrations/{id} [get]
func (h *RegistrationHandler) GetRegistration(c *gin.Context) {
	studentID, ok := middleware.GetActorID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid registration ID format"})
		return
	}

	view, err := h.regQueries.GetByID(c.Request.Context(), studentID, id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrRegistrationNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Registration not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	resp, err := resdto.FromRegistrationView(view)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Withdraw
// @Description Drop a seat or waitlist spot; a freed seat promotes the waitlist head
// @Tags registrations
// @Security BearerAuth
// @Param id path string true "Offering ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /registrations/{id} [delete]
func (h *RegistrationHandler) Withdraw(c *gin.Context) {
	studentID, ok := middleware.GetActorID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	offeringID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid offering ID format"})
		return
	}

	if err := h.regCommands.Withdraw(c.Request.Context(), studentID, offeringID); err != nil {
		switch {
		case errors.Is(err, commands.ErrOfferingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Offering not found"})
		case errors.Is(err, commands.ErrNotEnrolled):
			c.JSON(http.StatusConflict, gin.H{"error": "Not enrolled or waitlisted in this offering"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Check credit load
// @Description Advisory check of current plus proposed credits against the configured cap
// @Tags registrations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ValidateCreditLoadRequest true "Proposed offerings"
// @Success 200 {object} resdto.CreditLoadResponse
// @Failure 400 {object} map[string]string
// @Router /registrations/credit-check [post]
func (h *RegistrationHandler) CheckCreditLoad(c *gin.Context) {
	studentID, ok := middleware.GetActorID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.ValidateCreditLoadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	withinLimit, total, err := h.regCommands.ValidateCreditLoad(c.Request.Context(), studentID, req.OfferingIDs, h.maxCredits)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.CreditLoadResponse{
		WithinLimit:  withinLimit,
		TotalCredits: total,
		MaxCredits:   h.maxCredits,
	})
}
