package api

import (
	"errors"
	"net/http"

	reqdto "registrar/internal/handler/dto/request"
	resdto "registrar/internal/handler/dto/response"
	"registrar/internal/handler/middleware"
	"registrar/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CartHandler struct {
	cartCommands commands.CartCommands
}

func NewCartHandler(cartCommands commands.CartCommands) *CartHandler {
	return &CartHandler{cartCommands: cartCommands}
}

// @Summary Get cart
// @Description Get the current student's staged cart
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CartResponse
// @Failure 401 {object} map[string]string
// @Router /cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	studentID, ok := middleware.GetActorID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	staged := h.cartCommands.Get(c.Request.Context(), studentID)
	c.JSON(http.StatusOK, resdto.FromCart(staged))
}

// @Summary Add cart item
// @Description Stage an offering in the cart
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AddCartItemRequest true "Offering to stage"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	studentID, ok := middleware.GetActorID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	staged, err := h.cartCommands.AddItem(c.Request.Context(), studentID, req.OfferingID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrOfferingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Offering not found"})
		case errors.Is(err, commands.ErrDuplicateCartItem):
			c.JSON(http.StatusConflict, gin.H{"error": "Offering already in cart"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCart(staged))
}

// @Summary Remove cart item
// @Description Remove a staged offering from the cart
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Param offeringId path string true "Offering ID"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cart/items/{offeringId} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	studentID, ok := middleware.GetActorID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	offeringID, err := uuid.Parse(c.Param("offeringId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid offering ID format"})
		return
	}

	staged, err := h.cartCommands.RemoveItem(c.Request.Context(), studentID, offeringID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrCartItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Offering not in cart"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCart(staged))
}

// @Summary Clear cart
// @Description Drop every staged offering
// @Tags cart
// @Security BearerAuth
// @Success 204
// @Failure 401 {object} map[string]string
// @Router /cart [delete]
func (h *CartHandler) ClearCart(c *gin.Context) {
	studentID, ok := middleware.GetActorID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	h.cartCommands.Clear(c.Request.Context(), studentID)
	c.Status(http.StatusNoContent)
}

// @Summary Validate cart
// @Description Check the staged cart for schedule conflicts and full offerings
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CartValidationResponse
// @Failure 401 {object} map[string]string
// @Router /cart/validate [post]
func (h *CartHandler) ValidateCart(c *gin.Context) {
	studentID, ok := middleware.GetActorID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	result, err := h.cartCommands.Validate(c.Request.Context(), studentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromValidationResult(result))
}
