//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"registrar/internal/domain/actor"
	"registrar/internal/handler/api"
	resdto "registrar/internal/handler/dto/response"
	"registrar/internal/usecase/commands"
	"registrar/internal/usecase/queries"
	"registrar/tests/common/builder"
	"registrar/tests/common/httptest"
	commandsmock "registrar/tests/mock/commands"
	queriesmock "registrar/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OfferingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRegistrationCommands
	mockQueries  *queriesmock.MockOfferingQueries
	handler      *api.OfferingHandler
}

func (s *OfferingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRegistrationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockOfferingQueries(s.mockCtrl)
	s.handler = api.NewOfferingHandler(s.mockCommands, s.mockQueries)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("actor_id", uuid.New())
		c.Set("actor_role", actor.RoleRegistrar)
		c.Next()
	}

	s.router.GET("/offerings/:id/seats", authMiddleware, s.handler.GetSeats)
	s.router.PATCH("/offerings/:id/capacity", authMiddleware, s.handler.ResizeOffering)
	s.router.POST("/offerings/:id/promote", authMiddleware, s.handler.PromoteFromWaitlist)
}

func (s *OfferingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOfferingHandlerSuite(t *testing.T) {
	suite.Run(t, new(OfferingHandlerTestSuite))
}

// ================================================================================
// TestGetSeats
// ================================================================================

func (s *OfferingHandlerTestSuite) TestGetSeats() {
	offeringID := uuid.New()
	url := "/offerings/" + offeringID.String() + "/seats"

	s.Run("success: returns the live seat view", func() {
		view := builder.NewOfferingBuilder().With(func(b *builder.OfferingBuilder) {
			b.ID = offeringID
		}).BuildSeatsView()

		s.mockQueries.EXPECT().Seats(gomock.Any(), offeringID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.OfferingSeatsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(offeringID, response.OfferingID)
		s.Equal(view.Capacity, response.Capacity)
		s.Equal(view.Schedule, response.Schedule)
	})

	s.Run("error: 404 for an unknown offering", func() {
		s.mockQueries.EXPECT().Seats(gomock.Any(), offeringID).
			Return(nil, queries.ErrOfferingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Offering not found")
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/offerings/bogus/seats", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid offering ID")
	})
}

// ================================================================================
// TestResizeOffering
// ================================================================================

func (s *OfferingHandlerTestSuite) TestResizeOffering() {
	offeringID := uuid.New()
	url := "/offerings/" + offeringID.String() + "/capacity"

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().ResizeOffering(gomock.Any(), offeringID, 40).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			map[string]any{"capacity": 40}, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 on non-positive capacity", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			map[string]any{"capacity": 0}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 409 when shrinking below enrollment", func() {
		s.mockCommands.EXPECT().ResizeOffering(gomock.Any(), offeringID, 1).
			Return(commands.ErrCapacityBelowEnrollment).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			map[string]any{"capacity": 1}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Capacity cannot drop")
	})
}

// ================================================================================
// TestPromoteFromWaitlist
// ================================================================================

func (s *OfferingHandlerTestSuite) TestPromoteFromWaitlist() {
	offeringID := uuid.New()
	url := "/offerings/" + offeringID.String() + "/promote"

	s.Run("success: reports whether a promotion happened", func() {
		s.mockCommands.EXPECT().PromoteFromWaitlist(gomock.Any(), offeringID).
			Return(true, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var response resdto.PromotionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Promoted)
	})

	s.Run("success: no-op promotion returns false", func() {
		s.mockCommands.EXPECT().PromoteFromWaitlist(gomock.Any(), offeringID).
			Return(false, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var response resdto.PromotionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.Promoted)
	})

	s.Run("error: 404 for an unknown offering", func() {
		s.mockCommands.EXPECT().PromoteFromWaitlist(gomock.Any(), offeringID).
			Return(false, commands.ErrOfferingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Offering not found")
	})
}
