//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"meetbook/internal/domain/payment"
	"meetbook/internal/handler/api"
	resdto "meetbook/internal/handler/dto/response"
	"meetbook/internal/handler/middleware"
	"meetbook/internal/pkg/config"
	"meetbook/internal/pkg/errs"
	"meetbook/internal/usecase/commands"
	"meetbook/tests/common/builder"
	"meetbook/tests/common/httptest"
	commandsmock "meetbook/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WebhookHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockCtrl        *gomock.Controller
	mockFulfillment *commandsmock.MockFulfillmentCommands
	handler         *api.WebhookHandler
	cfg             config.Config
}

func (s *WebhookHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.cfg = config.NewTestConfig()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockFulfillment = commandsmock.NewMockFulfillmentCommands(s.mockCtrl)
	s.handler = api.NewWebhookHandler(s.mockFulfillment)

	group := s.router.Group("/webhooks")
	group.Use(middleware.RequireCallbackToken(s.cfg.Webhook))
	group.POST("/payment", s.handler.HandlePayment)
}

func (s *WebhookHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWebhookHandlerSuite(t *testing.T) {
	suite.Run(t, new(WebhookHandlerTestSuite))
}

func (s *WebhookHandlerTestSuite) tokenHeader() map[string]string {
	return map[string]string{"x-callback-token": s.cfg.Webhook.CallbackToken}
}

func (s *WebhookHandlerTestSuite) TestHandlePayment() {
	url := "/webhooks/payment"
	payload := builder.NewWebhookBuilder().BuildSessionEnvelope()

	s.Run("success: returns 200 with success body for processed delivery", func() {
		s.mockFulfillment.EXPECT().ProcessEvent(gomock.Any(), gomock.Any()).
			Return(&commands.ProcessResult{Outcome: commands.OutcomePaid, Reference: "ORD-0001"}, nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, payload, "", s.tokenHeader())

		var ack resdto.WebhookAck
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &ack)
		s.True(ack.Success)
		s.Equal("paid", ack.Outcome)
	})

	s.Run("success: no-op outcome still acknowledged", func() {
		s.mockFulfillment.EXPECT().ProcessEvent(gomock.Any(), gomock.Any()).
			Return(&commands.ProcessResult{Outcome: commands.OutcomeNoOp, Reference: "ORD-0001"}, nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, payload, "", s.tokenHeader())

		var ack resdto.WebhookAck
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &ack)
		s.True(ack.Success)
	})

	s.Run("error: 401 without callback token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, payload, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "callback token")
	})

	s.Run("error: 401 with wrong callback token", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, payload, "",
			map[string]string{"x-callback-token": "not-the-token"})

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "callback token")
	})

	s.Run("error: 400 for unroutable payload", func() {
		s.mockFulfillment.EXPECT().ProcessEvent(gomock.Any(), gomock.Any()).
			Return(nil, payment.ErrUnroutable).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url,
			map[string]any{"hello": "world"}, "", s.tokenHeader())

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Unrecognized")
	})

	s.Run("error: 500 for storage failure so the gateway redelivers", func() {
		s.mockFulfillment.EXPECT().ProcessEvent(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("conn refused"), commands.ErrDatabaseOperationFailed)).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, payload, "", s.tokenHeader())

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
