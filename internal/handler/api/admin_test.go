//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"

	"meetbook/internal/domain/order"
	"meetbook/internal/handler/api"
	resdto "meetbook/internal/handler/dto/response"
	"meetbook/internal/pkg/errs"
	"meetbook/internal/usecase/commands"
	"meetbook/tests/common/httptest"
	"meetbook/tests/common/testutil"
	commandsmock "meetbook/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	mockCtrl  *gomock.Controller
	mockAdmin *commandsmock.MockAdminCommands
	handler   *api.AdminHandler
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockAdmin = commandsmock.NewMockAdminCommands(s.mockCtrl)
	s.handler = api.NewAdminHandler(s.mockAdmin)

	s.router.POST("/admin/login", s.handler.Login)
	s.router.POST("/admin/orders/:reference/resync", s.handler.Resync)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) TestLogin() {
	url := "/admin/login"
	reqBody := map[string]any{"email": "ops@example.com", "password": "super-secret"}

	s.Run("success: returns 200 with access token", func() {
		s.mockAdmin.EXPECT().Login(gomock.Any(), "ops@example.com", "super-secret").
			Return("signed-token", nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var resp resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal("signed-token", resp.AccessToken)
	})

	s.Run("error: 401 for bad credentials", func() {
		s.mockAdmin.EXPECT().Login(gomock.Any(), "ops@example.com", "super-secret").
			Return("", commands.ErrInvalidCredentials).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid email or password")
	})

	s.Run("error: 400 on validation errors", func() {
		cases := []struct {
			name       string
			mutate     func(map[string]any)
			expectCode int
		}{
			{name: "invalid email", mutate: testutil.Field("email", "not-an-email"), expectCode: http.StatusBadRequest},
			{name: "short password", mutate: testutil.Field("password", strings.Repeat("a", 7)), expectCode: http.StatusBadRequest},
			{name: "missing email", mutate: testutil.Field("email", nil), expectCode: http.StatusBadRequest},
			{name: "missing password", mutate: testutil.Field("password", nil), expectCode: http.StatusBadRequest},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				s.Equal(tc.expectCode, rec.Code)
			})
		}
	})
}

func (s *AdminHandlerTestSuite) TestResync() {
	url := "/admin/orders/ORD-0001/resync"

	s.Run("success: returns 200 with meeting artifacts", func() {
		s.mockAdmin.EXPECT().Resync(gomock.Any(), "ORD-0001").
			Return(&commands.ResyncResult{
				Reference: "ORD-0001",
				Provisioning: order.Provisioning{
					MeetingUUID: "uuid-1",
					MeetingID:   123,
					JoinURL:     "https://meet.example.com/j/123",
					Passcode:    "482913",
				},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var resp resdto.ResyncResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal("ORD-0001", resp.Reference)
		s.Equal(int64(123), resp.MeetingID)
		s.Equal("https://meet.example.com/j/123", resp.JoinURL)
	})

	s.Run("error: 404 for unknown order", func() {
		s.mockAdmin.EXPECT().Resync(gomock.Any(), "ORD-0001").
			Return(nil, commands.ErrOrderNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Order not found")
	})

	s.Run("error: 409 when order is not degraded", func() {
		s.mockAdmin.EXPECT().Resync(gomock.Any(), "ORD-0001").
			Return(nil, commands.ErrResyncNotNeeded).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "not in a resyncable state")
	})

	s.Run("error: 502 when the provider rejects the attempt", func() {
		s.mockAdmin.EXPECT().Resync(gomock.Any(), "ORD-0001").
			Return(nil, commands.ErrProvisionFailed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "provider request failed")
	})

	// The scheduler and token cache attach these sentinels as markers on
	// the underlying provider error; the handler must still map them.
	s.Run("error: 502 when the provision failure carries an underlying error", func() {
		s.mockAdmin.EXPECT().Resync(gomock.Any(), "ORD-0001").
			Return(nil, errs.Mark(errs.New("meeting create failed: status 422"), commands.ErrProvisionFailed)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "provider request failed")
	})

	s.Run("error: 502 when the provider login fails", func() {
		s.mockAdmin.EXPECT().Resync(gomock.Any(), "ORD-0001").
			Return(nil, errs.Mark(errs.New("401 unauthorized"), commands.ErrProviderAuth)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "provider request failed")
	})
}
