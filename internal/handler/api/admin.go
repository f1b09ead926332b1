package api

import (
	"net/http"

	reqdto "meetbook/internal/handler/dto/request"
	resdto "meetbook/internal/handler/dto/response"
	"meetbook/internal/pkg/errs"
	"meetbook/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	admin commands.AdminCommands
}

func NewAdminHandler(admin commands.AdminCommands) *AdminHandler {
	return &AdminHandler{
		admin: admin,
	}
}

// @Summary Operator login
// @Description Login with operator email and password
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /admin/login [post]
func (h *AdminHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	token, err := h.admin.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid email or password",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.LoginResponse{AccessToken: token})
}

// @Summary Resync a degraded order
// @Description Re-attempt meeting provisioning for a paid order with no meeting
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param reference path string true "Order external reference"
// @Success 200 {object} resdto.ResyncResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /admin/orders/{reference}/resync [post]
func (h *AdminHandler) Resync(c *gin.Context) {
	reference := c.Param("reference")
	if reference == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Reference is required",
		})
		return
	}

	result, err := h.admin.Resync(c.Request.Context(), reference)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
		case errs.Is(err, commands.ErrResyncNotNeeded):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Order is not in a resyncable state",
			})
		case errs.Is(err, commands.ErrProviderAuth), errs.Is(err, commands.ErrProvisionFailed):
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Meeting provider request failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	resp, err := resdto.NewResyncResponse(result)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resp)
}
