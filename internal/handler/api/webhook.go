package api

import (
	"io"
	"net/http"

	resdto "meetbook/internal/handler/dto/response"
	"meetbook/internal/domain/payment"
	"meetbook/internal/pkg/errs"
	"meetbook/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// Gateway deliveries are capped well below this; anything larger is junk.
const maxWebhookBody = 1 << 20

type WebhookHandler struct {
	fulfillment commands.FulfillmentCommands
}

func NewWebhookHandler(fulfillment commands.FulfillmentCommands) *WebhookHandler {
	return &WebhookHandler{
		fulfillment: fulfillment,
	}
}

// @Summary Payment gateway callback
// @Description Receives payment lifecycle events and payment method updates
// @Tags webhooks
// @Accept json
// @Produce json
// @Param x-callback-token header string true "Shared callback secret"
// @Success 200 {object} resdto.WebhookAck
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /webhooks/payment [post]
func (h *WebhookHandler) HandlePayment(c *gin.Context) {
	raw, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Unreadable request body",
		})
		return
	}

	result, err := h.fulfillment.ProcessEvent(c.Request.Context(), raw)
	if err != nil {
		switch {
		case errs.Is(err, payment.ErrUnroutable):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Unrecognized event payload",
			})
		default:
			// A 5xx makes the gateway redeliver, which is exactly what
			// we want after a storage failure.
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.WebhookAck{
		Success: true,
		Outcome: string(result.Outcome),
	})
}
