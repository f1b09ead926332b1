package api

import (
	"net/http"

	resdto "meetbook/internal/handler/dto/response"
	"meetbook/internal/pkg/errs"
	"meetbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orders queries.OrderQueries
}

func NewOrderHandler(orders queries.OrderQueries) *OrderHandler {
	return &OrderHandler{
		orders: orders,
	}
}

// @Summary Get order status
// @Description Get the fulfillment status of an order by its external reference
// @Tags orders
// @Produce json
// @Param reference path string true "Order external reference"
// @Success 200 {object} resdto.OrderResponse
// @Failure 404 {object} map[string]string
// @Router /orders/{reference} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	reference := c.Param("reference")
	if reference == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Reference is required",
		})
		return
	}

	view, err := h.orders.GetByReference(c.Request.Context(), reference)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	resp, err := resdto.NewOrderResponse(view)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resp)
}
