package operator

import (
	"github.com/avtorazbor/internal/http/response"

	"github.com/gin-gonic/gin"
)

// UpdateOrderStatusRequest is the status transition payload.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateOrderStatus moves an order to a new status. A transition into
// cancelled restores the reserved stock.
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	order, err := h.OrderService.UpdateStatus(id, req.Status)
	if err != nil {
		respondWithMappedError(c, err, orderStatusErrorRules, response.CodeInternal, "order status update failed")
		return
	}
	response.Success(c, order)
}
