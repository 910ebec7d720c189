package public

import (
	"strings"

	handlershared "github.com/avtorazbor/internal/http/handlers/shared"
	"github.com/avtorazbor/internal/http/response"
	"github.com/avtorazbor/internal/repository"
	"github.com/avtorazbor/internal/service"

	"github.com/gin-gonic/gin"
)

// OrderItemRequest is one order line in the create payload.
type OrderItemRequest struct {
	PartID   uint `json:"part_id" binding:"required"`
	Quantity int  `json:"quantity" binding:"required"`
}

// CreateOrderRequest is the order create payload.
type CreateOrderRequest struct {
	DeliveryMethod string             `json:"delivery_method" binding:"required"`
	Address        string             `json:"address"`
	Items          []OrderItemRequest `json:"items" binding:"required"`
}

// CreateOrder places an order, reserving stock atomically.
func (h *Handler) CreateOrder(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	items := make([]service.CreateOrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.CreateOrderItem{
			PartID:   item.PartID,
			Quantity: item.Quantity,
		})
	}

	order, err := h.OrderService.CreateOrder(service.CreateOrderInput{
		UserID:         userID,
		DeliveryMethod: req.DeliveryMethod,
		Address:        req.Address,
		Items:          items,
	})
	if err != nil {
		respondWithMappedError(c, err, orderCreateErrorRules, response.CodeInternal, "order creation failed")
		return
	}
	response.Created(c, order)
}

// ListOrders returns the caller's orders. Operators see every order and
// may filter by user_id and status.
func (h *Handler) ListOrders(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	page, limit := h.queryPagination(c)

	filter := repository.OrderListFilter{
		Page:      page,
		PageSize:  limit,
		UserID:    queryUint(c, "user_id"),
		Status:    strings.TrimSpace(c.Query("status")),
		SortBy:    strings.TrimSpace(c.Query("sortBy")),
		SortOrder: strings.TrimSpace(c.Query("sortOrder")),
	}

	orders, total, err := h.OrderService.ListOrders(filter, userID, handlershared.CallerIsOperator(c))
	if err != nil {
		respondError(c, response.CodeInternal, "order list failed", err)
		return
	}
	response.SuccessWithPage(c, orders, response.BuildPagination(page, limit, total))
}

// GetOrder returns one order for its owner or an operator.
func (h *Handler) GetOrder(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	order, err := h.OrderService.GetOrder(orderID, userID, handlershared.CallerIsOperator(c))
	if err != nil {
		respondWithMappedError(c, err, orderReadErrorRules, response.CodeInternal, "order fetch failed")
		return
	}
	response.Success(c, order)
}

// CancelOrder cancels a pending order and restores its reserved stock.
func (h *Handler) CancelOrder(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	order, err := h.OrderService.CancelOrder(orderID, userID, handlershared.CallerIsOperator(c))
	if err != nil {
		respondWithMappedError(c, err, orderCancelErrorRules, response.CodeInternal, "order cancel failed")
		return
	}
	response.Success(c, order)
}
