package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/avtorazbor/internal/constants"
	"github.com/avtorazbor/internal/logger"
	"github.com/avtorazbor/internal/models"
	"github.com/avtorazbor/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var allowedDeliveryMethods = map[string]struct{}{
	constants.DeliveryMethodPickup:  {},
	constants.DeliveryMethodCourier: {},
	constants.DeliveryMethodPost:    {},
}

var allowedOrderStatuses = map[string]struct{}{
	constants.OrderStatusPending:   {},
	constants.OrderStatusCompleted: {},
	constants.OrderStatusCancelled: {},
}

// OrderService turns cart submissions into stock-consistent orders and
// reverses the stock effect on cancellation.
type OrderService struct {
	orderRepo repository.OrderRepository
	partRepo  repository.PartRepository
}

// NewOrderService creates the order service.
func NewOrderService(orderRepo repository.OrderRepository, partRepo repository.PartRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo, partRepo: partRepo}
}

// CreateOrderItem is one requested order line.
type CreateOrderItem struct {
	PartID   uint
	Quantity int
}

// CreateOrderInput is a client order submission.
type CreateOrderInput struct {
	UserID         uint
	DeliveryMethod string
	Address        string
	Items          []CreateOrderItem
}

// mergeOrderItems collapses duplicate part lines, keeping first-seen order.
func mergeOrderItems(items []CreateOrderItem) []CreateOrderItem {
	merged := make([]CreateOrderItem, 0, len(items))
	index := make(map[uint]int, len(items))
	for _, item := range items {
		if pos, ok := index[item.PartID]; ok {
			merged[pos].Quantity += item.Quantity
			continue
		}
		index[item.PartID] = len(merged)
		merged = append(merged, item)
	}
	return merged
}

// CreateOrder validates the submission, reserves stock and persists the
// order with its line items as one transaction. Any failure leaves all
// stock untouched.
func (s *OrderService) CreateOrder(input CreateOrderInput) (*models.Order, error) {
	if len(input.Items) == 0 {
		return nil, ErrEmptyOrderItems
	}
	for _, item := range input.Items {
		if item.PartID == 0 || item.Quantity < 1 {
			return nil, fmt.Errorf("%w: part_id=%d quantity=%d", ErrInvalidOrderItem, item.PartID, item.Quantity)
		}
	}

	method := strings.ToLower(strings.TrimSpace(input.DeliveryMethod))
	if _, ok := allowedDeliveryMethods[method]; !ok {
		return nil, ErrInvalidDeliveryMethod
	}
	address := strings.TrimSpace(input.Address)
	if method == constants.DeliveryMethodCourier {
		if address == "" {
			return nil, ErrAddressRequired
		}
	} else {
		address = ""
	}

	items := mergeOrderItems(input.Items)

	ids := make([]uint, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.PartID)
	}
	parts, err := s.partRepo.ListByIDs(ids)
	if err != nil {
		return nil, err
	}
	partByID := make(map[uint]models.Part, len(parts))
	for _, part := range parts {
		partByID[part.ID] = part
	}
	for _, item := range items {
		part, ok := partByID[item.PartID]
		if !ok {
			return nil, fmt.Errorf("%w: id=%d", ErrPartNotFound, item.PartID)
		}
		if part.Stock < item.Quantity {
			return nil, fmt.Errorf("%w: %s", ErrInsufficientStock, part.Name)
		}
	}

	total := decimal.Zero
	orderItems := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		part := partByID[item.PartID]
		line := part.Price.Decimal.Mul(decimal.NewFromInt(int64(item.Quantity))).Round(2)
		total = total.Add(line)
		orderItems = append(orderItems, models.OrderItem{
			PartID:   part.ID,
			Quantity: item.Quantity,
			Price:    part.Price, // snapshot, immune to later catalog edits
		})
	}

	order := &models.Order{
		UserID:         input.UserID,
		Status:         constants.OrderStatusPending,
		TotalPrice:     models.NewMoneyFromDecimal(total),
		DeliveryMethod: method,
		Address:        address,
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		partRepo := s.partRepo.WithTx(tx)
		for _, item := range items {
			affected, err := partRepo.ReserveStock(item.PartID, item.Quantity)
			if err != nil {
				return err
			}
			if affected == 0 {
				// A concurrent order won the remaining stock.
				return fmt.Errorf("%w: %s", ErrInsufficientStock, partByID[item.PartID].Name)
			}
		}
		return s.orderRepo.WithTx(tx).Create(order, orderItems)
	})
	if err != nil {
		return nil, err
	}

	logger.Infow("order_created",
		"order_id", order.ID,
		"user_id", order.UserID,
		"total_price", order.TotalPrice.String(),
		"items", len(orderItems),
	)
	return s.orderRepo.GetByID(order.ID)
}

// CancelOrder cancels a pending order and restores every line's quantity
// onto its part, all-or-nothing. Clients may only cancel their own orders.
func (s *OrderService) CancelOrder(orderID, userID uint, isOperator bool) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if !isOperator && order.UserID != userID {
		return nil, ErrOrderAccessDenied
	}
	if order.Status != constants.OrderStatusPending {
		return nil, ErrOrderNotPending
	}

	if err := s.cancelAndRestore(order); err != nil {
		return nil, err
	}
	return s.orderRepo.GetByID(order.ID)
}

// cancelAndRestore flips a pending order to cancelled and returns its
// reserved stock in one transaction. Every path into the cancelled status
// goes through here, so cancellation never silently drops reserved stock.
func (s *OrderService) cancelAndRestore(order *models.Order) error {
	now := time.Now()
	err := models.DB.Transaction(func(tx *gorm.DB) error {
		partRepo := s.partRepo.WithTx(tx)
		for _, item := range order.Items {
			if _, err := partRepo.RestoreStock(item.PartID, item.Quantity); err != nil {
				return err
			}
		}
		return s.orderRepo.WithTx(tx).UpdateStatus(order.ID, constants.OrderStatusCancelled, map[string]interface{}{
			"cancelled_at": now,
			"updated_at":   now,
		})
	})
	if err != nil {
		return err
	}
	logger.Infow("order_cancelled", "order_id", order.ID, "user_id", order.UserID)
	return nil
}

// UpdateStatus moves an order between statuses for operators. Completed
// and cancelled are terminal; a transition into cancelled restores stock.
func (s *OrderService) UpdateStatus(orderID uint, target string) (*models.Order, error) {
	target = strings.ToLower(strings.TrimSpace(target))
	if _, ok := allowedOrderStatuses[target]; !ok {
		return nil, ErrUnknownOrderStatus
	}

	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.Status == target {
		return order, nil
	}
	if order.Status != constants.OrderStatusPending {
		return nil, ErrOrderNotPending
	}

	if target == constants.OrderStatusCancelled {
		if err := s.cancelAndRestore(order); err != nil {
			return nil, err
		}
		return s.orderRepo.GetByID(order.ID)
	}

	now := time.Now()
	if err := s.orderRepo.UpdateStatus(order.ID, target, map[string]interface{}{
		"updated_at": now,
	}); err != nil {
		return nil, err
	}
	logger.Infow("order_status_updated", "order_id", order.ID, "status", target)
	return s.orderRepo.GetByID(order.ID)
}

// GetOrder returns one order. Clients see only their own.
func (s *OrderService) GetOrder(orderID, userID uint, isOperator bool) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if !isOperator && order.UserID != userID {
		return nil, ErrOrderAccessDenied
	}
	return order, nil
}

// ListOrders returns an order page scoped to the caller: clients are
// pinned to their own orders, operators span all users.
func (s *OrderService) ListOrders(filter repository.OrderListFilter, callerID uint, isOperator bool) ([]models.Order, int64, error) {
	if !isOperator {
		filter.UserID = callerID
	}
	filter.SortBy = constants.OrderSortColumns[filter.SortBy]
	return s.orderRepo.List(filter)
}
