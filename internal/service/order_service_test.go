package service

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/avtorazbor/internal/constants"
	"github.com/avtorazbor/internal/models"
	"github.com/avtorazbor/internal/repository"
)

func TestCreateOrderComputesTotalAndReservesStock(t *testing.T) {
	setupTestDB(t)
	svc := newTestOrderService()

	user := createTestUser(t, "buyer", constants.RoleClient)
	disc := createTestPart(t, "Brake disc", "50.00", 5)
	alt := createTestPart(t, "Alternator", "100.00", 2)

	order, err := svc.CreateOrder(CreateOrderInput{
		UserID:         user.ID,
		DeliveryMethod: "pickup",
		Items: []CreateOrderItem{
			{PartID: disc.ID, Quantity: 2},
			{PartID: alt.ID, Quantity: 1},
		},
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	if order.Status != constants.OrderStatusPending {
		t.Fatalf("status want pending got %s", order.Status)
	}
	if got := order.TotalPrice.String(); got != "200.00" {
		t.Fatalf("total want 200.00 got %s", got)
	}
	if len(order.Items) != 2 {
		t.Fatalf("items want 2 got %d", len(order.Items))
	}
	if got := partStock(t, disc.ID); got != 3 {
		t.Fatalf("disc stock want 3 got %d", got)
	}
	if got := partStock(t, alt.ID); got != 1 {
		t.Fatalf("alternator stock want 1 got %d", got)
	}
}

func TestCreateOrderSnapshotsPrice(t *testing.T) {
	setupTestDB(t)
	svc := newTestOrderService()

	user := createTestUser(t, "buyer", constants.RoleClient)
	part := createTestPart(t, "Headlight", "75.00", 4)

	order, err := svc.CreateOrder(CreateOrderInput{
		UserID:         user.ID,
		DeliveryMethod: "post",
		Items:          []CreateOrderItem{{PartID: part.ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	// A later catalog edit must not touch the recorded line price.
	if err := models.DB.Model(&models.Part{}).Where("id = ?", part.ID).Update("price", "99.99").Error; err != nil {
		t.Fatalf("update part price: %v", err)
	}
	reloaded, err := svc.GetOrder(order.ID, user.ID, false)
	if err != nil {
		t.Fatalf("reload order: %v", err)
	}
	if got := reloaded.Items[0].Price.String(); got != "75.00" {
		t.Fatalf("line price want 75.00 got %s", got)
	}
	if got := reloaded.TotalPrice.String(); got != "75.00" {
		t.Fatalf("total want 75.00 got %s", got)
	}
}

func TestCreateOrderMergesDuplicateLines(t *testing.T) {
	setupTestDB(t)
	svc := newTestOrderService()

	user := createTestUser(t, "buyer", constants.RoleClient)
	part := createTestPart(t, "Shock absorber", "40.00", 10)

	order, err := svc.CreateOrder(CreateOrderInput{
		UserID:         user.ID,
		DeliveryMethod: "pickup",
		Items: []CreateOrderItem{
			{PartID: part.ID, Quantity: 2},
			{PartID: part.ID, Quantity: 3},
		},
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if len(order.Items) != 1 {
		t.Fatalf("items want 1 merged line got %d", len(order.Items))
	}
	if order.Items[0].Quantity != 5 {
		t.Fatalf("merged quantity want 5 got %d", order.Items[0].Quantity)
	}
	if got := partStock(t, part.ID); got != 5 {
		t.Fatalf("stock want 5 got %d", got)
	}
}

func TestCreateOrderInsufficientStockLeavesNothingBehind(t *testing.T) {
	setupTestDB(t)
	svc := newTestOrderService()

	user := createTestUser(t, "buyer", constants.RoleClient)
	ok := createTestPart(t, "Mirror", "20.00", 5)
	scarce := createTestPart(t, "Rare ECU", "300.00", 1)

	_, err := svc.CreateOrder(CreateOrderInput{
		UserID:         user.ID,
		DeliveryMethod: "pickup",
		Items: []CreateOrderItem{
			{PartID: ok.ID, Quantity: 2},
			{PartID: scarce.ID, Quantity: 3},
		},
	})
	if !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("want ErrInsufficientStock got %v", err)
	}
	if !strings.Contains(err.Error(), "Rare ECU") {
		t.Fatalf("error should name the part, got %q", err.Error())
	}

	if got := partStock(t, ok.ID); got != 5 {
		t.Fatalf("stock of untouched part want 5 got %d", got)
	}
	if got := partStock(t, scarce.ID); got != 1 {
		t.Fatalf("stock of scarce part want 1 got %d", got)
	}
	var count int64
	models.DB.Model(&models.Order{}).Count(&count)
	if count != 0 {
		t.Fatalf("no order rows expected, got %d", count)
	}
}

func TestConcurrentOrdersForLastUnit(t *testing.T) {
	setupTestDB(t)
	svc := newTestOrderService()

	first := createTestUser(t, "first", constants.RoleClient)
	second := createTestUser(t, "second", constants.RoleClient)
	part := createTestPart(t, "Last turbocharger", "250.00", 1)

	buyers := []uint{first.ID, second.ID}
	errs := make([]error, len(buyers))
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i, userID := range buyers {
		wg.Add(1)
		go func(i int, userID uint) {
			defer wg.Done()
			<-start
			_, errs[i] = svc.CreateOrder(CreateOrderInput{
				UserID:         userID,
				DeliveryMethod: "pickup",
				Items:          []CreateOrderItem{{PartID: part.ID, Quantity: 1}},
			})
		}(i, userID)
	}
	close(start)
	wg.Wait()

	var won, lost int
	for _, err := range errs {
		switch {
		case err == nil:
			won++
		case errors.Is(err, ErrInsufficientStock):
			lost++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if won != 1 || lost != 1 {
		t.Fatalf("want exactly one winner and one insufficient-stock loser, got won=%d lost=%d", won, lost)
	}
	if got := partStock(t, part.ID); got != 0 {
		t.Fatalf("final stock want 0 got %d", got)
	}
	var orders int64
	models.DB.Model(&models.Order{}).Count(&orders)
	if orders != 1 {
		t.Fatalf("order rows want 1 got %d", orders)
	}
}

func TestCreateOrderUnknownPart(t *testing.T) {
	setupTestDB(t)
	svc := newTestOrderService()
	user := createTestUser(t, "buyer", constants.RoleClient)

	_, err := svc.CreateOrder(CreateOrderInput{
		UserID:         user.ID,
		DeliveryMethod: "pickup",
		Items:          []CreateOrderItem{{PartID: 9999, Quantity: 1}},
	})
	if !errors.Is(err, ErrPartNotFound) {
		t.Fatalf("want ErrPartNotFound got %v", err)
	}
}

func TestCreateOrderValidation(t *testing.T) {
	setupTestDB(t)
	svc := newTestOrderService()
	user := createTestUser(t, "buyer", constants.RoleClient)
	part := createTestPart(t, "Bumper", "60.00", 3)

	_, err := svc.CreateOrder(CreateOrderInput{UserID: user.ID, DeliveryMethod: "pickup"})
	if !errors.Is(err, ErrEmptyOrderItems) {
		t.Fatalf("empty items: want ErrEmptyOrderItems got %v", err)
	}

	_, err = svc.CreateOrder(CreateOrderInput{
		UserID:         user.ID,
		DeliveryMethod: "pickup",
		Items:          []CreateOrderItem{{PartID: part.ID, Quantity: 0}},
	})
	if !errors.Is(err, ErrInvalidOrderItem) {
		t.Fatalf("zero quantity: want ErrInvalidOrderItem got %v", err)
	}

	_, err = svc.CreateOrder(CreateOrderInput{
		UserID:         user.ID,
		DeliveryMethod: "teleport",
		Items:          []CreateOrderItem{{PartID: part.ID, Quantity: 1}},
	})
	if !errors.Is(err, ErrInvalidDeliveryMethod) {
		t.Fatalf("unknown method: want ErrInvalidDeliveryMethod got %v", err)
	}
}

func TestCreateOrderCourierRequiresAddress(t *testing.T) {
	setupTestDB(t)
	svc := newTestOrderService()
	user := createTestUser(t, "buyer", constants.RoleClient)
	part := createTestPart(t, "Radiator", "80.00", 3)

	_, err := svc.CreateOrder(CreateOrderInput{
		UserID:         user.ID,
		DeliveryMethod: "courier",
		Address:        "   ",
		Items:          []CreateOrderItem{{PartID: part.ID, Quantity: 1}},
	})
	if !errors.Is(err, ErrAddressRequired) {
		t.Fatalf("want ErrAddressRequired got %v", err)
	}

	order, err := svc.CreateOrder(CreateOrderInput{
		UserID:         user.ID,
		DeliveryMethod: "Courier",
		Address:        "Lenina 1, Moscow",
		Items:          []CreateOrderItem{{PartID: part.ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("courier with address failed: %v", err)
	}
	if order.DeliveryMethod != constants.DeliveryMethodCourier {
		t.Fatalf("method should be normalized, got %s", order.DeliveryMethod)
	}
	if order.Address != "Lenina 1, Moscow" {
		t.Fatalf("address want kept got %q", order.Address)
	}

	pickup, err := svc.CreateOrder(CreateOrderInput{
		UserID:         user.ID,
		DeliveryMethod: "pickup",
		Address:        "should be dropped",
		Items:          []CreateOrderItem{{PartID: part.ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("pickup order failed: %v", err)
	}
	if pickup.Address != "" {
		t.Fatalf("pickup address want empty got %q", pickup.Address)
	}
}

func TestCancelOrderRestoresStock(t *testing.T) {
	setupTestDB(t)
	svc := newTestOrderService()
	user := createTestUser(t, "buyer", constants.RoleClient)
	part := createTestPart(t, "Gearbox", "500.00", 4)

	order, err := svc.CreateOrder(CreateOrderInput{
		UserID:         user.ID,
		DeliveryMethod: "pickup",
		Items:          []CreateOrderItem{{PartID: part.ID, Quantity: 3}},
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if got := partStock(t, part.ID); got != 1 {
		t.Fatalf("stock after order want 1 got %d", got)
	}

	cancelled, err := svc.CancelOrder(order.ID, user.ID, false)
	if err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if cancelled.Status != constants.OrderStatusCancelled {
		t.Fatalf("status want cancelled got %s", cancelled.Status)
	}
	if cancelled.CancelledAt == nil {
		t.Fatalf("cancelled_at should be set")
	}
	if got := partStock(t, part.ID); got != 4 {
		t.Fatalf("stock after cancel want 4 got %d", got)
	}

	_, err = svc.CancelOrder(order.ID, user.ID, false)
	if !errors.Is(err, ErrOrderNotPending) {
		t.Fatalf("double cancel: want ErrOrderNotPending got %v", err)
	}
	if got := partStock(t, part.ID); got != 4 {
		t.Fatalf("stock after double cancel want 4 got %d", got)
	}
}

func TestCancelOrderOwnership(t *testing.T) {
	setupTestDB(t)
	svc := newTestOrderService()
	owner := createTestUser(t, "owner", constants.RoleClient)
	other := createTestUser(t, "other", constants.RoleClient)
	part := createTestPart(t, "Door", "120.00", 2)

	order, err := svc.CreateOrder(CreateOrderInput{
		UserID:         owner.ID,
		DeliveryMethod: "pickup",
		Items:          []CreateOrderItem{{PartID: part.ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	if _, err := svc.CancelOrder(order.ID, other.ID, false); !errors.Is(err, ErrOrderAccessDenied) {
		t.Fatalf("foreign cancel: want ErrOrderAccessDenied got %v", err)
	}
	if _, err := svc.CancelOrder(order.ID, other.ID, true); err != nil {
		t.Fatalf("operator cancel failed: %v", err)
	}

	if _, err := svc.CancelOrder(9999, owner.ID, false); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("missing order: want ErrOrderNotFound got %v", err)
	}
}

func TestUpdateStatusTransitions(t *testing.T) {
	setupTestDB(t)
	svc := newTestOrderService()
	user := createTestUser(t, "buyer", constants.RoleClient)
	part := createTestPart(t, "Hood", "90.00", 6)

	order, err := svc.CreateOrder(CreateOrderInput{
		UserID:         user.ID,
		DeliveryMethod: "pickup",
		Items:          []CreateOrderItem{{PartID: part.ID, Quantity: 2}},
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	if _, err := svc.UpdateStatus(order.ID, "shipped"); !errors.Is(err, ErrUnknownOrderStatus) {
		t.Fatalf("unknown status: want ErrUnknownOrderStatus got %v", err)
	}

	completed, err := svc.UpdateStatus(order.ID, "completed")
	if err != nil {
		t.Fatalf("complete failed: %v", err)
	}
	if completed.Status != constants.OrderStatusCompleted {
		t.Fatalf("status want completed got %s", completed.Status)
	}
	// Completing consumes the reservation, stock stays down.
	if got := partStock(t, part.ID); got != 4 {
		t.Fatalf("stock after completion want 4 got %d", got)
	}

	if _, err := svc.UpdateStatus(order.ID, "cancelled"); !errors.Is(err, ErrOrderNotPending) {
		t.Fatalf("completed is terminal: want ErrOrderNotPending got %v", err)
	}
	// Re-asserting the current status is a no-op, not an error.
	if _, err := svc.UpdateStatus(order.ID, "completed"); err != nil {
		t.Fatalf("idempotent status update failed: %v", err)
	}
}

func TestUpdateStatusCancelledRestoresStock(t *testing.T) {
	setupTestDB(t)
	svc := newTestOrderService()
	user := createTestUser(t, "buyer", constants.RoleClient)
	part := createTestPart(t, "Fender", "55.00", 3)

	order, err := svc.CreateOrder(CreateOrderInput{
		UserID:         user.ID,
		DeliveryMethod: "pickup",
		Items:          []CreateOrderItem{{PartID: part.ID, Quantity: 2}},
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	cancelled, err := svc.UpdateStatus(order.ID, "CANCELLED")
	if err != nil {
		t.Fatalf("operator cancel failed: %v", err)
	}
	if cancelled.Status != constants.OrderStatusCancelled {
		t.Fatalf("status want cancelled got %s", cancelled.Status)
	}
	if got := partStock(t, part.ID); got != 3 {
		t.Fatalf("stock after operator cancel want 3 got %d", got)
	}
}

func TestGetOrderScoping(t *testing.T) {
	setupTestDB(t)
	svc := newTestOrderService()
	owner := createTestUser(t, "owner", constants.RoleClient)
	other := createTestUser(t, "other", constants.RoleClient)
	part := createTestPart(t, "Seat", "65.00", 5)

	order, err := svc.CreateOrder(CreateOrderInput{
		UserID:         owner.ID,
		DeliveryMethod: "pickup",
		Items:          []CreateOrderItem{{PartID: part.ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	if _, err := svc.GetOrder(order.ID, other.ID, false); !errors.Is(err, ErrOrderAccessDenied) {
		t.Fatalf("foreign read: want ErrOrderAccessDenied got %v", err)
	}
	if _, err := svc.GetOrder(order.ID, other.ID, true); err != nil {
		t.Fatalf("operator read failed: %v", err)
	}
}

func TestListOrdersPinsClientsToTheirOwn(t *testing.T) {
	setupTestDB(t)
	svc := newTestOrderService()
	first := createTestUser(t, "first", constants.RoleClient)
	second := createTestUser(t, "second", constants.RoleClient)
	part := createTestPart(t, "Wheel", "30.00", 20)

	for _, userID := range []uint{first.ID, first.ID, second.ID} {
		if _, err := svc.CreateOrder(CreateOrderInput{
			UserID:         userID,
			DeliveryMethod: "pickup",
			Items:          []CreateOrderItem{{PartID: part.ID, Quantity: 1}},
		}); err != nil {
			t.Fatalf("create order failed: %v", err)
		}
	}

	// A client asking for someone else's orders still sees only their own.
	orders, total, err := svc.ListOrders(repository.OrderListFilter{
		Page: 1, PageSize: 10, UserID: second.ID,
	}, first.ID, false)
	if err != nil {
		t.Fatalf("client list failed: %v", err)
	}
	if total != 2 || len(orders) != 2 {
		t.Fatalf("client list want 2 got total=%d len=%d", total, len(orders))
	}
	for _, o := range orders {
		if o.UserID != first.ID {
			t.Fatalf("client list leaked order of user %d", o.UserID)
		}
	}

	_, total, err = svc.ListOrders(repository.OrderListFilter{Page: 1, PageSize: 10}, first.ID, true)
	if err != nil {
		t.Fatalf("operator list failed: %v", err)
	}
	if total != 3 {
		t.Fatalf("operator list want 3 got %d", total)
	}
}
