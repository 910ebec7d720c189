package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/avtorazbor/internal/models"
	"github.com/avtorazbor/internal/repository"

	"github.com/shopspring/decimal"
)

func newTestPartService() *PartService {
	return NewPartService(
		repository.NewPartRepository(models.DB),
		repository.NewSupplierRepository(models.DB),
		repository.NewInventoryRepository(models.DB),
		repository.NewReviewRepository(models.DB),
		repository.NewFavoriteRepository(models.DB),
		repository.NewOrderRepository(models.DB),
		nil,
	)
}

func TestListPartsSearchIsCaseInsensitive(t *testing.T) {
	setupTestDB(t)
	svc := newTestPartService()

	createTestPart(t, "Brake Disc Front", "45.00", 5)
	createTestPart(t, "brake pad set", "25.00", 8)
	createTestPart(t, "Alternator", "110.00", 2)

	parts, total, err := svc.ListParts(repository.PartListFilter{Page: 1, PageSize: 10, Search: "BRAKE"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 2 || len(parts) != 2 {
		t.Fatalf("want 2 brake parts got total=%d len=%d", total, len(parts))
	}
}

func TestListPartsPriceBounds(t *testing.T) {
	setupTestDB(t)
	svc := newTestPartService()

	createTestPart(t, "Cheap", "10.00", 1)
	createTestPart(t, "Mid", "50.00", 1)
	createTestPart(t, "Expensive", "200.00", 1)

	min := decimal.NewFromInt(20)
	max := decimal.NewFromInt(100)
	parts, total, err := svc.ListParts(repository.PartListFilter{
		Page: 1, PageSize: 10, MinPrice: &min, MaxPrice: &max,
	})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 1 || len(parts) != 1 || parts[0].Name != "Mid" {
		t.Fatalf("want only Mid got total=%d parts=%v", total, parts)
	}

	// Bounds are inclusive.
	min = decimal.NewFromInt(10)
	_, total, err = svc.ListParts(repository.PartListFilter{Page: 1, PageSize: 10, MinPrice: &min})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 3 {
		t.Fatalf("inclusive min want 3 got %d", total)
	}
}

func TestListPartsPagination(t *testing.T) {
	setupTestDB(t)
	svc := newTestPartService()

	for i := 0; i < 25; i++ {
		createTestPart(t, fmt.Sprintf("Part %02d", i), "10.00", 1)
	}

	parts, total, err := svc.ListParts(repository.PartListFilter{Page: 2, PageSize: 10})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 25 {
		t.Fatalf("total want 25 got %d", total)
	}
	if len(parts) != 10 {
		t.Fatalf("page 2 want 10 rows got %d", len(parts))
	}

	parts, total, err = svc.ListParts(repository.PartListFilter{Page: 3, PageSize: 10})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(parts) != 5 {
		t.Fatalf("page 3 want 5 rows got %d", len(parts))
	}

	// A page past the end is empty, not an error.
	parts, total, err = svc.ListParts(repository.PartListFilter{Page: 9, PageSize: 10})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 25 || len(parts) != 0 {
		t.Fatalf("past-end page want 0 rows total 25, got len=%d total=%d", len(parts), total)
	}
}

func TestListPartsSorting(t *testing.T) {
	setupTestDB(t)
	svc := newTestPartService()

	createTestPart(t, "B", "30.00", 1)
	createTestPart(t, "A", "10.00", 1)
	createTestPart(t, "C", "20.00", 1)

	parts, _, err := svc.ListParts(repository.PartListFilter{
		Page: 1, PageSize: 10, SortBy: "price", SortOrder: "asc",
	})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if parts[0].Name != "A" || parts[2].Name != "B" {
		t.Fatalf("price asc order wrong: %s %s %s", parts[0].Name, parts[1].Name, parts[2].Name)
	}

	parts, _, err = svc.ListParts(repository.PartListFilter{
		Page: 1, PageSize: 10, SortBy: "name", SortOrder: "DESC",
	})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if parts[0].Name != "C" {
		t.Fatalf("name desc order wrong, first is %s", parts[0].Name)
	}

	// An unknown sort column is ignored, never passed to the database.
	if _, _, err := svc.ListParts(repository.PartListFilter{
		Page: 1, PageSize: 10, SortBy: "password; DROP TABLE parts",
	}); err != nil {
		t.Fatalf("unknown sort column should fall back, got %v", err)
	}
}

func TestListPartsCompatibilityFilter(t *testing.T) {
	setupTestDB(t)
	svc := newTestPartService()

	golf := &models.Part{
		Name:  "Golf brake disc",
		Price: money(t, "45.00"),
		Stock: 3,
		Compatibility: models.JSON{
			"make":   "Volkswagen",
			"models": "Golf V, Golf VI",
		},
	}
	focus := &models.Part{
		Name:  "Focus alternator",
		Price: money(t, "110.00"),
		Stock: 1,
		Compatibility: models.JSON{
			"make":   "Ford",
			"models": "Focus II",
		},
	}
	for _, p := range []*models.Part{golf, focus} {
		if err := models.DB.Create(p).Error; err != nil {
			t.Fatalf("create part: %v", err)
		}
	}

	parts, total, err := svc.ListParts(repository.PartListFilter{
		Page: 1, PageSize: 10, Compatibility: "Golf",
	})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 1 || parts[0].Name != "Golf brake disc" {
		t.Fatalf("compatibility filter want the Golf part, got total=%d", total)
	}
}

func TestGetPartAggregatesReviews(t *testing.T) {
	setupTestDB(t)
	svc := newTestPartService()

	part := createTestPart(t, "Headlight", "75.00", 2)
	alice := createTestUser(t, "alice", "client")
	bob := createTestUser(t, "bob", "client")
	for _, r := range []models.Review{
		{UserID: alice.ID, PartID: part.ID, Rating: 4},
		{UserID: bob.ID, PartID: part.ID, Rating: 5},
	} {
		if err := models.DB.Create(&r).Error; err != nil {
			t.Fatalf("create review: %v", err)
		}
	}

	got, err := svc.GetPart(part.ID)
	if err != nil {
		t.Fatalf("get part failed: %v", err)
	}
	if got.ReviewCount != 2 {
		t.Fatalf("review count want 2 got %d", got.ReviewCount)
	}
	if got.AvgRating < 4.49 || got.AvgRating > 4.51 {
		t.Fatalf("avg rating want 4.5 got %v", got.AvgRating)
	}

	if _, err := svc.GetPart(9999); !errors.Is(err, ErrPartNotFound) {
		t.Fatalf("missing part: want ErrPartNotFound got %v", err)
	}
}

func TestCreatePartValidation(t *testing.T) {
	setupTestDB(t)
	svc := newTestPartService()

	_, err := svc.CreatePart(PartInput{Name: "X", Price: money(t, "-1.00")})
	if !errors.Is(err, ErrInvalidPrice) {
		t.Fatalf("negative price: want ErrInvalidPrice got %v", err)
	}

	_, err = svc.CreatePart(PartInput{Name: "X", Price: money(t, "1.00"), Stock: -1})
	if !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("negative stock: want ErrInvalidQuantity got %v", err)
	}

	missing := uint(9999)
	_, err = svc.CreatePart(PartInput{Name: "X", Price: money(t, "1.00"), SupplierID: &missing})
	if !errors.Is(err, ErrSupplierNotFound) {
		t.Fatalf("missing supplier: want ErrSupplierNotFound got %v", err)
	}

	part, err := svc.CreatePart(PartInput{Name: "  Trimmed  ", Price: money(t, "5.00"), Stock: 2})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if part.Name != "Trimmed" {
		t.Fatalf("name should be trimmed, got %q", part.Name)
	}
}

func TestDeletePartCascades(t *testing.T) {
	setupTestDB(t)
	svc := newTestPartService()
	orderSvc := newTestOrderService()

	part := createTestPart(t, "Doomed", "10.00", 5)
	user := createTestUser(t, "buyer", "client")

	if _, err := orderSvc.CreateOrder(CreateOrderInput{
		UserID:         user.ID,
		DeliveryMethod: "pickup",
		Items:          []CreateOrderItem{{PartID: part.ID, Quantity: 1}},
	}); err != nil {
		t.Fatalf("create order: %v", err)
	}
	if err := models.DB.Create(&models.Review{UserID: user.ID, PartID: part.ID, Rating: 5}).Error; err != nil {
		t.Fatalf("create review: %v", err)
	}
	if err := models.DB.Create(&models.Favorite{UserID: user.ID, PartID: part.ID}).Error; err != nil {
		t.Fatalf("create favorite: %v", err)
	}
	if err := models.DB.Create(&models.Inventory{PartID: part.ID, Quantity: 5, Location: "A-1"}).Error; err != nil {
		t.Fatalf("create inventory: %v", err)
	}

	if err := svc.DeletePart(part.ID); err != nil {
		t.Fatalf("delete part failed: %v", err)
	}

	for table, model := range map[string]interface{}{
		"order_items": &models.OrderItem{},
		"reviews":     &models.Review{},
		"favorites":   &models.Favorite{},
		"inventories": &models.Inventory{},
	} {
		var count int64
		if err := models.DB.Model(model).Where("part_id = ?", part.ID).Count(&count).Error; err != nil {
			t.Fatalf("count %s: %v", table, err)
		}
		if count != 0 {
			t.Fatalf("%s rows should be gone, found %d", table, count)
		}
	}

	if err := svc.DeletePart(part.ID); !errors.Is(err, ErrPartNotFound) {
		t.Fatalf("second delete: want ErrPartNotFound got %v", err)
	}
}
