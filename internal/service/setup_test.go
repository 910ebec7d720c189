package service

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/avtorazbor/internal/models"
	"github.com/avtorazbor/internal/repository"

	"github.com/shopspring/decimal"
)

var testDBSeq int64

// setupTestDB opens a fresh in-memory database and points the package
// global at it. A single pooled connection keeps the shared-cache
// database alive for the whole test.
func setupTestDB(t *testing.T) {
	t.Helper()
	dsn := fmt.Sprintf("file:service_test_%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
	if err := models.InitDB("sqlite", dsn, models.DBPoolConfig{MaxOpenConns: 1, MaxIdleConns: 1}); err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := models.AutoMigrate(); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
}

func money(t *testing.T, value string) models.Money {
	t.Helper()
	d, err := decimal.NewFromString(value)
	if err != nil {
		t.Fatalf("parse decimal %q: %v", value, err)
	}
	return models.NewMoneyFromDecimal(d)
}

func createTestPart(t *testing.T, name string, price string, stock int) *models.Part {
	t.Helper()
	part := &models.Part{
		Name:  name,
		Price: money(t, price),
		Stock: stock,
	}
	if err := models.DB.Create(part).Error; err != nil {
		t.Fatalf("create part %s: %v", name, err)
	}
	return part
}

func createTestUser(t *testing.T, username, role string) *models.User {
	t.Helper()
	user := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
		Role:         role,
	}
	if err := models.DB.Create(user).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return user
}

func partStock(t *testing.T, id uint) int {
	t.Helper()
	var part models.Part
	if err := models.DB.First(&part, id).Error; err != nil {
		t.Fatalf("reload part %d: %v", id, err)
	}
	return part.Stock
}

func newTestOrderService() *OrderService {
	return NewOrderService(
		repository.NewOrderRepository(models.DB),
		repository.NewPartRepository(models.DB),
	)
}
