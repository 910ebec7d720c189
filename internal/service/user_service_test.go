package service

import (
	"errors"
	"testing"

	"github.com/avtorazbor/internal/config"
	"github.com/avtorazbor/internal/constants"
	"github.com/avtorazbor/internal/models"
	"github.com/avtorazbor/internal/repository"
)

func newTestUserService() (*UserService, *AuthService) {
	cfg := &config.Config{}
	cfg.JWT.SecretKey = "unit-test-secret-key-0123456789abcdef"
	cfg.JWT.ExpireHours = 1
	cfg.JWT.Issuer = "avtorazbor-test"
	cfg.Security.PasswordPolicy = config.PasswordPolicyConfig{
		MinLength:     8,
		RequireLower:  true,
		RequireNumber: true,
	}
	auth := NewAuthService(cfg)
	svc := NewUserService(
		cfg,
		repository.NewUserRepository(models.DB),
		repository.NewOrderRepository(models.DB),
		repository.NewReviewRepository(models.DB),
		repository.NewFavoriteRepository(models.DB),
		auth,
	)
	return svc, auth
}

func TestRegisterAndLogin(t *testing.T) {
	setupTestDB(t)
	svc, auth := newTestUserService()

	user, err := svc.Register(RegisterInput{
		Username: "ivan",
		Email:    "Ivan@Example.COM",
		Password: "sekret123",
	}, false)
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.Role != constants.RoleClient {
		t.Fatalf("default role want client got %s", user.Role)
	}
	if user.Email != "ivan@example.com" {
		t.Fatalf("email should be lowercased, got %s", user.Email)
	}
	if user.PasswordHash == "sekret123" {
		t.Fatalf("password stored in plain text")
	}

	logged, token, err := svc.Login("ivan", "sekret123")
	if err != nil {
		t.Fatalf("login by username failed: %v", err)
	}
	if logged.ID != user.ID {
		t.Fatalf("login returned wrong user")
	}
	claims, err := auth.ParseToken(token)
	if err != nil {
		t.Fatalf("issued token does not parse: %v", err)
	}
	if claims.UserID != user.ID || claims.Role != constants.RoleClient {
		t.Fatalf("claims mismatch: %+v", claims)
	}

	if _, _, err := svc.Login("Ivan@Example.com", "sekret123"); err != nil {
		t.Fatalf("login by email failed: %v", err)
	}
	if _, _, err := svc.Login("ivan", "wrong-pass1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("bad password: want ErrInvalidCredentials got %v", err)
	}
	if _, _, err := svc.Login("nobody", "sekret123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown login: want ErrInvalidCredentials got %v", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	setupTestDB(t)
	svc, _ := newTestUserService()

	if _, err := svc.Register(RegisterInput{Username: "x", Email: "not-an-email", Password: "sekret123"}, false); !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("bad email: want ErrInvalidEmail got %v", err)
	}
	if _, err := svc.Register(RegisterInput{Username: "x", Email: "x@example.com", Password: "short1"}, false); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("short password: want ErrWeakPassword got %v", err)
	}
	if _, err := svc.Register(RegisterInput{Username: "x", Email: "x@example.com", Password: "nodigitshere"}, false); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("no digit: want ErrWeakPassword got %v", err)
	}

	if _, err := svc.Register(RegisterInput{Username: "taken", Email: "taken@example.com", Password: "sekret123"}, false); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(RegisterInput{Username: "taken", Email: "fresh@example.com", Password: "sekret123"}, false); !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("dup username: want ErrUsernameTaken got %v", err)
	}
	if _, err := svc.Register(RegisterInput{Username: "fresh", Email: "taken@example.com", Password: "sekret123"}, false); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("dup email: want ErrEmailTaken got %v", err)
	}
}

func TestRegisterOperatorRoleGate(t *testing.T) {
	setupTestDB(t)
	svc, _ := newTestUserService()

	if _, err := svc.Register(RegisterInput{
		Username: "wannabe", Email: "w@example.com", Password: "sekret123", Role: constants.RoleOperator,
	}, false); !errors.Is(err, ErrRoleNotAllowed) {
		t.Fatalf("self-served operator: want ErrRoleNotAllowed got %v", err)
	}
	if _, err := svc.Register(RegisterInput{
		Username: "weird", Email: "weird@example.com", Password: "sekret123", Role: "superadmin",
	}, false); !errors.Is(err, ErrRoleNotAllowed) {
		t.Fatalf("unknown role: want ErrRoleNotAllowed got %v", err)
	}

	user, err := svc.Register(RegisterInput{
		Username: "staff", Email: "staff@example.com", Password: "sekret123", Role: constants.RoleOperator,
	}, true)
	if err != nil {
		t.Fatalf("operator-created operator failed: %v", err)
	}
	if user.Role != constants.RoleOperator {
		t.Fatalf("role want operator got %s", user.Role)
	}
}

func TestUpdateProfile(t *testing.T) {
	setupTestDB(t)
	svc, _ := newTestUserService()

	user, err := svc.Register(RegisterInput{Username: "ivan", Email: "ivan@example.com", Password: "sekret123"}, false)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := svc.Register(RegisterInput{Username: "marina", Email: "marina@example.com", Password: "sekret123"}, false); err != nil {
		t.Fatalf("register second: %v", err)
	}

	taken := "marina"
	if _, err := svc.UpdateProfile(user.ID, UpdateProfileInput{Username: &taken}); !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("rename onto taken: want ErrUsernameTaken got %v", err)
	}

	newName := "ivan2"
	newPass := "newsekret456"
	updated, err := svc.UpdateProfile(user.ID, UpdateProfileInput{Username: &newName, Password: &newPass})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Username != "ivan2" {
		t.Fatalf("username want ivan2 got %s", updated.Username)
	}
	if _, _, err := svc.Login("ivan2", "newsekret456"); err != nil {
		t.Fatalf("login with new password failed: %v", err)
	}
	if _, _, err := svc.Login("ivan2", "sekret123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("old password should stop working, got %v", err)
	}
}

func TestDeleteAccountCascades(t *testing.T) {
	setupTestDB(t)
	svc, _ := newTestUserService()
	orderSvc := newTestOrderService()

	user, err := svc.Register(RegisterInput{Username: "ivan", Email: "ivan@example.com", Password: "sekret123"}, false)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	part := createTestPart(t, "Turbo", "250.00", 5)

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

	if err := svc.DeleteAccount(user.ID); err != nil {
		t.Fatalf("delete account failed: %v", err)
	}

	for table, model := range map[string]interface{}{
		"orders":    &models.Order{},
		"reviews":   &models.Review{},
		"favorites": &models.Favorite{},
	} {
		var count int64
		if err := models.DB.Model(model).Where("user_id = ?", user.ID).Count(&count).Error; err != nil {
			t.Fatalf("count %s: %v", table, err)
		}
		if count != 0 {
			t.Fatalf("%s rows should be gone, found %d", table, count)
		}
	}
	var itemCount int64
	models.DB.Model(&models.OrderItem{}).Count(&itemCount)
	if itemCount != 0 {
		t.Fatalf("order items should be gone, found %d", itemCount)
	}

	if err := svc.DeleteAccount(user.ID); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("second delete: want ErrUserNotFound got %v", err)
	}
}

func TestResolveAuthStateFallsBackToDatabase(t *testing.T) {
	setupTestDB(t)
	svc, _ := newTestUserService()

	user, err := svc.Register(RegisterInput{Username: "ivan", Email: "ivan@example.com", Password: "sekret123"}, false)
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	state, err := svc.ResolveAuthState(t.Context(), user.ID)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if state.UserID != user.ID || state.Role != constants.RoleClient {
		t.Fatalf("auth state mismatch: %+v", state)
	}

	if _, err := svc.ResolveAuthState(t.Context(), 9999); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("missing user: want ErrUserNotFound got %v", err)
	}
}
