package service

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/avtorazbor/internal/cache"
	"github.com/avtorazbor/internal/config"
	"github.com/avtorazbor/internal/constants"
	"github.com/avtorazbor/internal/logger"
	"github.com/avtorazbor/internal/models"
	"github.com/avtorazbor/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// UserService handles accounts: registration, login, profile and
// operator-side administration.
type UserService struct {
	cfg          *config.Config
	userRepo     repository.UserRepository
	orderRepo    repository.OrderRepository
	reviewRepo   repository.ReviewRepository
	favoriteRepo repository.FavoriteRepository
	auth         *AuthService
}

// NewUserService creates the user service.
func NewUserService(
	cfg *config.Config,
	userRepo repository.UserRepository,
	orderRepo repository.OrderRepository,
	reviewRepo repository.ReviewRepository,
	favoriteRepo repository.FavoriteRepository,
	auth *AuthService,
) *UserService {
	return &UserService{
		cfg:          cfg,
		userRepo:     userRepo,
		orderRepo:    orderRepo,
		reviewRepo:   reviewRepo,
		favoriteRepo: favoriteRepo,
		auth:         auth,
	}
}

// RegisterInput is a registration request.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     string
}

// Register creates an account. The operator role can only be assigned by
// an authenticated operator; everyone else registers as a client.
func (s *UserService) Register(input RegisterInput, actorIsOperator bool) (*models.User, error) {
	username := strings.TrimSpace(input.Username)
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if !emailPattern.MatchString(email) {
		return nil, ErrInvalidEmail
	}
	if err := validatePassword(s.cfg.Security.PasswordPolicy, input.Password); err != nil {
		return nil, err
	}

	role := strings.TrimSpace(input.Role)
	switch role {
	case "", constants.RoleClient:
		role = constants.RoleClient
	case constants.RoleOperator:
		if !actorIsOperator {
			return nil, ErrRoleNotAllowed
		}
	default:
		return nil, ErrRoleNotAllowed
	}

	if existing, err := s.userRepo.GetByUsername(username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, ErrUsernameTaken
	}
	if existing, err := s.userRepo.GetByEmail(email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	logger.Infow("user_registered", "user_id", user.ID, "role", user.Role)
	return user, nil
}

// Login verifies credentials by username or email and issues a token.
func (s *UserService) Login(login, password string) (*models.User, string, error) {
	login = strings.TrimSpace(login)
	user, err := s.userRepo.GetByUsername(login)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		user, err = s.userRepo.GetByEmail(strings.ToLower(login))
		if err != nil {
			return nil, "", err
		}
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	now := time.Now()
	user.LastLoginAt = &now
	if err := s.userRepo.Update(user); err != nil {
		logger.Warnw("login_timestamp_update_failed", "user_id", user.ID, "error", err)
	}

	token, err := s.auth.GenerateToken(user)
	if err != nil {
		return nil, "", err
	}
	if err := cache.SetUserAuthState(context.Background(), cache.BuildUserAuthState(user)); err != nil {
		logger.Warnw("auth_state_cache_set_failed", "user_id", user.ID, "error", err)
	}
	return user, token, nil
}

// GetProfile returns a user's own account.
func (s *UserService) GetProfile(userID uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UpdateProfileInput carries optional profile changes.
type UpdateProfileInput struct {
	Username *string
	Email    *string
	Password *string
}

// UpdateProfile applies profile changes, re-checking uniqueness and
// re-hashing a changed password.
func (s *UserService) UpdateProfile(userID uint, input UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if input.Username != nil {
		username := strings.TrimSpace(*input.Username)
		if username != "" && username != user.Username {
			existing, err := s.userRepo.GetByUsername(username)
			if err != nil {
				return nil, err
			}
			if existing != nil && existing.ID != user.ID {
				return nil, ErrUsernameTaken
			}
			user.Username = username
		}
	}
	if input.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*input.Email))
		if email != "" && email != user.Email {
			if !emailPattern.MatchString(email) {
				return nil, ErrInvalidEmail
			}
			existing, err := s.userRepo.GetByEmail(email)
			if err != nil {
				return nil, err
			}
			if existing != nil && existing.ID != user.ID {
				return nil, ErrEmailTaken
			}
			user.Email = email
		}
	}
	if input.Password != nil && *input.Password != "" {
		if err := validatePassword(s.cfg.Security.PasswordPolicy, *input.Password); err != nil {
			return nil, err
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	if err := cache.DelUserAuthState(context.Background(), user.ID); err != nil {
		logger.Warnw("auth_state_cache_del_failed", "user_id", user.ID, "error", err)
	}
	return user, nil
}

// DeleteAccount removes the account and everything it owns: favorites,
// reviews, orders with their lines.
func (s *UserService) DeleteAccount(userID uint) error {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.favoriteRepo.WithTx(tx).DeleteByUser(userID); err != nil {
			return err
		}
		if err := s.reviewRepo.WithTx(tx).DeleteByUser(userID); err != nil {
			return err
		}
		if err := s.orderRepo.WithTx(tx).DeleteByUser(userID); err != nil {
			return err
		}
		return s.userRepo.WithTx(tx).Delete(userID)
	})
	if err != nil {
		return err
	}

	if err := cache.DelUserAuthState(context.Background(), userID); err != nil {
		logger.Warnw("auth_state_cache_del_failed", "user_id", userID, "error", err)
	}
	logger.Infow("user_deleted", "user_id", userID)
	return nil
}

// ListUsers returns an account page for operators.
func (s *UserService) ListUsers(filter repository.UserListFilter) ([]models.User, int64, error) {
	return s.userRepo.List(filter)
}

// GetUser returns any account by id for operators.
func (s *UserService) GetUser(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// ResolveAuthState returns the cached auth snapshot for the middleware,
// falling back to the database on a miss.
func (s *UserService) ResolveAuthState(ctx context.Context, userID uint) (*cache.UserAuthState, error) {
	state, hit, err := cache.GetUserAuthState(ctx, userID)
	if err != nil {
		logger.Warnw("auth_state_cache_get_failed", "user_id", userID, "error", err)
	}
	if hit && state != nil {
		return state, nil
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	state = cache.BuildUserAuthState(user)
	if err := cache.SetUserAuthState(ctx, state); err != nil {
		logger.Warnw("auth_state_cache_set_failed", "user_id", userID, "error", err)
	}
	return state, nil
}
