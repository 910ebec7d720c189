package service

import (
	"errors"
	"time"

	"github.com/avtorazbor/internal/config"
	"github.com/avtorazbor/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the bearer token payload: identity plus role, resolved per
// request and never stored in process-wide state.
type Claims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// AuthService issues and validates bearer tokens.
type AuthService struct {
	cfg *config.Config
}

// NewAuthService creates the auth service.
func NewAuthService(cfg *config.Config) *AuthService {
	return &AuthService{cfg: cfg}
}

// GenerateToken signs an HS256 token for the user.
func (s *AuthService) GenerateToken(user *models.User) (string, error) {
	if user == nil {
		return "", errors.New("user is nil")
	}
	expireHours := s.cfg.JWT.ExpireHours
	if expireHours <= 0 {
		expireHours = 24
	}
	now := time.Now()
	claims := Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.cfg.JWT.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expireHours) * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWT.SecretKey))
}

// ParseToken validates a token string and returns its claims. Only HS256
// is accepted.
func (s *AuthService) ParseToken(tokenString string) (*Claims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{"HS256"}))
	claims := &Claims{}
	token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWT.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
