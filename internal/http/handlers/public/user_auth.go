package public

import (
	"strings"

	"github.com/avtorazbor/internal/constants"
	"github.com/avtorazbor/internal/http/response"
	"github.com/avtorazbor/internal/models"
	"github.com/avtorazbor/internal/service"

	"github.com/gin-gonic/gin"
)

// UserRegisterRequest is the register payload.
type UserRegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

// UserRegister creates an account. The operator role is honored only
// when the request itself carries a valid operator token.
func (h *Handler) UserRegister(c *gin.Context) {
	var req UserRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	user, err := h.UserService.Register(service.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	}, h.callerIsOperator(c))
	if err != nil {
		respondWithMappedError(c, err, registerErrorRules, response.CodeInternal, "registration failed")
		return
	}

	response.Created(c, userView(user))
}

// UserLoginRequest is the login payload. Login accepts either the
// username or the email address.
type UserLoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserLogin verifies credentials and issues a JWT.
func (h *Handler) UserLogin(c *gin.Context) {
	var req UserLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	user, token, err := h.UserService.Login(req.Login, req.Password)
	if err != nil {
		respondWithMappedError(c, err, loginErrorRules, response.CodeInternal, "login failed")
		return
	}

	response.Success(c, gin.H{
		"user":  userView(user),
		"token": token,
	})
}

// GetProfile returns the caller's account.
func (h *Handler) GetProfile(c *gin.Context) {
	id, ok := getUserID(c)
	if !ok {
		return
	}
	user, err := h.UserService.GetProfile(id)
	if err != nil {
		respondWithMappedError(c, err, accountReadErrorRules, response.CodeInternal, "profile fetch failed")
		return
	}
	response.Success(c, userView(user))
}

// UserProfileUpdateRequest carries optional profile edits.
type UserProfileUpdateRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// UpdateProfile edits the caller's own account.
func (h *Handler) UpdateProfile(c *gin.Context) {
	id, ok := getUserID(c)
	if !ok {
		return
	}
	var req UserProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	user, err := h.UserService.UpdateProfile(id, service.UpdateProfileInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondWithMappedError(c, err, profileUpdateErrorRules, response.CodeInternal, "profile update failed")
		return
	}
	response.Success(c, userView(user))
}

// DeleteProfile removes the caller's account and everything owned by it.
func (h *Handler) DeleteProfile(c *gin.Context) {
	id, ok := getUserID(c)
	if !ok {
		return
	}
	if err := h.UserService.DeleteAccount(id); err != nil {
		respondWithMappedError(c, err, accountReadErrorRules, response.CodeInternal, "account deletion failed")
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

// callerIsOperator checks the optional bearer token on an otherwise
// public route.
func (h *Handler) callerIsOperator(c *gin.Context) bool {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return false
	}
	claims, err := h.AuthService.ParseToken(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		return false
	}
	return claims.Role == constants.RoleOperator
}

func userView(user *models.User) gin.H {
	return gin.H{
		"id":            user.ID,
		"username":      user.Username,
		"email":         user.Email,
		"role":          user.Role,
		"last_login_at": user.LastLoginAt,
		"created_at":    user.CreatedAt,
	}
}
