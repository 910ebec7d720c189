package shared

import (
	"github.com/avtorazbor/internal/constants"
	"github.com/avtorazbor/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetContextUint reads a uint set by the auth middleware, writing the
// error response itself when the value is missing or malformed.
func GetContextUint(c *gin.Context, key string) (uint, bool) {
	value, exists := c.Get(key)
	if !exists {
		RespondError(c, response.CodeUnauthorized, "authentication required", nil)
		return 0, false
	}

	switch v := value.(type) {
	case uint:
		return v, true
	case int:
		if v < 0 {
			RespondError(c, response.CodeBadRequest, "invalid "+key, nil)
			return 0, false
		}
		return uint(v), true
	case float64:
		if v < 0 {
			RespondError(c, response.CodeBadRequest, "invalid "+key, nil)
			return 0, false
		}
		return uint(v), true
	default:
		RespondError(c, response.CodeInternal, "unexpected "+key+" type", nil)
		return 0, false
	}
}

// CallerRole reads the role set by the auth middleware.
func CallerRole(c *gin.Context) string {
	if value, ok := c.Get("role"); ok {
		if role, ok := value.(string); ok {
			return role
		}
	}
	return ""
}

// CallerIsOperator reports whether the authenticated caller is an
// operator.
func CallerIsOperator(c *gin.Context) bool {
	return CallerRole(c) == constants.RoleOperator
}
