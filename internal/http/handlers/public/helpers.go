package public

import (
	"strconv"
	"strings"

	handlershared "github.com/avtorazbor/internal/http/handlers/shared"
	"github.com/avtorazbor/internal/http/response"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// parseIDParam reads a positive uint path parameter, writing the error
// response itself on failure.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "invalid "+name, nil)
		return 0, false
	}
	return uint(id), true
}

// queryPagination reads page and limit, clamping both. Bad values fall
// back to defaults rather than erroring.
func (h *Handler) queryPagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	return handlershared.NormalizePagination(page, limit, h.Config.Catalog.DefaultPageSize, h.Config.Catalog.MaxPageSize)
}

// queryDecimal parses an optional decimal query value. Malformed input
// is treated as absent.
func queryDecimal(c *gin.Context, name string) *decimal.Decimal {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return nil
	}
	return &value
}

// queryUint parses an optional uint query value, zero when absent or
// malformed.
func queryUint(c *gin.Context, name string) uint {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return 0
	}
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0
	}
	return uint(value)
}
