package public

import (
	"strings"

	"github.com/avtorazbor/internal/http/response"
	"github.com/avtorazbor/internal/repository"

	"github.com/gin-gonic/gin"
)

// GetParts lists the catalog. Filters are permissive: malformed values
// are ignored instead of rejected.
func (h *Handler) GetParts(c *gin.Context) {
	page, limit := h.queryPagination(c)

	filter := repository.PartListFilter{
		Page:          page,
		PageSize:      limit,
		Search:        strings.TrimSpace(c.Query("search")),
		MinPrice:      queryDecimal(c, "minPrice"),
		MaxPrice:      queryDecimal(c, "maxPrice"),
		SupplierID:    queryUint(c, "supplier_id"),
		Compatibility: strings.TrimSpace(c.Query("compatibility")),
		SortBy:        strings.TrimSpace(c.Query("sortBy")),
		SortOrder:     strings.TrimSpace(c.Query("sortOrder")),
	}

	parts, total, err := h.PartService.ListParts(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "part list failed", err)
		return
	}

	response.SuccessWithPage(c, parts, response.BuildPagination(page, limit, total))
}

// GetPart returns one part with its supplier and review aggregates.
func (h *Handler) GetPart(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	part, err := h.PartService.GetPart(id)
	if err != nil {
		respondWithMappedError(c, err, partReadErrorRules, response.CodeInternal, "part fetch failed")
		return
	}
	response.Success(c, part)
}
