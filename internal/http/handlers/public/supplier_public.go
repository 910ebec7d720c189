package public

import (
	"strings"

	"github.com/avtorazbor/internal/http/response"
	"github.com/avtorazbor/internal/repository"

	"github.com/gin-gonic/gin"
)

// GetSuppliers lists suppliers with the same permissive filter shape as
// the catalog.
func (h *Handler) GetSuppliers(c *gin.Context) {
	page, limit := h.queryPagination(c)

	filter := repository.SupplierListFilter{
		Page:      page,
		PageSize:  limit,
		Search:    strings.TrimSpace(c.Query("search")),
		MinRating: queryDecimal(c, "minRating"),
		MaxRating: queryDecimal(c, "maxRating"),
		SortBy:    strings.TrimSpace(c.Query("sortBy")),
		SortOrder: strings.TrimSpace(c.Query("sortOrder")),
	}

	suppliers, total, err := h.SupplierService.ListSuppliers(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "supplier list failed", err)
		return
	}
	response.SuccessWithPage(c, suppliers, response.BuildPagination(page, limit, total))
}

// GetSupplier returns one supplier.
func (h *Handler) GetSupplier(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	supplier, err := h.SupplierService.GetSupplier(id)
	if err != nil {
		respondWithMappedError(c, err, supplierReadErrorRules, response.CodeInternal, "supplier fetch failed")
		return
	}
	response.Success(c, supplier)
}
