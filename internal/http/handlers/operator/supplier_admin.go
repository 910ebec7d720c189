package operator

import (
	"github.com/avtorazbor/internal/http/response"
	"github.com/avtorazbor/internal/models"
	"github.com/avtorazbor/internal/service"

	"github.com/gin-gonic/gin"
)

// SupplierRequest is the supplier create/update payload.
type SupplierRequest struct {
	Name        string       `json:"name" binding:"required"`
	ContactInfo models.JSON  `json:"contact_info"`
	Rating      models.Money `json:"rating"`
}

func (r SupplierRequest) toInput() service.SupplierInput {
	return service.SupplierInput{
		Name:        r.Name,
		ContactInfo: r.ContactInfo,
		Rating:      r.Rating,
	}
}

// CreateSupplier inserts a supplier.
func (h *Handler) CreateSupplier(c *gin.Context) {
	var req SupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	supplier, err := h.SupplierService.CreateSupplier(req.toInput())
	if err != nil {
		respondWithMappedError(c, err, supplierWriteErrorRules, response.CodeInternal, "supplier creation failed")
		return
	}
	response.Created(c, supplier)
}

// UpdateSupplier saves supplier edits.
func (h *Handler) UpdateSupplier(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req SupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	supplier, err := h.SupplierService.UpdateSupplier(id, req.toInput())
	if err != nil {
		respondWithMappedError(c, err, supplierWriteErrorRules, response.CodeInternal, "supplier update failed")
		return
	}
	response.Success(c, supplier)
}

// DeleteSupplier removes a supplier. Blocked while any part or
// inventory row references it.
func (h *Handler) DeleteSupplier(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.SupplierService.DeleteSupplier(id); err != nil {
		respondWithMappedError(c, err, supplierWriteErrorRules, response.CodeInternal, "supplier deletion failed")
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
