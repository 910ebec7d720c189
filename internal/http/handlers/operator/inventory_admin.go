package operator

import (
	"strings"

	"github.com/avtorazbor/internal/http/response"
	"github.com/avtorazbor/internal/repository"
	"github.com/avtorazbor/internal/service"

	"github.com/gin-gonic/gin"
)

// ListInventories lists placement records, filtered by part, supplier
// or location substring.
func (h *Handler) ListInventories(c *gin.Context) {
	page, limit := h.queryPagination(c)

	rows, total, err := h.InventoryService.ListInventories(repository.InventoryListFilter{
		Page:       page,
		PageSize:   limit,
		PartID:     queryUint(c, "part_id"),
		SupplierID: queryUint(c, "supplier_id"),
		Location:   strings.TrimSpace(c.Query("location")),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "inventory list failed", err)
		return
	}
	response.SuccessWithPage(c, rows, response.BuildPagination(page, limit, total))
}

// GetInventory returns one placement record.
func (h *Handler) GetInventory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	row, err := h.InventoryService.GetInventory(id)
	if err != nil {
		respondWithMappedError(c, err, inventoryWriteErrorRules, response.CodeInternal, "inventory fetch failed")
		return
	}
	response.Success(c, row)
}

// InventoryRequest is the inventory create/update payload.
type InventoryRequest struct {
	PartID     uint   `json:"part_id" binding:"required"`
	SupplierID *uint  `json:"supplier_id"`
	Quantity   int    `json:"quantity"`
	Location   string `json:"location"`
}

func (r InventoryRequest) toInput() service.InventoryInput {
	return service.InventoryInput{
		PartID:     r.PartID,
		SupplierID: r.SupplierID,
		Quantity:   r.Quantity,
		Location:   r.Location,
	}
}

// CreateInventory inserts a placement record.
func (h *Handler) CreateInventory(c *gin.Context) {
	var req InventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	row, err := h.InventoryService.CreateInventory(req.toInput())
	if err != nil {
		respondWithMappedError(c, err, inventoryWriteErrorRules, response.CodeInternal, "inventory creation failed")
		return
	}
	response.Created(c, row)
}

// UpdateInventory saves placement edits.
func (h *Handler) UpdateInventory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req InventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	row, err := h.InventoryService.UpdateInventory(id, req.toInput())
	if err != nil {
		respondWithMappedError(c, err, inventoryWriteErrorRules, response.CodeInternal, "inventory update failed")
		return
	}
	response.Success(c, row)
}

// DeleteInventory removes a placement record.
func (h *Handler) DeleteInventory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.InventoryService.DeleteInventory(id); err != nil {
		respondWithMappedError(c, err, inventoryWriteErrorRules, response.CodeInternal, "inventory deletion failed")
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
