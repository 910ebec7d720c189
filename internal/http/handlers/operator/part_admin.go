package operator

import (
	"github.com/avtorazbor/internal/http/response"
	"github.com/avtorazbor/internal/models"
	"github.com/avtorazbor/internal/service"

	"github.com/gin-gonic/gin"
)

// PartRequest is the part create/update payload.
type PartRequest struct {
	Name          string      `json:"name" binding:"required"`
	Description   string      `json:"description"`
	Price         models.Money `json:"price"`
	Compatibility models.JSON `json:"compatibility"`
	Stock         int         `json:"stock"`
	SupplierID    *uint       `json:"supplier_id"`
}

func (r PartRequest) toInput() service.PartInput {
	return service.PartInput{
		Name:          r.Name,
		Description:   r.Description,
		Price:         r.Price,
		Compatibility: r.Compatibility,
		Stock:         r.Stock,
		SupplierID:    r.SupplierID,
	}
}

// CreatePart inserts a catalog entry.
func (h *Handler) CreatePart(c *gin.Context) {
	var req PartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	part, err := h.PartService.CreatePart(req.toInput())
	if err != nil {
		respondWithMappedError(c, err, partWriteErrorRules, response.CodeInternal, "part creation failed")
		return
	}
	response.Created(c, part)
}

// UpdatePart saves part edits.
func (h *Handler) UpdatePart(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req PartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	part, err := h.PartService.UpdatePart(id, req.toInput())
	if err != nil {
		respondWithMappedError(c, err, partWriteErrorRules, response.CodeInternal, "part update failed")
		return
	}
	response.Success(c, part)
}

// DeletePart removes a part and everything referencing it.
func (h *Handler) DeletePart(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.PartService.DeletePart(id); err != nil {
		respondWithMappedError(c, err, partWriteErrorRules, response.CodeInternal, "part deletion failed")
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

// UploadPartImage stores a part photo from a multipart form field named
// "file".
func (h *Handler) UploadPartImage(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	file, err := c.FormFile("file")
	if err != nil {
		respondError(c, response.CodeBadRequest, "missing file", err)
		return
	}

	path, err := h.PartService.AttachImage(id, file)
	if err != nil {
		respondWithMappedError(c, err, partImageErrorRules, response.CodeInternal, "image upload failed")
		return
	}
	response.Success(c, gin.H{"image_path": path})
}
