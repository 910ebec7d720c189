package public

import (
	"github.com/avtorazbor/internal/http/response"

	"github.com/gin-gonic/gin"
)

// ListFavorites returns the caller's saved parts.
func (h *Handler) ListFavorites(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	page, limit := h.queryPagination(c)

	favorites, total, err := h.FavoriteService.ListFavorites(userID, page, limit)
	if err != nil {
		respondError(c, response.CodeInternal, "favorite list failed", err)
		return
	}
	response.SuccessWithPage(c, favorites, response.BuildPagination(page, limit, total))
}

// AddFavoriteRequest is the favorite create payload.
type AddFavoriteRequest struct {
	PartID uint `json:"part_id" binding:"required"`
}

// AddFavorite saves a part for the caller.
func (h *Handler) AddFavorite(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	var req AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	favorite, err := h.FavoriteService.AddFavorite(userID, req.PartID)
	if err != nil {
		respondWithMappedError(c, err, favoriteErrorRules, response.CodeInternal, "favorite creation failed")
		return
	}
	response.Created(c, favorite)
}

// RemoveFavorite drops a saved part by part id.
func (h *Handler) RemoveFavorite(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	partID, ok := parseIDParam(c, "part_id")
	if !ok {
		return
	}

	if err := h.FavoriteService.RemoveFavorite(userID, partID); err != nil {
		respondWithMappedError(c, err, favoriteErrorRules, response.CodeInternal, "favorite removal failed")
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
