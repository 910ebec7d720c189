package public

import (
	handlershared "github.com/avtorazbor/internal/http/handlers/shared"
	"github.com/avtorazbor/internal/http/response"
	"github.com/avtorazbor/internal/repository"
	"github.com/avtorazbor/internal/service"

	"github.com/gin-gonic/gin"
)

// GetReviews lists reviews filtered by part and/or author.
func (h *Handler) GetReviews(c *gin.Context) {
	page, limit := h.queryPagination(c)

	reviews, total, err := h.ReviewService.ListReviews(repository.ReviewListFilter{
		Page:     page,
		PageSize: limit,
		PartID:   queryUint(c, "part_id"),
		UserID:   queryUint(c, "user_id"),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "review list failed", err)
		return
	}
	response.SuccessWithPage(c, reviews, response.BuildPagination(page, limit, total))
}

// CreateReviewRequest is the review create payload.
type CreateReviewRequest struct {
	PartID  uint   `json:"part_id" binding:"required"`
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

// CreateReview posts a client's review of a part.
func (h *Handler) CreateReview(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	review, err := h.ReviewService.CreateReview(userID, handlershared.CallerRole(c), service.ReviewInput{
		PartID:  req.PartID,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		respondWithMappedError(c, err, reviewWriteErrorRules, response.CodeInternal, "review creation failed")
		return
	}
	response.Created(c, review)
}

// UpdateReviewRequest is the review update payload.
type UpdateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

// UpdateReview edits a review as its author or an operator.
func (h *Handler) UpdateReview(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	reviewID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	review, err := h.ReviewService.UpdateReview(reviewID, userID, handlershared.CallerIsOperator(c), req.Rating, req.Comment)
	if err != nil {
		respondWithMappedError(c, err, reviewWriteErrorRules, response.CodeInternal, "review update failed")
		return
	}
	response.Success(c, review)
}

// DeleteReview removes a review as its author or an operator.
func (h *Handler) DeleteReview(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	reviewID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.ReviewService.DeleteReview(reviewID, userID, handlershared.CallerIsOperator(c)); err != nil {
		respondWithMappedError(c, err, reviewWriteErrorRules, response.CodeInternal, "review deletion failed")
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
