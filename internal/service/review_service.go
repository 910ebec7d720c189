package service

import (
	"strings"

	"github.com/avtorazbor/internal/constants"
	"github.com/avtorazbor/internal/logger"
	"github.com/avtorazbor/internal/models"
	"github.com/avtorazbor/internal/repository"
)

// ReviewService enforces the one-review-per-(user, part) rule. The check
// here is backed by a unique index on the table, so a racing duplicate
// fails at the storage layer too.
type ReviewService struct {
	reviewRepo repository.ReviewRepository
	partRepo   repository.PartRepository
}

// NewReviewService creates the review service.
func NewReviewService(reviewRepo repository.ReviewRepository, partRepo repository.PartRepository) *ReviewService {
	return &ReviewService{reviewRepo: reviewRepo, partRepo: partRepo}
}

// ListReviews returns a review page filtered by part and/or author.
func (s *ReviewService) ListReviews(filter repository.ReviewListFilter) ([]models.Review, int64, error) {
	return s.reviewRepo.List(filter)
}

// ReviewInput carries review fields.
type ReviewInput struct {
	PartID  uint
	Rating  int
	Comment string
}

// CreateReview adds a client's review of a part. Only the client role may
// review.
func (s *ReviewService) CreateReview(userID uint, role string, input ReviewInput) (*models.Review, error) {
	if role != constants.RoleClient {
		return nil, ErrRoleNotAllowed
	}
	if input.Rating < constants.RatingMin || input.Rating > constants.RatingMax {
		return nil, ErrInvalidRating
	}

	part, err := s.partRepo.GetByID(input.PartID)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, ErrPartNotFound
	}

	existing, err := s.reviewRepo.GetByUserAndPart(userID, input.PartID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrReviewExists
	}

	review := &models.Review{
		UserID:  userID,
		PartID:  input.PartID,
		Rating:  input.Rating,
		Comment: strings.TrimSpace(input.Comment),
	}
	if err := s.reviewRepo.Create(review); err != nil {
		// A racing duplicate slips past the check and lands on the index.
		return nil, translateDuplicate(err, ErrReviewExists)
	}
	logger.Infow("review_created", "review_id", review.ID, "part_id", review.PartID, "user_id", userID)
	return review, nil
}

// UpdateReview edits a review. Only the author or an operator may edit.
func (s *ReviewService) UpdateReview(id, userID uint, isOperator bool, rating int, comment string) (*models.Review, error) {
	review, err := s.reviewRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, ErrReviewNotFound
	}
	if !isOperator && review.UserID != userID {
		return nil, ErrReviewAccessDenied
	}
	if rating < constants.RatingMin || rating > constants.RatingMax {
		return nil, ErrInvalidRating
	}

	review.Rating = rating
	review.Comment = strings.TrimSpace(comment)
	if err := s.reviewRepo.Update(review); err != nil {
		return nil, err
	}
	return review, nil
}

// DeleteReview removes a review. Only the author or an operator may
// delete.
func (s *ReviewService) DeleteReview(id, userID uint, isOperator bool) error {
	review, err := s.reviewRepo.GetByID(id)
	if err != nil {
		return err
	}
	if review == nil {
		return ErrReviewNotFound
	}
	if !isOperator && review.UserID != userID {
		return ErrReviewAccessDenied
	}
	return s.reviewRepo.Delete(id)
}
