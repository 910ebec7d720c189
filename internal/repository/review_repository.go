package repository

import (
	"errors"

	"github.com/avtorazbor/internal/models"

	"gorm.io/gorm"
)

// ReviewRepository is the review data access interface.
type ReviewRepository interface {
	List(filter ReviewListFilter) ([]models.Review, int64, error)
	GetByID(id uint) (*models.Review, error)
	GetByUserAndPart(userID, partID uint) (*models.Review, error)
	Create(review *models.Review) error
	Update(review *models.Review) error
	Delete(id uint) error
	DeleteByUser(userID uint) error
	DeleteByPart(partID uint) error
	AggregateByPart(partID uint) (float64, int64, error)
	WithTx(tx *gorm.DB) ReviewRepository
}

// GormReviewRepository is the GORM implementation.
type GormReviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a review repository.
func NewReviewRepository(db *gorm.DB) *GormReviewRepository {
	return &GormReviewRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormReviewRepository) WithTx(tx *gorm.DB) ReviewRepository {
	if tx == nil {
		return r
	}
	return &GormReviewRepository{db: tx}
}

// List returns a review page, newest first.
func (r *GormReviewRepository) List(filter ReviewListFilter) ([]models.Review, int64, error) {
	var reviews []models.Review
	query := r.db.Model(&models.Review{})

	if filter.PartID != 0 {
		query = query.Where("part_id = ?", filter.PartID)
	}
	if filter.UserID != 0 {
		query = query.Where("user_id = ?", filter.UserID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Preload("User").Order("created_at DESC").Find(&reviews).Error; err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

// GetByID fetches a review.
func (r *GormReviewRepository) GetByID(id uint) (*models.Review, error) {
	var review models.Review
	if err := r.db.First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

// GetByUserAndPart fetches the unique review for a (user, part) pair.
func (r *GormReviewRepository) GetByUserAndPart(userID, partID uint) (*models.Review, error) {
	var review models.Review
	if err := r.db.Where("user_id = ? AND part_id = ?", userID, partID).First(&review).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

// Create inserts a review.
func (r *GormReviewRepository) Create(review *models.Review) error {
	return r.db.Create(review).Error
}

// Update saves a review.
func (r *GormReviewRepository) Update(review *models.Review) error {
	return r.db.Save(review).Error
}

// Delete removes a review.
func (r *GormReviewRepository) Delete(id uint) error {
	return r.db.Delete(&models.Review{}, id).Error
}

// DeleteByUser removes all reviews authored by a user.
func (r *GormReviewRepository) DeleteByUser(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.Review{}).Error
}

// DeleteByPart removes all reviews of a part.
func (r *GormReviewRepository) DeleteByPart(partID uint) error {
	return r.db.Where("part_id = ?", partID).Delete(&models.Review{}).Error
}

// AggregateByPart returns the average rating and review count of a part.
func (r *GormReviewRepository) AggregateByPart(partID uint) (float64, int64, error) {
	var row struct {
		Avg   float64
		Count int64
	}
	if err := r.db.Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Where("part_id = ?", partID).
		Take(&row).Error; err != nil {
		return 0, 0, err
	}
	return row.Avg, row.Count, nil
}
