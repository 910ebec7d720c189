package repository

import (
	"errors"

	"github.com/avtorazbor/internal/models"

	"gorm.io/gorm"
)

// FavoriteRepository is the favorite data access interface.
type FavoriteRepository interface {
	ListByUser(userID uint, page, pageSize int) ([]models.Favorite, int64, error)
	GetByUserAndPart(userID, partID uint) (*models.Favorite, error)
	Create(favorite *models.Favorite) error
	DeleteByUserAndPart(userID, partID uint) (int64, error)
	DeleteByUser(userID uint) error
	DeleteByPart(partID uint) error
	WithTx(tx *gorm.DB) FavoriteRepository
}

// GormFavoriteRepository is the GORM implementation.
type GormFavoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository creates a favorite repository.
func NewFavoriteRepository(db *gorm.DB) *GormFavoriteRepository {
	return &GormFavoriteRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormFavoriteRepository) WithTx(tx *gorm.DB) FavoriteRepository {
	if tx == nil {
		return r
	}
	return &GormFavoriteRepository{db: tx}
}

// ListByUser returns a user's favorites with parts preloaded.
func (r *GormFavoriteRepository) ListByUser(userID uint, page, pageSize int) ([]models.Favorite, int64, error) {
	query := r.db.Model(&models.Favorite{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, page, pageSize)

	var favorites []models.Favorite
	if err := query.Preload("Part").Order("created_at DESC").Find(&favorites).Error; err != nil {
		return nil, 0, err
	}
	return favorites, total, nil
}

// GetByUserAndPart fetches the unique favorite for a (user, part) pair.
func (r *GormFavoriteRepository) GetByUserAndPart(userID, partID uint) (*models.Favorite, error) {
	var favorite models.Favorite
	if err := r.db.Where("user_id = ? AND part_id = ?", userID, partID).First(&favorite).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &favorite, nil
}

// Create inserts a favorite.
func (r *GormFavoriteRepository) Create(favorite *models.Favorite) error {
	return r.db.Create(favorite).Error
}

// DeleteByUserAndPart removes the favorite and reports whether one existed.
func (r *GormFavoriteRepository) DeleteByUserAndPart(userID, partID uint) (int64, error) {
	result := r.db.Where("user_id = ? AND part_id = ?", userID, partID).Delete(&models.Favorite{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// DeleteByUser removes all favorites of a user.
func (r *GormFavoriteRepository) DeleteByUser(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.Favorite{}).Error
}

// DeleteByPart removes all favorites of a part.
func (r *GormFavoriteRepository) DeleteByPart(partID uint) error {
	return r.db.Where("part_id = ?", partID).Delete(&models.Favorite{}).Error
}
