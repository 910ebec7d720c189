package service

import (
	"github.com/avtorazbor/internal/logger"
	"github.com/avtorazbor/internal/models"
	"github.com/avtorazbor/internal/repository"
)

// FavoriteService enforces the one-favorite-per-(user, part) rule,
// backed by a unique index on the table.
type FavoriteService struct {
	favoriteRepo repository.FavoriteRepository
	partRepo     repository.PartRepository
}

// NewFavoriteService creates the favorite service.
func NewFavoriteService(favoriteRepo repository.FavoriteRepository, partRepo repository.PartRepository) *FavoriteService {
	return &FavoriteService{favoriteRepo: favoriteRepo, partRepo: partRepo}
}

// AddFavorite saves a part for the user.
func (s *FavoriteService) AddFavorite(userID, partID uint) (*models.Favorite, error) {
	part, err := s.partRepo.GetByID(partID)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, ErrPartNotFound
	}

	existing, err := s.favoriteRepo.GetByUserAndPart(userID, partID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrFavoriteExists
	}

	favorite := &models.Favorite{UserID: userID, PartID: partID}
	if err := s.favoriteRepo.Create(favorite); err != nil {
		// A racing duplicate slips past the check and lands on the index.
		return nil, translateDuplicate(err, ErrFavoriteExists)
	}
	logger.Infow("favorite_added", "user_id", userID, "part_id", partID)
	return favorite, nil
}

// ListFavorites returns the user's saved parts.
func (s *FavoriteService) ListFavorites(userID uint, page, pageSize int) ([]models.Favorite, int64, error) {
	return s.favoriteRepo.ListByUser(userID, page, pageSize)
}

// RemoveFavorite drops a saved part.
func (s *FavoriteService) RemoveFavorite(userID, partID uint) error {
	affected, err := s.favoriteRepo.DeleteByUserAndPart(userID, partID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrFavoriteNotFound
	}
	return nil
}
