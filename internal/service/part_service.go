package service

import (
	"mime/multipart"
	"strings"

	"github.com/avtorazbor/internal/constants"
	"github.com/avtorazbor/internal/logger"
	"github.com/avtorazbor/internal/models"
	"github.com/avtorazbor/internal/repository"

	"gorm.io/gorm"
)

// PartService manages the sellable catalog.
type PartService struct {
	partRepo      repository.PartRepository
	supplierRepo  repository.SupplierRepository
	inventoryRepo repository.InventoryRepository
	reviewRepo    repository.ReviewRepository
	favoriteRepo  repository.FavoriteRepository
	orderRepo     repository.OrderRepository
	upload        *UploadService
}

// NewPartService creates the part service.
func NewPartService(
	partRepo repository.PartRepository,
	supplierRepo repository.SupplierRepository,
	inventoryRepo repository.InventoryRepository,
	reviewRepo repository.ReviewRepository,
	favoriteRepo repository.FavoriteRepository,
	orderRepo repository.OrderRepository,
	upload *UploadService,
) *PartService {
	return &PartService{
		partRepo:      partRepo,
		supplierRepo:  supplierRepo,
		inventoryRepo: inventoryRepo,
		reviewRepo:    reviewRepo,
		favoriteRepo:  favoriteRepo,
		orderRepo:     orderRepo,
		upload:        upload,
	}
}

// ListParts returns a catalog page. The sort column is resolved against
// the allowlist here; anything unknown falls back to newest-first.
func (s *PartService) ListParts(filter repository.PartListFilter) ([]models.Part, int64, error) {
	filter.SortBy = constants.PartSortColumns[filter.SortBy]
	filter.WithSupplier = true
	return s.partRepo.List(filter)
}

// GetPart returns a part with its review aggregates.
func (s *PartService) GetPart(id uint) (*models.Part, error) {
	part, err := s.partRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, ErrPartNotFound
	}
	avg, count, err := s.reviewRepo.AggregateByPart(id)
	if err != nil {
		return nil, err
	}
	part.AvgRating = avg
	part.ReviewCount = count
	return part, nil
}

// PartInput carries operator-side part fields.
type PartInput struct {
	Name          string
	Description   string
	Price         models.Money
	Compatibility models.JSON
	Stock         int
	SupplierID    *uint
}

func (s *PartService) validatePartInput(input PartInput) error {
	if input.Price.Decimal.IsNegative() {
		return ErrInvalidPrice
	}
	if input.Stock < 0 {
		return ErrInvalidQuantity
	}
	if input.SupplierID != nil && *input.SupplierID != 0 {
		supplier, err := s.supplierRepo.GetByID(*input.SupplierID)
		if err != nil {
			return err
		}
		if supplier == nil {
			return ErrSupplierNotFound
		}
	}
	return nil
}

// CreatePart inserts a catalog entry.
func (s *PartService) CreatePart(input PartInput) (*models.Part, error) {
	if err := s.validatePartInput(input); err != nil {
		return nil, err
	}
	part := &models.Part{
		Name:          strings.TrimSpace(input.Name),
		Description:   input.Description,
		Price:         input.Price,
		Compatibility: input.Compatibility,
		Stock:         input.Stock,
		SupplierID:    normalizeSupplierID(input.SupplierID),
	}
	if err := s.partRepo.Create(part); err != nil {
		return nil, err
	}
	logger.Infow("part_created", "part_id", part.ID, "name", part.Name)
	return part, nil
}

// UpdatePart saves operator edits, including direct stock corrections.
func (s *PartService) UpdatePart(id uint, input PartInput) (*models.Part, error) {
	part, err := s.partRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, ErrPartNotFound
	}
	if err := s.validatePartInput(input); err != nil {
		return nil, err
	}

	part.Name = strings.TrimSpace(input.Name)
	part.Description = input.Description
	part.Price = input.Price
	part.Compatibility = input.Compatibility
	part.Stock = input.Stock
	part.SupplierID = normalizeSupplierID(input.SupplierID)

	if err := s.partRepo.Update(part); err != nil {
		return nil, err
	}
	return part, nil
}

// DeletePart removes a part and cascades its order lines, reviews,
// favorites and inventory placements in one transaction.
func (s *PartService) DeletePart(id uint) error {
	part, err := s.partRepo.GetByID(id)
	if err != nil {
		return err
	}
	if part == nil {
		return ErrPartNotFound
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.orderRepo.WithTx(tx).DeleteItemsByPart(id); err != nil {
			return err
		}
		if err := s.reviewRepo.WithTx(tx).DeleteByPart(id); err != nil {
			return err
		}
		if err := s.favoriteRepo.WithTx(tx).DeleteByPart(id); err != nil {
			return err
		}
		if err := s.inventoryRepo.WithTx(tx).DeleteByPart(id); err != nil {
			return err
		}
		return s.partRepo.WithTx(tx).Delete(id)
	})
	if err != nil {
		return err
	}
	logger.Infow("part_deleted", "part_id", id)
	return nil
}

// AttachImage stores an uploaded photo and records its path on the part.
func (s *PartService) AttachImage(id uint, file *multipart.FileHeader) (string, error) {
	part, err := s.partRepo.GetByID(id)
	if err != nil {
		return "", err
	}
	if part == nil {
		return "", ErrPartNotFound
	}

	path, err := s.upload.SaveFile(file, "parts")
	if err != nil {
		return "", err
	}
	if err := s.partRepo.UpdateImagePath(id, path); err != nil {
		return "", err
	}
	logger.Infow("part_image_attached", "part_id", id, "path", path)
	return path, nil
}

func normalizeSupplierID(id *uint) *uint {
	if id == nil || *id == 0 {
		return nil
	}
	return id
}
