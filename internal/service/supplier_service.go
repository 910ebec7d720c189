package service

import (
	"strings"

	"github.com/avtorazbor/internal/constants"
	"github.com/avtorazbor/internal/logger"
	"github.com/avtorazbor/internal/models"
	"github.com/avtorazbor/internal/repository"

	"github.com/shopspring/decimal"
)

// SupplierService manages suppliers and guards their referential
// integrity: a supplier referenced by parts or inventories cannot go.
type SupplierService struct {
	supplierRepo  repository.SupplierRepository
	partRepo      repository.PartRepository
	inventoryRepo repository.InventoryRepository
}

// NewSupplierService creates the supplier service.
func NewSupplierService(
	supplierRepo repository.SupplierRepository,
	partRepo repository.PartRepository,
	inventoryRepo repository.InventoryRepository,
) *SupplierService {
	return &SupplierService{
		supplierRepo:  supplierRepo,
		partRepo:      partRepo,
		inventoryRepo: inventoryRepo,
	}
}

// ListSuppliers returns a supplier page with the sort column resolved
// against the allowlist.
func (s *SupplierService) ListSuppliers(filter repository.SupplierListFilter) ([]models.Supplier, int64, error) {
	filter.SortBy = constants.SupplierSortColumns[filter.SortBy]
	return s.supplierRepo.List(filter)
}

// GetSupplier returns one supplier.
func (s *SupplierService) GetSupplier(id uint) (*models.Supplier, error) {
	supplier, err := s.supplierRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, ErrSupplierNotFound
	}
	return supplier, nil
}

// SupplierInput carries operator-side supplier fields.
type SupplierInput struct {
	Name        string
	ContactInfo models.JSON
	Rating      models.Money
}

func validateSupplierRating(rating decimal.Decimal) error {
	if rating.IsNegative() || rating.GreaterThan(decimal.NewFromInt(5)) {
		return ErrInvalidRating
	}
	return nil
}

// CreateSupplier inserts a supplier with a unique name.
func (s *SupplierService) CreateSupplier(input SupplierInput) (*models.Supplier, error) {
	name := strings.TrimSpace(input.Name)
	if err := validateSupplierRating(input.Rating.Decimal); err != nil {
		return nil, err
	}
	existing, err := s.supplierRepo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrSupplierNameTaken
	}

	supplier := &models.Supplier{
		Name:        name,
		ContactInfo: input.ContactInfo,
		Rating:      input.Rating,
	}
	if err := s.supplierRepo.Create(supplier); err != nil {
		return nil, err
	}
	logger.Infow("supplier_created", "supplier_id", supplier.ID, "name", supplier.Name)
	return supplier, nil
}

// UpdateSupplier saves supplier edits, re-checking name uniqueness.
func (s *SupplierService) UpdateSupplier(id uint, input SupplierInput) (*models.Supplier, error) {
	supplier, err := s.supplierRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, ErrSupplierNotFound
	}
	if err := validateSupplierRating(input.Rating.Decimal); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if name != supplier.Name {
		existing, err := s.supplierRepo.GetByName(name)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != supplier.ID {
			return nil, ErrSupplierNameTaken
		}
	}

	supplier.Name = name
	supplier.ContactInfo = input.ContactInfo
	supplier.Rating = input.Rating
	if err := s.supplierRepo.Update(supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// DeleteSupplier removes a supplier unless any part or inventory row
// still references it.
func (s *SupplierService) DeleteSupplier(id uint) error {
	supplier, err := s.supplierRepo.GetByID(id)
	if err != nil {
		return err
	}
	if supplier == nil {
		return ErrSupplierNotFound
	}

	partCount, err := s.partRepo.CountBySupplier(id)
	if err != nil {
		return err
	}
	inventoryCount, err := s.inventoryRepo.CountBySupplier(id)
	if err != nil {
		return err
	}
	if partCount > 0 || inventoryCount > 0 {
		return ErrSupplierReferenced
	}

	if err := s.supplierRepo.Delete(id); err != nil {
		return err
	}
	logger.Infow("supplier_deleted", "supplier_id", id)
	return nil
}
