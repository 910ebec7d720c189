package service

import (
	"strings"

	"github.com/avtorazbor/internal/logger"
	"github.com/avtorazbor/internal/models"
	"github.com/avtorazbor/internal/repository"
)

// InventoryService manages physical placement records. These are
// independent of sellable stock on the part itself.
type InventoryService struct {
	inventoryRepo repository.InventoryRepository
	partRepo      repository.PartRepository
	supplierRepo  repository.SupplierRepository
}

// NewInventoryService creates the inventory service.
func NewInventoryService(
	inventoryRepo repository.InventoryRepository,
	partRepo repository.PartRepository,
	supplierRepo repository.SupplierRepository,
) *InventoryService {
	return &InventoryService{
		inventoryRepo: inventoryRepo,
		partRepo:      partRepo,
		supplierRepo:  supplierRepo,
	}
}

// ListInventories returns an inventory page.
func (s *InventoryService) ListInventories(filter repository.InventoryListFilter) ([]models.Inventory, int64, error) {
	return s.inventoryRepo.List(filter)
}

// GetInventory returns one inventory row.
func (s *InventoryService) GetInventory(id uint) (*models.Inventory, error) {
	row, err := s.inventoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrInventoryNotFound
	}
	return row, nil
}

// InventoryInput carries operator-side inventory fields.
type InventoryInput struct {
	PartID     uint
	SupplierID *uint
	Quantity   int
	Location   string
}

func (s *InventoryService) validateInventoryInput(input InventoryInput) error {
	if input.Quantity < 0 {
		return ErrInvalidQuantity
	}
	part, err := s.partRepo.GetByID(input.PartID)
	if err != nil {
		return err
	}
	if part == nil {
		return ErrPartNotFound
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

// CreateInventory inserts a placement record.
func (s *InventoryService) CreateInventory(input InventoryInput) (*models.Inventory, error) {
	if err := s.validateInventoryInput(input); err != nil {
		return nil, err
	}
	row := &models.Inventory{
		PartID:     input.PartID,
		SupplierID: normalizeSupplierID(input.SupplierID),
		Quantity:   input.Quantity,
		Location:   strings.TrimSpace(input.Location),
	}
	if err := s.inventoryRepo.Create(row); err != nil {
		return nil, err
	}
	logger.Infow("inventory_created", "inventory_id", row.ID, "part_id", row.PartID)
	return s.inventoryRepo.GetByID(row.ID)
}

// UpdateInventory saves placement edits.
func (s *InventoryService) UpdateInventory(id uint, input InventoryInput) (*models.Inventory, error) {
	row, err := s.inventoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrInventoryNotFound
	}
	if err := s.validateInventoryInput(input); err != nil {
		return nil, err
	}

	row.PartID = input.PartID
	row.SupplierID = normalizeSupplierID(input.SupplierID)
	row.Quantity = input.Quantity
	row.Location = strings.TrimSpace(input.Location)

	if err := s.inventoryRepo.Update(row); err != nil {
		return nil, err
	}
	return s.inventoryRepo.GetByID(id)
}

// DeleteInventory removes a placement record.
func (s *InventoryService) DeleteInventory(id uint) error {
	row, err := s.inventoryRepo.GetByID(id)
	if err != nil {
		return err
	}
	if row == nil {
		return ErrInventoryNotFound
	}
	return s.inventoryRepo.Delete(id)
}
