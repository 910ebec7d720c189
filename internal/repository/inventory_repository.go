package repository

import (
	"errors"

	"github.com/avtorazbor/internal/models"

	"gorm.io/gorm"
)

// InventoryRepository is the inventory data access interface.
type InventoryRepository interface {
	List(filter InventoryListFilter) ([]models.Inventory, int64, error)
	GetByID(id uint) (*models.Inventory, error)
	Create(inventory *models.Inventory) error
	Update(inventory *models.Inventory) error
	Delete(id uint) error
	DeleteByPart(partID uint) error
	CountBySupplier(supplierID uint) (int64, error)
	WithTx(tx *gorm.DB) InventoryRepository
}

// GormInventoryRepository is the GORM implementation.
type GormInventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository creates an inventory repository.
func NewInventoryRepository(db *gorm.DB) *GormInventoryRepository {
	return &GormInventoryRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormInventoryRepository) WithTx(tx *gorm.DB) InventoryRepository {
	if tx == nil {
		return r
	}
	return &GormInventoryRepository{db: tx}
}

// List returns a filtered inventory page with parts preloaded.
func (r *GormInventoryRepository) List(filter InventoryListFilter) ([]models.Inventory, int64, error) {
	var rows []models.Inventory

	query := r.db.Model(&models.Inventory{})
	if filter.PartID != 0 {
		query = query.Where("part_id = ?", filter.PartID)
	}
	if filter.SupplierID != 0 {
		query = query.Where("supplier_id = ?", filter.SupplierID)
	}
	if filter.Location != "" {
		query = query.Where("LOWER(location) LIKE LOWER(?)", "%"+filter.Location+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Preload("Part").Preload("Supplier").Order("id DESC").Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// GetByID fetches an inventory row with part and supplier.
func (r *GormInventoryRepository) GetByID(id uint) (*models.Inventory, error) {
	var row models.Inventory
	if err := r.db.Preload("Part").Preload("Supplier").First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// Create inserts an inventory row.
func (r *GormInventoryRepository) Create(inventory *models.Inventory) error {
	return r.db.Create(inventory).Error
}

// Update saves an inventory row.
func (r *GormInventoryRepository) Update(inventory *models.Inventory) error {
	return r.db.Save(inventory).Error
}

// Delete removes an inventory row.
func (r *GormInventoryRepository) Delete(id uint) error {
	return r.db.Delete(&models.Inventory{}, id).Error
}

// DeleteByPart removes all placements of a part.
func (r *GormInventoryRepository) DeleteByPart(partID uint) error {
	return r.db.Where("part_id = ?", partID).Delete(&models.Inventory{}).Error
}

// CountBySupplier counts inventory rows referencing a supplier.
func (r *GormInventoryRepository) CountBySupplier(supplierID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Inventory{}).Where("supplier_id = ?", supplierID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
