package repository

import (
	"errors"

	"github.com/avtorazbor/internal/models"

	"gorm.io/gorm"
)

// PartRepository is the part data access interface.
type PartRepository interface {
	List(filter PartListFilter) ([]models.Part, int64, error)
	GetByID(id uint) (*models.Part, error)
	ListByIDs(ids []uint) ([]models.Part, error)
	Create(part *models.Part) error
	Update(part *models.Part) error
	UpdateImagePath(id uint, path string) error
	Delete(id uint) error
	CountBySupplier(supplierID uint) (int64, error)
	ReserveStock(partID uint, quantity int) (int64, error)
	RestoreStock(partID uint, quantity int) (int64, error)
	WithTx(tx *gorm.DB) PartRepository
}

// GormPartRepository is the GORM implementation.
type GormPartRepository struct {
	db *gorm.DB
}

// NewPartRepository creates a part repository.
func NewPartRepository(db *gorm.DB) *GormPartRepository {
	return &GormPartRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormPartRepository) WithTx(tx *gorm.DB) PartRepository {
	if tx == nil {
		return r
	}
	return &GormPartRepository{db: tx}
}

// List returns a filtered, sorted part page.
func (r *GormPartRepository) List(filter PartListFilter) ([]models.Part, int64, error) {
	var parts []models.Part

	query := r.db.Model(&models.Part{})
	if filter.WithSupplier {
		query = query.Preload("Supplier")
	}
	if filter.Search != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+filter.Search+"%")
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}
	if filter.SupplierID != 0 {
		query = query.Where("supplier_id = ?", filter.SupplierID)
	}
	if filter.Compatibility != "" {
		query = query.Where("compatibility LIKE ?", "%"+filter.Compatibility+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)
	query = applySort(query, filter.SortBy, filter.SortOrder, "created_at DESC")

	if err := query.Find(&parts).Error; err != nil {
		return nil, 0, err
	}
	return parts, total, nil
}

// GetByID fetches a part with its supplier.
func (r *GormPartRepository) GetByID(id uint) (*models.Part, error) {
	var part models.Part
	if err := r.db.Preload("Supplier").First(&part, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &part, nil
}

// ListByIDs fetches parts in batch.
func (r *GormPartRepository) ListByIDs(ids []uint) ([]models.Part, error) {
	if len(ids) == 0 {
		return []models.Part{}, nil
	}
	var parts []models.Part
	if err := r.db.Where("id IN ?", ids).Find(&parts).Error; err != nil {
		return nil, err
	}
	return parts, nil
}

// Create inserts a part.
func (r *GormPartRepository) Create(part *models.Part) error {
	return r.db.Create(part).Error
}

// Update saves a part.
func (r *GormPartRepository) Update(part *models.Part) error {
	return r.db.Save(part).Error
}

// UpdateImagePath stores the uploaded image reference.
func (r *GormPartRepository) UpdateImagePath(id uint, path string) error {
	return r.db.Model(&models.Part{}).Where("id = ?", id).Update("image_path", path).Error
}

// Delete removes a part row.
func (r *GormPartRepository) Delete(id uint) error {
	return r.db.Delete(&models.Part{}, id).Error
}

// CountBySupplier counts parts referencing a supplier.
func (r *GormPartRepository) CountBySupplier(supplierID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Part{}).Where("supplier_id = ?", supplierID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ReserveStock decrements sellable stock with a guard against going
// negative. A zero row count means the part had less stock than requested.
func (r *GormPartRepository) ReserveStock(partID uint, quantity int) (int64, error) {
	if partID == 0 || quantity <= 0 {
		return 0, errors.New("invalid stock reserve params")
	}
	result := r.db.Model(&models.Part{}).
		Where("id = ? AND stock >= ?", partID, quantity).
		Update("stock", gorm.Expr("stock - ?", quantity))
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// RestoreStock returns reserved stock after a cancellation.
func (r *GormPartRepository) RestoreStock(partID uint, quantity int) (int64, error) {
	if partID == 0 || quantity <= 0 {
		return 0, errors.New("invalid stock restore params")
	}
	result := r.db.Model(&models.Part{}).
		Where("id = ?", partID).
		Update("stock", gorm.Expr("stock + ?", quantity))
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
