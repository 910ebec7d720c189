package repository

import (
	"errors"

	"github.com/avtorazbor/internal/models"

	"gorm.io/gorm"
)

// SupplierRepository is the supplier data access interface.
type SupplierRepository interface {
	List(filter SupplierListFilter) ([]models.Supplier, int64, error)
	GetByID(id uint) (*models.Supplier, error)
	GetByName(name string) (*models.Supplier, error)
	Create(supplier *models.Supplier) error
	Update(supplier *models.Supplier) error
	Delete(id uint) error
	WithTx(tx *gorm.DB) SupplierRepository
}

// GormSupplierRepository is the GORM implementation.
type GormSupplierRepository struct {
	db *gorm.DB
}

// NewSupplierRepository creates a supplier repository.
func NewSupplierRepository(db *gorm.DB) *GormSupplierRepository {
	return &GormSupplierRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormSupplierRepository) WithTx(tx *gorm.DB) SupplierRepository {
	if tx == nil {
		return r
	}
	return &GormSupplierRepository{db: tx}
}

// List returns a filtered, sorted supplier page.
func (r *GormSupplierRepository) List(filter SupplierListFilter) ([]models.Supplier, int64, error) {
	var suppliers []models.Supplier

	query := r.db.Model(&models.Supplier{})
	if filter.Search != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+filter.Search+"%")
	}
	if filter.MinRating != nil {
		query = query.Where("rating >= ?", *filter.MinRating)
	}
	if filter.MaxRating != nil {
		query = query.Where("rating <= ?", *filter.MaxRating)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)
	query = applySort(query, filter.SortBy, filter.SortOrder, "created_at DESC")

	if err := query.Find(&suppliers).Error; err != nil {
		return nil, 0, err
	}
	return suppliers, total, nil
}

// GetByID fetches a supplier.
func (r *GormSupplierRepository) GetByID(id uint) (*models.Supplier, error) {
	var supplier models.Supplier
	if err := r.db.First(&supplier, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &supplier, nil
}

// GetByName fetches a supplier by its unique name.
func (r *GormSupplierRepository) GetByName(name string) (*models.Supplier, error) {
	var supplier models.Supplier
	if err := r.db.Where("name = ?", name).First(&supplier).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &supplier, nil
}

// Create inserts a supplier.
func (r *GormSupplierRepository) Create(supplier *models.Supplier) error {
	return r.db.Create(supplier).Error
}

// Update saves a supplier.
func (r *GormSupplierRepository) Update(supplier *models.Supplier) error {
	return r.db.Save(supplier).Error
}

// Delete removes a supplier row. Reference checks happen in the service.
func (r *GormSupplierRepository) Delete(id uint) error {
	return r.db.Delete(&models.Supplier{}, id).Error
}
