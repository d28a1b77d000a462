package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"prodcat/internal/model"
)

// ProductRepository defines product persistence operations.
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error)
	List(ctx context.Context) ([]model.Product, error)
	Update(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	FindByIDOrCreate(ctx context.Context, product *model.Product) (*model.Product, bool, error)
}

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository.
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	var product model.Product
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) List(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	if err := r.db.WithContext(ctx).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) Update(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

// Delete removes a product and reports how many rows were affected so the
// service can distinguish "deleted" from "was never there".
func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Product{})
	return res.RowsAffected, res.Error
}

// FindByIDOrCreate finds a product by ID or creates it if it doesn't exist.
// The boolean reports whether a new row was inserted, so callers can tell
// idempotent re-runs from first-time seeding.
func (r *productRepository) FindByIDOrCreate(ctx context.Context, product *model.Product) (*model.Product, bool, error) {
	var existing model.Product
	err := r.db.WithContext(ctx).Where("id = ?", product.ID).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, err
	}

	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return nil, false, err
	}
	return product, true, nil
}
