package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"prodcat/internal/cache"
	apperrors "prodcat/internal/errors"
	"prodcat/internal/model"
	"prodcat/internal/repository"
)

const productCacheTTL = 5 * time.Minute

// ProductService exposes catalog CRUD operations.
type ProductService interface {
	Create(ctx context.Context, product *model.Product) (*model.Product, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Product, error)
	List(ctx context.Context) ([]model.Product, error)
	Update(ctx context.Context, id uuid.UUID, updates *model.ProductUpdate) (*model.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type productService struct {
	repo  repository.ProductRepository
	cache *cache.Client
}

// NewProductService builds a ProductService with repository and cache.
func NewProductService(repo repository.ProductRepository, cache *cache.Client) ProductService {
	return &productService{repo: repo, cache: cache}
}

func (s *productService) cacheKey(id uuid.UUID) string {
	return fmt.Sprintf("product:%s", id.String())
}

func (s *productService) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return product, nil
}

// Get retrieves a product by ID with read-through caching.
func (s *productService) Get(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Product
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(product); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, productCacheTTL)
	}
	return product, nil
}

func (s *productService) List(ctx context.Context) ([]model.Product, error) {
	return s.repo.List(ctx)
}

// Update applies a partial update and invalidates the cache entry.
func (s *productService) Update(ctx context.Context, id uuid.UUID, updates *model.ProductUpdate) (*model.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, err
	}

	updates.Apply(product)

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return product, nil
}

// Delete removes a product and invalidates the cache entry.
func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrProductNotFound
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}
