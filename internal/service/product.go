package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bilgiteknoresmi-prog/3d-baski-studio/internal/apperr"
	"github.com/bilgiteknoresmi-prog/3d-baski-studio/internal/model"
	"github.com/bilgiteknoresmi-prog/3d-baski-studio/internal/repository"
	"github.com/bilgiteknoresmi-prog/3d-baski-studio/internal/storage/db"
	"github.com/bilgiteknoresmi-prog/3d-baski-studio/pkg/validator"
)

// seedLockKey serialises catalog seeding across processes starting together.
const seedLockKey int64 = 0x3d5eed

type ListProductsParams struct {
	Query    string
	Category string
	Material string
}

// ProductInput carries every editable product field, already coerced to its
// final type by the caller.
type ProductInput struct {
	Name         string `validate:"notblank"`
	Category     string `validate:"notblank"`
	Material     string `validate:"notblank"`
	Price        int    `validate:"gte=0"`
	Stock        int    `validate:"gte=0"`
	LeadTimeDays int    `validate:"gte=0"`
	PhotoURL     string
	STLURL       string
}

func (in ProductInput) normalize() ProductInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Category = strings.TrimSpace(in.Category)
	in.Material = strings.TrimSpace(in.Material)
	in.PhotoURL = strings.TrimSpace(in.PhotoURL)
	in.STLURL = strings.TrimSpace(in.STLURL)
	return in
}

func (in ProductInput) params() repository.ProductParams {
	return repository.ProductParams{
		Name:         in.Name,
		Category:     in.Category,
		Material:     in.Material,
		Price:        in.Price,
		Stock:        in.Stock,
		LeadTimeDays: in.LeadTimeDays,
		PhotoURL:     in.PhotoURL,
		STLURL:       in.STLURL,
	}
}

type ProductService interface {
	ListProducts(ctx context.Context, params ListProductsParams) ([]model.Product, error)
	GetProduct(ctx context.Context, id int64) (model.Product, error)
	ListCategories(ctx context.Context) ([]string, error)
	ListMaterials(ctx context.Context) ([]string, error)
	CreateProduct(ctx context.Context, input ProductInput) (int64, error)
	UpdateProduct(ctx context.Context, id int64, input ProductInput) (bool, error)
	DeleteProduct(ctx context.Context, id int64) error
	SeedIfEmpty(ctx context.Context) (int64, error)
}

type productService struct {
	db          db.DB
	validator   validator.Validator
	productRepo repository.ProductRepository
}

func NewProductService(
	db db.DB,
	validator validator.Validator,
	productRepo repository.ProductRepository,
) ProductService {
	return &productService{
		db:          db,
		validator:   validator,
		productRepo: productRepo,
	}
}

func (s *productService) ListProducts(ctx context.Context, params ListProductsParams) ([]model.Product, error) {
	products, err := s.productRepo.ListProducts(ctx, repository.ProductFilter{
		Query:    params.Query,
		Category: params.Category,
		Material: params.Material,
	})
	if err != nil {
		return nil, fmt.Errorf("product repository list products: %w", err)
	}

	return products, nil
}

func (s *productService) GetProduct(ctx context.Context, id int64) (model.Product, error) {
	product, err := s.productRepo.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Product{}, apperr.ProductNotFoundErr.WrapParent(err)
		}
		return model.Product{}, fmt.Errorf("product repository get product: %w", err)
	}

	return product, nil
}

func (s *productService) ListCategories(ctx context.Context) ([]string, error) {
	values, err := s.productRepo.DistinctValues(ctx, repository.ProductColumnCategory)
	if err != nil {
		return nil, fmt.Errorf("product repository distinct categories: %w", err)
	}
	return values, nil
}

func (s *productService) ListMaterials(ctx context.Context) ([]string, error) {
	values, err := s.productRepo.DistinctValues(ctx, repository.ProductColumnMaterial)
	if err != nil {
		return nil, fmt.Errorf("product repository distinct materials: %w", err)
	}
	return values, nil
}

func (s *productService) CreateProduct(ctx context.Context, input ProductInput) (int64, error) {
	input = input.normalize()
	if err := s.validator.Validate(input); err != nil {
		return 0, apperr.ValidationErr.WrapParent(err)
	}

	id, err := s.productRepo.CreateProduct(ctx, input.params())
	if err != nil {
		return 0, fmt.Errorf("product repository create product: %w", err)
	}

	return id, nil
}

func (s *productService) UpdateProduct(ctx context.Context, id int64, input ProductInput) (bool, error) {
	input = input.normalize()
	if err := s.validator.Validate(input); err != nil {
		return false, apperr.ValidationErr.WrapParent(err)
	}

	ok, err := s.productRepo.UpdateProduct(ctx, id, input.params())
	if err != nil {
		return false, fmt.Errorf("product repository update product: %w", err)
	}

	return ok, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id int64) error {
	if err := s.productRepo.DeleteProduct(ctx, id); err != nil {
		return fmt.Errorf("product repository delete product: %w", err)
	}
	return nil
}

// SeedIfEmpty inserts the demo catalog when there are no products at all and
// returns the number of rows inserted.
func (s *productService) SeedIfEmpty(ctx context.Context) (int64, error) {
	var inserted int64
	if err := s.db.WithTx(ctx, func(db db.DB) error {
		if _, err := db.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, seedLockKey); err != nil {
			return fmt.Errorf("acquire seed lock: %w", err)
		}

		repo := s.productRepo.WithDB(db)
		n, err := repo.CountProducts(ctx)
		if err != nil {
			return fmt.Errorf("product repository count products: %w", err)
		}
		if n > 0 {
			return nil
		}

		inserted, err = repo.CreateProducts(ctx, defaultProducts())
		if err != nil {
			return fmt.Errorf("product repository create products: %w", err)
		}

		return nil
	}); err != nil {
		return 0, fmt.Errorf("db with tx: %w", err)
	}

	return inserted, nil
}

func defaultProducts() []repository.ProductParams {
	return []repository.ProductParams{
		{Name: "PS5 DualSense Stand (Ters Slotlu)", Category: "Aksesuar", Material: "PLA", Price: 249, Stock: 15, LeadTimeDays: 2},
		{Name: "Kablo Düzenleyici Klips Seti (10'lu)", Category: "Organizasyon", Material: "PETG", Price: 129, Stock: 40, LeadTimeDays: 1},
		{Name: "Masa Üstü Telefon Standı (Ayarlı)", Category: "Stand", Material: "PLA", Price: 159, Stock: 25, LeadTimeDays: 1},
	}
}
