package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/bilgiteknoresmi-prog/3d-baski-studio/internal/model"
	"github.com/bilgiteknoresmi-prog/3d-baski-studio/internal/storage/db"
)

// ProductColumn names a products column that may be listed with DistinctValues.
type ProductColumn string

const (
	ProductColumnCategory ProductColumn = "category"
	ProductColumnMaterial ProductColumn = "material"
)

func (c ProductColumn) valid() bool {
	return c == ProductColumnCategory || c == ProductColumnMaterial
}

// ProductFilter narrows ListProducts. Empty fields do not filter.
type ProductFilter struct {
	Query    string
	Category string
	Material string
}

// ProductParams holds every mutable product field.
type ProductParams struct {
	Name         string
	Category     string
	Material     string
	Price        int
	Stock        int
	LeadTimeDays int
	PhotoURL     string
	STLURL       string
}

type ProductRepository interface {
	WithDB(db db.DB) ProductRepository
	ListProducts(ctx context.Context, filter ProductFilter) ([]model.Product, error)
	GetProduct(ctx context.Context, id int64) (model.Product, error)
	DistinctValues(ctx context.Context, column ProductColumn) ([]string, error)
	CountProducts(ctx context.Context) (int64, error)
	CreateProduct(ctx context.Context, params ProductParams) (int64, error)
	CreateProducts(ctx context.Context, params []ProductParams) (int64, error)
	UpdateProduct(ctx context.Context, id int64, params ProductParams) (bool, error)
	DeleteProduct(ctx context.Context, id int64) error
}

type productRepository struct {
	db db.DB
}

func NewProductRepository(db db.DB) ProductRepository {
	return &productRepository{
		db: db,
	}
}

func (r productRepository) WithDB(db db.DB) ProductRepository {
	return &productRepository{
		db: db,
	}
}

type productRow struct {
	ID           int64     `db:"id"`
	Name         string    `db:"name"`
	Category     string    `db:"category"`
	Material     string    `db:"material"`
	Price        int32     `db:"price"`
	Stock        int32     `db:"stock"`
	LeadTimeDays int32     `db:"lead_time_days"`
	PhotoURL     *string   `db:"photo_url"`
	STLURL       *string   `db:"stl_url"`
	CreatedAt    time.Time `db:"created_at"`
}

const productColumns = `id, name, category, material, price, stock, lead_time_days, photo_url, stl_url, created_at`

func (r productRepository) ListProducts(ctx context.Context, filter ProductFilter) ([]model.Product, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE (@query::text = '' OR strpos(LOWER(name COLLATE "und-x-icu"), LOWER(@query::text COLLATE "und-x-icu")) > 0)
			AND (@category::text = '' OR category = @category::text)
			AND (@material::text = '' OR material = @material::text)
		ORDER BY id DESC
	`, pgx.NamedArgs{
		"query":    strings.TrimSpace(filter.Query),
		"category": strings.TrimSpace(filter.Category),
		"material": strings.TrimSpace(filter.Material),
	})
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}

	products, err := pgx.CollectRows(rows, pgx.RowToStructByName[productRow])
	if err != nil {
		return nil, fmt.Errorf("collect products: %w", err)
	}

	modelProducts := make([]model.Product, 0, len(products))
	for _, product := range products {
		modelProducts = append(modelProducts, productRowToModelProduct(product))
	}

	return modelProducts, nil
}

func (r productRepository) GetProduct(ctx context.Context, id int64) (model.Product, error) {
	rows, err := r.db.Query(ctx, `SELECT `+productColumns+` FROM products WHERE id = @id`, pgx.NamedArgs{
		"id": id,
	})
	if err != nil {
		return model.Product{}, fmt.Errorf("query product: %w", err)
	}

	product, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[productRow])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Product{}, ErrNotFound
		}
		return model.Product{}, fmt.Errorf("collect product: %w", err)
	}

	return productRowToModelProduct(product), nil
}

func (r productRepository) DistinctValues(ctx context.Context, column ProductColumn) ([]string, error) {
	if !column.valid() {
		return nil, fmt.Errorf("distinct values: unsupported column %q", column)
	}

	col := pgx.Identifier{string(column)}.Sanitize()
	rows, err := r.db.Query(ctx, `SELECT DISTINCT `+col+` FROM products ORDER BY `+col)
	if err != nil {
		return nil, fmt.Errorf("query distinct %s: %w", column, err)
	}

	values, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("collect distinct %s: %w", column, err)
	}

	nonBlank := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			nonBlank = append(nonBlank, v)
		}
	}

	return nonBlank, nil
}

func (r productRepository) CountProducts(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

func (r productRepository) CreateProduct(ctx context.Context, params ProductParams) (int64, error) {
	args, err := productNamedArgs(params)
	if err != nil {
		return 0, err
	}

	var id int64
	if err := r.db.QueryRow(ctx, `
		INSERT INTO products (name, category, material, price, stock, lead_time_days, photo_url, stl_url)
		VALUES (@name, @category, @material, @price, @stock, @lead_time_days, @photo_url, @stl_url)
		RETURNING id
	`, args).Scan(&id); err != nil {
		return 0, fmt.Errorf("create product: %w", err)
	}

	return id, nil
}

func (r productRepository) CreateProducts(ctx context.Context, params []ProductParams) (int64, error) {
	rows := make([][]any, 0, len(params))
	for _, p := range params {
		price, stock, lead, err := productNumbers(p)
		if err != nil {
			return 0, err
		}
		rows = append(rows, []any{p.Name, p.Category, p.Material, price, stock, lead, p.PhotoURL, p.STLURL})
	}

	n, err := r.db.CopyFrom(ctx,
		pgx.Identifier{"products"},
		[]string{"name", "category", "material", "price", "stock", "lead_time_days", "photo_url", "stl_url"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return 0, fmt.Errorf("copy products: %w", err)
	}

	return n, nil
}

func (r productRepository) UpdateProduct(ctx context.Context, id int64, params ProductParams) (bool, error) {
	args, err := productNamedArgs(params)
	if err != nil {
		return false, err
	}
	args["id"] = id

	tag, err := r.db.Exec(ctx, `
		UPDATE products
		SET
			name           = @name,
			category       = @category,
			material       = @material,
			price          = @price,
			stock          = @stock,
			lead_time_days = @lead_time_days,
			photo_url      = @photo_url,
			stl_url        = @stl_url
		WHERE id = @id
	`, args)
	if err != nil {
		return false, fmt.Errorf("update product: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r productRepository) DeleteProduct(ctx context.Context, id int64) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = @id`, pgx.NamedArgs{"id": id}); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func productNumbers(p ProductParams) (price, stock, lead int32, err error) {
	if price, err = toInt32("price", p.Price); err != nil {
		return 0, 0, 0, err
	}
	if stock, err = toInt32("stock", p.Stock); err != nil {
		return 0, 0, 0, err
	}
	if lead, err = toInt32("lead_time_days", p.LeadTimeDays); err != nil {
		return 0, 0, 0, err
	}
	return price, stock, lead, nil
}

func productNamedArgs(p ProductParams) (pgx.NamedArgs, error) {
	price, stock, lead, err := productNumbers(p)
	if err != nil {
		return nil, err
	}

	return pgx.NamedArgs{
		"name":           p.Name,
		"category":       p.Category,
		"material":       p.Material,
		"price":          price,
		"stock":          stock,
		"lead_time_days": lead,
		"photo_url":      p.PhotoURL,
		"stl_url":        p.STLURL,
	}, nil
}

func productRowToModelProduct(row productRow) model.Product {
	p := model.Product{
		ID:           row.ID,
		Name:         row.Name,
		Category:     row.Category,
		Material:     row.Material,
		Price:        int(row.Price),
		Stock:        int(row.Stock),
		LeadTimeDays: int(row.LeadTimeDays),
		CreatedAt:    row.CreatedAt,
	}
	if row.PhotoURL != nil {
		p.PhotoURL = *row.PhotoURL
	}
	if row.STLURL != nil {
		p.STLURL = *row.STLURL
	}
	return p
}
