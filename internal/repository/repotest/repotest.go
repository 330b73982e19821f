// Package repotest provides in-memory repositories for tests of the layers
// above storage.
package repotest

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/bilgiteknoresmi-prog/3d-baski-studio/internal/model"
	"github.com/bilgiteknoresmi-prog/3d-baski-studio/internal/repository"
	"github.com/bilgiteknoresmi-prog/3d-baski-studio/internal/storage/db"
)

// ProductRepository keeps products in memory. Err, when set, is returned by
// every call.
type ProductRepository struct {
	mu       sync.Mutex
	Products []model.Product
	Created  []repository.ProductParams
	Err      error
}

var _ repository.ProductRepository = (*ProductRepository)(nil)

func (r *ProductRepository) WithDB(db.DB) repository.ProductRepository { return r }

func (r *ProductRepository) ListProducts(_ context.Context, f repository.ProductFilter) ([]model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}

	q := strings.ToLower(strings.TrimSpace(f.Query))
	cat := strings.TrimSpace(f.Category)
	mat := strings.TrimSpace(f.Material)

	out := []model.Product{}
	for _, p := range r.Products {
		if q != "" && !strings.Contains(strings.ToLower(p.Name), q) {
			continue
		}
		if cat != "" && p.Category != cat {
			continue
		}
		if mat != "" && p.Material != mat {
			continue
		}
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b model.Product) int { return cmp.Compare(b.ID, a.ID) })
	return out, nil
}

func (r *ProductRepository) GetProduct(_ context.Context, id int64) (model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return model.Product{}, r.Err
	}

	i := slices.IndexFunc(r.Products, func(p model.Product) bool { return p.ID == id })
	if i < 0 {
		return model.Product{}, repository.ErrNotFound
	}
	return r.Products[i], nil
}

func (r *ProductRepository) DistinctValues(_ context.Context, column repository.ProductColumn) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}

	var out []string
	for _, p := range r.Products {
		v := p.Category
		if column == repository.ProductColumnMaterial {
			v = p.Material
		}
		if strings.TrimSpace(v) != "" && !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	slices.Sort(out)
	return out, nil
}

func (r *ProductRepository) CountProducts(context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.Products)), r.Err
}

func (r *ProductRepository) CreateProduct(_ context.Context, params repository.ProductParams) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return 0, r.Err
	}
	return r.insert(params), nil
}

func (r *ProductRepository) CreateProducts(_ context.Context, params []repository.ProductParams) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return 0, r.Err
	}
	for _, p := range params {
		r.insert(p)
	}
	return int64(len(params)), nil
}

func (r *ProductRepository) insert(params repository.ProductParams) int64 {
	var id int64 = 1
	for _, p := range r.Products {
		id = max(id, p.ID+1)
	}
	r.Created = append(r.Created, params)
	r.Products = append(r.Products, productFromParams(id, params))
	return id
}

func (r *ProductRepository) UpdateProduct(_ context.Context, id int64, params repository.ProductParams) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return false, r.Err
	}

	for i := range r.Products {
		if r.Products[i].ID == id {
			updated := productFromParams(id, params)
			updated.CreatedAt = r.Products[i].CreatedAt
			r.Products[i] = updated
			return true, nil
		}
	}
	return false, nil
}

func (r *ProductRepository) DeleteProduct(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.Products = slices.DeleteFunc(r.Products, func(p model.Product) bool { return p.ID == id })
	return nil
}

func productFromParams(id int64, p repository.ProductParams) model.Product {
	return model.Product{
		ID:           id,
		Name:         p.Name,
		Category:     p.Category,
		Material:     p.Material,
		Price:        p.Price,
		Stock:        p.Stock,
		LeadTimeDays: p.LeadTimeDays,
		PhotoURL:     p.PhotoURL,
		STLURL:       p.STLURL,
		CreatedAt:    time.Now(),
	}
}

// MessageRepository keeps messages in memory. Err, when set, is returned by
// every call.
type MessageRepository struct {
	mu       sync.Mutex
	Messages []model.Message
	Err      error
}

var _ repository.MessageRepository = (*MessageRepository)(nil)

func (r *MessageRepository) WithDB(db.DB) repository.MessageRepository { return r }

func (r *MessageRepository) ListMessages(context.Context) ([]model.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}

	out := slices.Clone(r.Messages)
	slices.SortFunc(out, func(a, b model.Message) int { return cmp.Compare(b.ID, a.ID) })
	return out, nil
}

func (r *MessageRepository) CountUnread(context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for _, m := range r.Messages {
		if !m.IsRead {
			n++
		}
	}
	return n, r.Err
}

func (r *MessageRepository) CreateMessage(_ context.Context, params repository.CreateMessageParams) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return 0, r.Err
	}

	var id int64 = 1
	for _, m := range r.Messages {
		id = max(id, m.ID+1)
	}
	r.Messages = append(r.Messages, model.Message{
		ID:        id,
		Name:      params.Name,
		Email:     params.Email,
		Body:      params.Body,
		CreatedAt: time.Now(),
	})
	return id, nil
}

func (r *MessageRepository) MarkRead(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	for i := range r.Messages {
		if r.Messages[i].ID == id {
			r.Messages[i].IsRead = true
		}
	}
	return nil
}

func (r *MessageRepository) DeleteMessage(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.Messages = slices.DeleteFunc(r.Messages, func(m model.Message) bool { return m.ID == id })
	return nil
}
