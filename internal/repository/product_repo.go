package repository

import (
	_ "embed"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/yusufkecer/unshakn-backend/internal/domain"
)

//go:embed seed.yaml
var seedYAML []byte

type seed struct {
	Categories []domain.Category `yaml:"categories"`
	Products   []domain.Product  `yaml:"products"`
}

// LoadSeed returns the embedded demo catalog.
func LoadSeed() ([]domain.Product, []domain.Category, error) {
	var s seed
	if err := yaml.Unmarshal(seedYAML, &s); err != nil {
		return nil, nil, fmt.Errorf("failed to parse seed catalog: %w", err)
	}
	return s.Products, s.Categories, nil
}

// ProductRepository is an in-memory product store. Values going in and
// out are deep copies, so callers never share slices with the store.
type ProductRepository struct {
	mu         sync.RWMutex
	order      []string
	products   map[string]*domain.Product
	categories []domain.Category
}

func NewProductRepository(products []domain.Product, categories []domain.Category) (*ProductRepository, error) {
	r := &ProductRepository{
		products:   make(map[string]*domain.Product, len(products)),
		categories: slices.Clone(categories),
	}
	for _, p := range products {
		if p.ID == "" {
			return nil, fmt.Errorf("seed product %q has no id", p.Name)
		}
		if _, dup := r.products[p.ID]; dup {
			return nil, fmt.Errorf("duplicate seed product id %q", p.ID)
		}
		if p.Slug == "" {
			p.Slug = Slugify(p.Name)
		}
		if r.slugOwner(p.Slug) != "" {
			return nil, fmt.Errorf("seed product %q: %w", p.ID, domain.ErrSlugTaken)
		}
		cp := cloneProduct(p)
		r.products[p.ID] = &cp
		r.order = append(r.order, p.ID)
	}
	return r, nil
}

func Slugify(name string) string {
	return lo.KebabCase(name)
}

func (r *ProductRepository) List() []domain.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Product, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, cloneProduct(*r.products[id]))
	}
	return out
}

func (r *ProductRepository) GetByID(id string) (domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return domain.Product{}, fmt.Errorf("product %s: %w", id, domain.ErrNotFound)
	}
	return cloneProduct(*p), nil
}

func (r *ProductRepository) GetBySlug(slug string) (domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id := r.slugOwner(slug)
	if id == "" {
		return domain.Product{}, fmt.Errorf("product %s: %w", slug, domain.ErrNotFound)
	}
	return cloneProduct(*r.products[id]), nil
}

// Create stores p under a fresh id. A missing slug is derived from the name.
func (r *ProductRepository) Create(p domain.Product) (domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.ID = uuid.NewString()
	if p.Slug == "" {
		p.Slug = Slugify(p.Name)
	}
	if r.slugOwner(p.Slug) != "" {
		return domain.Product{}, fmt.Errorf("product %s: %w", p.Slug, domain.ErrSlugTaken)
	}
	assignRatingIDs(p.Ratings)

	cp := cloneProduct(p)
	r.products[p.ID] = &cp
	r.order = append(r.order, p.ID)
	return cloneProduct(cp), nil
}

// Update replaces the product with p.ID.
func (r *ProductRepository) Update(p domain.Product) (domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[p.ID]; !ok {
		return domain.Product{}, fmt.Errorf("product %s: %w", p.ID, domain.ErrNotFound)
	}
	if p.Slug == "" {
		p.Slug = Slugify(p.Name)
	}
	if owner := r.slugOwner(p.Slug); owner != "" && owner != p.ID {
		return domain.Product{}, fmt.Errorf("product %s: %w", p.Slug, domain.ErrSlugTaken)
	}
	assignRatingIDs(p.Ratings)

	cp := cloneProduct(p)
	r.products[p.ID] = &cp
	return cloneProduct(cp), nil
}

func (r *ProductRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return fmt.Errorf("product %s: %w", id, domain.ErrNotFound)
	}
	delete(r.products, id)
	r.order = slices.DeleteFunc(r.order, func(v string) bool { return v == id })
	return nil
}

func (r *ProductRepository) UpdateStock(id string, stock int) (domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[id]
	if !ok {
		return domain.Product{}, fmt.Errorf("product %s: %w", id, domain.ErrNotFound)
	}
	p.Stock = stock
	return cloneProduct(*p), nil
}

// TogglePin flips the pinned flag of a rating and returns the new state.
func (r *ProductRepository) TogglePin(productID, ratingID string) (domain.Rating, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[productID]
	if !ok {
		return domain.Rating{}, fmt.Errorf("product %s: %w", productID, domain.ErrNotFound)
	}
	i := slices.IndexFunc(p.Ratings, func(rt domain.Rating) bool { return rt.ID == ratingID })
	if i < 0 {
		return domain.Rating{}, fmt.Errorf("rating %s: %w", ratingID, domain.ErrNotFound)
	}
	p.Ratings[i].Pinned = !p.Ratings[i].Pinned
	return p.Ratings[i], nil
}

func (r *ProductRepository) DeleteRating(productID, ratingID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[productID]
	if !ok {
		return fmt.Errorf("product %s: %w", productID, domain.ErrNotFound)
	}
	n := len(p.Ratings)
	p.Ratings = slices.DeleteFunc(p.Ratings, func(rt domain.Rating) bool { return rt.ID == ratingID })
	if len(p.Ratings) == n {
		return fmt.Errorf("rating %s: %w", ratingID, domain.ErrNotFound)
	}
	return nil
}

func (r *ProductRepository) Categories() []domain.Category {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.categories)
}

// slugOwner returns the id of the product using slug. Caller holds the lock.
func (r *ProductRepository) slugOwner(slug string) string {
	for id, p := range r.products {
		if p.Slug == slug {
			return id
		}
	}
	return ""
}

func assignRatingIDs(ratings []domain.Rating) {
	for i := range ratings {
		if ratings[i].ID == "" {
			ratings[i].ID = uuid.NewString()
		}
	}
}

func cloneProduct(p domain.Product) domain.Product {
	p.Sizes = slices.Clone(p.Sizes)
	p.Tags = slices.Clone(p.Tags)
	p.Ratings = slices.Clone(p.Ratings)
	if p.Video != nil {
		v := *p.Video
		p.Video = &v
	}
	return p
}
