package service

import (
	"cmp"
	"math"
	"math/rand"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/yusufkecer/unshakn-backend/internal/domain"
)

type ProductStore interface {
	List() []domain.Product
	Categories() []domain.Category
}

// Sort keys accepted by the admin listings.
const (
	SortStockLow  = "stock_low"
	SortStockHigh = "stock_high"
	SortName      = "name"

	SortWishlistedDesc = "wishlistedDesc"
	SortWishlistedAsc  = "wishlistedAsc"
	SortNameAsc        = "nameAsc"
	SortNameDesc       = "nameDesc"

	SortNewest  = "newest"
	SortOldest  = "oldest"
	SortHighest = "highest"
	SortLowest  = "lowest"
)

type CatalogService struct {
	store    ProductStore
	visitors func() int
}

func NewCatalogService(store ProductStore) *CatalogService {
	return &CatalogService{
		store:    store,
		visitors: func() int { return rand.Intn(1500) + 500 },
	}
}

// WithVisitorSource replaces the simulated visitor counter.
func (s *CatalogService) WithVisitorSource(f func() int) *CatalogService {
	s.visitors = f
	return s
}

func (s *CatalogService) Products(category string) []domain.Product {
	products := s.store.List()
	if category == "" {
		return products
	}
	return lo.Filter(products, func(p domain.Product, _ int) bool {
		return p.Category == category
	})
}

func (s *CatalogService) Inventory(search, sortBy string) []domain.InventoryItem {
	products := filterByName(s.store.List(), search)

	switch sortBy {
	case SortStockHigh:
		slices.SortStableFunc(products, func(a, b domain.Product) int { return cmp.Compare(b.Stock, a.Stock) })
	case SortName:
		slices.SortStableFunc(products, byName)
	default:
		slices.SortStableFunc(products, func(a, b domain.Product) int { return cmp.Compare(a.Stock, b.Stock) })
	}

	return lo.Map(products, func(p domain.Product, _ int) domain.InventoryItem {
		return domain.InventoryItem{
			ID:       p.ID,
			Name:     p.Name,
			Category: p.Category,
			Stock:    p.Stock,
			Status:   domain.StockStatusOf(p.Stock),
		}
	})
}

func (s *CatalogService) Wishlist(sortBy string) []domain.WishlistItem {
	products := s.store.List()

	switch sortBy {
	case SortWishlistedAsc:
		slices.SortStableFunc(products, func(a, b domain.Product) int { return cmp.Compare(a.Wishlisted, b.Wishlisted) })
	case SortNameAsc:
		slices.SortStableFunc(products, byName)
	case SortNameDesc:
		slices.SortStableFunc(products, func(a, b domain.Product) int { return byName(b, a) })
	default:
		slices.SortStableFunc(products, func(a, b domain.Product) int { return cmp.Compare(b.Wishlisted, a.Wishlisted) })
	}

	return lo.Map(products, func(p domain.Product, _ int) domain.WishlistItem {
		return domain.WishlistItem{ID: p.ID, Name: p.Name, Slug: p.Slug, Wishlisted: p.Wishlisted}
	})
}

func (s *CatalogService) Stats() domain.Stats {
	products := s.store.List()
	return domain.Stats{
		TotalProducts:  len(products),
		TotalStock:     lo.SumBy(products, func(p domain.Product) int { return p.Stock }),
		TotalWishlists: lo.SumBy(products, func(p domain.Product) int { return p.Wishlisted }),
		Visitors:       s.visitors(),
	}
}

// CategoryBreakdown counts products per known category, in category order.
func (s *CatalogService) CategoryBreakdown() []domain.CategoryCount {
	counts := lo.CountValuesBy(s.store.List(), func(p domain.Product) string { return p.Category })
	return lo.Map(s.store.Categories(), func(c domain.Category, _ int) domain.CategoryCount {
		return domain.CategoryCount{Category: c.Slug, Products: counts[c.Slug]}
	})
}

// Reviews returns the products that have ratings, with each product's
// ratings sorted and summarised.
func (s *CatalogService) Reviews(search, sortBy string) []domain.ProductReviews {
	products := lo.Filter(filterByName(s.store.List(), search), func(p domain.Product, _ int) bool {
		return len(p.Ratings) > 0
	})

	return lo.Map(products, func(p domain.Product, _ int) domain.ProductReviews {
		ratings := p.Ratings
		sortRatings(ratings, sortBy)
		return domain.ProductReviews{
			ProductID:    p.ID,
			ProductName:  p.Name,
			Average:      averageRating(ratings),
			Distribution: ratingDistribution(ratings),
			Ratings:      ratings,
		}
	})
}

func sortRatings(ratings []domain.Rating, sortBy string) {
	// Dates are YYYY-MM-DD so string order is chronological.
	switch sortBy {
	case SortOldest:
		slices.SortStableFunc(ratings, func(a, b domain.Rating) int { return strings.Compare(a.Date, b.Date) })
	case SortHighest:
		slices.SortStableFunc(ratings, func(a, b domain.Rating) int { return cmp.Compare(b.Rating, a.Rating) })
	case SortLowest:
		slices.SortStableFunc(ratings, func(a, b domain.Rating) int { return cmp.Compare(a.Rating, b.Rating) })
	default:
		slices.SortStableFunc(ratings, func(a, b domain.Rating) int { return strings.Compare(b.Date, a.Date) })
	}
}

func averageRating(ratings []domain.Rating) float64 {
	if len(ratings) == 0 {
		return 0
	}
	sum := lo.SumBy(ratings, func(r domain.Rating) int { return r.Rating })
	return math.Round(float64(sum)/float64(len(ratings))*10) / 10
}

func ratingDistribution(ratings []domain.Rating) []domain.RatingBucket {
	buckets := make([]domain.RatingBucket, 0, 5)
	for stars := 5; stars >= 1; stars-- {
		n := lo.CountBy(ratings, func(r domain.Rating) bool { return r.Rating == stars })
		var pct float64
		if len(ratings) > 0 {
			pct = float64(n) / float64(len(ratings)) * 100
		}
		buckets = append(buckets, domain.RatingBucket{Stars: stars, Count: n, Percentage: pct})
	}
	return buckets
}

func filterByName(products []domain.Product, search string) []domain.Product {
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return products
	}
	return lo.Filter(products, func(p domain.Product, _ int) bool {
		return strings.Contains(strings.ToLower(p.Name), search)
	})
}

func byName(a, b domain.Product) int {
	return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
}
