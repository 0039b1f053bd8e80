package service_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yusufkecer/unshakn-backend/internal/domain"
	"github.com/yusufkecer/unshakn-backend/internal/repository"
	"github.com/yusufkecer/unshakn-backend/internal/service"
)

func newCatalog(t *testing.T) (*service.CatalogService, *repository.ProductRepository) {
	t.Helper()
	products, categories, err := repository.LoadSeed()
	require.NoError(t, err)
	repo, err := repository.NewProductRepository(products, categories)
	require.NoError(t, err)
	return service.NewCatalogService(repo).WithVisitorSource(func() int { return 1234 }), repo
}

func TestCatalogProducts(t *testing.T) {
	svc, _ := newCatalog(t)

	require.Len(t, svc.Products(""), 6)
	bottoms := svc.Products("bottoms")
	require.Len(t, bottoms, 2)
	require.Equal(t, "Performance Track Pants", bottoms[0].Name)
	require.Empty(t, svc.Products("hats"))
}

func TestCatalogInventory(t *testing.T) {
	rq := require.New(t)
	svc, _ := newCatalog(t)

	items := svc.Inventory("", "")
	rq.Len(items, 6)
	rq.Equal("Endurance Sports Bra", items[0].Name)
	rq.Equal(domain.StockOut, items[0].Status)
	rq.Equal("Compression Athlete Tee", items[1].Name)
	rq.Equal(domain.StockLow, items[1].Status)
	rq.Equal(domain.StockIn, items[5].Status)
	rq.Equal(32, items[5].Stock)

	items = svc.Inventory("", service.SortStockHigh)
	rq.Equal(32, items[0].Stock)

	items = svc.Inventory("ELITE", service.SortName)
	rq.Len(items, 2)
	rq.Equal("Elite Athlete Jacket", items[0].Name)
	rq.Equal("Elite Training Hoodie", items[1].Name)
}

func TestCatalogWishlist(t *testing.T) {
	rq := require.New(t)
	svc, _ := newCatalog(t)

	items := svc.Wishlist("")
	rq.Equal(213, items[0].Wishlisted)
	rq.Equal(78, items[5].Wishlisted)

	items = svc.Wishlist(service.SortWishlistedAsc)
	rq.Equal(78, items[0].Wishlisted)

	items = svc.Wishlist(service.SortNameAsc)
	rq.Equal("Compression Athlete Tee", items[0].Name)

	items = svc.Wishlist(service.SortNameDesc)
	rq.Equal("Pro Training Shorts", items[0].Name)
}

func TestCatalogStats(t *testing.T) {
	rq := require.New(t)
	svc, repo := newCatalog(t)

	rq.Equal(domain.Stats{
		TotalProducts:  6,
		TotalStock:     85,
		TotalWishlists: 758,
		Visitors:       1234,
	}, svc.Stats())

	_, err := repo.UpdateStock("5", 15)
	rq.NoError(err)
	rq.Equal(100, svc.Stats().TotalStock)

	breakdown := svc.CategoryBreakdown()
	rq.Len(breakdown, 5)
	rq.Equal(domain.CategoryCount{Category: "bottoms", Products: 2}, breakdown[1])
}

func TestCatalogDefaultVisitors(t *testing.T) {
	products, categories, err := repository.LoadSeed()
	require.NoError(t, err)
	repo, err := repository.NewProductRepository(products, categories)
	require.NoError(t, err)

	svc := service.NewCatalogService(repo)
	for i := 0; i < 100; i++ {
		v := svc.Stats().Visitors
		require.GreaterOrEqual(t, v, 500)
		require.Less(t, v, 2000)
	}
}

func TestCatalogReviews(t *testing.T) {
	rq := require.New(t)
	svc, _ := newCatalog(t)

	reviews := svc.Reviews("", "")
	rq.Len(reviews, 6)

	hoodie := reviews[0]
	rq.Equal("1", hoodie.ProductID)
	rq.Equal("r1", hoodie.Ratings[0].ID) // 2023-04-15 is newer than 2023-03-22
	rq.Equal(4.5, hoodie.Average)
	rq.Len(hoodie.Distribution, 5)
	rq.Equal(domain.RatingBucket{Stars: 5, Count: 1, Percentage: 50}, hoodie.Distribution[0])
	rq.Equal(domain.RatingBucket{Stars: 4, Count: 1, Percentage: 50}, hoodie.Distribution[1])
	rq.Equal(0, hoodie.Distribution[4].Count)

	reviews = svc.Reviews("hoodie", service.SortOldest)
	rq.Len(reviews, 1)
	rq.Equal("r2", reviews[0].Ratings[0].ID)

	reviews = svc.Reviews("tee", service.SortLowest)
	rq.Equal(4, reviews[0].Ratings[0].Rating)
	reviews = svc.Reviews("tee", service.SortHighest)
	rq.Equal(5, reviews[0].Ratings[0].Rating)
}
