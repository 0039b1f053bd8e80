package repository_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yusufkecer/unshakn-backend/internal/domain"
	"github.com/yusufkecer/unshakn-backend/internal/repository"
)

func newSeededRepo(t *testing.T) *repository.ProductRepository {
	t.Helper()
	products, categories, err := repository.LoadSeed()
	require.NoError(t, err)
	repo, err := repository.NewProductRepository(products, categories)
	require.NoError(t, err)
	return repo
}

func TestLoadSeed(t *testing.T) {
	rq := require.New(t)

	products, categories, err := repository.LoadSeed()
	rq.NoError(err)
	rq.Len(products, 6)
	rq.Len(categories, 5)

	hoodie := products[0]
	rq.Equal("elite-training-hoodie", hoodie.Slug)
	rq.Equal(79.99, hoodie.Price)
	rq.Equal([]domain.Size{domain.SizeS, domain.SizeM, domain.SizeL, domain.SizeXL}, hoodie.Sizes)
	rq.Len(hoodie.Ratings, 2)
	rq.True(hoodie.Ratings[0].Pinned)

	rq.NotNil(products[3].Video)
	rq.Nil(products[0].Video)
}

func TestProductRepositoryCRUD(t *testing.T) {
	rq := require.New(t)
	repo := newSeededRepo(t)

	created, err := repo.Create(domain.Product{
		Name:     "Recovery Joggers",
		Price:    59.5,
		Category: "bottoms",
		Sizes:    []domain.Size{domain.SizeM},
		Ratings:  []domain.Rating{{User: "Ana", Rating: 5}},
	})
	rq.NoError(err)
	rq.NotEmpty(created.ID)
	rq.Equal("recovery-joggers", created.Slug)
	rq.NotEmpty(created.Ratings[0].ID)
	rq.Len(repo.List(), 7)

	bySlug, err := repo.GetBySlug("recovery-joggers")
	rq.NoError(err)
	rq.Equal(created.ID, bySlug.ID)

	_, err = repo.Create(domain.Product{Name: "Recovery Joggers", Price: 1, Category: "bottoms"})
	rq.ErrorIs(err, domain.ErrSlugTaken)

	created.Price = 49.5
	updated, err := repo.Update(created)
	rq.NoError(err)
	rq.Equal(49.5, updated.Price)

	clash := updated
	clash.Slug = "elite-training-hoodie"
	_, err = repo.Update(clash)
	rq.ErrorIs(err, domain.ErrSlugTaken)

	_, err = repo.Update(domain.Product{ID: "missing", Name: "x"})
	rq.ErrorIs(err, domain.ErrNotFound)

	rq.NoError(repo.Delete(created.ID))
	rq.ErrorIs(repo.Delete(created.ID), domain.ErrNotFound)
	_, err = repo.GetByID(created.ID)
	rq.ErrorIs(err, domain.ErrNotFound)
	rq.Len(repo.List(), 6)
	rq.Equal("1", repo.List()[0].ID)
}

func TestProductRepositoryReturnsCopies(t *testing.T) {
	rq := require.New(t)
	repo := newSeededRepo(t)

	p, err := repo.GetByID("1")
	rq.NoError(err)
	p.Tags[0] = "mutated"
	p.Ratings[0].Comment = "mutated"

	again, err := repo.GetByID("1")
	rq.NoError(err)
	rq.Equal("hoodie", again.Tags[0])
	rq.NotEqual("mutated", again.Ratings[0].Comment)
}

func TestProductRepositoryStockAndRatings(t *testing.T) {
	rq := require.New(t)
	repo := newSeededRepo(t)

	p, err := repo.UpdateStock("5", 12)
	rq.NoError(err)
	rq.Equal(12, p.Stock)
	_, err = repo.UpdateStock("nope", 1)
	rq.ErrorIs(err, domain.ErrNotFound)

	rt, err := repo.TogglePin("1", "r2")
	rq.NoError(err)
	rq.True(rt.Pinned)
	rt, err = repo.TogglePin("1", "r2")
	rq.NoError(err)
	rq.False(rt.Pinned)

	_, err = repo.TogglePin("1", "r9")
	rq.ErrorIs(err, domain.ErrNotFound)
	_, err = repo.TogglePin("nope", "r1")
	rq.ErrorIs(err, domain.ErrNotFound)

	rq.NoError(repo.DeleteRating("1", "r1"))
	rq.ErrorIs(repo.DeleteRating("1", "r1"), domain.ErrNotFound)
	p, err = repo.GetByID("1")
	rq.NoError(err)
	rq.Len(p.Ratings, 1)
	rq.Equal("r2", p.Ratings[0].ID)
}

func TestProductRepositoryConcurrentStockUpdates(t *testing.T) {
	repo := newSeededRepo(t)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, _ = repo.UpdateStock("1", n)
			_ = repo.List()
		}(i)
	}
	wg.Wait()

	p, err := repo.GetByID("1")
	require.NoError(t, err)
	require.GreaterOrEqual(t, p.Stock, 0)
	require.Less(t, p.Stock, 50)
}

func TestNewProductRepositoryRejectsDuplicates(t *testing.T) {
	_, err := repository.NewProductRepository([]domain.Product{
		{ID: "1", Name: "A"},
		{ID: "1", Name: "B"},
	}, nil)
	require.Error(t, err)

	_, err = repository.NewProductRepository([]domain.Product{
		{ID: "1", Name: "Same Name"},
		{ID: "2", Name: "Same Name"},
	}, nil)
	require.ErrorIs(t, err, domain.ErrSlugTaken)
}
