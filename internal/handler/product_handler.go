package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/yusufkecer/unshakn-backend/internal/domain"
	"github.com/yusufkecer/unshakn-backend/internal/repository"
	"github.com/yusufkecer/unshakn-backend/internal/service"
)

type ProductHandler struct {
	repo    *repository.ProductRepository
	catalog *service.CatalogService
}

func NewProductHandler(repo *repository.ProductRepository, catalog *service.CatalogService) *ProductHandler {
	return &ProductHandler{repo: repo, catalog: catalog}
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.Products(r.URL.Query().Get("category")))
}

func (h *ProductHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	p, err := h.repo.GetBySlug(mux.Vars(r)["slug"])
	if err != nil {
		writeDomainError(w, r, err, "product")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *ProductHandler) Categories(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.repo.Categories())
}

func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	p, err := h.repo.GetByID(mux.Vars(r)["id"])
	if err != nil {
		writeDomainError(w, r, err, "product")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var p domain.Product
	if !decodeAndValidate(w, r, &p) {
		return
	}

	created, err := h.repo.Create(p)
	if err != nil {
		writeDomainError(w, r, err, "product")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	var p domain.Product
	if !decodeAndValidate(w, r, &p) {
		return
	}
	p.ID = mux.Vars(r)["id"]

	updated, err := h.repo.Update(p)
	if err != nil {
		writeDomainError(w, r, err, "product")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.Delete(mux.Vars(r)["id"]); err != nil {
		writeDomainError(w, r, err, "product")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ProductHandler) UpdateStock(w http.ResponseWriter, r *http.Request) {
	var req domain.StockUpdateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	p, err := h.repo.UpdateStock(mux.Vars(r)["id"], *req.Stock)
	if err != nil {
		writeDomainError(w, r, err, "product")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *ProductHandler) Inventory(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	writeJSON(w, http.StatusOK, h.catalog.Inventory(q.Get("search"), q.Get("sort")))
}

func (h *ProductHandler) Wishlist(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.Wishlist(r.URL.Query().Get("sort")))
}

func (h *ProductHandler) Stats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.Stats())
}

func (h *ProductHandler) CategoryStats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.CategoryBreakdown())
}

func (h *ProductHandler) Reviews(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	writeJSON(w, http.StatusOK, h.catalog.Reviews(q.Get("search"), q.Get("sort")))
}

func (h *ProductHandler) TogglePin(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	rating, err := h.repo.TogglePin(vars["id"], vars["ratingID"])
	if err != nil {
		writeDomainError(w, r, err, "rating")
		return
	}
	writeJSON(w, http.StatusOK, rating)
}

func (h *ProductHandler) DeleteRating(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.repo.DeleteRating(vars["id"], vars["ratingID"]); err != nil {
		writeDomainError(w, r, err, "rating")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
