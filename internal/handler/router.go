package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/yusufkecer/unshakn-backend/internal/metrics"
	"github.com/yusufkecer/unshakn-backend/internal/middleware"
)

type RouterConfig struct {
	Logger         *slog.Logger
	Metrics        *metrics.Metrics
	AllowedOrigins string
	APIKey         string
	JWTSecret      string

	Size    *SizeHandler
	Product *ProductHandler
	Admin   *AdminHandler
	Theme   *ThemeHandler
}

func NewRouter(cfg RouterConfig) *mux.Router {
	loginRL := middleware.NewRateLimiter(5, 15*time.Minute)

	r := mux.NewRouter()

	// Recovery → Trace ID → Observe → CORS → Security Headers → MaxBytesReader
	r.Use(middleware.Recovery)
	r.Use(middleware.TraceID(cfg.Logger))
	r.Use(middleware.Observe(cfg.Metrics))
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))
	r.Use(middleware.SecurityHeaders)
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
			next.ServeHTTP(w, r)
		})
	})

	r.HandleFunc("/api/v1/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet, http.MethodOptions)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.APIKeyMiddleware(cfg.APIKey))

	api.HandleFunc("/products", cfg.Product.List).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/products/{slug}", cfg.Product.GetBySlug).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/categories", cfg.Product.Categories).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/size/estimate", cfg.Size.Estimate).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/size/chart", cfg.Size.Chart).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/theme", cfg.Theme.Get).Methods(http.MethodGet, http.MethodOptions)
	api.Handle("/admin/login", loginRL.Middleware(http.HandlerFunc(cfg.Admin.Login))).Methods(http.MethodPost, http.MethodOptions)

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminMiddleware(cfg.JWTSecret))

	admin.HandleFunc("/stats", cfg.Product.Stats).Methods(http.MethodGet, http.MethodOptions)
	admin.HandleFunc("/stats/categories", cfg.Product.CategoryStats).Methods(http.MethodGet, http.MethodOptions)
	admin.HandleFunc("/products", cfg.Product.List).Methods(http.MethodGet, http.MethodOptions)
	admin.HandleFunc("/products", cfg.Product.Create).Methods(http.MethodPost, http.MethodOptions)
	admin.HandleFunc("/products/{id}", cfg.Product.GetByID).Methods(http.MethodGet, http.MethodOptions)
	admin.HandleFunc("/products/{id}", cfg.Product.Update).Methods(http.MethodPut, http.MethodOptions)
	admin.HandleFunc("/products/{id}", cfg.Product.Delete).Methods(http.MethodDelete, http.MethodOptions)
	admin.HandleFunc("/products/{id}/stock", cfg.Product.UpdateStock).Methods(http.MethodPatch, http.MethodOptions)
	admin.HandleFunc("/products/{id}/ratings/{ratingID}/pin", cfg.Product.TogglePin).Methods(http.MethodPost, http.MethodOptions)
	admin.HandleFunc("/products/{id}/ratings/{ratingID}", cfg.Product.DeleteRating).Methods(http.MethodDelete, http.MethodOptions)
	admin.HandleFunc("/inventory", cfg.Product.Inventory).Methods(http.MethodGet, http.MethodOptions)
	admin.HandleFunc("/wishlist", cfg.Product.Wishlist).Methods(http.MethodGet, http.MethodOptions)
	admin.HandleFunc("/reviews", cfg.Product.Reviews).Methods(http.MethodGet, http.MethodOptions)
	admin.HandleFunc("/theme", cfg.Theme.Update).Methods(http.MethodPut, http.MethodOptions)
	admin.HandleFunc("/size/estimates", cfg.Size.RecentEstimates).Methods(http.MethodGet, http.MethodOptions)

	return r
}
