// Package httpapi serves a product list over the same REST shape the client reads,
// so the storefront can run against a local catalog.
package httpapi

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/dwikikusuma/storefront/internal/catalog/domain"
)

// Handler is the HTTP layer over a fixed product list.
type Handler struct {
	products []domain.Product
	log      *slog.Logger
}

func NewHandler(products []domain.Product, log *slog.Logger) *Handler {
	return &Handler{products: products, log: log}
}

// LoadProducts decodes a JSON product array and rejects duplicate or missing ids.
func LoadProducts(r io.Reader) ([]domain.Product, error) {
	var products []domain.Product
	if err := json.NewDecoder(r).Decode(&products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}

	seen := make(map[int]struct{}, len(products))
	for i, p := range products {
		if p.ID <= 0 {
			return nil, fmt.Errorf("product %d: id must be positive", i)
		}
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("product %d: duplicate id %d", i, p.ID)
		}
		if p.Price < 0 {
			return nil, fmt.Errorf("product %d: price must be >= 0", p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	return products, nil
}

// RegisterRoutes registers all routes on the provided router
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	r.HandleFunc("/products", h.ListProducts).Methods(http.MethodGet)
	r.HandleFunc("/products/categories", h.ListCategories).Methods(http.MethodGet)
	r.HandleFunc("/products/category/{category}", h.ListByCategory).Methods(http.MethodGet)
	r.HandleFunc("/products/{id:[0-9]+}", h.GetProduct).Methods(http.MethodGet)
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

// ListProducts handles GET /products?limit=N&sort=asc|desc
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	out, err := shape(h.products, r)
	if err != nil {
		writeErr(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// ListByCategory handles GET /products/category/{category}
func (h *Handler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	category := mux.Vars(r)["category"]

	filtered := make([]domain.Product, 0)
	for _, p := range h.products {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}

	out, err := shape(filtered, r)
	if err != nil {
		writeErr(w, http.StatusBadRequest, err.Error())
		return
	}
	h.log.Debug("category listed", slog.String("category", category), slog.Int("count", len(out)))
	writeJSON(w, http.StatusOK, out)
}

// ListCategories handles GET /products/categories
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	seen := map[string]struct{}{}
	out := make([]string, 0)
	for _, p := range h.products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	writeJSON(w, http.StatusOK, out)
}

// GetProduct handles GET /products/{id}
func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeErr(w, http.StatusBadRequest, "invalid id")
		return
	}
	for _, p := range h.products {
		if p.ID == id {
			writeJSON(w, http.StatusOK, p)
			return
		}
	}
	writeErr(w, http.StatusNotFound, "product not found")
}

func shape(in []domain.Product, r *http.Request) ([]domain.Product, error) {
	out := make([]domain.Product, len(in))
	copy(out, in)

	switch r.URL.Query().Get("sort") {
	case "", "asc":
	case "desc":
		sort.SliceStable(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	default:
		return nil, fmt.Errorf("sort must be asc or desc")
	}

	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("limit must be a non-negative integer")
		}
		if n < len(out) {
			out = out[:n]
		}
	}
	return out, nil
}
