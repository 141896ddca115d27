package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"rocketshoes-cart/internal/domain"
	"github.com/gin-gonic/gin"
)

func newCatalogRouter(t *testing.T, products *stubProducts) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router, err := buildRouter(logDiscard(), Deps{
		Products: products,
		Stock:    &stubStock{levels: map[int64]int{1: 3}},
	})
	if err != nil {
		t.Fatalf("build router: %v", err)
	}
	return router
}

func TestCatalogRoutes(t *testing.T) {
	router := newCatalogRouter(t, &stubProducts{items: []domain.Product{
		{ID: 1, Title: "Tênis de Caminhada", Price: 179.9, Image: "i1"},
		{ID: 2, Title: "Tênis VR", Price: 139.9, Image: "i2"},
	}})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", rec.Code)
	}
	var list []domain.Product
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil || len(list) != 2 {
		t.Fatalf("list: unexpected body %s (%v)", rec.Body.String(), err)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products/2", nil))
	var p domain.Product
	if err := json.Unmarshal(rec.Body.Bytes(), &p); err != nil || p.ID != 2 || p.Price != 139.9 {
		t.Fatalf("get: unexpected body %s (%v)", rec.Body.String(), err)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stock/1", nil))
	var s domain.Stock
	if err := json.Unmarshal(rec.Body.Bytes(), &s); err != nil || s.Amount != 3 {
		t.Fatalf("stock: unexpected body %s (%v)", rec.Body.String(), err)
	}
}

func TestCatalogNotFound(t *testing.T) {
	router := newCatalogRouter(t, &stubProducts{})

	for _, path := range []string{"/products/9", "/stock/9", "/products/abc"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusNotFound {
			t.Fatalf("%s: expected 404, got %d", path, rec.Code)
		}
		if rec.Body.String() != "{}" {
			t.Fatalf("%s: expected empty object, got %s", path, rec.Body.String())
		}
	}
}

func TestCatalogRepositoryError(t *testing.T) {
	router := newCatalogRouter(t, &stubProducts{err: errors.New("db down")})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products/1", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}
