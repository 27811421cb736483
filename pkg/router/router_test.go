package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoParam(key string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(Param(r, key))) //nolint:errcheck
	}
}

func TestNamedRoutesAndParams(t *testing.T) {
	r := New()
	g := r.Group("/api")
	g.Get("/products/{id}", "products.show", echoParam("id"))

	req := httptest.NewRequest(http.MethodGet, "/api/products/42", nil)
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "42", rec.Body.String())

	path, ok := r.Path("products.show")
	require.True(t, ok)
	assert.Equal(t, "/api/products/{id}", path)

	url, err := r.URL("products.show", map[string]string{"id": "42"})
	require.NoError(t, err)
	assert.Equal(t, "/api/products/42", url)
}

func TestURLMissingParams(t *testing.T) {
	r := New()
	r.Get("/products/{id}", "products.show", echoParam("id"))

	_, err := r.URL("products.show", nil)
	assert.Error(t, err)

	_, err = r.URL("no.such.route", nil)
	assert.Error(t, err)
}

func TestGroupMiddlewareApplies(t *testing.T) {
	r := New()

	stamp := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("X-Stamp", "yes")
			next.ServeHTTP(w, req)
		})
	}

	g := r.Group("/api", stamp)
	g.Get("/ping", "ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	r.Get("/bare", "bare", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)
	assert.Equal(t, "yes", rec.Header().Get("X-Stamp"))

	req = httptest.NewRequest(http.MethodGet, "/bare", nil)
	rec = httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("X-Stamp"))
}

func TestMethodRouting(t *testing.T) {
	r := New()
	g := r.Group("/api")
	ok := func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) }
	g.Put("/x", "x.put", ok)
	g.Patch("/x", "x.patch", ok)
	g.Delete("/x", "x.delete", ok)

	for _, method := range []string{http.MethodPut, http.MethodPatch, http.MethodDelete} {
		req := httptest.NewRequest(method, "/api/x", nil)
		rec := httptest.NewRecorder()
		r.Handler().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code, method)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/x", nil)
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
