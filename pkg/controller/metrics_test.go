package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"catalog/pkg/controller"

	"github.com/stretchr/testify/require"
)

func TestWithMetrics_PassesThrough(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/stores/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	h := controller.WithMetrics(mux)
	req := httptest.NewRequest(http.MethodGet, "/v1/stores/abc", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}
