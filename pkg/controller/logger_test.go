package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"catalog/pkg/controller"

	"github.com/stretchr/testify/require"
)

func TestWithLogger_InjectsRequestID(t *testing.T) {
	t.Parallel()

	var seen string
	h := controller.WithLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = r.Context().Value(controller.RequestIDKey).(string)
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/stores", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.NotEmpty(t, seen, "request ID should be generated when absent")
}

func TestWithLogger_KeepsProvidedRequestID(t *testing.T) {
	t.Parallel()

	var seen string
	h := controller.WithLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = r.Context().Value(controller.RequestIDKey).(string)
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/stores", nil)
	req.Header.Set("X-Request-Id", "req-42")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, "req-42", seen)
}

func TestGetClientIP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		setup func(r *http.Request)
		want  string
	}{
		{
			name:  "x-forwarded-for single",
			setup: func(r *http.Request) { r.Header.Set("X-Forwarded-For", "10.0.0.1") },
			want:  "10.0.0.1",
		},
		{
			name:  "x-forwarded-for chain picks first",
			setup: func(r *http.Request) { r.Header.Set("X-Forwarded-For", "10.0.0.1, 172.16.0.1") },
			want:  "10.0.0.1",
		},
		{
			name:  "x-real-ip",
			setup: func(r *http.Request) { r.Header.Set("X-Real-IP", "10.0.0.2") },
			want:  "10.0.0.2",
		},
		{
			name:  "remote addr fallback",
			setup: func(r *http.Request) { r.RemoteAddr = "192.0.2.7:1234" },
			want:  "192.0.2.7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			tt.setup(req)
			require.Equal(t, tt.want, controller.GetClientIP(req))
		})
	}
}
