package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouter(t *testing.T) {
	rt := New(WithRoutes(Route{
		Path:   "/v1/reference/:collection",
		Method: http.MethodGet,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("ok"))
		}),
	}))

	tests := []struct {
		name   string
		method string
		path   string
		status int
		body   string
	}{
		{"rota registrada", http.MethodGet, "/v1/reference/loja", http.StatusOK, "ok"},
		{"rota inexistente", http.MethodGet, "/v1/unknown", http.StatusNotFound, `"code":"VAL_004"`},
		{"método não permitido", http.MethodDelete, "/v1/reference/loja", http.StatusMethodNotAllowed, `"code":"VAL_005"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			rt.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.body)
		})
	}
}
