package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouter_AddRoutes(t *testing.T) {
	var order []string
	mark := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	rt := New(WithRoutes(Route{
		Path:   "/v1/ping",
		Method: http.MethodGet,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			order = append(order, "handler")
			w.WriteHeader(http.StatusNoContent)
		}),
		Middlewares: []func(http.Handler) http.Handler{mark("first"), mark("second")},
	}))

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, []string{"first", "second", "handler"}, order)
	assert.Equal(t, []string{"GET /v1/ping"}, rt.Routes())
}

func TestRouter_FallbackHandlers(t *testing.T) {
	rt := New(WithRoutes(Route{
		Path:    "/v1/ping",
		Method:  http.MethodPost,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}),
	}))

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantCode   string
	}{
		{name: "rota inexistente", method: http.MethodGet, path: "/v1/unknown", wantStatus: http.StatusNotFound, wantCode: `"code":"VAL_004"`},
		{name: "método não permitido", method: http.MethodGet, path: "/v1/ping", wantStatus: http.StatusMethodNotAllowed, wantCode: `"code":"VAL_005"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			rt.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantCode)
		})
	}
}
