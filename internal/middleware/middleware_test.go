package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"coursecatalog/internal/config"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func TestCourseCtx(t *testing.T) {
	router := chi.NewRouter()
	router.With(CourseCtx()).Delete("/delete/{courseID}", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(GetCourseID(r)))
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/delete/1700000000000-abc123xyz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1700000000000-abc123xyz", rec.Body.String())

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/delete/%20", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"missing course ID"}`, rec.Body.String())
}

func TestGetCourseIDOutsideCtx(t *testing.T) {
	assert.Equal(t, "", GetCourseID(httptest.NewRequest(http.MethodGet, "/", nil)))
}

func TestRenderError(t *testing.T) {
	rec := httptest.NewRecorder()
	RenderError(rec, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusInternalServerError, errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"boom"}`, rec.Body.String())
}

func TestCourseCtxUnescapesID(t *testing.T) {
	router := chi.NewRouter()
	router.With(CourseCtx()).Post("/courses/{courseID}/delete", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(GetCourseID(r)))
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/courses/legacy%2F42%3Fx/delete", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "legacy/42?x", rec.Body.String())
}

func TestSameOrigin(t *testing.T) {
	previous := config.Config
	config.Config = config.DefaultConfig()
	config.Config.AllowedOrigins = []string{"https://app.example.org/"}
	t.Cleanup(func() { config.Config = previous })

	handler := SameOrigin()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	tests := []struct {
		name     string
		method   string
		headers  map[string]string
		expected int
	}{
		{"no browser headers", http.MethodPost, nil, http.StatusNoContent},
		{"same host origin", http.MethodPost, map[string]string{"Origin": "http://example.com"}, http.StatusNoContent},
		{"allowed origin", http.MethodPost, map[string]string{"Origin": "https://app.example.org", "Sec-Fetch-Site": "cross-site"}, http.StatusNoContent},
		{"same-origin fetch", http.MethodDelete, map[string]string{"Sec-Fetch-Site": "same-origin"}, http.StatusNoContent},
		{"foreign origin", http.MethodPost, map[string]string{"Origin": "https://evil.example", "Sec-Fetch-Site": "cross-site"}, http.StatusForbidden},
		{"null origin", http.MethodPost, map[string]string{"Origin": "null"}, http.StatusForbidden},
		{"cross-site without origin", http.MethodDelete, map[string]string{"Sec-Fetch-Site": "cross-site"}, http.StatusForbidden},
		{"same-site subdomain", http.MethodPost, map[string]string{"Sec-Fetch-Site": "same-site"}, http.StatusForbidden},
		{"safe method", http.MethodGet, map[string]string{"Origin": "https://evil.example"}, http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/courses", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			assert.Equal(t, tt.expected, rec.Code)
			if tt.expected == http.StatusForbidden {
				assert.JSONEq(t, `{"error":"cross-site request rejected"}`, rec.Body.String())
			}
		})
	}
}
