package middleware

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"coursecatalog/internal/config"
	"coursecatalog/internal/qerrors"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type contextKey string

const courseIDContextKey contextKey = "courseID"

// CourseCtx stores the "courseID" URL param in the request context. Requests with a blank ID are
// rejected with 400.
func CourseCtx() func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			courseID := chi.URLParam(r, "courseID")
			// chi matches on the escaped path when the request has one.
			if unescaped, err := url.PathUnescape(courseID); err == nil {
				courseID = unescaped
			}
			courseID = strings.TrimSpace(courseID)
			if courseID == "" {
				MissingCourseID(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), courseIDContextKey, courseID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SameOrigin rejects state-changing requests that a browser sent on behalf of another site. A
// request passes
// when its Origin is this host or one of config.Config.AllowedOrigins or, without an Origin, when
// Sec-Fetch-Site is absent, "same-origin" or "none". Clients that send neither header pass.
func SameOrigin() func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				next.ServeHTTP(w, r)
				return
			}

			if !isSameOrigin(r) {
				RenderError(w, r, http.StatusForbidden, qerrors.CrossSiteRequestError)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func isSameOrigin(r *http.Request) bool {
	if origin := r.Header.Get("Origin"); origin != "" {
		parsed, err := url.Parse(origin)
		if err == nil && parsed.Host != "" && strings.EqualFold(parsed.Host, r.Host) {
			return true
		}
		for _, allowed := range config.Config.AllowedOrigins {
			if strings.EqualFold(strings.TrimRight(allowed, "/"), origin) {
				return true
			}
		}
		return false
	}

	switch r.Header.Get("Sec-Fetch-Site") {
	case "", "same-origin", "none":
		return true
	}
	return false
}

// GetCourseID returns the ID stored by CourseCtx, or "" outside it.
func GetCourseID(r *http.Request) string {
	courseID, _ := r.Context().Value(courseIDContextKey).(string)
	return courseID
}

// MissingCourseID responds 400 with the JSON error body.
func MissingCourseID(w http.ResponseWriter, r *http.Request) {
	RenderError(w, r, http.StatusBadRequest, qerrors.MissingCourseID)
}

// ErrorResponse is the JSON body of every API error.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RenderError writes err as {"error": "..."} with the given status.
func RenderError(w http.ResponseWriter, r *http.Request, status int, err error) {
	render.Status(r, status)
	render.JSON(w, r, ErrorResponse{Error: err.Error()})
}
