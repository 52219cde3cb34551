package auth

import (
	"context"
	"errors"
	"net/http"

	"coursecatalog/internal/models"
	"coursecatalog/internal/qerrors"

	"github.com/golang/glog"
)

type contextKey string

const sessionContextKey contextKey = "currentSession"

// AuthCtx attaches the current session, if any, to the request context. Requests without a valid
// session continue anonymously; use RequireAdmin to reject them.
func AuthCtx() func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if SessionResolver == nil {
				next.ServeHTTP(w, r)
				return
			}

			session, err := SessionResolver.CurrentSession(r)
			if err != nil {
				if !errors.Is(err, qerrors.SessionNotFoundError) {
					glog.V(1).Infof("ignoring session: %v", err)
				}
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session)))
		})
	}
}

// RequireAdmin rejects requests without a session (401) or whose session lacks the admin role
// (403). Only works on routes that use AuthCtx.
func RequireAdmin() func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := GetSessionFromRequest(r)
			if err != nil {
				rejectUnauthorizedRequest(w)
				return
			}

			if !IsAdmin(session) {
				rejectForbiddenRequest(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// GetSessionFromRequest returns the Session stored by AuthCtx.
func GetSessionFromRequest(r *http.Request) (*models.Session, error) {
	session, ok := r.Context().Value(sessionContextKey).(*models.Session)
	if !ok || session == nil {
		return nil, qerrors.SessionNotFoundError
	}

	return session, nil
}

// WithSession returns a copy of ctx carrying session.
func WithSession(ctx context.Context, session *models.Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, session)
}

// Helpers

func rejectUnauthorizedRequest(w http.ResponseWriter) {
	http.Error(w, "You must be authenticated to access this resource", http.StatusUnauthorized)
}

func rejectForbiddenRequest(w http.ResponseWriter) {
	http.Error(w, "You do not have permission to access this resource", http.StatusForbidden)
}
