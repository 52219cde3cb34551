package models

import (
	"strings"
	"time"
)

// Session is the identity attached to a request by the session resolver.
type Session struct {
	UserID      string    `json:"id"`
	DisplayName string    `json:"displayName"`
	Email       string    `json:"email,omitempty"`
	Roles       []string  `json:"roles"`
	AuthTime    time.Time `json:"authTime"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// HasRole reports whether the session holds role, ignoring case.
func (s *Session) HasRole(role string) bool {
	if s == nil {
		return false
	}
	for _, r := range s.Roles {
		if strings.EqualFold(r, role) {
			return true
		}
	}
	return false
}

// CreateSessionRequest is the body of POST /auth/session.
type CreateSessionRequest struct {
	Token string `json:"token"`
}
