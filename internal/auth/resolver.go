package auth

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"coursecatalog/internal/config"
	"coursecatalog/internal/firebase"
	"coursecatalog/internal/models"
	"coursecatalog/internal/qerrors"

	firebaseAuth "firebase.google.com/go/auth"
)

// Resolver turns an incoming request into the signed-in user's session.
type Resolver interface {
	// CurrentSession returns the session carried by r. Requests without a session cookie return
	// qerrors.SessionNotFoundError.
	CurrentSession(r *http.Request) (*models.Session, error)
	// CreateSessionCookie exchanges an identity-provider ID token for a session cookie value.
	CreateSessionCookie(ctx context.Context, idToken string, expiresIn time.Duration) (string, error)
}

// SessionResolver is the resolver used by AuthCtx. A nil resolver treats every request as
// anonymous.
var SessionResolver Resolver

// tokenClient is the subset of the Firebase auth client used for sessions.
type tokenClient interface {
	VerifySessionCookieAndCheckRevoked(ctx context.Context, sessionCookie string) (*firebaseAuth.Token, error)
	SessionCookie(ctx context.Context, idToken string, expiresIn time.Duration) (string, error)
}

type FirebaseResolver struct {
	client tokenClient

	cookieName string
	rolesClaim string
	maxAge     time.Duration
	now        func() time.Time
}

// Initialize sets SessionResolver to a Firebase resolver, initializing the Firebase app from
// cfg.FirebaseCredentials if no other component has done so yet.
func Initialize(ctx context.Context, cfg *config.ServerConfig) error {
	if firebase.App == nil {
		if err := firebase.Initialize(ctx, cfg.FirebaseCredentials); err != nil {
			return err
		}
	}

	resolver, err := NewFirebaseResolver(ctx, cfg)
	if err != nil {
		return err
	}

	SessionResolver = resolver
	return nil
}

// NewFirebaseResolver creates a resolver from the initialized Firebase app.
func NewFirebaseResolver(ctx context.Context, cfg *config.ServerConfig) (*FirebaseResolver, error) {
	authClient, err := firebase.App.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("Auth client error: %v", err)
	}

	return newFirebaseResolver(authClient, cfg), nil
}

func newFirebaseResolver(client tokenClient, cfg *config.ServerConfig) *FirebaseResolver {
	return &FirebaseResolver{
		client:     client,
		cookieName: cfg.SessionCookieName,
		rolesClaim: cfg.RolesClaim,
		maxAge:     cfg.SessionMaxAge,
		now:        time.Now,
	}
}

func (fr *FirebaseResolver) CurrentSession(r *http.Request) (*models.Session, error) {
	cookie, err := r.Cookie(fr.cookieName)
	if err != nil || cookie.Value == "" {
		return nil, qerrors.SessionNotFoundError
	}

	// Verify the session cookie. In this case an additional check is added to detect
	// if the user's Firebase session was revoked, user deleted/disabled, etc.
	token, err := fr.client.VerifySessionCookieAndCheckRevoked(r.Context(), cookie.Value)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", qerrors.InvalidSessionError, err)
	}

	session := fr.sessionFromToken(token)
	if fr.maxAge > 0 && fr.now().Sub(session.AuthTime) > fr.maxAge {
		return nil, qerrors.SessionExpiredError
	}

	return session, nil
}

func (fr *FirebaseResolver) CreateSessionCookie(ctx context.Context, idToken string, expiresIn time.Duration) (string, error) {
	// The session cookie will have the same claims as the ID token.
	return fr.client.SessionCookie(ctx, idToken, expiresIn)
}

func (fr *FirebaseResolver) sessionFromToken(token *firebaseAuth.Token) *models.Session {
	session := &models.Session{
		UserID:    token.UID,
		Email:     stringClaim(token.Claims, "email"),
		Roles:     rolesClaim(token.Claims[fr.rolesClaim]),
		AuthTime:  time.Unix(token.AuthTime, 0),
		ExpiresAt: time.Unix(token.Expires, 0),
	}

	session.DisplayName = stringClaim(token.Claims, "name")
	if session.DisplayName == "" {
		session.DisplayName = session.Email
	}

	return session
}

func stringClaim(claims map[string]interface{}, name string) string {
	if v, ok := claims[name].(string); ok {
		return v
	}
	return ""
}

// rolesClaim accepts either a list of role names or a single role string.
func rolesClaim(v interface{}) []string {
	roles := make([]string, 0)
	switch claim := v.(type) {
	case string:
		if claim != "" {
			roles = append(roles, claim)
		}
	case []string:
		roles = append(roles, claim...)
	case []interface{}:
		for _, role := range claim {
			if s, ok := role.(string); ok {
				roles = append(roles, s)
			}
		}
	}
	return roles
}

// IsAdmin reports whether session holds the configured admin role. Anonymous sessions are never
// admins.
func IsAdmin(session *models.Session) bool {
	return session.HasRole(config.Config.AdminRole)
}
