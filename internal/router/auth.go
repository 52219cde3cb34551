package router

import (
	"encoding/json"
	"net/http"
	"strings"

	"coursecatalog/internal/auth"
	"coursecatalog/internal/config"
	"coursecatalog/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/golang/glog"
)

func AuthRoutes() *chi.Mux {
	router := chi.NewRouter()

	// Information about the current session
	router.With(auth.AuthCtx()).Get("/me", getMeHandler)

	// Alter the current session. No auth middlewares required.
	router.Post("/session", createSessionHandler)
	router.Post("/signout", signOutHandler)

	return router
}

// GET: /me
func getMeHandler(w http.ResponseWriter, r *http.Request) {
	session, err := auth.GetSessionFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	render.JSON(w, r, struct {
		*models.Session
		IsAdmin bool `json:"isAdmin"`
	}{session, auth.IsAdmin(session)})
}

// POST: /session
func createSessionHandler(w http.ResponseWriter, r *http.Request) {
	if auth.SessionResolver == nil {
		http.Error(w, "sign-in is not configured", http.StatusServiceUnavailable)
		return
	}

	var req models.CreateSessionRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil || req.Token == "" {
		http.Error(w, "a token is required", http.StatusBadRequest)
		return
	}

	expiresIn := config.Config.SessionCookieExpiration

	// Create the session cookie. This will also verify the ID token in the process.
	cookie, err := auth.SessionResolver.CreateSessionCookie(r.Context(), req.Token, expiresIn)
	if err != nil {
		glog.Warningf("error creating session cookie: %v", err)
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	setSessionCookie(w, cookie, int(expiresIn.Seconds()))

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("success"))
}

// POST: /signout
func signOutHandler(w http.ResponseWriter, r *http.Request) {
	setSessionCookie(w, "", -1)

	// Form submissions from the navbar ask to be sent back to a page.
	if redirect := r.URL.Query().Get("redirect"); strings.HasPrefix(redirect, "/") && !strings.HasPrefix(redirect, "//") {
		http.Redirect(w, r, redirect, http.StatusSeeOther)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("success"))
}

func setSessionCookie(w http.ResponseWriter, value string, maxAge int) {
	var sameSite http.SameSite
	if config.Config.IsHTTPS {
		sameSite = http.SameSiteNoneMode
	} else {
		sameSite = http.SameSiteLaxMode
	}

	http.SetCookie(w, &http.Cookie{
		Name:     config.Config.SessionCookieName,
		Value:    value,
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: sameSite,
		Secure:   config.Config.IsHTTPS,
		Path:     "/",
	})
}
