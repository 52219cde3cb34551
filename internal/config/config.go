package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

var Config *ServerConfig

// Backend names accepted by ServerConfig.Backend.
const (
	BackendFirestore = "firestore"
	BackendSQLite    = "sqlite"
)

// ServerConfig is a struct that contains configuration values for the server.
type ServerConfig struct {
	// AllowedOrigins is a list of URLs that the server will accept requests from.
	AllowedOrigins []string
	// SessionCookieName is the name to use for the session cookie.
	SessionCookieName string
	// SessionCookieExpiration is the amount of time a session cookie is valid. Max 14 days.
	SessionCookieExpiration time.Duration
	// SessionMaxAge is how long after sign-in a session is honored, regardless of the cookie's own
	// expiry. Zero disables the check.
	SessionMaxAge time.Duration
	// IsHTTPS controls the Secure and SameSite attributes of the session cookie.
	IsHTTPS bool
	// Port is the port the server should run on.
	Port int

	// Backend selects the course repository: "firestore" or "sqlite".
	Backend string
	// FirebaseCredentials is the path to the Firebase service account file.
	FirebaseCredentials string
	// SQLitePath is the database file used by the sqlite backend.
	SQLitePath string

	// PageSize is the number of courses per catalog page.
	PageSize int
	// AdminRole is the role that grants course management, matched case-insensitively.
	AdminRole string
	// RolesClaim is the custom token claim holding the user's roles.
	RolesClaim string
	// DefaultCourseImage is used for courses created without an image.
	DefaultCourseImage string
	// LoginURL is where the navbar's login link points.
	LoginURL string
}

func DefaultConfig() *ServerConfig {
	return &ServerConfig{
		AllowedOrigins:          []string{"http://localhost:3000"},
		SessionCookieName:       "coursecatalog-session",
		SessionCookieExpiration: time.Hour * 24 * 5,
		SessionMaxAge:           time.Minute * 30,
		IsHTTPS:                 false,
		Port:                    8080,
		Backend:                 BackendSQLite,
		FirebaseCredentials:     "firebase-config.json",
		SQLitePath:              "./data/courses.db",
		PageSize:                3,
		AdminRole:               "admin",
		RolesClaim:              "roles",
		DefaultCourseImage:      "https://images.pexels.com/photos/1181263/pexels-photo-1181263.jpeg?auto=compress&cs=tinysrgb&w=800",
		LoginURL:                "/login",
	}
}

// Load returns the default configuration overridden by environment variables.
func Load() *ServerConfig {
	def := DefaultConfig()

	return &ServerConfig{
		AllowedOrigins:          getenvList("ALLOWED_ORIGINS", def.AllowedOrigins),
		SessionCookieName:       getenv("SESSION_COOKIE_NAME", def.SessionCookieName),
		SessionCookieExpiration: getenvDuration("SESSION_COOKIE_EXPIRATION", def.SessionCookieExpiration),
		SessionMaxAge:           getenvDuration("SESSION_MAX_AGE", def.SessionMaxAge),
		IsHTTPS:                 getenvBool("IS_HTTPS", def.IsHTTPS),
		Port:                    getenvInt("PORT", def.Port),
		Backend:                 getenv("BACKEND", def.Backend),
		FirebaseCredentials:     getenv("FIREBASE_CREDENTIALS", def.FirebaseCredentials),
		SQLitePath:              getenv("SQLITE_PATH", def.SQLitePath),
		PageSize:                getenvInt("PAGE_SIZE", def.PageSize),
		AdminRole:               getenv("ADMIN_ROLE", def.AdminRole),
		RolesClaim:              getenv("ROLES_CLAIM", def.RolesClaim),
		DefaultCourseImage:      getenv("DEFAULT_COURSE_IMAGE", def.DefaultCourseImage),
		LoginURL:                getenv("LOGIN_URL", def.LoginURL),
	}
}

func init() {
	Config = DefaultConfig()
}

func getenv(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func getenvInt(k string, def int) int {
	v, err := strconv.Atoi(os.Getenv(k))
	if err != nil {
		return def
	}
	return v
}

func getenvBool(k string, def bool) bool {
	v, err := strconv.ParseBool(os.Getenv(k))
	if err != nil {
		return def
	}
	return v
}

func getenvDuration(k string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(k))
	if err != nil {
		return def
	}
	return v
}

func getenvList(k string, def []string) []string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}

	var list []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}
	return list
}
