package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

var Config *ServerConfig

// ServerConfig is a struct that contains configuration values for the server.
type ServerConfig struct {
	// AllowedOrigins is a list of URLs that the server will accept requests from.
	AllowedOrigins []string
	// AllowedEmailDomains is a list of email domains that the server will allow account registrations from. If empty,
	// all domains will be allowed.
	AllowedEmailDomains []string
	// SessionCookieName is the name to use for the session cookie.
	SessionCookieName string
	// SessionCookieExpiration is the amount of time a session cookie is valid. Max 5 days.
	SessionCookieExpiration time.Duration
	// IsHTTPS controls the SameSite/Secure attributes on session cookies.
	IsHTTPS bool
	// FirebaseCredentialsFile is the path to the Firebase service-account credentials.
	FirebaseCredentialsFile string
	// Port is the port the server should run on.
	Port int
}

func DefaultConfig() *ServerConfig {
	return &ServerConfig{
		AllowedOrigins:          []string{"http://localhost:3000"},
		AllowedEmailDomains:     []string{},
		SessionCookieName:       "campushub-session",
		SessionCookieExpiration: time.Hour * 24 * 14,
		IsHTTPS:                 false,
		FirebaseCredentialsFile: "firebase-config.json",
		Port:                    8080,
	}
}

// fromEnv overlays environment variables onto the default configuration.
func fromEnv(c *ServerConfig) *ServerConfig {
	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			log.Panicf("invalid PORT value %q: %v\n", port, err)
		}
		c.Port = p
	}
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		c.AllowedOrigins = strings.Split(origins, ",")
	}
	if domains := os.Getenv("ALLOWED_EMAIL_DOMAINS"); domains != "" {
		c.AllowedEmailDomains = strings.Split(domains, ",")
	}
	if creds := os.Getenv("FIREBASE_CREDENTIALS_FILE"); creds != "" {
		c.FirebaseCredentialsFile = creds
	}
	if https := os.Getenv("IS_HTTPS"); https == "true" {
		c.IsHTTPS = true
	}
	return c
}

func init() {
	Config = fromEnv(DefaultConfig())
}
