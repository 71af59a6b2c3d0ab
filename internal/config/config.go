package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultTokenURL is the production OAuth token endpoint.
	DefaultTokenURL = "https://api.canoesoftware.com/oauth/token"
	// DefaultAPIBaseURL is the production API root all data requests hang off.
	DefaultAPIBaseURL = "https://api.canoesoftware.com/v1"

	// DefaultDateAfter is the cutoff used when DATE_AFTER is unset: effectively
	// "everything", since no capital activity predates it.
	DefaultDateAfter = "2000-01-01"

	// DateLayout is the strict activity-date format used throughout.
	DateLayout = "2006-01-02"
)

// Config holds everything a run needs, loaded once at startup and passed
// through explicitly. Nothing here is mutated after Load returns.
type Config struct {
	ClientID     string
	ClientSecret string
	OrgName      string
	DateAfter    time.Time

	TokenURL   string
	APIBaseURL string
}

// Load reads configuration from the environment. A .env file in the working
// directory is folded in first when present; real environment variables win.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		ClientID:     os.Getenv("CLIENT_ID"),
		ClientSecret: os.Getenv("CLIENT_SECRET"),
		OrgName:      os.Getenv("ORG_NAME"),
		TokenURL:     getEnv("CANOE_TOKEN_URL", DefaultTokenURL),
		APIBaseURL:   getEnv("CANOE_API_URL", DefaultAPIBaseURL),
	}

	dateAfter := getEnv("DATE_AFTER", DefaultDateAfter)
	t, err := time.Parse(DateLayout, dateAfter)
	if err != nil {
		return Config{}, fmt.Errorf("invalid DATE_AFTER value %q (expected YYYY-MM-DD)", dateAfter)
	}
	cfg.DateAfter = t

	return cfg, nil
}

// Validate checks that the identity material is set. The target organization
// is checked separately, since listing commands work without one.
func (c Config) Validate() error {
	if c.ClientID == "" {
		return fmt.Errorf("CLIENT_ID is not set")
	}
	if c.ClientSecret == "" {
		return fmt.Errorf("CLIENT_SECRET is not set")
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
