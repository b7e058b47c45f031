package config

import (
	"log"
	"strings"
	"time"

	"github.com/SscSPs/freelanceos/internal/core/domain"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store drivers.
const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

// Config holds application configuration.
type Config struct {
	Port           string
	IsProduction   bool
	DatabaseURL    string
	StoreDriver    string
	MigrationsPath string

	// Hosted backend
	SupabaseURL         string
	ServiceRoleKey      string
	SupabaseJWTSecret   string
	ResetFunctionPath   string
	ResetRequestTimeout time.Duration

	// Reset orchestration
	AdminAPIKey           string
	CronSecret            string
	ResetEnabled          bool
	ResetInterval         domain.ResetInterval
	ResetNotifyUsers      bool
	ResetLocation         *time.Location
	ResetSchedulerEnabled bool
	DemoUserEmail         string

	// HTTP surface
	CORSAllowedOrigins []string
	AdminRateLimit     string

	// Product analytics
	PosthogAPIKey   string
	PosthogEndpoint string
}

// HasSupabaseURL reports whether the store endpoint is configured.
func (c *Config) HasSupabaseURL() bool { return c.SupabaseURL != "" }

// HasServiceRoleKey reports whether the service credential is configured.
func (c *Config) HasServiceRoleKey() bool { return c.ServiceRoleKey != "" }

// Environment names the deployment for status reports.
func (c *Config) Environment() string {
	if c.IsProduction {
		return "production"
	}
	return "development"
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()
	return loadFrom(viper.New())
}

func loadFrom(v *viper.Viper) (*Config, error) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("STORE_DRIVER", StoreDriverPostgres)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("SUPABASE_URL", "")
	v.SetDefault("VITE_SUPABASE_URL", "")
	v.SetDefault("SUPABASE_SERVICE_ROLE_KEY", "")
	v.SetDefault("SUPABASE_JWT_SECRET", "")
	v.SetDefault("RESET_FUNCTION_PATH", "/functions/v1/database-reset")
	v.SetDefault("RESET_REQUEST_TIMEOUT", "30s")
	v.SetDefault("ADMIN_API_KEY", "")
	v.SetDefault("CRON_SECRET", "")
	v.SetDefault("RESET_ENABLED", "")
	v.SetDefault("VITE_RESET_ENABLED", false)
	v.SetDefault("RESET_INTERVAL", "")
	v.SetDefault("VITE_RESET_INTERVAL", string(domain.IntervalDaily))
	v.SetDefault("RESET_NOTIFY_USERS", true)
	v.SetDefault("RESET_TIMEZONE", "UTC")
	v.SetDefault("RESET_SCHEDULER_ENABLED", false)
	v.SetDefault("DEMO_USER_EMAIL", "user@demo.com")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("RATE_LIMIT_ADMIN", "20-M")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("POSTHOG_ENDPOINT", "https://eu.i.posthog.com")

	v.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = v.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	cfg.IsProduction = v.GetBool("IS_PRODUCTION")

	cfg.StoreDriver = strings.ToLower(v.GetString("STORE_DRIVER"))
	if cfg.StoreDriver != StoreDriverPostgres && cfg.StoreDriver != StoreDriverMemory {
		log.Printf("Warning: Invalid value for STORE_DRIVER ('%s'). Defaulting to %s.\n", cfg.StoreDriver, StoreDriverPostgres)
		cfg.StoreDriver = StoreDriverPostgres
	}
	cfg.DatabaseURL = v.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" && cfg.StoreDriver == StoreDriverPostgres {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	cfg.MigrationsPath = v.GetString("MIGRATIONS_PATH")

	// The browser build only knows the VITE_ prefixed names, so those act as fallbacks.
	cfg.SupabaseURL = strings.TrimRight(firstNonEmpty(v.GetString("SUPABASE_URL"), v.GetString("VITE_SUPABASE_URL")), "/")
	cfg.ServiceRoleKey = v.GetString("SUPABASE_SERVICE_ROLE_KEY")
	cfg.SupabaseJWTSecret = v.GetString("SUPABASE_JWT_SECRET")
	if cfg.SupabaseJWTSecret == "" {
		log.Println("Warning: SUPABASE_JWT_SECRET not set. Project API requests will be rejected.")
	}
	cfg.ResetFunctionPath = v.GetString("RESET_FUNCTION_PATH")

	timeoutStr := v.GetString("RESET_REQUEST_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil || timeout <= 0 {
		timeout = 30 * time.Second
		log.Printf("Warning: Invalid value for RESET_REQUEST_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout)
	}
	cfg.ResetRequestTimeout = timeout

	cfg.AdminAPIKey = v.GetString("ADMIN_API_KEY")
	cfg.CronSecret = v.GetString("CRON_SECRET")
	if cfg.CronSecret == "" {
		if cfg.IsProduction {
			log.Println("Warning: CRON_SECRET not set. The cron trigger will reject every request.")
		} else {
			log.Println("Warning: CRON_SECRET not set. The cron trigger accepts unauthenticated requests.")
		}
	}

	if raw := v.GetString("RESET_ENABLED"); raw != "" {
		cfg.ResetEnabled = v.GetBool("RESET_ENABLED")
	} else {
		cfg.ResetEnabled = v.GetBool("VITE_RESET_ENABLED")
	}

	intervalStr := firstNonEmpty(v.GetString("RESET_INTERVAL"), v.GetString("VITE_RESET_INTERVAL"))
	interval, err := domain.ParseResetInterval(intervalStr)
	if err != nil {
		interval = domain.IntervalDaily
		log.Printf("Warning: %v. Defaulting to %s.\n", err, interval)
	}
	cfg.ResetInterval = interval

	cfg.ResetNotifyUsers = v.GetBool("RESET_NOTIFY_USERS")

	tz := v.GetString("RESET_TIMEZONE")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		loc = time.UTC
		log.Printf("Warning: Invalid value for RESET_TIMEZONE ('%s'). Defaulting to UTC.\n", tz)
	}
	cfg.ResetLocation = loc

	cfg.ResetSchedulerEnabled = v.GetBool("RESET_SCHEDULER_ENABLED")
	cfg.DemoUserEmail = v.GetString("DEMO_USER_EMAIL")

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}
	cfg.AdminRateLimit = v.GetString("RATE_LIMIT_ADMIN")

	cfg.PosthogAPIKey = v.GetString("POSTHOG_API_KEY")
	cfg.PosthogEndpoint = v.GetString("POSTHOG_ENDPOINT")

	return cfg, nil
}

func firstNonEmpty(values ...string) string {
	for _, s := range values {
		if s != "" {
			return s
		}
	}
	return ""
}
