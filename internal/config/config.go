package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Buckets struct {
	ProjectImages string
	BlogImages    string
	Works         string
	Testimonials  string
}

// All returns every recognized bucket name.
func (b Buckets) All() []string {
	return []string{b.ProjectImages, b.BlogImages, b.Works, b.Testimonials}
}

func (b Buckets) Has(name string) bool {
	for _, bucket := range b.All() {
		if bucket == name {
			return true
		}
	}
	return false
}

type Config struct {
	// Supabase
	SupabaseURL            string
	SupabasePublishableKey string
	SupabaseServiceRoleKey string
	SupabaseJWTSecret      string

	// Storage
	Buckets       Buckets
	MaxUploadSize int64

	// Rendering layer revalidation
	RevalidateURL     string
	RevalidateSecret  string
	RevalidateTimeout time.Duration

	// Authorization
	AdminRoles []string

	// Database
	DatabaseURL string

	// Server
	Port        string
	Environment string
	BaseURL     string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: failed to read .env file: %v", err)
	}

	cfg := &Config{
		SupabaseURL:            strings.TrimRight(getEnv("SUPABASE_URL", ""), "/"),
		SupabasePublishableKey: getEnv("SUPABASE_PUBLISHABLE_KEY", ""),
		SupabaseServiceRoleKey: getEnv("SUPABASE_SERVICE_ROLE_KEY", ""),
		SupabaseJWTSecret:      getEnv("SUPABASE_JWT_SECRET", ""),

		Buckets: Buckets{
			ProjectImages: getEnv("BUCKET_PROJECT_IMAGES", "project-images"),
			BlogImages:    getEnv("BUCKET_BLOG_IMAGES", "blog-images"),
			Works:         getEnv("BUCKET_WORKS", "works"),
			Testimonials:  getEnv("BUCKET_TESTIMONIALS", "testimonials"),
		},
		MaxUploadSize: getEnvInt64("MAX_UPLOAD_SIZE", 50<<20),

		RevalidateURL:     getEnv("REVALIDATE_URL", ""),
		RevalidateSecret:  getEnv("REVALIDATE_SECRET", ""),
		RevalidateTimeout: getEnvDuration("REVALIDATE_TIMEOUT", 2*time.Second),

		AdminRoles: splitList(getEnv("ADMIN_ROLES", "")),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:8080"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.SupabaseURL == "" {
		return fmt.Errorf("SUPABASE_URL is required")
	}
	if c.SupabasePublishableKey == "" {
		return fmt.Errorf("SUPABASE_PUBLISHABLE_KEY is required")
	}
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.MaxUploadSize <= 0 {
		return fmt.Errorf("MAX_UPLOAD_SIZE must be positive")
	}
	if c.RevalidateURL != "" && c.RevalidateSecret == "" {
		return fmt.Errorf("REVALIDATE_SECRET is required when REVALIDATE_URL is set")
	}
	return nil
}

// StorageKey is the key used for storage writes and deletes. The service
// role key bypasses bucket policies; without it the publishable key is used.
func (c *Config) StorageKey() string {
	if c.SupabaseServiceRoleKey != "" {
		return c.SupabaseServiceRoleKey
	}
	return c.SupabasePublishableKey
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			return n
		}
		log.Printf("Warning: invalid %s=%q, using %d", key, value, defaultValue)
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil && d > 0 {
			return d
		}
		log.Printf("Warning: invalid %s=%q, using %s", key, value, defaultValue)
	}
	return defaultValue
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
