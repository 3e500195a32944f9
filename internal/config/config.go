package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultAllowedExtensions are the image types accepted by the upload form.
var DefaultAllowedExtensions = []string{"png", "jpg", "jpeg", "gif", "webp"}

// Config holds all configuration for the application.
type Config struct {
	// Server configuration
	ServerPort      string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	Debug           bool

	// Admin credentials and session signing
	AdminUsername     string
	AdminPassword     string
	AdminPasswordHash string
	SecretKey         string
	SecureCookies     bool

	// Upload configuration
	MaxContentLength  int64
	AllowedExtensions []string

	// Content documents
	ContentDir   string
	PostsFile    string
	ProjectsFile string
	PricingFile  string

	// Frontend
	StaticDir   string
	UploadDir   string
	TemplateDir string

	// Optional S3 image storage, used when S3Bucket is set
	S3Bucket          string
	S3Region          string
	S3Endpoint        string
	S3AccessKeyID     string
	S3SecretAccessKey string
	S3PublicURL       string

	// Logging configuration
	LogLevel  string
	LogFormat string
}

// Options controls where Load looks for configuration.
type Options struct {
	// ConfigFile is an explicit YAML file; empty means ./config.yaml if present.
	ConfigFile string
	// EnvFile is loaded into the environment first; missing files are ignored.
	EnvFile string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	return LoadWithOptions(Options{EnvFile: ".env"})
}

// LoadWithOptions loads configuration from an optional .env file, an optional
// YAML file and the environment, in increasing order of precedence.
func LoadWithOptions(opts Options) (*Config, error) {
	if opts.EnvFile != "" {
		_ = godotenv.Load(opts.EnvFile)
	}

	v := viper.New()
	setDefaults(v)

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || opts.ConfigFile != "" {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	contentDir := v.GetString("CONTENT_DIR")
	staticDir := v.GetString("STATIC_DIR")

	cfg := &Config{
		ServerPort:        v.GetString("SERVER_PORT"),
		ReadTimeout:       v.GetDuration("HTTP_READ_TIMEOUT"),
		WriteTimeout:      v.GetDuration("HTTP_WRITE_TIMEOUT"),
		IdleTimeout:       v.GetDuration("HTTP_IDLE_TIMEOUT"),
		ShutdownTimeout:   v.GetDuration("SHUTDOWN_TIMEOUT"),
		Debug:             v.GetBool("DEBUG"),
		AdminUsername:     v.GetString("BLOG_ADMIN_USERNAME"),
		AdminPassword:     v.GetString("BLOG_ADMIN_PASSWORD"),
		AdminPasswordHash: v.GetString("BLOG_ADMIN_PASSWORD_HASH"),
		SecretKey:         v.GetString("SECRET_KEY"),
		SecureCookies:     v.GetBool("SECURE_COOKIES"),
		MaxContentLength:  v.GetInt64("MAX_CONTENT_LENGTH"),
		AllowedExtensions: parseList(v.GetString("ALLOWED_EXTENSIONS")),
		ContentDir:        contentDir,
		PostsFile:         orDefault(v.GetString("POSTS_FILE"), filepath.Join(contentDir, "posts.json")),
		ProjectsFile:      orDefault(v.GetString("PROJECTS_FILE"), filepath.Join(contentDir, "projects.json")),
		PricingFile:       orDefault(v.GetString("PRICING_FILE"), filepath.Join(contentDir, "pricing.json")),
		StaticDir:         staticDir,
		UploadDir:         orDefault(v.GetString("UPLOAD_DIR"), filepath.Join(staticDir, "uploads")),
		TemplateDir:       v.GetString("TEMPLATE_DIR"),
		S3Bucket:          v.GetString("S3_BUCKET"),
		S3Region:          v.GetString("S3_REGION"),
		S3Endpoint:        v.GetString("S3_ENDPOINT"),
		S3AccessKeyID:     v.GetString("S3_ACCESS_KEY_ID"),
		S3SecretAccessKey: v.GetString("S3_SECRET_ACCESS_KEY"),
		S3PublicURL:       v.GetString("S3_PUBLIC_URL"),
		LogLevel:          v.GetString("LOG_LEVEL"),
		LogFormat:         v.GetString("LOG_FORMAT"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("HTTP_READ_TIMEOUT", 30*time.Second)
	v.SetDefault("HTTP_WRITE_TIMEOUT", 30*time.Second)
	v.SetDefault("HTTP_IDLE_TIMEOUT", 120*time.Second)
	v.SetDefault("SHUTDOWN_TIMEOUT", 5*time.Second)
	v.SetDefault("DEBUG", false)
	v.SetDefault("BLOG_ADMIN_USERNAME", "admin")
	v.SetDefault("BLOG_ADMIN_PASSWORD", "your-secure-password-here")
	v.SetDefault("BLOG_ADMIN_PASSWORD_HASH", "")
	v.SetDefault("SECRET_KEY", "your-secret-key-here")
	v.SetDefault("SECURE_COOKIES", false)
	v.SetDefault("MAX_CONTENT_LENGTH", 16*1024*1024)
	v.SetDefault("ALLOWED_EXTENSIONS", strings.Join(DefaultAllowedExtensions, ","))
	v.SetDefault("CONTENT_DIR", "content")
	v.SetDefault("POSTS_FILE", "")
	v.SetDefault("PROJECTS_FILE", "")
	v.SetDefault("PRICING_FILE", "")
	v.SetDefault("STATIC_DIR", filepath.Join("frontend", "static"))
	v.SetDefault("UPLOAD_DIR", "")
	v.SetDefault("TEMPLATE_DIR", "")
	v.SetDefault("S3_BUCKET", "")
	v.SetDefault("S3_REGION", "us-east-1")
	v.SetDefault("S3_ENDPOINT", "")
	v.SetDefault("S3_ACCESS_KEY_ID", "")
	v.SetDefault("S3_SECRET_ACCESS_KEY", "")
	v.SetDefault("S3_PUBLIC_URL", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
}

// validate validates the configuration.
func (c *Config) validate() error {
	if c.ServerPort == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}
	if c.AdminUsername == "" {
		return fmt.Errorf("BLOG_ADMIN_USERNAME is required")
	}
	if c.AdminPassword == "" && c.AdminPasswordHash == "" {
		return fmt.Errorf("BLOG_ADMIN_PASSWORD or BLOG_ADMIN_PASSWORD_HASH is required")
	}
	if c.SecretKey == "" {
		return fmt.Errorf("SECRET_KEY is required")
	}
	if c.MaxContentLength < 1 {
		return fmt.Errorf("MAX_CONTENT_LENGTH must be positive")
	}
	if len(c.AllowedExtensions) == 0 {
		return fmt.Errorf("ALLOWED_EXTENSIONS must list at least one extension")
	}
	if c.S3Bucket != "" && c.S3PublicURL == "" {
		return fmt.Errorf("S3_PUBLIC_URL is required when S3_BUCKET is set")
	}
	return nil
}

// UsesDefaultCredentials reports whether the development password or secret is still in place.
func (c *Config) UsesDefaultCredentials() bool {
	return (c.AdminPasswordHash == "" && c.AdminPassword == "your-secure-password-here") ||
		c.SecretKey == "your-secret-key-here"
}

// parseList splits a comma separated list, lowercasing and dropping leading dots.
func parseList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(item)), ".")
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

func orDefault(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}
