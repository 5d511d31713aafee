package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	BotToken string
	Port     string
	OpenAI   OpenAIConfig
	Stripe   StripeConfig
	Document DocumentConfig
	Database DatabaseConfig
}

// OpenAIConfig holds completion API settings
type OpenAIConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float32
}

// StripeConfig holds checkout settings
type StripeConfig struct {
	SecretKey  string
	SuccessURL string
	CancelURL  string
}

// DocumentConfig holds PDF rendering settings
type DocumentConfig struct {
	Dir      string
	FontPath string
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	temperature, err := strconv.ParseFloat(getEnv("OPENAI_TEMPERATURE", "0.4"), 32)
	if err != nil {
		return nil, fmt.Errorf("invalid OPENAI_TEMPERATURE: %w", err)
	}

	cfg := &Config{
		BotToken: os.Getenv("TG_BOT_TOKEN"),
		Port:     getEnv("PORT", "10000"),
		OpenAI: OpenAIConfig{
			APIKey:      os.Getenv("OPENAI_API_KEY"),
			BaseURL:     os.Getenv("OPENAI_BASE_URL"),
			Model:       getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			Temperature: float32(temperature),
		},
		Stripe: StripeConfig{
			SecretKey:  os.Getenv("STRIPE_SECRET_KEY"),
			SuccessURL: os.Getenv("SUCCESS_URL"),
			CancelURL:  os.Getenv("CANCEL_URL"),
		},
		Document: DocumentConfig{
			Dir:      getEnv("DOCUMENT_DIR", os.TempDir()),
			FontPath: os.Getenv("PDF_FONT_PATH"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "smartedy"),
			User:     getEnv("DB_USER", "smartedy"),
			Password: os.Getenv("DB_PASSWORD"),
		},
	}

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("TG_BOT_TOKEN is required")
	}
	if cfg.OpenAI.APIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}
	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return nil, fmt.Errorf("invalid PORT %q: %w", cfg.Port, err)
	}

	return cfg, nil
}

// Enabled reports whether the checkout journal database is configured
func (d DatabaseConfig) Enabled() bool {
	return d.Password != ""
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

// Addr returns the listen address of the health endpoint
func (c *Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
