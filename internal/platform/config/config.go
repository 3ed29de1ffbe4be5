package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// SQLitePath is the local data file holding all persisted state.
	SQLitePath string

	// FrontendBaseURL is the allowed CORS origin for the dashboard UI.
	FrontendBaseURL string

	// Text-generation (insights) settings. An empty API key disables the
	// feature; requests then get a fixed unavailable message.
	OpenAIAPIKey      string `mapstructure:"OPENAI_API_KEY"`
	OpenAIBaseURL     string `mapstructure:"OPENAI_BASE_URL"`
	OpenAIModel       string `mapstructure:"OPENAI_MODEL"`
	InsightsTimeout   time.Duration
	InsightsRateLimit string // ulule/limiter formatted rate, e.g. "10-M"
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("SQLITE_PATH", "data/finance.db")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	viper.SetDefault("OPENAI_API_KEY", "")
	viper.SetDefault("OPENAI_BASE_URL", "")
	viper.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	viper.SetDefault("INSIGHTS_TIMEOUT", "30s")
	viper.SetDefault("INSIGHTS_RATE_LIMIT", "10-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.SQLitePath = viper.GetString("SQLITE_PATH")
	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")
	cfg.OpenAIAPIKey = viper.GetString("OPENAI_API_KEY")
	cfg.OpenAIBaseURL = viper.GetString("OPENAI_BASE_URL")
	cfg.OpenAIModel = viper.GetString("OPENAI_MODEL")
	cfg.InsightsRateLimit = viper.GetString("INSIGHTS_RATE_LIMIT")

	timeoutStr := viper.GetString("INSIGHTS_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		timeout = 30 * time.Second
		log.Printf("Warning: Invalid value for INSIGHTS_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout)
	}
	cfg.InsightsTimeout = timeout

	if cfg.OpenAIAPIKey == "" {
		log.Println("Warning: OPENAI_API_KEY not set. AI insights will be unavailable.")
	}

	return cfg, nil
}
