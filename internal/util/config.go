package util

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const (
	EnvironmentDevelopment = "development"
	EnvironmentProduction  = "production"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	Environment             string        `mapstructure:"ENVIRONMENT"`
	AllowedOrigins          []string      `mapstructure:"ALLOWED_ORIGINS"`
	DatabaseURL             string        `mapstructure:"DATABASE_URL"`
	HTTPServerAddress       string        `mapstructure:"HTTP_SERVER_ADDRESS"`
	TokenSecretKey          string        `mapstructure:"TOKEN_SECRET_KEY"`
	AccessTokenDuration     time.Duration `mapstructure:"ACCESS_TOKEN_DURATION"`
	RedisServerAddress      string        `mapstructure:"REDIS_SERVER_ADDRESS"`
	DelhiveryBaseURL        string        `mapstructure:"DELHIVERY_BASE_URL"`
	DelhiveryAPIToken       string        `mapstructure:"DELHIVERY_API_TOKEN"`
	CarrierTimeout          time.Duration `mapstructure:"CARRIER_TIMEOUT"`
	CarrierRetryCount       int           `mapstructure:"CARRIER_RETRY_COUNT"`
	DefaultCarrier          string        `mapstructure:"DEFAULT_CARRIER"`
	TrackingCacheTTL        time.Duration `mapstructure:"TRACKING_CACHE_TTL"`
	SyncInterval            time.Duration `mapstructure:"SYNC_INTERVAL"`
	SyncBatchSize           int32         `mapstructure:"SYNC_BATCH_SIZE"`
	MismatchSummaryInterval time.Duration `mapstructure:"MISMATCH_SUMMARY_INTERVAL"`
	FirebaseCredentialsFile string        `mapstructure:"FIREBASE_CREDENTIALS_FILE"`
	DiscordBotToken         string        `mapstructure:"DISCORD_BOT_TOKEN"`
	DiscordChannelID        string        `mapstructure:"DISCORD_CHANNEL_ID"`
}

func (config Config) IsProduction() bool {
	return config.Environment == EnvironmentProduction
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()

	// Set defaults for non-sensitive config. Every key needs a default so
	// that AutomaticEnv can override keys missing from the file.
	v.SetDefault("ENVIRONMENT", EnvironmentDevelopment)
	v.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000"})
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("HTTP_SERVER_ADDRESS", "0.0.0.0:8080")
	v.SetDefault("TOKEN_SECRET_KEY", "")
	v.SetDefault("ACCESS_TOKEN_DURATION", "24h")
	v.SetDefault("REDIS_SERVER_ADDRESS", "")
	v.SetDefault("DELHIVERY_BASE_URL", "https://track.delhivery.com")
	v.SetDefault("DELHIVERY_API_TOKEN", "")
	v.SetDefault("CARRIER_TIMEOUT", "10s")
	v.SetDefault("CARRIER_RETRY_COUNT", 2)
	v.SetDefault("DEFAULT_CARRIER", "delhivery")
	v.SetDefault("TRACKING_CACHE_TTL", "10m")
	v.SetDefault("SYNC_INTERVAL", "15m")
	v.SetDefault("SYNC_BATCH_SIZE", 200)
	v.SetDefault("MISMATCH_SUMMARY_INTERVAL", "1h")
	v.SetDefault("FIREBASE_CREDENTIALS_FILE", "")
	v.SetDefault("DISCORD_BOT_TOKEN", "")
	v.SetDefault("DISCORD_CHANNEL_ID", "")

	// Prefer environment variables over config file
	v.AutomaticEnv()

	// Load config file
	v.SetConfigFile(path)
	if err = v.ReadInConfig(); err != nil {
		return
	}

	// Unmarshal config into struct
	err = v.UnmarshalExact(&config)
	if err != nil {
		return
	}

	// Validate required configuration
	err = validateConfig(config)
	return
}

func validateConfig(config Config) error {
	if config.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if config.TokenSecretKey == "" {
		return fmt.Errorf("TOKEN_SECRET_KEY is required")
	}
	if len(config.TokenSecretKey) < 32 {
		return fmt.Errorf("TOKEN_SECRET_KEY must be at least 32 characters")
	}
	if config.RedisServerAddress == "" {
		return fmt.Errorf("REDIS_SERVER_ADDRESS is required")
	}
	if config.SyncInterval <= 0 {
		return fmt.Errorf("SYNC_INTERVAL must be positive")
	}
	if config.SyncBatchSize <= 0 {
		return fmt.Errorf("SYNC_BATCH_SIZE must be positive")
	}
	if config.CarrierRetryCount < 0 {
		return fmt.Errorf("CARRIER_RETRY_COUNT must not be negative")
	}

	return nil
}
