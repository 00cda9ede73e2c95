package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr         string `mapstructure:"REDIS_ADDR"`
	RedisPassword     string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB      int    `mapstructure:"REDIS_CACHE_DB"`
	RedisSessionDB    int    `mapstructure:"REDIS_SESSION_DB"`
	RedisRetryQueueDB int    `mapstructure:"REDIS_RETRY_QUEUE_DB"`

	// Stripe secret key for payment-intent creation.
	StripeKey string `mapstructure:"STRIPE_KEY"`

	// Property-level settings. The engine manages exactly one rentable unit
	// with a fixed currency; "today" is always evaluated in the property's
	// local timezone.
	Currency         string `mapstructure:"CURRENCY"`
	PropertyTimezone string `mapstructure:"PROPERTY_TIMEZONE"`
	PropertyName     string `mapstructure:"PROPERTY_NAME"`

	// Operator (admin) credentials for the configuration surface.
	AdminEmail        string `mapstructure:"ADMIN_EMAIL"`
	AdminPasswordHash string `mapstructure:"ADMIN_PASSWORD_HASH"` // bcrypt

	// Outbound mail relay.
	SMTPHost string `mapstructure:"SMTP_HOST"`
	SMTPPort int    `mapstructure:"SMTP_PORT"`
	SMTPUser string `mapstructure:"SMTP_USER"`
	SMTPPass string `mapstructure:"SMTP_PASS"`
	MailFrom string `mapstructure:"MAIL_FROM"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_SESSION_DB", 1)
	viper.SetDefault("REDIS_RETRY_QUEUE_DB", 2)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("CURRENCY", "eur")
	viper.SetDefault("PROPERTY_TIMEZONE", "Europe/Paris")
	viper.SetDefault("PROPERTY_NAME", "Villa Mar")
	viper.SetDefault("SMTP_PORT", 587)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// PropertyLocation returns the property's local timezone. Date-only
// comparisons ("is check-in in the past?") are made against today in this
// location, never in server-local or UTC time.
func PropertyLocation() *time.Location {
	loc, err := time.LoadLocation(AppConfig.PropertyTimezone)
	if err != nil {
		log.Printf("invalid PROPERTY_TIMEZONE %q, falling back to UTC", AppConfig.PropertyTimezone)
		return time.UTC
	}
	return loc
}
