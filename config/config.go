package config

import (
	"errors"
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Data source: "mock" serves the built-in rosters from memory, "mongo" uses DATABASE_URL.
	DataSource   string `mapstructure:"DATA_SOURCE"`
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	// Redis configuration.
	RedisAddr            string `mapstructure:"REDIS_ADDR"`
	RedisPassword        string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB       int    `mapstructure:"REDIS_SESSION_DB"`
	RedisReminderQueueDB int    `mapstructure:"REDIS_REMINDER_QUEUE_DB"`

	// Auth.
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	AdminUsername     string `mapstructure:"ADMIN_USERNAME"`
	AdminPasswordHash string `mapstructure:"ADMIN_PASSWORD_HASH"`

	// Payments and booking flow.
	StripeKey           string `mapstructure:"STRIPE_KEY"`
	Currency            string `mapstructure:"CURRENCY"`
	PaymentDelayMS      int    `mapstructure:"PAYMENT_DELAY_MS"`
	SessionTTLMinutes   int    `mapstructure:"SESSION_TTL_MINUTES"`
	ReminderLeadMinutes int    `mapstructure:"REMINDER_LEAD_MINUTES"`

	// Admin console.
	APIBaseURL    string `mapstructure:"API_BASE_URL"`
	AdminPassword string `mapstructure:"ADMIN_PASSWORD"`
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

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func setDefaults() {
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("DATA_SOURCE", "mock")
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "astromarket")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("REDIS_REMINDER_QUEUE_DB", 1)
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("ADMIN_USERNAME", "admin")
	viper.SetDefault("ADMIN_PASSWORD_HASH", "")
	viper.SetDefault("STRIPE_KEY", "")
	viper.SetDefault("CURRENCY", "INR")
	viper.SetDefault("PAYMENT_DELAY_MS", 2000)
	viper.SetDefault("SESSION_TTL_MINUTES", 30)
	viper.SetDefault("REMINDER_LEAD_MINUTES", 60)
	viper.SetDefault("API_BASE_URL", "http://localhost:8080")
	viper.SetDefault("ADMIN_PASSWORD", "")
}

var ErrMissingJWTSecret = errors.New("JWT_SECRET must be set in production")

// Validate rejects configurations the server must not start with.
func Validate() error {
	if IsProduction() && AppConfig.JWTSecret == "" {
		return ErrMissingJWTSecret
	}
	return nil
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// UsesMongo reports whether repositories should be backed by MongoDB.
func UsesMongo() bool {
	return AppConfig.DataSource == "mongo"
}

func PaymentDelay() time.Duration {
	return time.Duration(AppConfig.PaymentDelayMS) * time.Millisecond
}

func SessionTTL() time.Duration {
	return time.Duration(AppConfig.SessionTTLMinutes) * time.Minute
}

func ReminderLead() time.Duration {
	return time.Duration(AppConfig.ReminderLeadMinutes) * time.Minute
}
