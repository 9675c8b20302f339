package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool
	LogLevel      string

	// JWTSecret verifies bearer tokens issued by the identity provider.
	JWTSecret string
	JWTIssuer string

	// RateLimit uses the ulule/limiter format, e.g. "100-M".
	RateLimit          string
	CORSAllowedOrigins []string

	// Invitation notifications; disabled when AMQPURL is empty.
	AMQPURL              string
	AMQPExchange         string
	AMQPInviteRoutingKey string

	// ReimburseToLockAfterDecision rejects reassigning reimburse_to once a line is APPROVED or REJECTED.
	ReimburseToLockAfterDecision bool
	// RequireSavingToggleConfirmation rejects turning is_saving off on an item with
	// spend unless the update carries confirmDestructive.
	RequireSavingToggleConfirmation bool
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_ISSUER", "")
	viper.SetDefault("RATE_LIMIT", "300-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("AMQP_URL", "")
	viper.SetDefault("AMQP_EXCHANGE", "budget_ledger")
	viper.SetDefault("AMQP_INVITE_ROUTING_KEY", "workspace.invited")
	viper.SetDefault("REIMBURSE_TO_LOCK_AFTER_DECISION", false)
	viper.SetDefault("REQUIRE_SAVING_TOGGLE_CONFIRMATION", true)

	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:                     viper.GetString("PGSQL_URL"),
		Port:                            viper.GetString("PORT"),
		IsProduction:                    viper.GetBool("IS_PRODUCTION"),
		EnableDBCheck:                   viper.GetBool("ENABLE_DB_CHECK"),
		LogLevel:                        viper.GetString("LOG_LEVEL"),
		JWTSecret:                       viper.GetString("JWT_SECRET"),
		JWTIssuer:                       viper.GetString("JWT_ISSUER"),
		RateLimit:                       viper.GetString("RATE_LIMIT"),
		CORSAllowedOrigins:              splitList(viper.GetString("CORS_ALLOWED_ORIGINS")),
		AMQPURL:                         viper.GetString("AMQP_URL"),
		AMQPExchange:                    viper.GetString("AMQP_EXCHANGE"),
		AMQPInviteRoutingKey:            viper.GetString("AMQP_INVITE_ROUTING_KEY"),
		ReimburseToLockAfterDecision:    viper.GetBool("REIMBURSE_TO_LOCK_AFTER_DECISION"),
		RequireSavingToggleConfirmation: viper.GetBool("REQUIRE_SAVING_TOGGLE_CONFIRMATION"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	if cfg.AMQPURL == "" {
		log.Println("Warning: AMQP_URL not set. Invitation notifications will only be logged.")
	}

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
