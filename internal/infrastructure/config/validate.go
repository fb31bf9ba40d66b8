package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate ensures all required configuration values are present.
// It returns warnings for settings that are legal but risky in production.
func Validate(cfg *Config) (warnings []string, err error) {
	var missingConfigs []string

	switch cfg.Environment {
	case "":
		missingConfigs = append(missingConfigs, "environment")
	case Development, Production, Test:
	default:
		return nil, fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, Development, Production, Test)
	}

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	if cfg.Database.Host == "" {
		missingConfigs = append(missingConfigs, "database.host (or WL_DB_HOST)")
	}
	if cfg.Database.Port == 0 {
		missingConfigs = append(missingConfigs, "database.port (or WL_DB_PORT)")
	}
	if cfg.Database.Username == "" {
		missingConfigs = append(missingConfigs, "database.username (or WL_DB_USERNAME)")
	}
	if cfg.Database.Database == "" {
		missingConfigs = append(missingConfigs, "database.database (or WL_DB_NAME)")
	}
	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}

	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	// Webhooks must never be accepted unauthenticated.
	if cfg.Paystack.WebhookSecret == "" {
		missingConfigs = append(missingConfigs, "paystack.webhookSecret or paystack.secretKey (or WL_PAYSTACK_SECRET_KEY)")
	}
	if cfg.Auth.JWTSecret == "" {
		missingConfigs = append(missingConfigs, "auth.jwtSecret (or WL_JWT_SECRET)")
	}

	if len(missingConfigs) > 0 {
		return nil, fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	if cfg.Paystack.SecretKey == "" {
		warnings = append(warnings, "paystack.secretKey is empty; gateway endpoints will fail until it is set")
	}

	if cfg.Environment == Production {
		switch strings.ToLower(cfg.Database.SSLMode) {
		case "require", "verify-ca", "verify-full":
		default:
			if cfg.Database.Driver == "postgres" {
				warnings = append(warnings, "database.sslMode should be 'require', 'verify-ca', or 'verify-full' in production")
			}
		}
		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}
		if cfg.Server.WriteTimeout < 5*time.Second {
			warnings = append(warnings, "server.writeTimeout is too low for production")
		}
		if cfg.Database.SeedDefaultUsers {
			warnings = append(warnings, "database.seedDefaultUsers is enabled in production")
		}
	}

	return warnings, nil
}
