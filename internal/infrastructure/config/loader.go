package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "WL"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
}

// LoadConfig loads configuration for the environment named by WL_ENV
func LoadConfig() (*Config, error) {
	if err := loadDotEnvFile(); err != nil {
		fmt.Fprintln(os.Stderr, "Warning: could not load .env file:", err)
	}
	return LoadConfigFrom(getEnvironment(), ConfigPaths...)
}

// LoadConfigFrom reads <env>.yaml from the given paths and applies defaults and env overrides.
// A missing config file is not an error; defaults and environment variables still apply.
func LoadConfigFrom(env string, paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range paths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	config.Environment = env

	if config.Paystack.WebhookSecret == "" {
		config.Paystack.WebhookSecret = config.Paystack.SecretKey
	}

	return &config, nil
}

func loadDotEnvFile() error {
	var lastError error
	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			lastError = err
			continue
		}
		return nil
	}
	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}
	return errors.New("no .env file found in search paths")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", "15s")
	v.SetDefault("server.writeTimeout", "15s")
	v.SetDefault("server.idleTimeout", "60s")
	v.SetDefault("server.readHeaderTimeout", "10s")
	v.SetDefault("server.shutdownTimeout", "10s")

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.username", "")
	v.SetDefault("database.password", "")
	v.SetDefault("database.database", "wallet_ledger")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 50)
	v.SetDefault("database.maxIdleConns", 25)
	v.SetDefault("database.connMaxLifetime", "30m")
	v.SetDefault("database.connMaxIdleTime", "15m")
	v.SetDefault("database.queryTimeout", "5s")
	v.SetDefault("database.slowThreshold", "200ms")
	v.SetDefault("database.logLevel", "warn")
	v.SetDefault("database.connectAttempts", 3)
	v.SetDefault("database.connectDelay", "2s")
	v.SetDefault("database.seedDefaultUsers", false)
	v.SetDefault("database.retry.maxRetries", 5)
	v.SetDefault("database.retry.retryInterval", "50ms")
	v.SetDefault("database.retry.maxInterval", "2s")
	v.SetDefault("database.retry.jitterFactor", 0.2)

	v.SetDefault("logger.level", "info")

	v.SetDefault("paystack.baseURL", "https://api.paystack.co")
	v.SetDefault("paystack.secretKey", "")
	v.SetDefault("paystack.webhookSecret", "")
	v.SetDefault("paystack.timeout", "30s")
	v.SetDefault("paystack.preferredBank", "wema-bank")
	v.SetDefault("paystack.currency", "NGN")

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.resolveCacheTTL", "24h")

	v.SetDefault("auth.jwtSecret", "")
	v.SetDefault("auth.issuer", "wallet-ledger")
}

// getEnvironment determines the environment from WL_ENV, defaulting to development
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides maps the documented environment variables onto config keys
func processEnvOverrides(v *viper.Viper) {
	stringOverrides := map[string]string{
		"WL_DB_DRIVER":               "database.driver",
		"WL_DB_HOST":                 "database.host",
		"WL_DB_USERNAME":             "database.username",
		"WL_DB_PASSWORD":             "database.password",
		"WL_DB_NAME":                 "database.database",
		"WL_DB_SSL_MODE":             "database.sslMode",
		"WL_SERVER_HOST":             "server.host",
		"WL_LOGGER_LEVEL":            "logger.level",
		"WL_PAYSTACK_BASE_URL":       "paystack.baseURL",
		"WL_PAYSTACK_SECRET_KEY":     "paystack.secretKey",
		"WL_PAYSTACK_WEBHOOK_SECRET": "paystack.webhookSecret",
		"WL_PAYSTACK_PREFERRED_BANK": "paystack.preferredBank",
		"WL_REDIS_ADDR":              "redis.addr",
		"WL_REDIS_PASSWORD":          "redis.password",
		"WL_JWT_SECRET":              "auth.jwtSecret",
	}
	for env, key := range stringOverrides {
		if val := os.Getenv(env); val != "" {
			v.Set(key, val)
		}
	}

	intOverrides := map[string]string{
		"WL_DB_PORT":           "database.port",
		"WL_DB_MAX_OPEN_CONNS": "database.maxOpenConns",
		"WL_DB_MAX_IDLE_CONNS": "database.maxIdleConns",
		"WL_SERVER_PORT":       "server.port",
		"WL_REDIS_DB":          "redis.db",
	}
	for env, key := range intOverrides {
		if val, ok := getEnvInt(env); ok {
			v.Set(key, val)
		}
	}

	if seed := os.Getenv("WL_DB_SEED_DEFAULT_USERS"); seed != "" {
		if b, err := strconv.ParseBool(seed); err == nil {
			v.Set("database.seedDefaultUsers", b)
		}
	}
}

func getEnvInt(name string) (int, bool) {
	valStr := os.Getenv(name)
	if valStr == "" {
		return 0, false
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		return 0, false
	}
	return val, true
}
