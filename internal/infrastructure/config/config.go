package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string         `mapstructure:"environment"`
	Server      ServerConfig   `mapstructure:"server"`
	Database    DatabaseConfig `mapstructure:"database"`
	Logger      LoggerConfig   `mapstructure:"logger"`
	Paystack    PaystackConfig `mapstructure:"paystack"`
	Redis       RedisConfig    `mapstructure:"redis"`
	Auth        AuthConfig     `mapstructure:"auth"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver           string        `mapstructure:"driver"`
	Host             string        `mapstructure:"host"`
	Port             int           `mapstructure:"port"`
	Username         string        `mapstructure:"username"`
	Password         string        `mapstructure:"password"`
	Database         string        `mapstructure:"database"`
	SSLMode          string        `mapstructure:"sslMode"`
	MaxOpenConns     int           `mapstructure:"maxOpenConns"`
	MaxIdleConns     int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime  time.Duration `mapstructure:"connMaxLifetime"`
	ConnMaxIdleTime  time.Duration `mapstructure:"connMaxIdleTime"`
	QueryTimeout     time.Duration `mapstructure:"queryTimeout"`
	SlowThreshold    time.Duration `mapstructure:"slowThreshold"`
	LogLevel         string        `mapstructure:"logLevel"`
	ConnectAttempts  int           `mapstructure:"connectAttempts"`
	ConnectDelay     time.Duration `mapstructure:"connectDelay"`
	SeedDefaultUsers bool          `mapstructure:"seedDefaultUsers"`
	Retry            RetryConfig   `mapstructure:"retry"`
}

// RetryConfig controls retries of transient storage errors inside a unit of work
type RetryConfig struct {
	MaxRetries    int           `mapstructure:"maxRetries"`
	RetryInterval time.Duration `mapstructure:"retryInterval"`
	MaxInterval   time.Duration `mapstructure:"maxInterval"`
	JitterFactor  float64       `mapstructure:"jitterFactor"`
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level string `mapstructure:"level"`
}

// PaystackConfig contains payment provider settings
type PaystackConfig struct {
	BaseURL       string        `mapstructure:"baseURL"`
	SecretKey     string        `mapstructure:"secretKey"`
	WebhookSecret string        `mapstructure:"webhookSecret"`
	Timeout       time.Duration `mapstructure:"timeout"`
	PreferredBank string        `mapstructure:"preferredBank"`
	Currency      string        `mapstructure:"currency"`
}

// RedisConfig contains account-name cache settings. An empty Addr disables the cache.
type RedisConfig struct {
	Addr            string        `mapstructure:"addr"`
	Password        string        `mapstructure:"password"`
	DB              int           `mapstructure:"db"`
	ResolveCacheTTL time.Duration `mapstructure:"resolveCacheTTL"`
}

// Enabled reports whether a Redis address is configured
func (r RedisConfig) Enabled() bool {
	return r.Addr != ""
}

// AuthConfig contains bearer token settings for administrative endpoints
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwtSecret"`
	Issuer    string `mapstructure:"issuer"`
}
