package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"instituteapi/utils"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the application configuration. Precedence, lowest first:
// defaults, YAML file, .env file, process environment.
type Config struct {
	Server struct {
		Port           string        `yaml:"port"`
		Env            string        `yaml:"env"`
		MaxBodyBytes   int64         `yaml:"max_body_bytes"`
		CORSOrigins    []string      `yaml:"cors_origins"`
		ReadTimeout    time.Duration `yaml:"read_timeout"`
		WriteTimeout   time.Duration `yaml:"write_timeout"`
		TrustedProxies []string      `yaml:"trusted_proxies"` // empty: ClientIP is the socket address
	} `yaml:"server"`

	Database struct {
		URI             string        `yaml:"uri"`
		Name            string        `yaml:"name"`
		MaxPoolSize     uint64        `yaml:"max_pool_size"`
		MinPoolSize     uint64        `yaml:"min_pool_size"`
		MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time"`
		RetryWrites     bool          `yaml:"retry_writes"`
	} `yaml:"database"`

	JWT struct {
		Secret     string        `yaml:"secret"`
		Expiration time.Duration `yaml:"expiration"`
		Issuer     string        `yaml:"issuer"`
	} `yaml:"jwt"`

	Auth struct {
		AllowRoleSignup bool   `yaml:"allow_role_signup"`
		AdminName       string `yaml:"admin_name"`
		AdminEmail      string `yaml:"admin_email"`
		AdminPassword   string `yaml:"admin_password"`
		TOTPIssuer      string `yaml:"totp_issuer"`
	} `yaml:"auth"`

	Redis struct {
		URL string `yaml:"url"`
	} `yaml:"redis"`

	RateLimit struct {
		Window  time.Duration `yaml:"window"`
		General int64         `yaml:"general"`
		Auth    int64         `yaml:"auth"`
		Write   int64         `yaml:"write"`
	} `yaml:"rate_limit"`

	Storage struct {
		Endpoint      string        `yaml:"endpoint"`
		AccessKey     string        `yaml:"access_key"`
		SecretKey     string        `yaml:"secret_key"`
		SecurityToken string        `yaml:"security_token"`
		Bucket        string        `yaml:"bucket"`
		PublicBase    string        `yaml:"public_base"`
		SignedURLTTL  time.Duration `yaml:"signed_url_ttl"`
	} `yaml:"storage"`

	Purge struct {
		Retention time.Duration `yaml:"retention"`
		Schedule  string        `yaml:"schedule"`
	} `yaml:"purge"`

	Logging struct {
		Level  string `yaml:"level"`
		Pretty bool   `yaml:"pretty"`
	} `yaml:"logging"`
}

// Load builds the configuration. A missing YAML or .env file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	setDefaults(cfg)

	if path != "" {
		if file, err := os.ReadFile(path); err == nil {
			if err := yaml.Unmarshal(file, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	envFile := utils.GetEnvAsString("ENV_FILE", ".env")
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	loadFromEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func setDefaults(cfg *Config) {
	cfg.Server.Port = "8080"
	cfg.Server.Env = "development"
	cfg.Server.MaxBodyBytes = 2 << 20
	cfg.Server.ReadTimeout = 15 * time.Second
	cfg.Server.WriteTimeout = 60 * time.Second

	cfg.Database.Name = "institute"
	cfg.Database.MaxPoolSize = 100
	cfg.Database.MinPoolSize = 10
	cfg.Database.MaxConnIdleTime = 60 * time.Second
	cfg.Database.RetryWrites = true

	cfg.JWT.Expiration = time.Hour
	cfg.JWT.Issuer = "instituteapi"

	cfg.Auth.AdminName = "Administrator"
	cfg.Auth.TOTPIssuer = "Institute"

	cfg.RateLimit.Window = 15 * time.Minute
	cfg.RateLimit.General = 100
	cfg.RateLimit.Auth = 5
	cfg.RateLimit.Write = 30

	cfg.Storage.SignedURLTTL = 10 * time.Minute

	cfg.Purge.Retention = 30 * 24 * time.Hour
	cfg.Purge.Schedule = "15 2 * * *"

	cfg.Logging.Level = "info"
}

func loadFromEnv(cfg *Config) {
	cfg.Server.Port = utils.GetEnvAsString("PORT", cfg.Server.Port)
	cfg.Server.Env = utils.GetEnvAsString("APP_ENV", utils.GetEnvAsString("NODE_ENV", cfg.Server.Env))
	cfg.Server.MaxBodyBytes = utils.GetEnvAsInt64("MAX_BODY_BYTES", cfg.Server.MaxBodyBytes)
	cfg.Server.CORSOrigins = utils.GetEnvAsSlice("CORS_ORIGINS", cfg.Server.CORSOrigins)
	cfg.Server.TrustedProxies = utils.GetEnvAsSlice("TRUSTED_PROXIES", cfg.Server.TrustedProxies)
	cfg.Server.ReadTimeout = utils.GetEnvAsDuration("READ_TIMEOUT", cfg.Server.ReadTimeout)
	cfg.Server.WriteTimeout = utils.GetEnvAsDuration("WRITE_TIMEOUT", cfg.Server.WriteTimeout)

	cfg.Database.URI = utils.GetEnvAsString("MONGO_URI", cfg.Database.URI)
	cfg.Database.Name = utils.GetEnvAsString("MONGO_DB", cfg.Database.Name)
	cfg.Database.MaxPoolSize = utils.GetEnvAsUint64("MONGO_MAX_POOL_SIZE", cfg.Database.MaxPoolSize)
	cfg.Database.MinPoolSize = utils.GetEnvAsUint64("MONGO_MIN_POOL_SIZE", cfg.Database.MinPoolSize)
	cfg.Database.MaxConnIdleTime = utils.GetEnvAsDuration("MONGO_MAX_CONN_IDLE_TIME", cfg.Database.MaxConnIdleTime)
	cfg.Database.RetryWrites = utils.GetEnvAsBool("MONGO_RETRY_WRITES", cfg.Database.RetryWrites)

	cfg.JWT.Secret = utils.GetEnvAsString("JWT_SECRET", cfg.JWT.Secret)
	cfg.JWT.Expiration = utils.GetEnvAsDuration("JWT_EXPIRATION", cfg.JWT.Expiration)
	cfg.JWT.Issuer = utils.GetEnvAsString("JWT_ISSUER", cfg.JWT.Issuer)

	cfg.Auth.AllowRoleSignup = utils.GetEnvAsBool("ALLOW_ROLE_SIGNUP", cfg.Auth.AllowRoleSignup)
	cfg.Auth.AdminName = utils.GetEnvAsString("ADMIN_NAME", cfg.Auth.AdminName)
	cfg.Auth.AdminEmail = utils.GetEnvAsString("ADMIN_EMAIL", cfg.Auth.AdminEmail)
	cfg.Auth.AdminPassword = utils.GetEnvAsString("ADMIN_PASSWORD", cfg.Auth.AdminPassword)
	cfg.Auth.TOTPIssuer = utils.GetEnvAsString("TOTP_ISSUER", cfg.Auth.TOTPIssuer)

	cfg.Redis.URL = utils.GetEnvAsString("REDIS_URL", cfg.Redis.URL)

	cfg.RateLimit.Window = utils.GetEnvAsDuration("RATE_LIMIT_WINDOW", cfg.RateLimit.Window)
	cfg.RateLimit.General = utils.GetEnvAsInt64("RATE_LIMIT_GENERAL", cfg.RateLimit.General)
	cfg.RateLimit.Auth = utils.GetEnvAsInt64("RATE_LIMIT_AUTH", cfg.RateLimit.Auth)
	cfg.RateLimit.Write = utils.GetEnvAsInt64("RATE_LIMIT_WRITE", cfg.RateLimit.Write)

	cfg.Storage.Endpoint = utils.GetEnvAsString("STORAGE_ENDPOINT", cfg.Storage.Endpoint)
	cfg.Storage.AccessKey = utils.GetEnvAsString("STORAGE_ACCESS_KEY", cfg.Storage.AccessKey)
	cfg.Storage.SecretKey = utils.GetEnvAsString("STORAGE_SECRET_KEY", cfg.Storage.SecretKey)
	cfg.Storage.SecurityToken = utils.GetEnvAsString("STORAGE_SECURITY_TOKEN", cfg.Storage.SecurityToken)
	cfg.Storage.Bucket = utils.GetEnvAsString("STORAGE_BUCKET", cfg.Storage.Bucket)
	cfg.Storage.PublicBase = utils.GetEnvAsString("STORAGE_PUBLIC_BASE", cfg.Storage.PublicBase)
	cfg.Storage.SignedURLTTL = utils.GetEnvAsDuration("SIGNED_URL_TTL", cfg.Storage.SignedURLTTL)

	cfg.Purge.Retention = utils.GetEnvAsDuration("PURGE_RETENTION", cfg.Purge.Retention)
	cfg.Purge.Schedule = utils.GetEnvAsString("PURGE_SCHEDULE", cfg.Purge.Schedule)

	cfg.Logging.Level = utils.GetEnvAsString("LOG_LEVEL", cfg.Logging.Level)
	cfg.Logging.Pretty = utils.GetEnvAsBool("LOG_PRETTY", cfg.Logging.Pretty)
}

// Validate checks required settings. The test environment may omit secrets.
func (c *Config) Validate() error {
	if c.IsTest() {
		return nil
	}
	if c.JWT.Secret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.Database.URI == "" {
		return errors.New("MONGO_URI is required")
	}
	if c.JWT.Expiration <= 0 {
		return errors.New("JWT_EXPIRATION must be positive")
	}
	if c.RateLimit.Window <= 0 {
		return errors.New("RATE_LIMIT_WINDOW must be positive")
	}
	return nil
}

func (c *Config) IsTest() bool {
	return strings.EqualFold(c.Server.Env, "test")
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Server.Env, "production")
}

// StorageConfigured reports whether document streaming can sign URLs
func (c *Config) StorageConfigured() bool {
	s := c.Storage
	return s.Endpoint != "" && s.AccessKey != "" && s.SecretKey != "" && s.Bucket != ""
}
