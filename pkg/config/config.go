package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"aldosafaris/pkg/logger"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	Port string

	JWTSecret       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration

	UploadDir     string
	UploadBaseURL string

	RateLimitRequests int
	RateLimitWindow   time.Duration

	RequestTimeout time.Duration
	MaxRequestSize int

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	Log *logger.Logger
}

func Load(serviceName string) *Config {
	cfg := &Config{
		DBHost:     getEnvStr(EnvDBHost, DefaultDBHost),
		DBPort:     getEnvStr(EnvDBPort, DefaultDBPort),
		DBUser:     getEnvStr(EnvDBUser, DefaultDBUser),
		DBPassword: getEnvStr(EnvDBPassword, DefaultDBPassword),
		DBName:     getEnvStr(EnvDBName, DefaultDBName),
		DBSSLMode:  getEnvStr(EnvDBSSLMode, DefaultDBSSLMode),

		Port: getEnvStr(EnvPort, DefaultPort),

		JWTSecret:       getEnvStr(EnvJWTSecret, ""),
		AccessTokenTTL:  getEnvDuration(EnvAccessTokenTTL, DefaultAccessTokenTTL),
		RefreshTokenTTL: getEnvDuration(EnvRefreshTokenTTL, DefaultRefreshTokenTTL),

		UploadDir:     getEnvStr(EnvUploadDir, DefaultUploadDir),
		UploadBaseURL: getEnvStr(EnvUploadBaseURL, DefaultUploadBaseURL),

		RateLimitRequests: getEnvNum(EnvRateLimitRequests, DefaultRateLimitRequests),
		RateLimitWindow:   getEnvDuration(EnvRateLimitWindow, DefaultRateLimitWindow),

		RequestTimeout: getEnvDuration(EnvRequestTimeout, DefaultRequestTimeout),
		MaxRequestSize: getEnvNum(EnvMaxRequestSize, DefaultMaxRequestSize),

		ReadTimeout:     getEnvDuration(EnvReadTimeout, DefaultReadTimeout),
		WriteTimeout:    getEnvDuration(EnvWriteTimeout, DefaultWriteTimeout),
		IdleTimeout:     getEnvDuration(EnvIdleTimeout, DefaultIdleTimeout),
		ShutdownTimeout: getEnvDuration(EnvShutdownTimeout, DefaultShutdownTimeout),

		Log: logger.New(logger.Config{
			Level:     getEnvStr(EnvLogLevel, DefaultLogLevel),
			Format:    logger.JSON,
			AddSource: true,
			Service:   serviceName,
		}),
	}

	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal(err.Error())
	}
	cfg.LogConfiguration()
	return cfg
}

// DSN builds the lib/pq connection string from the DB_* parts.
func (cfg *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode)
}

func (cfg *Config) Validate() error {
	var errs []string

	if port, err := strconv.Atoi(cfg.Port); err != nil || port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("Port must be between 1 and 65535, got: %s", cfg.Port))
	}
	if cfg.DBHost == "" {
		errs = append(errs, "DBHost cannot be empty")
	}
	if cfg.DBName == "" {
		errs = append(errs, "DBName cannot be empty")
	}
	if cfg.JWTSecret == "" {
		errs = append(errs, "JWTSecret cannot be empty (set "+EnvJWTSecret+")")
	}
	if cfg.AccessTokenTTL <= 0 {
		errs = append(errs, fmt.Sprintf("AccessTokenTTL must be positive, got: %s", cfg.AccessTokenTTL))
	}
	if cfg.RefreshTokenTTL <= cfg.AccessTokenTTL {
		errs = append(errs, fmt.Sprintf("RefreshTokenTTL (%s) must exceed AccessTokenTTL (%s)", cfg.RefreshTokenTTL, cfg.AccessTokenTTL))
	}
	if cfg.UploadDir == "" {
		errs = append(errs, "UploadDir cannot be empty")
	}
	if cfg.RateLimitRequests <= 0 {
		errs = append(errs, fmt.Sprintf("RateLimitRequests must be positive, got: %d", cfg.RateLimitRequests))
	}
	if cfg.RateLimitWindow <= 0 {
		errs = append(errs, fmt.Sprintf("RateLimitWindow must be positive, got: %s", cfg.RateLimitWindow))
	}
	if cfg.RequestTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("RequestTimeout must be positive, got: %s", cfg.RequestTimeout))
	}
	if cfg.MaxRequestSize <= 0 {
		errs = append(errs, fmt.Sprintf("MaxRequestSize must be positive, got: %d", cfg.MaxRequestSize))
	}
	if cfg.ReadTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("ReadTimeout must be positive, got: %s", cfg.ReadTimeout))
	}
	if cfg.WriteTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("WriteTimeout must be positive, got: %s", cfg.WriteTimeout))
	}
	if cfg.IdleTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("IdleTimeout must be positive, got: %s", cfg.IdleTimeout))
	}
	if cfg.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("ShutdownTimeout must be positive, got: %s", cfg.ShutdownTimeout))
	}

	if len(errs) > 0 {
		errMsg := "Configuration validation failed:\n"
		for i, e := range errs {
			errMsg += fmt.Sprintf("  %d. %s\n", i+1, e)
		}
		return fmt.Errorf("%s", errMsg)
	}

	return nil
}

func (cfg *Config) LogConfiguration() {
	cfg.Log.Info("Configuration loaded successfully",
		"db_host", cfg.DBHost,
		"db_port", cfg.DBPort,
		"db_name", cfg.DBName,
		"db_sslmode", cfg.DBSSLMode,
		"port", cfg.Port,
		"jwt_secret_set", cfg.JWTSecret != "",
		"access_token_ttl", cfg.AccessTokenTTL,
		"refresh_token_ttl", cfg.RefreshTokenTTL,
		"upload_dir", cfg.UploadDir,
		"upload_base_url", cfg.UploadBaseURL,
		"rate_limit_requests", cfg.RateLimitRequests,
		"rate_limit_window", cfg.RateLimitWindow,
		"request_timeout", cfg.RequestTimeout,
		"max_request_size", cfg.MaxRequestSize,
		"read_timeout", cfg.ReadTimeout,
		"write_timeout", cfg.WriteTimeout,
		"idle_timeout", cfg.IdleTimeout,
		"shutdown_timeout", cfg.ShutdownTimeout,
	)
}

func getEnvStr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvNum(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
