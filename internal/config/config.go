package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// DefaultUserAgent is the default User-Agent string sent with all provider requests.
const DefaultUserAgent = "sonyliv-clone/1.0 (+https://github.com/Shuvikm/sonyliv-clone)"

// DefaultDemoJWTSecret is used when no secret is configured. Fine for local runs only.
const DefaultDemoJWTSecret = "your-secret-key"

type Config struct {
	LogLevel      string `mapstructure:"log_level"`
	UserAgent     string `mapstructure:"user_agent"`
	ClientTimeout string `mapstructure:"client_timeout"` // Go duration string like "10s"
	Server        struct {
		Port    int    `mapstructure:"port"`
		Address string `mapstructure:"address"`
	} `mapstructure:"server"`
	TMDB struct {
		APIKey       string `mapstructure:"api_key"` // v3 key or v4 read access token
		BaseURL      string `mapstructure:"base_url"`
		ImageBaseURL string `mapstructure:"image_base_url"`
	} `mapstructure:"tmdb"`
	News struct {
		APIKey  string `mapstructure:"api_key"`
		BaseURL string `mapstructure:"base_url"`
	} `mapstructure:"news"`
	Client struct {
		MaxPages         int    `mapstructure:"max_pages"`
		BreakerThreshold uint   `mapstructure:"breaker_threshold"` // consecutive failures that open a provider's breaker
		BreakerDelay     string `mapstructure:"breaker_delay"`
	} `mapstructure:"client"`
	Cache struct {
		Enabled  bool   `mapstructure:"enabled"`
		Provider string `mapstructure:"provider"` // "memory" or "redis"
		Size     int    `mapstructure:"size"`
		TTL      string `mapstructure:"ttl"`
		Redis    struct {
			Address  string `mapstructure:"address"`
			Password string `mapstructure:"password"`
			DB       int    `mapstructure:"db"`
		} `mapstructure:"redis"`
	} `mapstructure:"cache"`
	Metrics struct {
		Enabled bool `mapstructure:"enabled"`
		Port    int  `mapstructure:"port"`
	} `mapstructure:"metrics"`
	GRPC struct {
		Enabled bool `mapstructure:"enabled"`
		Port    int  `mapstructure:"port"`
	} `mapstructure:"grpc"`
	Mongo struct {
		URI             string `mapstructure:"uri"`
		Database        string `mapstructure:"database"`
		ConnectTimeout  string `mapstructure:"connect_timeout"`
		ConnectAttempts uint   `mapstructure:"connect_attempts"`
	} `mapstructure:"mongo"`
	Auth struct {
		JWTSecret string `mapstructure:"jwt_secret"`
		TokenTTL  string `mapstructure:"token_ttl"`
	} `mapstructure:"auth"`
	Session struct {
		TTL  string `mapstructure:"ttl"`
		Size int    `mapstructure:"size"`
	} `mapstructure:"session"`
	RateLimit struct {
		RPS            float64  `mapstructure:"rps"`
		Burst          int      `mapstructure:"burst"`
		TrustedProxies []string `mapstructure:"trusted_proxies"`
	} `mapstructure:"rate_limit"`
	CORS struct {
		AllowedOrigins []string `mapstructure:"allowed_origins"`
	} `mapstructure:"cors"`
	Sentry struct {
		DSN         string `mapstructure:"dsn"`
		Environment string `mapstructure:"environment"`
	} `mapstructure:"sentry"`
}

var (
	globalConfig *Config
	logger       zerolog.Logger
)

func init() {
	logger = zerolog.New(zerolog.ConsoleWriter{
		Out:     os.Stdout,
		NoColor: false,
	}).With().Timestamp().Logger()

	config, err := LoadConfig()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load config")
	}

	level := zerolog.InfoLevel
	if config.LogLevel != "" {
		if parsedLevel, err := zerolog.ParseLevel(config.LogLevel); err == nil {
			level = parsedLevel
		} else {
			logger.Warn().Str("invalid_level", config.LogLevel).Msg("Invalid log level, using default 'info'")
		}
	}

	zerolog.SetGlobalLevel(level)
	logger = logger.Level(level)

	logger.Info().Str("level", level.String()).Msg("Logging configured")
	globalConfig = config
	logger.Info().Msg("Configuration loaded successfully")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("client_timeout", "10s")
	v.SetDefault("server.address", "0.0.0.0")
	v.SetDefault("server.port", 5000)
	v.SetDefault("tmdb.base_url", "https://api.themoviedb.org/3")
	v.SetDefault("tmdb.image_base_url", "https://image.tmdb.org/t/p/")
	v.SetDefault("news.base_url", "https://newsapi.org/v2")
	v.SetDefault("client.max_pages", 5)
	v.SetDefault("client.breaker_threshold", 5)
	v.SetDefault("client.breaker_delay", "30s")
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.provider", "memory")
	v.SetDefault("cache.size", 500)
	v.SetDefault("cache.ttl", "10m")
	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.port", 9090)
	v.SetDefault("grpc.enabled", false)
	v.SetDefault("grpc.port", 50051)
	v.SetDefault("mongo.uri", "mongodb://localhost:27017")
	v.SetDefault("mongo.database", "sonyliv-clone")
	v.SetDefault("mongo.connect_timeout", "5s")
	v.SetDefault("mongo.connect_attempts", 3)
	v.SetDefault("auth.jwt_secret", DefaultDemoJWTSecret)
	v.SetDefault("auth.token_ttl", "168h")
	v.SetDefault("session.ttl", "168h")
	v.SetDefault("session.size", 10000)
	v.SetDefault("rate_limit.rps", 10)
	v.SetDefault("rate_limit.burst", 40)
	v.SetDefault("rate_limit.trusted_proxies", []string{})
	v.SetDefault("cors.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("sentry.environment", "development")
}

func LoadConfig() (*Config, error) {
	// A missing .env is the normal case outside local development.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Warn().Err(err).Msg("Failed to parse .env file")
	}

	v := viper.GetViper()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.AutomaticEnv()
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	_ = v.BindEnv("log_level", "LOG_LEVEL")
	_ = v.BindEnv("tmdb.api_key", "APP_TMDB_API_KEY", "TMDB_API_KEY")
	_ = v.BindEnv("news.api_key", "APP_NEWS_API_KEY", "NEWS_API_KEY")
	_ = v.BindEnv("auth.jwt_secret", "APP_AUTH_JWT_SECRET", "JWT_SECRET")
	_ = v.BindEnv("mongo.uri", "APP_MONGO_URI", "MONGODB_URI")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	if config.UserAgent == "" {
		config.UserAgent = DefaultUserAgent
	}

	return &config, nil
}

// ParseDuration parses a Go duration string and falls back to def when the value
// is empty or invalid. Invalid values are logged with the key they came from.
func ParseDuration(key, value string, def time.Duration) time.Duration {
	if value == "" {
		return def
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		logger.Warn().Err(err).Str("key", key).Str("value", value).Dur("default", def).Msg("Invalid duration, using default")
		return def
	}
	return d
}

func GetConfig() *Config {
	return globalConfig
}

func GetUserAgent() string {
	if globalConfig != nil && globalConfig.UserAgent != "" {
		return globalConfig.UserAgent
	}

	return DefaultUserAgent
}

func GetLogger() zerolog.Logger {
	return logger
}
