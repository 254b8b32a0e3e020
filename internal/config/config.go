package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Config holds every setting the service reads from the environment.
type Config struct {
	AppName    string
	AppVersion string
	AppPort    string
	Debug      bool
	APIPrefix  string

	DatabaseDriver string
	DatabaseDSN    string

	JWTSecret         string
	AccessTokenExpiry time.Duration

	CORSOrigins []string

	StorageDriver     string
	S3Bucket          string
	S3Region          string
	S3Endpoint        string
	S3AccessKeyID     string
	S3SecretAccessKey string
	S3UsePathStyle    bool
	ShareLinkTTL      time.Duration
	ProfilePictureTTL time.Duration

	GroqAPIKey string
	GroqModel  string
	GroqAPIURL string

	TranslationServiceURL     string
	ExternalTranslationAPIURL string
	ExternalTranslationAPIKey string
	UpstreamTimeout           time.Duration

	RedisURL    string
	RabbitMQURL string

	AIRateLimitPerMinute int
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "CV Backend")
	v.SetDefault("APP_VERSION", "0.1.0")
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("DATABASE_DRIVER", "postgres")
	v.SetDefault("DATABASE_DSN", "host=127.0.0.1 user=postgres password=postgres dbname=cvhub port=5432 sslmode=disable")

	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("ACCESS_TOKEN_EXPIRE_MINUTES", 300)

	v.SetDefault("CORS_ORIGINS", "")

	v.SetDefault("STORAGE_DRIVER", "s3")
	v.SetDefault("S3_BUCKET", "")
	v.SetDefault("S3_REGION", "auto")
	v.SetDefault("S3_ENDPOINT", "")
	v.SetDefault("S3_ACCESS_KEY_ID", "")
	v.SetDefault("S3_SECRET_ACCESS_KEY", "")
	v.SetDefault("S3_USE_PATH_STYLE", false)
	v.SetDefault("SHARE_LINK_TTL_MINUTES", 60)
	v.SetDefault("PROFILE_PICTURE_TTL_HOURS", 90*24)

	v.SetDefault("GROQ_API_KEY", "")
	v.SetDefault("GROQ_MODEL", "llama-3.1-8b-instant")
	v.SetDefault("GROQ_API_URL", "https://api.groq.com/openai/v1/chat/completions")

	v.SetDefault("TRANSLATION_SERVICE_URL", "")
	v.SetDefault("EXTERNAL_TRANSLATION_API_URL", "")
	v.SetDefault("EXTERNAL_TRANSLATION_API_KEY", "")
	v.SetDefault("UPSTREAM_TIMEOUT_SECONDS", 30)

	v.SetDefault("REDIS_URL", "")
	v.SetDefault("RABBITMQ_URL", "")

	v.SetDefault("AI_RATE_LIMIT_PER_MINUTE", 20)
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, relying on environment variables")
	}

	v := viper.New()
	SetDefaults(v)
	v.AutomaticEnv()

	return FromViper(v)
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		AppName:    v.GetString("APP_NAME"),
		AppVersion: v.GetString("APP_VERSION"),
		AppPort:    v.GetString("APP_PORT"),
		Debug:      v.GetBool("DEBUG"),
		APIPrefix:  v.GetString("API_PREFIX"),

		DatabaseDriver: strings.ToLower(v.GetString("DATABASE_DRIVER")),
		DatabaseDSN:    v.GetString("DATABASE_DSN"),

		JWTSecret:         v.GetString("JWT_SECRET"),
		AccessTokenExpiry: time.Duration(v.GetInt("ACCESS_TOKEN_EXPIRE_MINUTES")) * time.Minute,

		CORSOrigins: splitList(v.GetString("CORS_ORIGINS")),

		StorageDriver:     strings.ToLower(v.GetString("STORAGE_DRIVER")),
		S3Bucket:          v.GetString("S3_BUCKET"),
		S3Region:          v.GetString("S3_REGION"),
		S3Endpoint:        v.GetString("S3_ENDPOINT"),
		S3AccessKeyID:     v.GetString("S3_ACCESS_KEY_ID"),
		S3SecretAccessKey: v.GetString("S3_SECRET_ACCESS_KEY"),
		S3UsePathStyle:    v.GetBool("S3_USE_PATH_STYLE"),
		ShareLinkTTL:      shareLinkTTL(v.GetInt("SHARE_LINK_TTL_MINUTES")),
		ProfilePictureTTL: time.Duration(v.GetInt("PROFILE_PICTURE_TTL_HOURS")) * time.Hour,

		GroqAPIKey: v.GetString("GROQ_API_KEY"),
		GroqModel:  v.GetString("GROQ_MODEL"),
		GroqAPIURL: v.GetString("GROQ_API_URL"),

		TranslationServiceURL:     v.GetString("TRANSLATION_SERVICE_URL"),
		ExternalTranslationAPIURL: v.GetString("EXTERNAL_TRANSLATION_API_URL"),
		ExternalTranslationAPIKey: v.GetString("EXTERNAL_TRANSLATION_API_KEY"),
		UpstreamTimeout:           time.Duration(v.GetInt("UPSTREAM_TIMEOUT_SECONDS")) * time.Second,

		RedisURL:    v.GetString("REDIS_URL"),
		RabbitMQURL: v.GetString("RABBITMQ_URL"),

		AIRateLimitPerMinute: v.GetInt("AI_RATE_LIMIT_PER_MINUTE"),
	}

	if cfg.JWTSecret == "" {
		if !cfg.Debug {
			return nil, fmt.Errorf("JWT_SECRET must be set")
		}
		cfg.JWTSecret = "insecure-debug-secret"
		log.Warn().Msg("JWT_SECRET not set, using an insecure secret because DEBUG is enabled")
	}
	if cfg.AccessTokenExpiry <= 0 {
		cfg.AccessTokenExpiry = 300 * time.Minute
	}
	if cfg.UpstreamTimeout <= 0 {
		cfg.UpstreamTimeout = 30 * time.Second
	}
	if cfg.AIRateLimitPerMinute <= 0 {
		cfg.AIRateLimitPerMinute = 20
	}

	return cfg, nil
}

// shareLinkTTL applies the 60 minute default and the one minute floor.
func shareLinkTTL(minutes int) time.Duration {
	if minutes == 0 {
		minutes = 60
	}
	if minutes < 1 {
		minutes = 1
	}
	return time.Duration(minutes) * time.Minute
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
