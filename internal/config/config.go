package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ConfigPath is the default config file location.
const ConfigPath = "config.yaml"

// FileConfig represents configuration loaded from YAML.
type FileConfig struct {
	Port        string `yaml:"port"`
	LogLevel    string `yaml:"logLevel"`
	DatabaseURL string `yaml:"databaseURL"`
	DataDir     string `yaml:"dataDir"`

	JWTSecret string `yaml:"jwtSecret"`
	TokenTTL  string `yaml:"tokenTTL"`

	RedisAddr                string `yaml:"redisAddr"`
	RedisPassword            string `yaml:"redisPassword"`
	LoginRateLimitPerMinute  int    `yaml:"loginRateLimitPerMinute"`
	VerifyRateLimitPerMinute int    `yaml:"verifyRateLimitPerMinute"`
	AIRateLimitPerMinute     int    `yaml:"aiRateLimitPerMinute"`

	UploadDir      string `yaml:"uploadDir"`
	UploadBaseURL  string `yaml:"uploadBaseURL"`
	UploadMaxBytes int64  `yaml:"uploadMaxBytes"`

	MinioEndpoint  string `yaml:"minioEndpoint"`
	MinioAccessKey string `yaml:"minioAccessKey"`
	MinioSecretKey string `yaml:"minioSecretKey"`
	MinioBucket    string `yaml:"minioBucket"`
	MinioUseSSL    bool   `yaml:"minioUseSSL"`
	MinioPublicURL string `yaml:"minioPublicURL"`

	GeminiAPIKey  string `yaml:"geminiApiKey"`
	GeminiModel   string `yaml:"geminiModel"`
	OpenAIBaseURL string `yaml:"openAIBaseURL"`
	OpenAIAPIKey  string `yaml:"openAIApiKey"`
	OpenAIModel   string `yaml:"openAIModel"`

	CoupleNames    string `yaml:"coupleNames"`
	CoupleStory    string `yaml:"coupleStory"`
	VerifyQuestion string `yaml:"verifyQuestion"`
	VerifyAnswer   string `yaml:"verifyAnswer"`

	AllowedOrigin  string   `yaml:"allowedOrigin"`
	TrustedProxies []string `yaml:"trustedProxies"`
}

// Load reads config from path (defaults to config.yaml).
func Load(path string) (FileConfig, error) {
	cfg := FileConfig{}
	if path == "" {
		path = ConfigPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	// Override with environment variables
	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.DatabaseURL = v
	}
	if v := os.Getenv("DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.JWTSecret = v
	}
	if v := os.Getenv("TOKEN_TTL"); v != "" {
		cfg.TokenTTL = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.RedisAddr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.RedisPassword = v
	}
	if v := os.Getenv("UPLOAD_DIR"); v != "" {
		cfg.UploadDir = v
	}
	if v := os.Getenv("UPLOAD_BASE_URL"); v != "" {
		cfg.UploadBaseURL = v
	}
	if v := os.Getenv("UPLOAD_MAX_BYTES"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.UploadMaxBytes = n
		}
	}
	if v := os.Getenv("MINIO_ENDPOINT"); v != "" {
		cfg.MinioEndpoint = v
	}
	if v := os.Getenv("MINIO_ACCESS_KEY"); v != "" {
		cfg.MinioAccessKey = v
	}
	if v := os.Getenv("MINIO_SECRET_KEY"); v != "" {
		cfg.MinioSecretKey = v
	}
	if v := os.Getenv("MINIO_BUCKET"); v != "" {
		cfg.MinioBucket = v
	}
	if v := os.Getenv("MINIO_PUBLIC_URL"); v != "" {
		cfg.MinioPublicURL = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.GeminiAPIKey = v
	}
	if v := os.Getenv("GEMINI_MODEL"); v != "" {
		cfg.GeminiModel = v
	}
	if v := os.Getenv("OPENAI_BASE_URL"); v != "" {
		cfg.OpenAIBaseURL = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.OpenAIAPIKey = v
	}
	if v := os.Getenv("OPENAI_MODEL"); v != "" {
		cfg.OpenAIModel = v
	}
	if v := os.Getenv("VERIFY_QUESTION"); v != "" {
		cfg.VerifyQuestion = v
	}
	if v := os.Getenv("VERIFY_ANSWER"); v != "" {
		cfg.VerifyAnswer = v
	}
	if v := os.Getenv("ALLOWED_ORIGIN"); v != "" {
		cfg.AllowedOrigin = v
	}
	if err := validateConfig(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func validateConfig(cfg FileConfig) error {
	if cfg.Port == "" {
		return errors.New("config: port is required (set in config.yaml)")
	}
	// Tokens must never fall back to a baked-in secret.
	if strings.TrimSpace(cfg.JWTSecret) == "" {
		return errors.New("config: jwtSecret is required (set JWT_SECRET)")
	}
	if strings.TrimSpace(cfg.VerifyQuestion) == "" || strings.TrimSpace(cfg.VerifyAnswer) == "" {
		return errors.New("config: verifyQuestion and verifyAnswer are required")
	}
	if cfg.DatabaseURL == "" && cfg.DataDir == "" {
		return errors.New("config: one of databaseURL or dataDir is required")
	}
	if cfg.MinioEndpoint != "" {
		if cfg.MinioAccessKey == "" || cfg.MinioSecretKey == "" || cfg.MinioBucket == "" {
			return errors.New("config: minio endpoint requires access key, secret key and bucket")
		}
	} else if cfg.UploadDir == "" {
		return errors.New("config: uploadDir is required when minio is not configured")
	}
	if cfg.UploadMaxBytes < 0 {
		return errors.New("config: uploadMaxBytes must be >= 0")
	}
	if cfg.LoginRateLimitPerMinute < 0 || cfg.VerifyRateLimitPerMinute < 0 || cfg.AIRateLimitPerMinute < 0 {
		return errors.New("config: rate limits must be >= 0")
	}
	return nil
}

// ParseTokenTTL parses the optional token TTL duration string.
func ParseTokenTTL(ttlStr string) (time.Duration, error) {
	if ttlStr == "" {
		return 0, nil
	}
	dur, err := time.ParseDuration(ttlStr)
	if err != nil {
		return 0, fmt.Errorf("invalid tokenTTL duration: %w", err)
	}
	return dur, nil
}
