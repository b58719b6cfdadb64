package main

import (
	"log"
	"log/slog"
	"net/http"
	"time"

	"github.com/joho/godotenv"

	"ourstory/internal/app"
	"ourstory/internal/config"
	"ourstory/internal/server"
	"ourstory/internal/uploads"
	"ourstory/internal/util"
	"ourstory/pkg/ai"
	"ourstory/pkg/auth"
)

func main() {
	// .env is optional; env vars override config.yaml either way.
	_ = godotenv.Load()

	cfg, err := config.Load(config.ConfigPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	tokenTTL, err := config.ParseTokenTTL(cfg.TokenTTL)
	if err != nil {
		log.Fatalf("failed to parse token TTL: %v", err)
	}

	logger := util.InitLogger(cfg.LogLevel)

	tokens, err := auth.NewTokens(cfg.JWTSecret, auth.Options{TTL: tokenTTL})
	if err != nil {
		log.Fatalf("failed to init tokens: %v", err)
	}

	uploadStore, uploadsDir, err := buildUploads(cfg)
	if err != nil {
		log.Fatalf("failed to init upload store: %v", err)
	}

	generator, generatorName := buildGenerator(cfg)
	if generator == nil {
		slog.Info("no text provider configured, assistant runs in fallback mode")
	}

	appCore, err := app.New(app.Config{
		DatabaseURL:    cfg.DatabaseURL,
		DataDir:        cfg.DataDir,
		Tokens:         tokens,
		Uploads:        uploadStore,
		Generator:      generator,
		GeneratorName:  generatorName,
		CoupleNames:    cfg.CoupleNames,
		CoupleStory:    cfg.CoupleStory,
		VerifyQuestion: cfg.VerifyQuestion,
		VerifyAnswer:   cfg.VerifyAnswer,
	})
	if err != nil {
		log.Fatalf("failed to init app: %v", err)
	}

	trusted, err := util.NewTrustedProxies(cfg.TrustedProxies)
	if err != nil {
		log.Fatalf("failed to parse trusted proxies: %v", err)
	}

	httpServer, err := server.New(server.Config{
		App:                      appCore,
		RedisAddr:                cfg.RedisAddr,
		RedisPassword:            cfg.RedisPassword,
		LoginRateLimitPerMinute:  cfg.LoginRateLimitPerMinute,
		VerifyRateLimitPerMinute: cfg.VerifyRateLimitPerMinute,
		AIRateLimitPerMinute:     cfg.AIRateLimitPerMinute,
		MaxUploadBytes:           cfg.UploadMaxBytes,
		UploadsDir:               uploadsDir,
		AllowedOrigin:            cfg.AllowedOrigin,
		TrustedProxies:           trusted,
	})
	if err != nil {
		log.Fatalf("failed to init server: %v", err)
	}

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:         addr,
		Handler:      httpServer.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	slog.Info("server listening", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "err", err)
	}
}

// buildUploads prefers MinIO when configured and falls back to local
// disk. The returned dir is non-empty only for local storage, where the
// server must serve /uploads/ itself.
func buildUploads(cfg config.FileConfig) (uploads.Store, string, error) {
	if cfg.MinioEndpoint != "" {
		store, err := uploads.NewMinioStore(
			cfg.MinioEndpoint,
			cfg.MinioAccessKey,
			cfg.MinioSecretKey,
			cfg.MinioBucket,
			cfg.MinioPublicURL,
			cfg.MinioUseSSL,
		)
		return store, "", err
	}
	store, err := uploads.NewLocalStore(cfg.UploadDir, cfg.UploadBaseURL)
	if err != nil {
		return nil, "", err
	}
	return store, store.Dir(), nil
}

func buildGenerator(cfg config.FileConfig) (ai.TextGenerator, string) {
	if cfg.GeminiAPIKey != "" {
		client, err := ai.NewGeminiClient(cfg.GeminiAPIKey)
		if err != nil {
			log.Fatalf("failed to init gemini client: %v", err)
		}
		model := cfg.GeminiModel
		if model == "" {
			model = "gemini-pro"
		}
		return ai.NewGeminiGenerator(client, model), model
	}
	if cfg.OpenAIBaseURL != "" {
		return ai.NewOpenAICompatGenerator(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.OpenAIModel), cfg.OpenAIModel
	}
	return nil, ""
}
