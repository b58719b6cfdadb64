package app

import (
	"fmt"
	"strings"

	"ourstory/internal/store"
	"ourstory/internal/uploads"
	"ourstory/pkg/ai"
	"ourstory/pkg/auth"
)

// Config holds runtime configuration for the core application.
type Config struct {
	DatabaseURL string
	DataDir     string
	Store       store.Store

	Tokens  *auth.Tokens
	Uploads uploads.Store

	// Generator is nil when no AI provider is configured; caption and
	// assistant flows then use their fallbacks.
	Generator     ai.TextGenerator
	GeneratorName string

	CoupleNames string
	CoupleStory string

	VerifyQuestion string
	VerifyAnswer   string
}

// App is the core application service wiring together storage, auth and
// the assistant flows.
type App struct {
	store   store.Store
	tokens  *auth.Tokens
	uploads uploads.Store

	generator     ai.TextGenerator
	generatorName string

	coupleNames string
	coupleStory string

	verifyQuestion string
	verifyAnswer   string
}

// New constructs the application. When cfg.Store is nil the store is
// built from DatabaseURL (Postgres) or DataDir (JSON files), in that
// order of preference.
func New(cfg Config) (*App, error) {
	dataStore := cfg.Store
	if dataStore == nil {
		var err error
		switch {
		case cfg.DatabaseURL != "":
			dataStore, err = store.NewGormStore(cfg.DatabaseURL)
			if err != nil {
				return nil, fmt.Errorf("init postgres store: %w", err)
			}
		case cfg.DataDir != "":
			dataStore, err = store.NewFileStore(cfg.DataDir)
			if err != nil {
				return nil, fmt.Errorf("init file store: %w", err)
			}
		default:
			return nil, fmt.Errorf("database URL or data dir required")
		}
	}
	if cfg.Tokens == nil {
		return nil, fmt.Errorf("token service required")
	}
	if cfg.Uploads == nil {
		return nil, fmt.Errorf("upload store required")
	}
	if strings.TrimSpace(cfg.VerifyQuestion) == "" || strings.TrimSpace(cfg.VerifyAnswer) == "" {
		return nil, fmt.Errorf("verification question and answer required")
	}
	return &App{
		store:          dataStore,
		tokens:         cfg.Tokens,
		uploads:        cfg.Uploads,
		generator:      cfg.Generator,
		generatorName:  cfg.GeneratorName,
		coupleNames:    cfg.CoupleNames,
		coupleStory:    cfg.CoupleStory,
		verifyQuestion: cfg.VerifyQuestion,
		verifyAnswer:   cfg.VerifyAnswer,
	}, nil
}

// Tokens exposes the token service for the HTTP auth middleware.
func (a *App) Tokens() *auth.Tokens { return a.tokens }

// Uploads exposes the upload store for the upload handler.
func (a *App) Uploads() uploads.Store { return a.uploads }
