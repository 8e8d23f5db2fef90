package main

import (
	"context"
	"log"
	"time"

	"github.com/docflowhq/docflow-backend/internal/domain/entities"
	"github.com/docflowhq/docflow-backend/internal/infrastructure/config"
	"github.com/docflowhq/docflow-backend/internal/infrastructure/i18n"
	"github.com/docflowhq/docflow-backend/internal/infrastructure/logging"
	"github.com/docflowhq/docflow-backend/internal/infrastructure/persistence/postgres"
	"github.com/docflowhq/docflow-backend/internal/infrastructure/record"
	"github.com/docflowhq/docflow-backend/internal/services"
)

func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting docflow backend",
		"env", cfg.Env,
		"store_backend", cfg.Store.Backend,
	)

	// Inicializar i18n
	i18nService, err := i18n.NewService(cfg.I18n.LocalesDir, cfg.I18n.DefaultLanguage)
	if err != nil {
		logger.Warn("locales dir unavailable, falling back to embedded locales", "error", err)
		i18nService, err = i18n.NewEmbeddedService(cfg.I18n.DefaultLanguage)
		if err != nil {
			log.Fatal(err)
		}
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// Selecionar o backing do record store
	latency := record.Latency{Write: time.Duration(cfg.Store.WriteLatencyMS) * time.Millisecond}

	var store record.Store
	switch cfg.Store.Backend {
	case config.BackendMemory:
		store = record.NewMemoryStore(latency)
	case config.BackendFile:
		store, err = record.NewFileStore(cfg.Store.DataDir, latency)
		if err != nil {
			logger.Error("failed to open file store", "error", err)
			log.Fatal(err)
		}
	case config.BackendPostgres:
		db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
		if err != nil {
			logger.Error("failed to connect to database", "error", err)
			log.Fatal(err)
		}
		store = postgres.NewRecordStore(db, latency)
	}

	ctx := context.Background()

	// Semear o admin e as coleções na primeira execução
	if err := record.EnsureSeed(ctx, store, logger); err != nil {
		logger.Error("failed to seed record store", "error", err)
		log.Fatal(err)
	}

	// Inicializar repositories
	userRepo := record.NewUserRepository(store)
	companyRepo := record.NewCompanyRepository(store, nil)
	documentRepo := record.NewDocumentRepository(store, nil)

	// Inicializar services
	workflow := services.NewWorkflowService(userRepo, companyRepo, documentRepo, logger)
	views := services.NewViewsService(userRepo, companyRepo, documentRepo, logger)

	// Sanidade: o admin semeado precisa conseguir entrar
	session, err := workflow.Login(ctx, record.SeedAdminEmail, entities.RoleAdmin)
	if err != nil {
		logger.Error("seed admin login failed",
			"error", err,
			"message", services.MessageFor(i18nService, cfg.I18n.DefaultLanguage, err),
		)
		log.Fatal(err)
	}

	listings, err := views.CompanyDirectory(ctx, session)
	if err != nil {
		logger.Error("failed to list companies", "error", err)
		log.Fatal(err)
	}

	documents, err := views.ListAllDocuments(ctx, session)
	if err != nil {
		logger.Error("failed to list documents", "error", err)
		log.Fatal(err)
	}

	logger.Info("record store ready",
		"companies", len(listings),
		"documents", len(documents),
	)
}
