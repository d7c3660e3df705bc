package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/felipeOliveira-1/fstech-agency/internal/agent"
	"github.com/felipeOliveira-1/fstech-agency/internal/config"
	"github.com/felipeOliveira-1/fstech-agency/internal/domain"
	"github.com/felipeOliveira-1/fstech-agency/internal/handler"
	"github.com/felipeOliveira-1/fstech-agency/internal/infra/cache"
	"github.com/felipeOliveira-1/fstech-agency/internal/infra/client"
	"github.com/felipeOliveira-1/fstech-agency/internal/infra/memory"
	"github.com/felipeOliveira-1/fstech-agency/internal/infra/observability"
	"github.com/felipeOliveira-1/fstech-agency/internal/infra/resilience"
	"github.com/felipeOliveira-1/fstech-agency/internal/port"
	"github.com/felipeOliveira-1/fstech-agency/internal/service"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// --- Load .env file (for local development) ---
	_ = godotenv.Load()

	// --- Config ---
	cfg := config.Load()

	// --- Logger ---
	logger := observability.NewLogger(cfg.LogLevel)
	defer logger.Sync()

	logger.Info("configuration loaded",
		zap.Int("port", cfg.Port),
		zap.String("log_level", cfg.LogLevel),
		zap.Duration("http_timeout", cfg.HTTPTimeout),
		zap.Duration("cache_ttl", cfg.CacheTTL),
		zap.Int("max_retries", cfg.MaxRetries),
		zap.Duration("initial_backoff", cfg.InitialBackoff),
		zap.Duration("token_ttl", cfg.TokenTTL),
	)

	// --- Tracing ---
	shutdown, err := observability.InitTracer(cfg.OTLPEndpoint, "fstech-agency")
	if err != nil {
		logger.Fatal("failed to init tracer", zap.Error(err))
	}
	defer shutdown(context.Background())

	// --- Metrics ---
	metrics := observability.NewMetrics()

	// --- Resilience ---
	resilienceCfg := resilience.Config{
		MaxRetries:     cfg.MaxRetries,
		InitialBackoff: cfg.InitialBackoff,
	}
	cb := resilience.NewCircuitBreaker("external-apis")

	// --- Clients ---
	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}

	var crm port.CRM
	if cfg.ClickUpAPIKey != "" && cfg.ClickUpListID != "" {
		crm = client.NewClickUp(httpClient, "", cfg.ClickUpAPIKey, cfg.ClickUpListID, cb, resilienceCfg)
		logger.Info("clickup CRM enabled", zap.String("list_id", cfg.ClickUpListID))
	} else {
		logger.Warn("clickup CRM not configured, CRM operations unavailable")
	}

	var scheduler port.Scheduler
	if cfg.CalComAPIKey != "" && cfg.CalComEventTypeID != 0 {
		scheduler = client.NewCalCom(httpClient, "", cfg.CalComAPIKey, cfg.CalComEventTypeID, cb, resilienceCfg)
		logger.Info("cal.com scheduler enabled", zap.Int("event_type_id", cfg.CalComEventTypeID))
	} else {
		logger.Warn("cal.com scheduler not configured, meeting booking unavailable")
	}

	var generator port.TextGenerator
	if cfg.OpenAIAPIKey != "" {
		generator = client.NewOpenAI(httpClient, "", cfg.OpenAIAPIKey, cfg.OpenAIModel, cb, resilienceCfg)
		logger.Info("text generation enabled", zap.String("model", cfg.OpenAIModel))
	} else {
		logger.Warn("text generation not configured, using deterministic fallbacks")
	}

	// --- Stores ---
	states := cache.New[domain.PipelineState](cfg.CacheTTL)
	defer states.Close()

	tasks := memory.NewTaskStore()
	subscriptions := memory.NewSubscriptionStore()
	calendar := memory.NewContentCalendarStore()

	// --- Agents ---
	registry := agent.NewRegistry(logger, metrics)
	registry.Register(
		agent.NewROIAnalyst(),
		agent.NewSoftwareArchitect(generator),
		agent.NewDiagnosticConsultant(crm),
		agent.NewTechnicalSpecialist(),
		agent.NewMarketingManager(crm, calendar),
		agent.NewProjectCoordinator(crm, tasks),
		agent.NewAdministrativeSupport(scheduler, subscriptions),
		agent.NewCEO(),
	)

	// --- Services ---
	pipeline := service.NewPipeline(crm, scheduler, generator, states, logger, metrics)

	auth := service.NewAuthenticator(cfg.APIKeyHash, cfg.JWTSecret, cfg.TokenTTL)
	if cfg.APIKeyHash == "" {
		logger.Warn("API_KEY_HASH not set, token issuing disabled")
	}

	// --- Router ---
	router := handler.NewRouter(registry, pipeline, auth, metrics, logger)

	// --- Server ---
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// --- Graceful shutdown ---
	go func() {
		logger.Info("server starting", zap.Int("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced shutdown", zap.Error(err))
	}

	logger.Info("server stopped")
}
