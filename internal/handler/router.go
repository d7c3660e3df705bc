package handler

import (
	"net/http"
	"time"

	"github.com/felipeOliveira-1/fstech-agency/internal/agent"
	"github.com/felipeOliveira-1/fstech-agency/internal/domain"
	"github.com/felipeOliveira-1/fstech-agency/internal/infra/observability"
	"github.com/felipeOliveira-1/fstech-agency/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("handler")

// NewRouter creates the HTTP router with all routes and middleware.
// Mutating pipeline routes require a bearer token from POST /v1/auth/token.
func NewRouter(
	registry *agent.Registry,
	pipeline *service.Pipeline,
	auth *service.Authenticator,
	metrics *observability.Metrics,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// --- Middleware ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(observability.ZapLoggerMiddleware(logger))
	r.Use(observability.TracingMiddleware)
	r.Use(RequestMetricsMiddleware(metrics))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/ping"))

	// --- Operational endpoints ---
	r.Get("/healthz", healthzHandler())
	r.Get("/readyz", readyzHandler())
	r.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	// --- API v1 ---
	r.Route("/v1", func(r chi.Router) {

		// =============================================
		// 1. 🔑 Autenticação
		// POST /v1/auth/token
		// =============================================
		r.Post("/auth/token", issueTokenHandler(auth, logger))

		// =============================================
		// 2. 💰 Calculadoras financeiras
		// POST /v1/finance/*
		// =============================================
		r.Route("/finance", func(r chi.Router) {
			r.Post("/roi", roiHandler(metrics, logger))
			r.Post("/payback", paybackHandler(metrics, logger))
			r.Post("/cost-reduction", costReductionHandler(metrics, logger))
			r.Post("/pricing", pricingHandler(metrics, logger))
		})

		// =============================================
		// 3. 📊 Analisadores qualitativos
		// POST /v1/insights/*
		// =============================================
		r.Route("/insights", func(r chi.Router) {
			r.Post("/benefits", benefitsHandler(metrics, logger))
			r.Post("/architecture", architectureHandler(metrics, logger))
		})

		// =============================================
		// 4. 🤖 Agentes
		// GET  /v1/agents
		// POST /v1/agents/{agent}/tasks
		// =============================================
		r.Get("/agents", listAgentsHandler(registry, logger))
		r.Post("/agents/{agent}/tasks", dispatchTaskHandler(registry, logger))

		// =============================================
		// 5. 📈 Pipeline de vendas
		// GET  /v1/pipeline/{id}
		// POST /v1/pipeline/* (autenticado)
		// =============================================
		r.Get("/pipeline/{id}", getPipelineHandler(pipeline, logger))
		r.Group(func(r chi.Router) {
			r.Use(JWTAuthMiddleware(auth, logger))
			r.Post("/pipeline/leads", createLeadHandler(pipeline, logger))
			r.Post("/pipeline/{id}/meeting", scheduleMeetingHandler(pipeline, logger))
			r.Post("/pipeline/{id}/briefing", analyzeBriefingHandler(pipeline, logger))
			r.Post("/pipeline/{id}/proposal", composeProposalHandler(pipeline, logger))
			r.Post("/pipeline/{id}/advance", advancePipelineHandler(pipeline, logger))
		})

		// =============================================
		// 6. 📉 Métricas de uso
		// GET /v1/metrics/usage
		// =============================================
		r.Get("/metrics/usage", usageMetricsHandler(metrics, logger))
	})

	return r
}

// ============================================================
// Operational handlers
// ============================================================

func healthzHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		now := time.Now().Format(time.RFC3339)
		writeJSON(w, http.StatusOK, domain.HealthStatus{
			Status: "healthy",
			Services: []domain.ServiceHealth{
				{Name: "fstech-api", Status: "healthy", LastChecked: now},
			},
		})
	}
}

func readyzHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

func usageMetricsHandler(metrics *observability.Metrics, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, metrics.GetUsageSnapshot())
	}
}
