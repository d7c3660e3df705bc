package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/felipeOliveira-1/fstech-agency/internal/agent"
	"github.com/felipeOliveira-1/fstech-agency/internal/domain"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// ============================================================
// Agent registry
// ============================================================

func listAgentsHandler(registry *agent.Registry, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, span := tracer.Start(r.Context(), "GET /v1/agents")
		defer span.End()

		writeJSON(w, http.StatusOK, map[string]any{
			"agents": registry.List(),
		})
	}
}

func dispatchTaskHandler(registry *agent.Registry, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /v1/agents/{agent}/tasks")
		defer span.End()

		agentID := chi.URLParam(r, "agent")
		span.SetAttributes(attribute.String("agent.id", agentID))

		var apiReq domain.TaskRequest
		if err := json.NewDecoder(r.Body).Decode(&apiReq); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		result, err := registry.Dispatch(ctx, agentID, apiReq)
		if err != nil {
			// An unmatched description is a neutral outcome, not a failure:
			// the agent simply has no tool for it.
			var noTool *domain.ErrNoTool
			if errors.As(err, &noTool) {
				writeJSON(w, http.StatusOK, map[string]any{
					"agent":   noTool.Agent,
					"routed":  false,
					"message": "Nenhuma ferramenta disponível para esta tarefa",
				})
				return
			}
			handleServiceError(w, err, logger)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"agent":  result.Agent,
			"routed": true,
			"result": result,
		})
	}
}
