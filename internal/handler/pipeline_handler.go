package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/felipeOliveira-1/fstech-agency/internal/service"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// ============================================================
// Sales pipeline
// ============================================================

func createLeadHandler(pipeline *service.Pipeline, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /v1/pipeline/leads")
		defer span.End()

		var apiReq service.LeadRequest
		if err := json.NewDecoder(r.Body).Decode(&apiReq); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		state, err := pipeline.CreateLead(ctx, apiReq)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}

		writeJSON(w, http.StatusCreated, state)
	}
}

func getPipelineHandler(pipeline *service.Pipeline, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/pipeline/{id}")
		defer span.End()

		id := chi.URLParam(r, "id")
		span.SetAttributes(attribute.String("pipeline.id", id))

		state, err := pipeline.Get(ctx, id)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}

		writeJSON(w, http.StatusOK, state)
	}
}

func scheduleMeetingHandler(pipeline *service.Pipeline, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /v1/pipeline/{id}/meeting")
		defer span.End()

		id := chi.URLParam(r, "id")
		span.SetAttributes(attribute.String("pipeline.id", id))

		var apiReq struct {
			Start           string `json:"start"`
			DurationMinutes int    `json:"duration_minutes,omitempty"`
		}
		if err := json.NewDecoder(r.Body).Decode(&apiReq); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		start, err := time.Parse(time.RFC3339, apiReq.Start)
		if err != nil {
			writeError(w, http.StatusBadRequest, "start must be an RFC3339 timestamp")
			return
		}

		state, err := pipeline.ScheduleMeeting(ctx, id, start, apiReq.DurationMinutes)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}

		writeJSON(w, http.StatusOK, state)
	}
}

func analyzeBriefingHandler(pipeline *service.Pipeline, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /v1/pipeline/{id}/briefing")
		defer span.End()

		id := chi.URLParam(r, "id")
		span.SetAttributes(attribute.String("pipeline.id", id))

		var apiReq struct {
			Text string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&apiReq); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		state, err := pipeline.AnalyzeBriefing(ctx, id, apiReq.Text)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}

		writeJSON(w, http.StatusOK, state)
	}
}

func composeProposalHandler(pipeline *service.Pipeline, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /v1/pipeline/{id}/proposal")
		defer span.End()

		id := chi.URLParam(r, "id")
		span.SetAttributes(attribute.String("pipeline.id", id))

		var apiReq service.ProposalOptions
		if r.ContentLength > 0 {
			if err := json.NewDecoder(r.Body).Decode(&apiReq); err != nil {
				writeError(w, http.StatusBadRequest, "invalid request body")
				return
			}
		}

		state, err := pipeline.ComposeProposal(ctx, id, apiReq)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}

		writeJSON(w, http.StatusOK, state)
	}
}

func advancePipelineHandler(pipeline *service.Pipeline, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /v1/pipeline/{id}/advance")
		defer span.End()

		id := chi.URLParam(r, "id")
		span.SetAttributes(attribute.String("pipeline.id", id))

		state, err := pipeline.Advance(ctx, id)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}

		writeJSON(w, http.StatusOK, state)
	}
}
