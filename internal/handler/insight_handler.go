package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/felipeOliveira-1/fstech-agency/internal/infra/observability"
	"github.com/felipeOliveira-1/fstech-agency/internal/insight"

	"go.uber.org/zap"
)

// ============================================================
// Qualitative analyzers
// ============================================================

func benefitsHandler(metrics *observability.Metrics, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, span := tracer.Start(r.Context(), "POST /v1/insights/benefits")
		defer span.End()

		var apiReq struct {
			BusinessProblem     string `json:"business_problem"`
			SolutionDescription string `json:"solution_description"`
			Industry            string `json:"industry,omitempty"`
			CompanySize         string `json:"company_size,omitempty"`
		}
		if err := json.NewDecoder(r.Body).Decode(&apiReq); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		industry := apiReq.Industry
		if industry == "" {
			industry = "Tecnologia"
		}
		companySize := apiReq.CompanySize
		if companySize == "" {
			companySize = "Média"
		}

		start := time.Now()
		projection := insight.ProjectBenefits(apiReq.BusinessProblem, apiReq.SolutionDescription, industry, companySize)
		metrics.RecordCalcDuration("benefits", time.Since(start))

		writeJSON(w, http.StatusOK, projection)
	}
}

func architectureHandler(metrics *observability.Metrics, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, span := tracer.Start(r.Context(), "POST /v1/insights/architecture")
		defer span.End()

		var apiReq struct {
			RequirementsText string `json:"requirements_text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&apiReq); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		start := time.Now()
		assessment, err := insight.AssessArchitecture(apiReq.RequirementsText)
		metrics.RecordCalcDuration("architecture", time.Since(start))
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}

		writeJSON(w, http.StatusOK, assessment)
	}
}
