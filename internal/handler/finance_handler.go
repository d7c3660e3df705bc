package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/felipeOliveira-1/fstech-agency/internal/domain"
	"github.com/felipeOliveira-1/fstech-agency/internal/finance"
	"github.com/felipeOliveira-1/fstech-agency/internal/infra/observability"

	"go.uber.org/zap"
)

// ============================================================
// Financial calculators
// ============================================================

func roiHandler(metrics *observability.Metrics, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, span := tracer.Start(r.Context(), "POST /v1/finance/roi")
		defer span.End()

		var apiReq struct {
			ProjectCost    float64   `json:"project_cost"`
			AnnualBenefits []float64 `json:"annual_benefits"`
			DiscountRate   *float64  `json:"discount_rate,omitempty"`
			DurationYears  *int      `json:"duration_years,omitempty"`
		}
		if err := json.NewDecoder(r.Body).Decode(&apiReq); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		discountRate := finance.DefaultDiscountRate
		if apiReq.DiscountRate != nil {
			discountRate = *apiReq.DiscountRate
		}
		durationYears := finance.DefaultDurationYears
		if apiReq.DurationYears != nil {
			durationYears = *apiReq.DurationYears
		}

		start := time.Now()
		result, err := finance.CalculateROI(apiReq.ProjectCost, apiReq.AnnualBenefits, discountRate, durationYears)
		metrics.RecordCalcDuration("roi", time.Since(start))
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

func paybackHandler(metrics *observability.Metrics, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, span := tracer.Start(r.Context(), "POST /v1/finance/payback")
		defer span.End()

		var apiReq struct {
			InitialInvestment float64  `json:"initial_investment"`
			MonthlyBenefits   float64  `json:"monthly_benefits"`
			ConsiderTimeValue *bool    `json:"consider_time_value,omitempty"`
			DiscountRate      *float64 `json:"discount_rate,omitempty"`
		}
		if err := json.NewDecoder(r.Body).Decode(&apiReq); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		considerTimeValue := true
		if apiReq.ConsiderTimeValue != nil {
			considerTimeValue = *apiReq.ConsiderTimeValue
		}
		discountRate := finance.DefaultPaybackDiscount
		if apiReq.DiscountRate != nil {
			discountRate = *apiReq.DiscountRate
		}

		start := time.Now()
		result, err := finance.AnalyzePayback(apiReq.InitialInvestment, apiReq.MonthlyBenefits, considerTimeValue, discountRate)
		metrics.RecordCalcDuration("payback", time.Since(start))
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

func costReductionHandler(metrics *observability.Metrics, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, span := tracer.Start(r.Context(), "POST /v1/finance/cost-reduction")
		defer span.End()

		var apiReq struct {
			CurrentCosts      map[string]float64 `json:"current_costs,omitempty"`
			SolutionImpact    map[string]float64 `json:"solution_impact,omitempty"`
			TimeHorizonMonths *int               `json:"time_horizon_months,omitempty"`
		}
		if err := json.NewDecoder(r.Body).Decode(&apiReq); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		timeHorizon := 12
		if apiReq.TimeHorizonMonths != nil {
			timeHorizon = *apiReq.TimeHorizonMonths
		}

		start := time.Now()
		result := finance.EstimateCostReduction(apiReq.CurrentCosts, apiReq.SolutionImpact, timeHorizon)
		metrics.RecordCalcDuration("cost_reduction", time.Since(start))

		writeJSON(w, http.StatusOK, result)
	}
}

func pricingHandler(metrics *observability.Metrics, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, span := tracer.Start(r.Context(), "POST /v1/finance/pricing")
		defer span.End()

		var apiReq struct {
			EffortHours      float64  `json:"effort_hours"`
			ComplexityLevel  string   `json:"complexity_level"`
			MarginPercentage *float64 `json:"margin_percentage,omitempty"`
			BaseHourlyRate   *float64 `json:"base_hourly_rate,omitempty"`
		}
		if err := json.NewDecoder(r.Body).Decode(&apiReq); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		levelInput := apiReq.ComplexityLevel
		if levelInput == "" {
			levelInput = string(domain.ComplexityMedium)
		}
		level, err := domain.ParseComplexity(levelInput)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}

		margin := 20.0
		if apiReq.MarginPercentage != nil {
			margin = *apiReq.MarginPercentage
		}
		baseRate := finance.BaseHourlyRateBRL
		if apiReq.BaseHourlyRate != nil {
			baseRate = *apiReq.BaseHourlyRate
		}

		start := time.Now()
		quote, err := finance.CalculateProposalPrice(apiReq.EffortHours, level, margin, baseRate)
		metrics.RecordCalcDuration("pricing", time.Since(start))
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}

		writeJSON(w, http.StatusOK, quote)
	}
}
