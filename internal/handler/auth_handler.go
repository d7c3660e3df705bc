package handler

import (
	"encoding/json"
	"net/http"

	"github.com/felipeOliveira-1/fstech-agency/internal/service"

	"go.uber.org/zap"
)

// ============================================================
// Authentication
// ============================================================

func issueTokenHandler(auth *service.Authenticator, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, span := tracer.Start(r.Context(), "POST /v1/auth/token")
		defer span.End()

		var apiReq struct {
			APIKey string `json:"api_key"`
		}
		if err := json.NewDecoder(r.Body).Decode(&apiReq); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		token, err := auth.IssueToken(apiReq.APIKey)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{
			"token":      token,
			"token_type": "Bearer",
		})
	}
}
