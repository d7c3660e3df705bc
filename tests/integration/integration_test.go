package integration_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/felipeOliveira-1/fstech-agency/internal/agent"
	"github.com/felipeOliveira-1/fstech-agency/internal/domain"
	"github.com/felipeOliveira-1/fstech-agency/internal/handler"
	"github.com/felipeOliveira-1/fstech-agency/internal/infra/cache"
	"github.com/felipeOliveira-1/fstech-agency/internal/infra/client"
	"github.com/felipeOliveira-1/fstech-agency/internal/infra/memory"
	"github.com/felipeOliveira-1/fstech-agency/internal/infra/observability"
	"github.com/felipeOliveira-1/fstech-agency/internal/infra/resilience"
	"github.com/felipeOliveira-1/fstech-agency/internal/service"

	"go.uber.org/zap"
)

const apiKey = "integration-api-key"

// TestIntegration_SalesFlow spins up mock external services and walks a
// lead through the full sales flow over the HTTP surface.
func TestIntegration_SalesFlow(t *testing.T) {
	// --- Mock ClickUp ---
	var crmStatuses []string
	crmServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodPost && strings.Contains(r.URL.Path, "/list/"):
			json.NewEncoder(w).Encode(map[string]string{"id": "task-integration-1"})
		case r.Method == http.MethodPut && strings.Contains(r.URL.Path, "/task/"):
			var body struct {
				Status string `json:"status"`
			}
			json.NewDecoder(r.Body).Decode(&body)
			crmStatuses = append(crmStatuses, body.Status)
			json.NewEncoder(w).Encode(map[string]string{"id": "task-integration-1"})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer crmServer.Close()

	// --- Mock Cal.com ---
	calServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"booking": map[string]any{
				"id":     4711,
				"uid":    "uid-integration-1",
				"title":  "FSTech Agency - Reunião com Maria Souza",
				"status": "ACCEPTED",
			},
		})
	}))
	defer calServer.Close()

	// --- Wiring ---
	logger := zap.NewNop()
	metrics := observability.NewMetrics()
	resilienceCfg := resilience.Config{MaxRetries: 0, InitialBackoff: time.Millisecond}
	cb := resilience.NewCircuitBreaker("integration")
	httpClient := &http.Client{Timeout: 5 * time.Second}

	crm := client.NewClickUp(httpClient, crmServer.URL, "pk_test", "list-1", cb, resilienceCfg)
	scheduler := client.NewCalCom(httpClient, calServer.URL, "cal_test", 321, cb, resilienceCfg)

	registry := agent.NewRegistry(logger, metrics)
	registry.Register(
		agent.NewROIAnalyst(),
		agent.NewSoftwareArchitect(nil),
		agent.NewDiagnosticConsultant(crm),
		agent.NewTechnicalSpecialist(),
		agent.NewMarketingManager(crm, memory.NewContentCalendarStore()),
		agent.NewProjectCoordinator(crm, memory.NewTaskStore()),
		agent.NewAdministrativeSupport(scheduler, memory.NewSubscriptionStore()),
		agent.NewCEO(),
	)

	states := cache.New[domain.PipelineState](time.Hour)
	defer states.Close()
	pipeline := service.NewPipeline(crm, scheduler, nil, states, logger, metrics)

	hash, err := service.HashAPIKey(apiKey)
	if err != nil {
		t.Fatalf("HashAPIKey: %v", err)
	}
	auth := service.NewAuthenticator(hash, "integration-secret", time.Hour)

	router := handler.NewRouter(registry, pipeline, auth, metrics, logger)
	server := httptest.NewServer(router)
	defer server.Close()

	// --- Token ---
	var tokenResp struct {
		Token string `json:"token"`
	}
	post(t, server, "/v1/auth/token", "", map[string]string{"api_key": apiKey}, http.StatusOK, &tokenResp)
	if tokenResp.Token == "" {
		t.Fatal("empty token")
	}
	token := tokenResp.Token

	// --- Lead ---
	var state domain.PipelineState
	post(t, server, "/v1/pipeline/leads", token, map[string]string{
		"client_name":  "Maria Souza",
		"client_email": "maria@exemplo.com.br",
		"company":      "Clínica Vida Ltda",
		"description":  "Indicação de parceiro",
	}, http.StatusCreated, &state)
	if state.CRMTaskID != "task-integration-1" {
		t.Errorf("CRMTaskID = %q", state.CRMTaskID)
	}

	// --- Meeting ---
	post(t, server, fmt.Sprintf("/v1/pipeline/%s/meeting", state.ID), token, map[string]any{
		"start":            time.Now().Add(72 * time.Hour).UTC().Format(time.RFC3339),
		"duration_minutes": 45,
	}, http.StatusOK, &state)
	if state.Booking == nil || state.Booking.UID != "uid-integration-1" {
		t.Fatalf("unexpected booking: %+v", state.Booking)
	}

	// --- Briefing ---
	post(t, server, fmt.Sprintf("/v1/pipeline/%s/briefing", state.ID), token, map[string]string{
		"text": "A clínica perde horas com agendamento manual de pacientes. Precisamos de uma api rest integrada ao banco de dados, com dashboard e autenticação de usuários.",
	}, http.StatusOK, &state)
	if state.Briefing == nil || state.Briefing.Industry != "Saúde" {
		t.Fatalf("unexpected briefing: %+v", state.Briefing)
	}
	if state.Assessment == nil {
		t.Fatal("Assessment = nil")
	}

	// --- Proposal ---
	post(t, server, fmt.Sprintf("/v1/pipeline/%s/proposal", state.ID), token, nil, http.StatusOK, &state)
	if state.Proposal == nil {
		t.Fatal("Proposal = nil")
	}
	if !strings.Contains(state.Proposal.Markdown, "Proposta Comercial - Clínica Vida Ltda") {
		t.Error("proposal markdown missing title")
	}
	if !strings.Contains(state.Proposal.Markdown, "Análise de Retorno sobre Investimento") {
		t.Error("proposal markdown missing financial analysis section")
	}
	if state.Proposal.HTML == "" {
		t.Error("proposal HTML not rendered")
	}
	if state.Status != "proposta_enviada" {
		t.Errorf("Status = %q, want proposta_enviada", state.Status)
	}

	// --- Advance ---
	post(t, server, fmt.Sprintf("/v1/pipeline/%s/advance", state.ID), token, nil, http.StatusOK, &state)
	if state.Status != "aguardando_resposta" {
		t.Errorf("Status = %q, want aguardando_resposta", state.Status)
	}

	// --- CRM saw every transition with display names ---
	want := []string{"Reunião Agendada", "Reunião Realizada", "Proposta Enviada", "Aguardando Resposta"}
	if len(crmStatuses) != len(want) {
		t.Fatalf("crmStatuses = %v, want %v", crmStatuses, want)
	}
	for i, status := range want {
		if crmStatuses[i] != status {
			t.Errorf("crmStatuses[%d] = %q, want %q", i, crmStatuses[i], status)
		}
	}

	// --- Agent dispatch against the same CRM mock ---
	var dispatchResp struct {
		Routed bool              `json:"routed"`
		Result domain.TaskResult `json:"result"`
	}
	post(t, server, "/v1/agents/consultor-de-diagnostico/tasks", "", map[string]any{
		"description": "Atualizar status crm da oportunidade",
		"context": map[string]any{
			"crm_task_id": state.CRMTaskID,
			"status_key":  "proposta_aceita",
		},
	}, http.StatusOK, &dispatchResp)
	if !dispatchResp.Routed || dispatchResp.Result.Tool != "update_crm_task_status" {
		t.Fatalf("unexpected dispatch: %+v", dispatchResp)
	}
}

// post sends a JSON request to the test server and decodes the response.
func post(t *testing.T, server *httptest.Server, path, token string, body any, wantStatus int, out any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode %s: %v", path, err)
		}
	}
	req, err := http.NewRequest(http.MethodPost, server.URL+path, &buf)
	if err != nil {
		t.Fatalf("request %s: %v", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do %s: %v", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		t.Fatalf("POST %s = %d, want %d", path, resp.StatusCode, wantStatus)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode %s: %v", path, err)
		}
	}
}
