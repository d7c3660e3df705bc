// Package client holds the HTTP adapters for the agency's external
// collaborators: ClickUp (CRM), Cal.com (scheduling) and the
// OpenAI-compatible text generation API. Every call goes through the
// shared circuit breaker and retry policy.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/felipeOliveira-1/fstech-agency/internal/domain"
	"github.com/felipeOliveira-1/fstech-agency/internal/infra/resilience"

	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var tracer = otel.Tracer("client")

const clickupBaseURL = "https://api.clickup.com/api/v2"

// ClickUp is the CRM adapter. It creates tasks on the agency's CRM list
// and moves them through the pipeline statuses.
type ClickUp struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	listID     string
	cb         *gobreaker.CircuitBreaker
	cfg        resilience.Config
}

// NewClickUp creates a ClickUp client. An empty baseURL falls back to
// the public API; tests point it at a local server.
func NewClickUp(httpClient *http.Client, baseURL, apiKey, listID string, cb *gobreaker.CircuitBreaker, cfg resilience.Config) *ClickUp {
	if baseURL == "" {
		baseURL = clickupBaseURL
	}
	return &ClickUp{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     apiKey,
		listID:     listID,
		cb:         cb,
		cfg:        cfg,
	}
}

type clickupTaskPayload struct {
	Name        string `json:"name"`
	Status      string `json:"status"`
	Description string `json:"description,omitempty"`
	Assignees   []int  `json:"assignees,omitempty"`
}

type clickupTaskResponse struct {
	ID string `json:"id"`
}

// CreateTask opens a CRM task with the initial pipeline status and
// returns its ID.
func (c *ClickUp) CreateTask(ctx context.Context, name, description string, assigneeID int) (string, error) {
	ctx, span := tracer.Start(ctx, "ClickUp.CreateTask")
	defer span.End()
	span.SetAttributes(attribute.String("crm.task_name", name))

	payload := clickupTaskPayload{
		Name:   name,
		Status: domain.CRMStatusNames[domain.StatusOpportunityIdentified],
	}
	if description != "" {
		payload.Description = description
	}
	if assigneeID != 0 {
		payload.Assignees = []int{assigneeID}
	}

	var created clickupTaskResponse
	err := resilience.Execute(ctx, c.cb, c.cfg, func() error {
		url := fmt.Sprintf("%s/list/%s/task", c.baseURL, c.listID)
		return c.doJSON(ctx, http.MethodPost, url, payload, &created)
	})
	if err != nil {
		return "", wrapExternal("clickup", err)
	}
	if created.ID == "" {
		return "", &domain.ErrExternalService{Service: "clickup", Err: fmt.Errorf("task created without id")}
	}
	return created.ID, nil
}

// UpdateStatus moves a task to the display status mapped from statusKey.
func (c *ClickUp) UpdateStatus(ctx context.Context, taskID, statusKey string) error {
	ctx, span := tracer.Start(ctx, "ClickUp.UpdateStatus")
	defer span.End()
	span.SetAttributes(
		attribute.String("crm.task_id", taskID),
		attribute.String("crm.status_key", statusKey),
	)

	statusName, ok := domain.CRMStatusName(statusKey)
	if !ok {
		return &domain.ErrValidation{
			Field:   "status_key",
			Message: fmt.Sprintf("unknown CRM status key %q", statusKey),
		}
	}

	var updated clickupTaskResponse
	err := resilience.Execute(ctx, c.cb, c.cfg, func() error {
		url := fmt.Sprintf("%s/task/%s", c.baseURL, taskID)
		return c.doJSON(ctx, http.MethodPut, url, map[string]string{"status": statusName}, &updated)
	})
	if err != nil {
		return wrapExternal("clickup", err)
	}
	if updated.ID != taskID {
		return &domain.ErrExternalService{Service: "clickup", Err: fmt.Errorf("status update not confirmed for task %s", taskID)}
	}
	return nil
}

// doJSON sends a JSON request with the ClickUp auth header and decodes
// the response into out.
func (c *ClickUp) doJSON(ctx context.Context, method, url string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	// ClickUp v2 takes the raw key, no Bearer prefix.
	req.Header.Set("Authorization", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return &domain.ErrNotFound{Resource: "crm task", ID: url}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("clickup API returned status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// wrapExternal keeps typed domain errors intact and wraps everything
// else as an external service failure.
func wrapExternal(service string, err error) error {
	switch err.(type) {
	case *domain.ErrNotFound, *domain.ErrValidation, *domain.ErrCircuitOpen:
		return err
	}
	return &domain.ErrExternalService{Service: service, Err: err}
}
