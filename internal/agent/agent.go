// Package agent implements the agency's role agents. Each agent owns an
// ordered route table mapping task-description keywords to tools; the
// first route with a matching keyword wins, mirroring how the original
// assistants picked tools. Tool parameters travel in a TaskContext map
// with per-key defaults.
package agent

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/felipeOliveira-1/fstech-agency/internal/domain"
	"github.com/felipeOliveira-1/fstech-agency/internal/infra/observability"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("agent")

// TaskContext holds tool parameters keyed by name. Getters apply the
// caller-supplied default when the key is absent or the wrong shape,
// so tools never fail on missing optional input.
type TaskContext map[string]any

func (tc TaskContext) String(key, def string) string {
	if v, ok := tc[key].(string); ok && v != "" {
		return v
	}
	return def
}

func (tc TaskContext) Float(key string, def float64) float64 {
	switch v := tc[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return def
}

func (tc TaskContext) Int(key string, def int) int {
	switch v := tc[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	}
	return def
}

func (tc TaskContext) Bool(key string, def bool) bool {
	if v, ok := tc[key].(bool); ok {
		return v
	}
	return def
}

// Strings accepts both []string and the []any that JSON decoding
// produces.
func (tc TaskContext) Strings(key string) []string {
	switch v := tc[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// FloatMap accepts both map[string]float64 and the map[string]any that
// JSON decoding produces.
func (tc TaskContext) FloatMap(key string) map[string]float64 {
	switch v := tc[key].(type) {
	case map[string]float64:
		return v
	case map[string]any:
		out := make(map[string]float64, len(v))
		for k, item := range v {
			if f, ok := item.(float64); ok {
				out[k] = f
			}
		}
		return out
	}
	return nil
}

// Time parses an RFC3339 string value; zero time when absent or invalid.
func (tc TaskContext) Time(key string) time.Time {
	if s, ok := tc[key].(string); ok {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// Tool runs one agent capability against a task description and context.
// Output is the human-readable result; data carries the structured form
// when the tool produces one.
type Tool func(ctx context.Context, task string, tc TaskContext) (output string, data any, err error)

// Route binds keywords to a named tool. Routes are evaluated in order;
// a task matches when its lowercased description contains any keyword.
type Route struct {
	Keywords []string
	Tool     string
	Run      Tool
}

// Agent is one agency role with its route table.
type Agent struct {
	id          string
	name        string
	role        string
	description string
	routes      []Route
}

func (a *Agent) ID() string { return a.id }

// Info describes the agent for registry listings.
func (a *Agent) Info() domain.AgentInfo {
	tools := make([]string, len(a.routes))
	for i, r := range a.routes {
		tools[i] = r.Tool
	}
	return domain.AgentInfo{
		ID:          a.id,
		Name:        a.name,
		Role:        a.role,
		Description: a.description,
		Tools:       tools,
	}
}

// match returns the first route whose keywords hit the description.
func (a *Agent) match(description string) (Route, bool) {
	lowered := strings.ToLower(description)
	for _, route := range a.routes {
		for _, kw := range route.Keywords {
			if strings.Contains(lowered, kw) {
				return route, true
			}
		}
	}
	return Route{}, false
}

// Registry holds the registered agents and dispatches tasks to them.
type Registry struct {
	logger  *zap.Logger
	metrics *observability.Metrics
	agents  map[string]*Agent
	order   []string
}

func NewRegistry(logger *zap.Logger, metrics *observability.Metrics) *Registry {
	return &Registry{
		logger:  logger,
		metrics: metrics,
		agents:  make(map[string]*Agent),
	}
}

// Register adds an agent under its ID. Later registrations with the same
// ID replace earlier ones.
func (r *Registry) Register(agents ...*Agent) {
	for _, a := range agents {
		if _, exists := r.agents[a.id]; !exists {
			r.order = append(r.order, a.id)
		}
		r.agents[a.id] = a
	}
}

// List returns the registered agents in registration order.
func (r *Registry) List() []domain.AgentInfo {
	infos := make([]domain.AgentInfo, 0, len(r.order))
	for _, id := range r.order {
		infos = append(infos, r.agents[id].Info())
	}
	return infos
}

// Dispatch routes a task to the named agent. A task no route matches
// returns *domain.ErrNoTool; callers decide whether that is an error.
func (r *Registry) Dispatch(ctx context.Context, agentID string, req domain.TaskRequest) (*domain.TaskResult, error) {
	ctx, span := tracer.Start(ctx, "Registry.Dispatch")
	defer span.End()
	span.SetAttributes(attribute.String("agent.id", agentID))

	a, ok := r.agents[agentID]
	if !ok {
		return nil, &domain.ErrNotFound{Resource: "agent", ID: agentID}
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, &domain.ErrValidation{Field: "description", Message: "task description must not be empty"}
	}

	route, ok := a.match(req.Description)
	if !ok {
		r.metrics.IncrUnrouted(a.id)
		r.logger.Info("no tool matched task",
			zap.String("agent", a.id),
			zap.String("task", req.Description),
		)
		return nil, &domain.ErrNoTool{Agent: a.name, Task: req.Description}
	}
	span.SetAttributes(attribute.String("agent.tool", route.Tool))

	output, data, err := route.Run(ctx, req.Description, TaskContext(req.Context))
	if err != nil {
		r.logger.Warn("tool execution failed",
			zap.String("agent", a.id),
			zap.String("tool", route.Tool),
			zap.Error(err),
		)
		return nil, err
	}

	r.metrics.IncrToolDispatch(a.id, route.Tool)
	r.logger.Info("task dispatched",
		zap.String("agent", a.id),
		zap.String("tool", route.Tool),
	)
	return &domain.TaskResult{
		Agent:  a.name,
		Tool:   route.Tool,
		Output: output,
		Data:   data,
	}, nil
}

func validationErr(field, message string) error {
	return &domain.ErrValidation{Field: field, Message: message}
}

// sortedKeys is shared by template tools that render maps.
func sortedKeys[M map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
