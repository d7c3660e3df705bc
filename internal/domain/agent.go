package domain

// TaskRequest asks an agent to handle a natural-language task description.
// Context carries tool parameters keyed by name; tools apply their own
// defaults for missing keys.
type TaskRequest struct {
	Description string         `json:"description"`
	Context     map[string]any `json:"context,omitempty"`
}

// TaskResult is the outcome of dispatching a task to an agent.
type TaskResult struct {
	Agent  string `json:"agent"`
	Tool   string `json:"tool"`
	Output string `json:"output"`
	// Data carries the structured result for tools that produce one
	// (calculators, projections); template tools leave it nil.
	Data any `json:"data,omitempty"`
}

// AgentInfo describes a registered agent for listings.
type AgentInfo struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Role        string   `json:"role"`
	Description string   `json:"description"`
	Tools       []string `json:"tools"`
}
