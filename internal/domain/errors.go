package domain

import "fmt"

// Error types for consistent error handling across the agency.

// ErrNotFound indicates a resource was not found.
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ErrExternalService indicates a failure in an external collaborator call.
type ErrExternalService struct {
	Service string
	Err     error
}

func (e *ErrExternalService) Error() string {
	return fmt.Sprintf("external service error [%s]: %v", e.Service, e.Err)
}

func (e *ErrExternalService) Unwrap() error {
	return e.Err
}

// ErrTimeout indicates an operation exceeded its deadline.
type ErrTimeout struct {
	Operation string
}

func (e *ErrTimeout) Error() string {
	return fmt.Sprintf("operation timed out: %s", e.Operation)
}

// ErrCircuitOpen indicates the circuit breaker is open.
type ErrCircuitOpen struct {
	Service string
}

func (e *ErrCircuitOpen) Error() string {
	return fmt.Sprintf("circuit breaker open for service: %s", e.Service)
}

// ErrValidation indicates malformed or out-of-range calculator input.
// Calculators return it as a value, never panic; handlers map it to 400
// and agents embed its message into their textual result.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error on '%s': %s", e.Field, e.Message)
}

// ErrComputation indicates an unexpected numeric failure mid-calculation.
// It is caught at the calculator boundary; the accompanying result carries
// zeroed numeric fields.
type ErrComputation struct {
	Operation string
	Message   string
}

func (e *ErrComputation) Error() string {
	return fmt.Sprintf("computation error in %s: %s", e.Operation, e.Message)
}

// ErrNoTool indicates no tool matched a task description. Callers must
// treat this as a neutral outcome, not a failure.
type ErrNoTool struct {
	Agent string
	Task  string
}

func (e *ErrNoTool) Error() string {
	return fmt.Sprintf("no suitable tool found for agent %s", e.Agent)
}

// ErrUnauthorized indicates invalid credentials or token.
type ErrUnauthorized struct {
	Message string
}

func (e *ErrUnauthorized) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "unauthorized"
}

// ErrConflict indicates an operation not permitted in the current pipeline stage.
type ErrConflict struct {
	Message string
}

func (e *ErrConflict) Error() string {
	return e.Message
}
