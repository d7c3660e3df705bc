package domain

import (
	"fmt"
	"strings"
)

// Complexity buckets the architecture score of a requirements text.
type Complexity string

const (
	ComplexityLow    Complexity = "low"
	ComplexityMedium Complexity = "medium"
	ComplexityHigh   Complexity = "high"
)

// complexityAliases maps accepted spellings (including the Portuguese
// vocabulary used by generated documents) to canonical levels.
var complexityAliases = map[string]Complexity{
	"low":    ComplexityLow,
	"baixa":  ComplexityLow,
	"medium": ComplexityMedium,
	"media":  ComplexityMedium,
	"média":  ComplexityMedium,
	"high":   ComplexityHigh,
	"alta":   ComplexityHigh,
}

// ParseComplexity resolves a case-insensitive complexity level.
func ParseComplexity(s string) (Complexity, error) {
	if c, ok := complexityAliases[strings.ToLower(s)]; ok {
		return c, nil
	}
	return "", &ErrValidation{
		Field:   "complexity_level",
		Message: fmt.Sprintf("invalid complexity level %q, use one of: low, medium, high", s),
	}
}

// Multiplier returns the pricing multiplier for the level.
func (c Complexity) Multiplier() float64 {
	switch c {
	case ComplexityMedium:
		return 1.5
	case ComplexityHigh:
		return 2.0
	default:
		return 1.0
	}
}

// Label returns the Portuguese label used in generated reports.
func (c Complexity) Label() string {
	switch c {
	case ComplexityMedium:
		return "media"
	case ComplexityHigh:
		return "alta"
	default:
		return "baixa"
	}
}

// ArchitectureComponent is a technical component detected in a requirements text.
type ArchitectureComponent struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// ComplexityAssessment holds the output of the architecture scorer.
type ComplexityAssessment struct {
	DetectedComponents []ArchitectureComponent `json:"detected_components"`
	TotalScore         int                     `json:"total_score"`
	ComplexityLevel    Complexity              `json:"complexity_level"`
	// Sketch is the markdown bullet list embedded into proposals.
	Sketch string `json:"sketch"`
	// Report is the full human-readable summary.
	Report string `json:"report"`
}
