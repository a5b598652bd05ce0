package types

import "github.com/m-mizutani/goerr/v2"

// GenerationStatus represents the state of a yearbook generation record
type GenerationStatus string

const (
	GenerationStatusGenerating GenerationStatus = "generating"
	GenerationStatusCompleted  GenerationStatus = "completed"
	GenerationStatusFailed     GenerationStatus = "failed"
)

// AllGenerationStatuses returns all valid generation statuses
func AllGenerationStatuses() []GenerationStatus {
	return []GenerationStatus{
		GenerationStatusGenerating,
		GenerationStatusCompleted,
		GenerationStatusFailed,
	}
}

// IsValid checks if the generation status is valid
func (s GenerationStatus) IsValid() bool {
	switch s {
	case GenerationStatusGenerating,
		GenerationStatusCompleted,
		GenerationStatusFailed:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the status is a terminal state
func (s GenerationStatus) IsTerminal() bool {
	return s == GenerationStatusCompleted || s == GenerationStatusFailed
}

// String returns the string representation of the generation status
func (s GenerationStatus) String() string {
	return string(s)
}

// ParseGenerationStatus parses a string into a GenerationStatus
func ParseGenerationStatus(s string) (GenerationStatus, error) {
	status := GenerationStatus(s)
	if !status.IsValid() {
		return "", goerr.New("invalid generation status", goerr.V("status", s))
	}
	return status, nil
}
