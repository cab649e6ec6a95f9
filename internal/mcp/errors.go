package mcp

import (
	"errors"
	"fmt"

	"github.com/rpggio/reel/internal/domain/project"
	"github.com/rpggio/reel/internal/repository"
)

var errProjectNotFound = errors.New("project not found")

// APIError represents an MCP tool error.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	if e.RecoveryHint != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.RecoveryHint)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// MapError maps domain errors to MCP error codes. Unknown errors pass
// through unchanged.
func MapError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, errProjectNotFound), errors.Is(err, repository.ErrNotFound):
		return &APIError{Code: "PROJECT_NOT_FOUND", Message: "project not found", RecoveryHint: "Call list_projects to find valid IDs"}
	case errors.Is(err, project.ErrInvalidCatalog):
		return &APIError{Code: "INVALID_CATALOG", Message: err.Error()}
	default:
		return err
	}
}
