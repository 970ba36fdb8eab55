package insighting

import (
	"errors"
	"fmt"
)

var (
	ErrClientNotFound      = errors.New("cliente não encontrado")
	ErrSnapshotUnavailable = errors.New("snapshot do CRM indisponível")
)

// InsightError carrega o código de API junto do erro base
type InsightError struct {
	Err     error
	Code    string
	Details string
}

func (e *InsightError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *InsightError) Unwrap() error {
	return e.Err
}

func NewInsightError(baseErr error, code string, details string) *InsightError {
	return &InsightError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
