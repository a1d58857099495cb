package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/abhisek/worksheet/internal/render"
	"github.com/abhisek/worksheet/internal/store"
	"github.com/abhisek/worksheet/internal/taskbank"
	"github.com/abhisek/worksheet/internal/variantplan"
	"github.com/abhisek/worksheet/internal/work"
)

// Error codes returned in the error envelope.
const (
	CodeBadRequest        = "bad_request"
	CodeInvalidTemplate   = "invalid_template"
	CodeInsufficientTasks = "insufficient_tasks"
	CodeNotFound          = "not_found"
	CodeTaskMissing       = "task_missing"
	CodeExportUnavailable = "export_unavailable"
	CodeRenderFailed      = "render_failed"
	CodeInternal          = "internal"
)

// apiError is an error with the HTTP status and code it maps to. Details
// carries structured fields for the client.
type apiError struct {
	Status  int
	Code    string
	Err     error
	Details any
}

func (e *apiError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	return fmt.Sprintf("api error (%d)", e.Status)
}

func (e *apiError) Unwrap() error { return e.Err }

func newAPIError(status int, code string, err error) *apiError {
	return &apiError{Status: status, Code: code, Err: err}
}

func badRequest(err error) *apiError {
	return newAPIError(http.StatusBadRequest, CodeBadRequest, err)
}

// classify maps a domain error to its HTTP shape. Structured assembly
// errors keep their fields.
func classify(err error) *apiError {
	var (
		ae           *apiError
		insufficient *variantplan.InsufficientTasksError
		invalid      *variantplan.InvalidTemplateError
		compile      *render.CompileError
	)
	switch {
	case errors.As(err, &ae):
		return ae
	case errors.As(err, &insufficient):
		e := newAPIError(http.StatusUnprocessableEntity, CodeInsufficientTasks, err)
		e.Details = insufficient
		return e
	case errors.As(err, &invalid):
		e := newAPIError(http.StatusBadRequest, CodeInvalidTemplate, err)
		e.Details = invalid
		return e
	case errors.Is(err, work.ErrInvalidEdit), errors.Is(err, variantplan.ErrInvalidCount):
		return badRequest(err)
	case errors.Is(err, store.ErrNotFound):
		return newAPIError(http.StatusNotFound, CodeNotFound, err)
	case errors.Is(err, taskbank.ErrTaskNotFound):
		return newAPIError(http.StatusConflict, CodeTaskMissing, err)
	case errors.Is(err, render.ErrRenderUnavailable):
		return newAPIError(http.StatusServiceUnavailable, CodeExportUnavailable, err)
	case errors.As(err, &compile):
		return newAPIError(http.StatusInternalServerError, CodeRenderFailed, err)
	default:
		return newAPIError(http.StatusInternalServerError, CodeInternal, err)
	}
}
