package command

import (
	"net/http"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-tokenstore/core"
)

func commandDependencyError(message string) error {
	return goerrors.New(message, goerrors.CategoryInternal).
		WithCode(http.StatusInternalServerError).
		WithTextCode(core.TokenStoreErrorInternal)
}

func commandValidationError(field string, message string) error {
	return goerrors.NewValidation("command: validation failed", goerrors.FieldError{
		Field:   field,
		Message: message,
	}).
		WithCode(http.StatusBadRequest).
		WithTextCode(core.TokenStoreErrorBadInput).
		WithSeverity(goerrors.SeverityError)
}

// commandWrapValidation reports err as a validation failure on field while
// keeping it reachable with errors.Is.
func commandWrapValidation(err error, field string, message string) error {
	if err == nil {
		return nil
	}
	rich := goerrors.NewValidation(message, goerrors.FieldError{
		Field:   field,
		Message: core.ErrMissingIdentity.Error(),
	}).
		WithCode(http.StatusBadRequest).
		WithTextCode(core.TokenStoreErrorMissingIdentity).
		WithSeverity(goerrors.SeverityError)
	rich.Source = err
	return rich
}
