package query

import (
	"net/http"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-tokenstore/core"
)

func queryDependencyError(message string) error {
	return goerrors.New(message, goerrors.CategoryInternal).
		WithCode(http.StatusInternalServerError).
		WithTextCode(core.TokenStoreErrorInternal)
}

func queryValidationError(field string, message string) error {
	return goerrors.NewValidation("query: validation failed", goerrors.FieldError{
		Field:   field,
		Message: message,
	}).
		WithCode(http.StatusBadRequest).
		WithTextCode(core.TokenStoreErrorBadInput).
		WithSeverity(goerrors.SeverityError)
}

// queryWrapValidation reports err as a validation failure on field while
// keeping it reachable with errors.Is.
func queryWrapValidation(err error, field string, message string) error {
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
