package core

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	goerrors "github.com/goliatone/go-errors"
)

const (
	TokenStoreErrorMissingIdentity = "TOKEN_STORE_MISSING_IDENTITY"
	TokenStoreErrorInvalidToken    = "TOKEN_STORE_INVALID_TOKEN"
	TokenStoreErrorNotFound        = "TOKEN_STORE_NOT_FOUND"
	TokenStoreErrorOperationFailed = "TOKEN_STORE_OPERATION_FAILED"
	TokenStoreErrorBadInput        = "TOKEN_STORE_BAD_INPUT"
	TokenStoreErrorInternal        = "TOKEN_STORE_INTERNAL"
)

// Operation tags attached to storage failures.
const (
	OperationGet       = "get"
	OperationGetByID   = "get-by-id"
	OperationSave      = "save"
	OperationReplace   = "replace"
	OperationDelete    = "delete"
	OperationList      = "list"
	OperationDeleteAll = "delete-all"
)

var (
	ErrMissingIdentity = errors.New("token store: user mail is required")
	ErrInvalidToken    = errors.New("token store: invalid token")
	ErrTokenNotFound   = errors.New("token store: token not found")
)

// StoreOperationError carries the storage failure behind a token store
// operation together with the operation tag.
type StoreOperationError struct {
	Operation string
	Cause     error
}

func (e *StoreOperationError) Error() string {
	if e == nil {
		return "token store: operation failed"
	}
	if e.Cause == nil {
		return fmt.Sprintf("token store: %s failed", e.Operation)
	}
	return fmt.Sprintf("token store: %s failed: %v", e.Operation, e.Cause)
}

func (e *StoreOperationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func MissingIdentityError() error {
	return goerrors.Wrap(ErrMissingIdentity, goerrors.CategoryBadInput, ErrMissingIdentity.Error()).
		WithCode(http.StatusBadRequest).
		WithTextCode(TokenStoreErrorMissingIdentity)
}

func InvalidTokenError(message string) error {
	message = strings.TrimSpace(message)
	if message == "" {
		message = ErrInvalidToken.Error()
	}
	return goerrors.Wrap(ErrInvalidToken, goerrors.CategoryBadInput, message).
		WithCode(http.StatusBadRequest).
		WithTextCode(TokenStoreErrorInvalidToken)
}

func TokenNotFoundError(id string) error {
	return goerrors.Wrap(ErrTokenNotFound, goerrors.CategoryNotFound, ErrTokenNotFound.Error()).
		WithCode(http.StatusNotFound).
		WithTextCode(TokenStoreErrorNotFound).
		WithMetadata(map[string]any{"id": id})
}

// OperationFailedError wraps a storage failure. Errors that already carry a
// token store text code pass through unchanged so preconditions and
// not-found results keep their meaning.
func OperationFailedError(operation string, cause error) error {
	if cause == nil {
		return nil
	}
	if IsTokenStoreError(cause) {
		return cause
	}
	opErr := &StoreOperationError{Operation: operation, Cause: cause}
	return goerrors.Wrap(opErr, goerrors.CategoryInternal, opErr.Error()).
		WithCode(http.StatusInternalServerError).
		WithTextCode(TokenStoreErrorOperationFailed).
		WithMetadata(map[string]any{"operation": operation})
}

func IsTokenStoreError(err error) bool {
	var rich *goerrors.Error
	if !goerrors.As(err, &rich) {
		return false
	}
	return strings.HasPrefix(rich.TextCode, "TOKEN_STORE_")
}

func IsMissingIdentity(err error) bool {
	return errors.Is(err, ErrMissingIdentity)
}

func IsTokenNotFound(err error) bool {
	return errors.Is(err, ErrTokenNotFound)
}

// OperationOf returns the operation tag of a wrapped storage failure, or ""
// when err is not one.
func OperationOf(err error) string {
	var opErr *StoreOperationError
	if errors.As(err, &opErr) {
		return opErr.Operation
	}
	return ""
}
