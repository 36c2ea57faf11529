package usecase

import (
	"errors"
	"fmt"
	"net/http"

	repo "app/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// repositoryのエラーをHTTPのステータスに対応付ける
func mapRepoError(err error) error {
	switch {
	case errors.Is(err, repo.ErrNotFound):
		return NewHTTPError(http.StatusNotFound, "not found")
	case errors.Is(err, repo.ErrDuplicate):
		return NewHTTPError(http.StatusConflict, "duplicate value")
	case errors.Is(err, repo.ErrInUse):
		return NewHTTPError(http.StatusConflict, "still referenced")
	case errors.Is(err, repo.ErrBadMoneyScale):
		return NewHTTPError(http.StatusUnprocessableEntity, "money value must have at most 2 decimal places")
	default:
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
}
