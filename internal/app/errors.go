package app

import (
	"errors"

	"github.com/jsamuelsen11/go-todo-service/internal/domain"
)

func isClientError(err error) bool {
	return errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrCapacityExceeded)
}
