package services

import (
	"errors"

	"carcatalog-api/repositories"
)

func isNotFound(err error) bool {
	return errors.Is(err, repositories.ErrNotFound)
}
