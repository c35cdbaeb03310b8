package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Domain error taxonomy. Controllers translate these to HTTP statuses
// in a single place (utils.RespondError); everything not listed here
// surfaces as an internal error.
var (
	ErrNotFound        = errors.New("record not found")
	ErrDuplicateName   = errors.New("name already exists")
	ErrInvalidArgument = errors.New("invalid argument")
)

// mapError classifies a gorm error into the domain taxonomy.
// Constraint violations from concurrent writers are deliberately left
// unclassified: they surface as internal errors.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	return err
}
