package repositories

import (
	"errors"

	"gorm.io/gorm"
)

// translateGORMError maps GORM sentinel errors onto the repository ones.
// Duplicate detection relies on gorm.Config.TranslateError being enabled.
func translateGORMError(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicateKey
	}
	return err
}
