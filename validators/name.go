package validators

import (
	"errors"
	"strings"
)

var (
	ErrNameEmpty    = errors.New("name can't be empty")
	ErrNameTooShort = errors.New("name must be at least 2 characters long")
	ErrNameTooLong  = errors.New("name can't be longer than 50 characters")
)

// NameValidator checks a person's first or last name
func NameValidator(n string) error {
	n = strings.TrimSpace(n)

	if n == "" {
		return ErrNameEmpty
	}

	if len(n) < 2 {
		return ErrNameTooShort
	}

	if len(n) > 50 {
		return ErrNameTooLong
	}

	return nil
}
