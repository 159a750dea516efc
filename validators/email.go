// Package validators holds the input checks the handlers share
package validators

import (
	"errors"
	"net/mail"
)

var (
	ErrEmailEmpty   = errors.New("no email address provided")
	ErrEmailInvalid = errors.New("invalid email address provided")
)

// EmailValidator accepts anything net/mail can parse as an address
func EmailValidator(e string) error {
	if e == "" {
		return ErrEmailEmpty
	}

	if _, err := mail.ParseAddress(e); err != nil {
		return ErrEmailInvalid
	}

	return nil
}
