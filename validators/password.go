package validators

import "errors"

var (
	ErrPasswordTooShort = errors.New("password must be at least 6 characters long")
	ErrPasswordTooLong  = errors.New("password is too long")
	ErrPasswordEmpty    = errors.New("no password provided")
	ErrPasswordMismatch = errors.New("confirm password does not match password")
)

func PasswordValidator(p string) error {
	if p == "" {
		return ErrPasswordEmpty
	}

	if len(p) < 6 {
		return ErrPasswordTooShort
	}

	if len(p) > 255 {
		return ErrPasswordTooLong
	}

	return nil
}
