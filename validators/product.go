package validators

import (
	"errors"
	"strings"
)

var (
	ErrProductFieldsMissing    = errors.New("missing required fields")
	ErrProductPriceNegative    = errors.New("price can't be negative")
	ErrProductQuantityNegative = errors.New("quantity can't be negative")
	ErrProductNameTooLong      = errors.New("name can't be longer than 100 characters")
	ErrProductDescTooLong      = errors.New("description can't be longer than 500 characters")
)

// ProductCreateValidator enforces the rules for a brand new product:
// name, description, price and quantity must all be present, strings
// can't be blank and numbers can't be negative
func ProductCreateValidator(name, description *string, price *float64, quantity *int) error {
	if name == nil || strings.TrimSpace(*name) == "" ||
		description == nil || strings.TrimSpace(*description) == "" ||
		price == nil || quantity == nil {
		return ErrProductFieldsMissing
	}

	if len(strings.TrimSpace(*name)) > 100 {
		return ErrProductNameTooLong
	}

	if len(strings.TrimSpace(*description)) > 500 {
		return ErrProductDescTooLong
	}

	return ProductUpdateValidator(price, quantity)
}

// ProductUpdateValidator re-checks the numeric bounds for whichever
// fields a partial update supplies
func ProductUpdateValidator(price *float64, quantity *int) error {
	if price != nil && *price < 0 {
		return ErrProductPriceNegative
	}

	if quantity != nil && *quantity < 0 {
		return ErrProductQuantityNegative
	}

	return nil
}

// SplitList turns the comma separated form values used for sizes and
// colors into a trimmed slice. Empty input yields an empty slice, not
// a nil one, matching how the fields default in the database
func SplitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{}
	}

	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))

	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}

	return out
}
