package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

func TestProductCreateValidator(t *testing.T) {
	tests := []struct {
		name        string
		prodName    *string
		description *string
		price       *float64
		quantity    *int
		wantErr     error
	}{
		{"valid", strPtr("Shirt"), strPtr("Blue shirt"), floatPtr(10), intPtr(5), nil},
		{"zero price and quantity ok", strPtr("Shirt"), strPtr("Blue shirt"), floatPtr(0), intPtr(0), nil},
		{"missing name", nil, strPtr("Blue shirt"), floatPtr(10), intPtr(5), ErrProductFieldsMissing},
		{"blank name", strPtr("   "), strPtr("Blue shirt"), floatPtr(10), intPtr(5), ErrProductFieldsMissing},
		{"missing description", strPtr("Shirt"), nil, floatPtr(10), intPtr(5), ErrProductFieldsMissing},
		{"missing price", strPtr("Shirt"), strPtr("Blue shirt"), nil, intPtr(5), ErrProductFieldsMissing},
		{"missing quantity", strPtr("Shirt"), strPtr("Blue shirt"), floatPtr(10), nil, ErrProductFieldsMissing},
		{"negative price", strPtr("Shirt"), strPtr("Blue shirt"), floatPtr(-1), intPtr(5), ErrProductPriceNegative},
		{"negative quantity", strPtr("Shirt"), strPtr("Blue shirt"), floatPtr(10), intPtr(-1), ErrProductQuantityNegative},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ProductCreateValidator(tt.prodName, tt.description, tt.price, tt.quantity)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestProductUpdateValidator(t *testing.T) {
	assert.NoError(t, ProductUpdateValidator(nil, nil))
	assert.NoError(t, ProductUpdateValidator(floatPtr(5), nil))
	assert.ErrorIs(t, ProductUpdateValidator(floatPtr(-0.01), nil), ErrProductPriceNegative)
	assert.ErrorIs(t, ProductUpdateValidator(nil, intPtr(-3)), ErrProductQuantityNegative)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{}, SplitList(""))
	assert.Equal(t, []string{}, SplitList("   "))
	assert.Equal(t, []string{"S", "M", "L"}, SplitList("S, M ,L"))
	assert.Equal(t, []string{"red"}, SplitList("red"))
}
