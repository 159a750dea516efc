package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringSliceValue(t *testing.T) {
	v, err := StringSlice{"S", "M", "L"}.Value()
	require.NoError(t, err)
	assert.Equal(t, "S,M,L", v)

	v, err = StringSlice{}.Value()
	require.NoError(t, err)
	assert.Equal(t, "", v)

	_, err = StringSlice{"a,b"}.Value()
	assert.Error(t, err)
}

func TestStringSliceScan(t *testing.T) {
	var s StringSlice

	require.NoError(t, s.Scan("red,blue"))
	assert.Equal(t, StringSlice{"red", "blue"}, s)

	require.NoError(t, s.Scan(""))
	assert.Equal(t, StringSlice{}, s)

	require.NoError(t, s.Scan(nil))
	assert.Equal(t, StringSlice{}, s)

	require.NoError(t, s.Scan([]byte("XL")))
	assert.Equal(t, StringSlice{"XL"}, s)
}
