package service

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyFromURL(t *testing.T) {
	viper.Set("aws.public_url", "")

	key, err := keyFromURL("https://bucket.s3.eu-central-1.amazonaws.com/products/abc123.png")
	require.NoError(t, err)
	assert.Equal(t, "products/abc123.png", key)

	_, err = keyFromURL("https://bucket.s3.eu-central-1.amazonaws.com/")
	assert.Error(t, err)
}

func TestKeyFromURLStripsBasePath(t *testing.T) {
	viper.Set("aws.public_url", "https://cdn.example.com/assets")
	t.Cleanup(func() { viper.Set("aws.public_url", "") })

	// The CDN prefix belongs to the base URL, not to the object key
	key, err := keyFromURL("https://cdn.example.com/assets/products/abc123.png")
	require.NoError(t, err)
	assert.Equal(t, "products/abc123.png", key)

	// A trailing slash on the configured base changes nothing
	viper.Set("aws.public_url", "https://cdn.example.com/assets/")

	key, err = keyFromURL("https://cdn.example.com/assets/products/abc123.png")
	require.NoError(t, err)
	assert.Equal(t, "products/abc123.png", key)
}
