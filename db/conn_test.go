package db

import (
	"path/filepath"
	"testing"

	"lavish/store-api/model"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestNew(t *testing.T) {
	viper.Set("database.driver", "sqlite")
	viper.Set("database.dsn", filepath.Join(t.TempDir(), "test.db"))

	conn, err := New()
	require.NoError(t, err)

	assert.True(t, conn.Migrator().HasTable(&model.User{}))
	assert.True(t, conn.Migrator().HasTable(&model.Product{}))
}

// Two signups racing past the handler's existence check both reach the
// insert, so the unique index on email has to surface as a recognizable
// error for the second one
func TestNewTranslatesDuplicateKey(t *testing.T) {
	viper.Set("database.driver", "sqlite")
	viper.Set("database.dsn", filepath.Join(t.TempDir(), "test.db"))

	conn, err := New()
	require.NoError(t, err)

	first := model.User{
		ID:           "user-a",
		Email:        "deep@example.com",
		FirstName:    "Deep",
		LastName:     "Jadav",
		PasswordHash: "x",
	}
	require.NoError(t, conn.Create(&first).Error)

	second := model.User{
		ID:           "user-b",
		Email:        "deep@example.com",
		FirstName:    "Deep",
		LastName:     "Jadav",
		PasswordHash: "x",
	}
	err = conn.Create(&second).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}
