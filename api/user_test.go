package api

import (
	"net/http"
	"testing"

	"lavish/store-api/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignup(t *testing.T) {
	a, _ := newTestAPI(t)

	signupUser(t, a, "a@x.com")

	var user model.User
	require.NoError(t, a.DB.Where("email = ?", "a@x.com").First(&user).Error)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "Deep", user.FirstName)
	assert.NotEqual(t, "secret1", user.PasswordHash)
	assert.NotEmpty(t, user.PasswordHash)

	// Same email again must bounce
	w := doJSON(t, a, http.MethodPost, "/auth/signup", gin.H{
		"firstName":       "Deep",
		"lastName":        "Jadav",
		"email":           "a@x.com",
		"password":        "secret1",
		"confirmPassword": "secret1",
	}, "")
	assert.Equal(t, http.StatusConflict, w.Code)

	var count int64
	require.NoError(t, a.DB.Model(model.User{}).Where("email = ?", "a@x.com").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestSignupValidation(t *testing.T) {
	a, _ := newTestAPI(t)

	tests := []struct {
		name string
		body gin.H
	}{
		{"bad email", gin.H{"firstName": "Deep", "lastName": "Jadav", "email": "nope", "password": "secret1", "confirmPassword": "secret1"}},
		{"short password", gin.H{"firstName": "Deep", "lastName": "Jadav", "email": "a@x.com", "password": "abc", "confirmPassword": "abc"}},
		{"confirm mismatch", gin.H{"firstName": "Deep", "lastName": "Jadav", "email": "a@x.com", "password": "secret1", "confirmPassword": "secret2"}},
		{"missing first name", gin.H{"lastName": "Jadav", "email": "a@x.com", "password": "secret1", "confirmPassword": "secret1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, a, http.MethodPost, "/auth/signup", tt.body, "")
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}

	var count int64
	require.NoError(t, a.DB.Model(model.User{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestLogin(t *testing.T) {
	a, _ := newTestAPI(t)

	signupUser(t, a, "a@x.com")

	// Unknown email
	w := doJSON(t, a, http.MethodPost, "/auth/login", gin.H{"email": "b@x.com", "password": "secret1"}, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Wrong password
	w = doJSON(t, a, http.MethodPost, "/auth/login", gin.H{"email": "a@x.com", "password": "wrong"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NotContains(t, w.Body.String(), "token")

	// Correct credentials return a token that verifies back to the
	// same identity the store holds
	token := loginUser(t, a, "a@x.com")

	userID, email, err := a.Signer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", email)

	var user model.User
	require.NoError(t, a.DB.Where("email = ?", "a@x.com").First(&user).Error)
	assert.Equal(t, user.ID, userID)
}

func TestGetUsers(t *testing.T) {
	a, _ := newTestAPI(t)

	signupUser(t, a, "a@x.com")
	token := loginUser(t, a, "a@x.com")

	// The listing sits behind the gate
	w := doJSON(t, a, http.MethodGet, "/auth/getusers", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, a, http.MethodGet, "/auth/getusers", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	var user model.User
	require.NoError(t, a.DB.Where("email = ?", "a@x.com").First(&user).Error)

	// Never leak credential material
	assert.Contains(t, w.Body.String(), "a@x.com")
	assert.NotContains(t, w.Body.String(), user.PasswordHash)
	assert.NotContains(t, w.Body.String(), "PasswordHash")
}

func TestAuthGate(t *testing.T) {
	a, _ := newTestAPI(t)

	// Missing token
	w := doJSON(t, a, http.MethodGet, "/api/", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Garbage token
	w = doJSON(t, a, http.MethodGet, "/api/", nil, "garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token is invalid")

	// Well formed token for a user that doesn't exist
	ghost, err := a.Signer.Issue("no-such-user", "ghost@x.com")
	require.NoError(t, err)

	w = doJSON(t, a, http.MethodGet, "/api/", nil, ghost)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestBanner(t *testing.T) {
	a, _ := newTestAPI(t)

	w := doJSON(t, a, http.MethodGet, "/", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
}
