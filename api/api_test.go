package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"path/filepath"
	"sync"
	"testing"

	"lavish/store-api/model"
	"lavish/store-api/pkg/security"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// fakeImages stands in for the S3 bucket and records what the
// handlers asked it to do
type fakeImages struct {
	mu         sync.Mutex
	uploaded   []string
	deleted    []string
	failUpload bool
}

func (f *fakeImages) Upload(_ context.Context, _ io.Reader, _ int64, _, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failUpload {
		return "", errors.New("bucket unavailable")
	}

	f.uploaded = append(f.uploaded, key)
	return "https://cdn.test/" + key, nil
}

func (f *fakeImages) Delete(_ context.Context, imageURL string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.deleted = append(f.deleted, imageURL)
	return nil
}

func newTestAPI(t *testing.T) (*API, *fakeImages) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	viper.Set("cors.allowed_origins", []string{"http://localhost:3000"})
	viper.Set("upload.max_size", int64(10<<20))

	database, err := gorm.Open(
		sqlite.Open(filepath.Join(t.TempDir(), "test.db")),
		&gorm.Config{TranslateError: true},
	)
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(model.User{}, model.Product{}))

	signer, err := security.NewSigner("test-secret")
	require.NoError(t, err)

	images := &fakeImages{}

	a := &API{
		DB:     database,
		Argon:  security.New(),
		Signer: signer,
		Images: images,
	}
	a.registerRoutes()

	return a, images
}

func doJSON(t *testing.T, a *API, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)
	return w
}

func doMultipart(t *testing.T, a *API, method, path string, fields map[string]string, image []byte, token string) *httptest.ResponseRecorder {
	t.Helper()

	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}

	if image != nil {
		h := textproto.MIMEHeader{}
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, "product.png"))
		h.Set("Content-Type", "image/png")

		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(image)
		require.NoError(t, err)
	}

	require.NoError(t, w.Close())

	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	a.Router.ServeHTTP(rec, req)
	return rec
}

func parseBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func signupUser(t *testing.T, a *API, email string) {
	t.Helper()

	w := doJSON(t, a, http.MethodPost, "/auth/signup", gin.H{
		"firstName":       "Deep",
		"lastName":        "Jadav",
		"email":           email,
		"password":        "secret1",
		"confirmPassword": "secret1",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func loginUser(t *testing.T, a *API, email string) string {
	t.Helper()

	w := doJSON(t, a, http.MethodPost, "/auth/login", gin.H{
		"email":    email,
		"password": "secret1",
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := parseBody(t, w)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

// pngBytes is enough of a PNG for content sniffing to recognize it
var pngBytes = []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0}
