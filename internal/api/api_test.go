package api_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/devraj/portfolio-v2/backend/config"
	"github.com/devraj/portfolio-v2/backend/internal/api"
	"github.com/devraj/portfolio-v2/backend/internal/router"
	"github.com/devraj/portfolio-v2/backend/internal/service"
	"github.com/devraj/portfolio-v2/backend/internal/testhelpers"
)

// setupTestRouter builds the full application router against an in-memory
// database and a temp upload dir.
func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB, *service.AuthService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupTestDatabase(t)
	uploadDir := t.TempDir()

	cfg := &config.Config{
		UploadDir:      uploadDir,
		AllowedOrigins: []string{"*"},
	}

	localStore, err := service.NewLocalImageStore(uploadDir)
	require.NoError(t, err)

	authService := service.NewAuthService(db, "test-secret")
	// Empty SMTP config logs notifications instead of sending them.
	emailService := service.NewEmailService(&config.Config{})
	projectService := service.NewProjectService(db, localStore.Dir())
	messageService := service.NewMessageService(db, emailService)
	profileService := service.NewProfileService(db)

	r := router.SetupRouter(cfg, db,
		api.NewAuthHandler(authService),
		api.NewProjectHandler(projectService, nil, localStore),
		api.NewMessageHandler(messageService),
		api.NewProfileHandler(profileService, localStore),
		authService,
	)

	return r, db, authService
}

// adminToken registers an admin and returns a valid bearer token value.
func adminToken(t *testing.T, authService *service.AuthService) string {
	t.Helper()
	if _, err := authService.Register("admin@example.com", "Str0ng!pass"); err != nil {
		t.Fatalf("failed to register admin: %v", err)
	}
	token, err := authService.Login("admin@example.com", "Str0ng!pass")
	if err != nil {
		t.Fatalf("failed to log in admin: %v", err)
	}
	return token
}

// postJSON sends a JSON POST, optionally authenticated.
func postJSON(r http.Handler, path, body, token string) *httptest.ResponseRecorder {
	return postJSONWithMethod(r, "POST", path, body, token)
}

func postJSONWithMethod(r http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// multipartBody builds a multipart form with the given fields and an optional
// file part.
func multipartBody(t *testing.T, fields map[string]string, fileField, fileName string, fileContent []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for key, value := range fields {
		require.NoError(t, w.WriteField(key, value))
	}
	if fileField != "" {
		fw, err := w.CreateFormFile(fileField, fileName)
		require.NoError(t, err)
		_, err = fw.Write(fileContent)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}
