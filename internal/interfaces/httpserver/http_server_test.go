package httpserver_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tomyshh/frank-melloul-website/internal/config"
	admindomain "github.com/Tomyshh/frank-melloul-website/internal/domain/admin"
	authdomain "github.com/Tomyshh/frank-melloul-website/internal/domain/auth"
	contentdomain "github.com/Tomyshh/frank-melloul-website/internal/domain/content"
	authrepo "github.com/Tomyshh/frank-melloul-website/internal/infrastructure/repository/auth"
	contentrepo "github.com/Tomyshh/frank-melloul-website/internal/infrastructure/repository/content"
	"github.com/Tomyshh/frank-melloul-website/internal/infrastructure/storage"
	"github.com/Tomyshh/frank-melloul-website/internal/interfaces/httpserver"
	"github.com/Tomyshh/frank-melloul-website/internal/interfaces/httpserver/handlers"
)

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		ServiceName:      "content-api",
		Environment:      "test",
		DefaultLocale:    "en",
		MaxMediaBytes:    10 << 20,
		AuthSecret:       "test-secret",
		SessionTTL:       time.Hour,
		StorageBackend:   "local",
		LocalStoragePath: t.TempDir(),
		ShutdownTimeout:  time.Second,
	}
	log := zerolog.Nop()

	store, err := storage.NewLocalStorage(cfg, log)
	require.NoError(t, err)

	videos := contentrepo.NewInMemoryVideoRepository()
	articles := contentrepo.NewInMemoryArticleRepository()
	users := authrepo.NewInMemoryUserRepository()
	require.NoError(t, users.Seed("admin@melloul.test", "s3cret"))

	contentService := contentdomain.NewService(videos, articles, store, log)
	adminService := admindomain.NewService(videos, articles, store, log)
	authService := authdomain.NewService(users, authrepo.NewInMemorySessionRepository(), cfg.AuthSecret, cfg.SessionTTL, log)

	provider := handlers.NewProvider(cfg, contentService, adminService, authService, store, log)
	return httpserver.New(cfg, log, provider, authService, store).Engine()
}

func login(t *testing.T, engine *gin.Engine) string {
	t.Helper()
	body := `{"email":"admin@melloul.test","password":"s3cret"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/admin/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func multipartVideo(t *testing.T, title string) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)
	require.NoError(t, writer.WriteField("title", title))
	require.NoError(t, writer.WriteField("is_published", "true"))

	part, err := writer.CreateFormFile("video", "Clip (1).mp4")
	require.NoError(t, err)
	_, err = part.Write([]byte("not really mpeg4"))
	require.NoError(t, err)

	part, err = writer.CreateFormFile("thumbnail", "cover.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("not really jpeg"))
	require.NoError(t, err)

	require.NoError(t, writer.Close())
	return buf, writer.FormDataContentType()
}

func TestPublicContent_EmptyCollections(t *testing.T) {
	engine := newTestServer(t)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/content", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Locale   string            `json:"locale"`
		Videos   []json.RawMessage `json:"videos"`
		Articles []json.RawMessage `json:"articles"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "en", resp.Locale)
	assert.Empty(t, resp.Videos)
	assert.Empty(t, resp.Articles)
}

func TestTranslations_LocaleSwitchPersistsInCookie(t *testing.T) {
	engine := newTestServer(t)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/translations?lang=fr", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Locale       string            `json:"locale"`
		Translations map[string]string `json:"translations"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "fr", resp.Locale)
	assert.Equal(t, "À propos", resp.Translations["nav.about"])

	var langCookie *http.Cookie
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "language" {
			langCookie = cookie
		}
	}
	require.NotNil(t, langCookie, "explicit choice persists")
	assert.Equal(t, "fr", langCookie.Value)

	// A later request without the parameter follows the cookie.
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/translations", nil)
	req.AddCookie(langCookie)
	engine.ServeHTTP(w, req)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "fr", resp.Locale)
}

func TestAdminSurface_RequiresSession(t *testing.T) {
	engine := newTestServer(t)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/admin/videos", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/admin/videos", nil)
	req.Header.Set("Authorization", "Bearer nonsense")
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminVideoLifecycle(t *testing.T) {
	engine := newTestServer(t)
	token := login(t, engine)

	// Create.
	body, contentType := multipartVideo(t, "Entretien BFM")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/admin/videos", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)
	engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		Video struct {
			ID          string `json:"id"`
			Title       string `json:"title"`
			IsPublished bool   `json:"is_published"`
		} `json:"video"`
		Steps []struct {
			Step string `json:"step"`
		} `json:"steps"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.True(t, strings.HasPrefix(created.Video.ID, "mp_"))
	assert.True(t, created.Video.IsPublished)
	require.NotEmpty(t, created.Steps)
	assert.Equal(t, "uploading-thumbnail", created.Steps[0].Step)
	assert.Equal(t, "idle", created.Steps[len(created.Steps)-1].Step)

	// It shows up on the public page.
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/videos", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Entretien BFM")

	// Toggle unpublishes it and returns the refreshed list.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, fmt.Sprintf("/v1/admin/videos/%s/publish", created.Video.ID), nil)
	req.Header.Set("Authorization", "Bearer "+token)
	engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"is_published":false`)

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/videos", nil))
	assert.NotContains(t, w.Body.String(), "Entretien BFM", "drafts are invisible publicly")

	// Delete requires the exact title.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/v1/admin/videos/"+created.Video.ID,
		strings.NewReader(`{"confirm_title":"wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/v1/admin/videos/"+created.Video.ID,
		strings.NewReader(`{"confirm_title":"Entretien BFM"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Gone from the admin list too.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/v1/admin/videos", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	engine.ServeHTTP(w, req)
	assert.NotContains(t, w.Body.String(), created.Video.ID)
}

func TestAdminCreateVideo_MissingFileRejected(t *testing.T) {
	engine := newTestServer(t)
	token := login(t, engine)

	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)
	require.NoError(t, writer.WriteField("title", "No files"))
	require.NoError(t, writer.Close())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/admin/videos", buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogoutKillsSession(t *testing.T) {
	engine := newTestServer(t)
	token := login(t, engine)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/admin/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/v1/admin/auth/session", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCoreRoutes(t *testing.T) {
	engine := newTestServer(t)

	for _, path := range []string{"/", "/healthz", "/readyz", "/metrics"} {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}
