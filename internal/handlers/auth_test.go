package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/underdogsx/coordination-api/internal/dto"
	apierrors "github.com/underdogsx/coordination-api/internal/errors"
	"github.com/underdogsx/coordination-api/internal/middleware"
	"github.com/underdogsx/coordination-api/internal/models"
	"github.com/underdogsx/coordination-api/internal/repository"
	"github.com/underdogsx/coordination-api/internal/services"
)

type authTestEnv struct {
	db           *gorm.DB
	handler      *AuthHandler
	authService  *services.AuthService
	tokenService *services.TokenService
	userRepo     repository.UserRepository
}

func setupAuthTestEnv(t *testing.T) authTestEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.User{})
	require.NoError(t, err)

	userRepo := repository.NewUserRepository(db)
	authService := services.NewAuthService(userRepo)
	tokenService := services.NewTokenService("test-secret", 30*time.Minute)
	handler := NewAuthHandler(authService, tokenService)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return authTestEnv{
		db:           db,
		handler:      handler,
		authService:  authService,
		tokenService: tokenService,
		userRepo:     userRepo,
	}
}

func authTestRouter(env authTestEnv) *gin.Engine {
	r := gin.New()
	r.POST("/api/auth/register", env.handler.Register)
	r.POST("/api/auth/login", env.handler.Login)
	r.GET("/api/auth/me", middleware.RequireAuth(env.tokenService, env.userRepo), env.handler.GetCurrentUser)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, url string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Register(t *testing.T) {
	env := setupAuthTestEnv(t)
	r := authTestRouter(env)

	w := postJSON(t, r, "/api/auth/register", map[string]string{
		"username": "alice",
		"email":    "alice@x.com",
		"password": "pw123",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotEmpty(t, response.AccessToken)
	require.Equal(t, "bearer", response.TokenType)
	require.Equal(t, "alice", response.User.Username)
	require.Equal(t, models.UserStatusOffline, response.User.Status)

	// Plaintext must never be persisted
	var stored models.User
	require.NoError(t, env.db.First(&stored, response.User.ID).Error)
	require.NotEmpty(t, stored.PasswordHash)
	require.NotEqual(t, "pw123", stored.PasswordHash)
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	env := setupAuthTestEnv(t)
	r := authTestRouter(env)

	w := postJSON(t, r, "/api/auth/register", map[string]string{
		"username": "alice",
		"email":    "alice@x.com",
		"password": "pw123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = postJSON(t, r, "/api/auth/register", map[string]string{
		"username": "someone-else",
		"email":    "alice@x.com",
		"password": "pw123",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var apiErr apierrors.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
	require.Equal(t, apierrors.ErrCodeConflict, apiErr.Code)
}

func TestAuthHandler_Register_DuplicateUsername(t *testing.T) {
	env := setupAuthTestEnv(t)
	r := authTestRouter(env)

	w := postJSON(t, r, "/api/auth/register", map[string]string{
		"username": "alice",
		"email":    "alice@x.com",
		"password": "pw123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = postJSON(t, r, "/api/auth/register", map[string]string{
		"username": "alice",
		"email":    "other@x.com",
		"password": "pw123",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var apiErr apierrors.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
	require.Equal(t, apierrors.ErrCodeConflict, apiErr.Code)
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	env := setupAuthTestEnv(t)
	r := authTestRouter(env)

	_, err := env.authService.Register(services.RegisterInput{
		Username: "bob",
		Email:    "bob@x.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	w := postJSON(t, r, "/api/auth/login", map[string]string{
		"email":    "bob@x.com",
		"password": "wrong-horse",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_Login_UpdatesPresence(t *testing.T) {
	env := setupAuthTestEnv(t)
	r := authTestRouter(env)

	user, err := env.authService.Register(services.RegisterInput{
		Username: "bob",
		Email:    "bob@x.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	// Push last-active into the past so the bump is observable
	past := time.Now().Add(-time.Hour)
	require.NoError(t, env.db.Model(&models.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]interface{}{"status": models.UserStatusOffline, "last_active": past}).Error)

	w := postJSON(t, r, "/api/auth/login", map[string]string{
		"email":    "bob@x.com",
		"password": "correct-horse",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var response dto.TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotEmpty(t, response.AccessToken)

	var stored models.User
	require.NoError(t, env.db.First(&stored, user.ID).Error)
	require.Equal(t, models.UserStatusOnline, stored.Status)
	require.True(t, stored.LastActive.After(past))
}

func TestAuthHandler_GetCurrentUser(t *testing.T) {
	env := setupAuthTestEnv(t)
	r := authTestRouter(env)

	user, err := env.authService.Register(services.RegisterInput{
		Username: "carol",
		Email:    "carol@x.com",
		Password: "pw123",
	})
	require.NoError(t, err)

	token, err := env.tokenService.Issue(user.ID)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, user.Username, response.Username)
	require.Equal(t, user.Email, response.Email)
}

func TestAuthHandler_GetCurrentUser_BadToken(t *testing.T) {
	env := setupAuthTestEnv(t)
	r := authTestRouter(env)

	for _, header := range []string{"", "Bearer not-a-token", "Basic abc"} {
		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	}
}

func TestAuthHandler_GetCurrentUser_UserGone(t *testing.T) {
	env := setupAuthTestEnv(t)
	r := authTestRouter(env)

	// Valid signature, but the subject does not exist
	token, err := env.tokenService.Issue(9999)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}
