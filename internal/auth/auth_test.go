package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "camp-records-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *AuthConfig {
	return &AuthConfig{
		JWTSecret:     "test-signing-key",
		JWTExpiry:     time.Hour,
		RefreshExpiry: 14 * 24 * time.Hour,
		RedirectURL:   "http://localhost:7010/api/v1/auth/github/callback",
		Providers: map[string]ProviderConfig{
			"github": {
				ClientID:     "test-client-id",
				ClientSecret: "test-client-secret",
			},
		},
	}
}

func TestAuthConfig(t *testing.T) {
	t.Run("valid config structure", func(t *testing.T) {
		config := testConfig()

		err := config.ValidateConfig()
		assert.NoError(t, err)
		assert.NotEmpty(t, config.JWTSecret)
		assert.NotEmpty(t, config.RedirectURL)
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		config := testConfig()
		config.JWTSecret = ""

		err := config.ValidateConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "JWT secret is required")
	})

	t.Run("missing redirect url", func(t *testing.T) {
		config := testConfig()
		config.RedirectURL = ""

		err := config.ValidateConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "redirect URL is required")
	})

	t.Run("missing client credentials", func(t *testing.T) {
		config := testConfig()
		config.Providers = map[string]ProviderConfig{
			"github": {},
		}

		err := config.ValidateConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "client_id is required")
	})

	t.Run("empty providers map", func(t *testing.T) {
		config := testConfig()
		config.Providers = map[string]ProviderConfig{}

		err := config.ValidateConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "at least one provider")
	})
}

func TestGetProvider(t *testing.T) {
	config := testConfig()

	t.Run("existing provider", func(t *testing.T) {
		provider, err := config.GetProvider("github")
		assert.NoError(t, err)
		assert.NotNil(t, provider)
		assert.Equal(t, "test-client-id", provider.ClientID)
	})

	t.Run("non-existing provider", func(t *testing.T) {
		_, err := config.GetProvider("nonexistent")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "provider 'nonexistent' not found")
	})
}

func TestGitHubClientConfig(t *testing.T) {
	config := &ProviderConfig{
		ClientID:     "test-client-id",
		ClientSecret: "test-client-secret",
	}

	client := NewGitHubClient(config)
	assert.NotNil(t, client)

	oauthConfig := client.GetOAuth2Config("http://localhost:7010/callback")
	assert.Equal(t, "test-client-id", oauthConfig.ClientID)
	assert.Equal(t, "test-client-secret", oauthConfig.ClientSecret)
	assert.Equal(t, "http://localhost:7010/callback", oauthConfig.RedirectURL)
	assert.Contains(t, oauthConfig.Scopes, "user:email")
	assert.Contains(t, oauthConfig.Endpoint.AuthURL, "github.com")
}

func TestGitHubEnterpriseEndpoints(t *testing.T) {
	config := &ProviderConfig{
		ClientID:          "test-client-id",
		ClientSecret:      "test-client-secret",
		EnterpriseBaseURL: "https://github.example.com",
	}

	client := NewGitHubClient(config)
	oauthConfig := client.GetOAuth2Config("http://localhost:7010/callback")
	assert.Contains(t, oauthConfig.Endpoint.AuthURL, "github.example.com")
	assert.Contains(t, oauthConfig.Endpoint.TokenURL, "github.example.com")
}

func TestJWTOperations(t *testing.T) {
	service, err := NewAuthService(testConfig(), nil)
	require.NoError(t, err)

	userProfile := &UserProfile{
		ID:       12345,
		Username: "danalevi",
		Email:    "dana@camp.test",
		Name:     "Dana Levi",
	}

	token, err := service.GenerateJWT(userProfile, "github")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	validatedClaims, err := service.ValidateJWT(token)
	assert.NoError(t, err)
	assert.Equal(t, userProfile.ID, validatedClaims.UserID)
	assert.Equal(t, userProfile.Username, validatedClaims.Username)
	assert.Equal(t, userProfile.Email, validatedClaims.Email)
	assert.Equal(t, "github", validatedClaims.Provider)

	_, err = service.ValidateJWT("invalid-token")
	assert.Error(t, err)
}

func TestJWTWrongSecret(t *testing.T) {
	service, err := NewAuthService(testConfig(), nil)
	require.NoError(t, err)

	otherConfig := testConfig()
	otherConfig.JWTSecret = "a-different-signing-key"
	otherService, err := NewAuthService(otherConfig, nil)
	require.NoError(t, err)

	token, err := service.GenerateJWT(&UserProfile{ID: 1, Username: "danalevi"}, "github")
	require.NoError(t, err)

	_, err = otherService.ValidateJWT(token)
	assert.Error(t, err)
}

func TestRefreshTokenRotation(t *testing.T) {
	service, err := NewAuthService(testConfig(), nil)
	require.NoError(t, err)

	profile := &UserProfile{
		ID:       12345,
		Username: "danalevi",
		Email:    "dana@camp.test",
	}

	first, err := service.issueRefreshToken(profile, "github")
	require.NoError(t, err)

	refreshed, err := service.RefreshToken(first)
	assert.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.NotEmpty(t, refreshed.RefreshToken)
	assert.NotEqual(t, first, refreshed.RefreshToken)

	// The original token is consumed by the rotation
	_, err = service.RefreshToken(first)
	assert.ErrorIs(t, err, apperrors.ErrInvalidRefreshToken)
}

func TestRefreshTokenExpired(t *testing.T) {
	config := testConfig()
	config.RefreshExpiry = -time.Minute
	service, err := NewAuthService(config, nil)
	require.NoError(t, err)

	token, err := service.issueRefreshToken(&UserProfile{ID: 1}, "github")
	require.NoError(t, err)

	_, err = service.RefreshToken(token)
	assert.ErrorIs(t, err, apperrors.ErrRefreshTokenExpired)
}

func TestAuthHandlers(t *testing.T) {
	service, err := NewAuthService(testConfig(), nil)
	require.NoError(t, err)

	handler := NewAuthHandler(service)

	gin.SetMode(gin.TestMode)

	t.Run("Start endpoint", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("GET", "/api/v1/auth/github/start", nil)
		c.Params = gin.Params{{Key: "provider", Value: "github"}}

		handler.Start(c)

		assert.Equal(t, http.StatusFound, w.Code)
		location := w.Header().Get("Location")
		assert.Contains(t, location, "github.com")
		assert.Contains(t, location, "oauth/authorize")
	})

	t.Run("Start with unknown provider", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("GET", "/api/v1/auth/gitlab/start", nil)
		c.Params = gin.Params{{Key: "provider", Value: "gitlab"}}

		handler.Start(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Logout endpoint", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("POST", "/api/v1/auth/logout", nil)
		c.Request.Header.Set("Content-Type", "application/json")

		handler.Logout(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, "Logged out successfully", response["message"])
	})
}

func TestRequireAuthMiddleware(t *testing.T) {
	service, err := NewAuthService(testConfig(), nil)
	require.NoError(t, err)

	middleware := NewAuthMiddleware(service)
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/protected", middleware.RequireAuth(), func(c *gin.Context) {
		email, _ := GetUserEmail(c)
		c.JSON(http.StatusOK, gin.H{"email": email})
	})

	t.Run("missing header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/protected", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		token, err := service.GenerateJWT(&UserProfile{
			ID:       1,
			Username: "danalevi",
			Email:    "dana@camp.test",
		}, "github")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "dana@camp.test")
	})

	t.Run("malformed header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Token abc123")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
