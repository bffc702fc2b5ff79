package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"sync"
	"time"

	apperrors "camp-records-backend/internal/errors"
	"camp-records-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims represents the JWT claims for an authenticated session
type AuthClaims struct {
	UserID   int64   `json:"user_id"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Provider string  `json:"provider"`
	StaffID  *string `json:"staff_id,omitempty"`
	Role     string  `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// RefreshTokenData holds the server-side state for an issued refresh token
type RefreshTokenData struct {
	Profile   *UserProfile
	Provider  string
	ExpiresAt time.Time
}

// AuthResponse is the token payload returned after a successful login or refresh
type AuthResponse struct {
	AccessToken  string       `json:"accessToken"`
	TokenType    string       `json:"tokenType"`
	ExpiresIn    int64        `json:"expiresInSeconds"`
	RefreshToken string       `json:"refreshToken,omitempty"`
	Profile      *UserProfile `json:"profile"`
}

// AuthService handles OAuth authentication and JWT session management
type AuthService struct {
	config        *AuthConfig
	staffRepo     repository.StaffMemberRepositoryInterface
	githubClients map[string]*GitHubClient

	mu            sync.RWMutex
	refreshTokens map[string]*RefreshTokenData
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig, staffRepo repository.StaffMemberRepositoryInterface) (*AuthService, error) {
	if config == nil {
		return nil, fmt.Errorf("auth config is required")
	}

	clients := make(map[string]*GitHubClient)
	for name := range config.Providers {
		provider, err := config.GetProvider(name)
		if err != nil {
			return nil, err
		}
		clients[name] = NewGitHubClient(provider)
	}

	return &AuthService{
		config:        config,
		staffRepo:     staffRepo,
		githubClients: clients,
		refreshTokens: make(map[string]*RefreshTokenData),
	}, nil
}

// GetAuthURL returns the OAuth authorization URL for the given provider
func (s *AuthService) GetAuthURL(provider, state string) (string, error) {
	client, ok := s.githubClients[provider]
	if !ok {
		return "", fmt.Errorf("provider '%s' not found", provider)
	}
	return client.GetOAuth2Config(s.config.RedirectURL).AuthCodeURL(state), nil
}

// HandleCallback exchanges the OAuth authorization code for a session.
// The authenticated email is bound to a staff member record when one exists,
// so downstream authorization can resolve the caller's role.
func (s *AuthService) HandleCallback(ctx context.Context, provider, code, state string) (*AuthResponse, error) {
	client, ok := s.githubClients[provider]
	if !ok {
		return nil, fmt.Errorf("provider '%s' not found", provider)
	}

	oauthConfig := client.GetOAuth2Config(s.config.RedirectURL)
	token, err := oauthConfig.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	profile, err := client.GetUserProfile(ctx, token.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user profile: %w", err)
	}

	s.bindStaffMember(profile)

	jwtToken, err := s.GenerateJWT(profile, provider)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	refreshToken, err := s.issueRefreshToken(profile, provider)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &AuthResponse{
		AccessToken:  jwtToken,
		TokenType:    "bearer",
		ExpiresIn:    int64(s.config.JWTExpiry.Seconds()),
		RefreshToken: refreshToken,
		Profile:      profile,
	}, nil
}

// GenerateJWT creates a signed JWT for the given user profile
func (s *AuthService) GenerateJWT(profile *UserProfile, provider string) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		UserID:   profile.ID,
		Username: profile.Username,
		Email:    profile.Email,
		Provider: provider,
		StaffID:  profile.StaffID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   profile.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.JWTExpiry)),
		},
	}

	if profile.StaffID != nil && s.staffRepo != nil {
		if member, err := s.staffRepo.GetByEmail(profile.Email); err == nil {
			claims.Role = string(member.Role)
		}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateJWT parses and validates a JWT and returns its claims
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}

// RefreshToken exchanges a refresh token for a new session, rotating the
// refresh token in the process
func (s *AuthService) RefreshToken(refreshToken string) (*AuthResponse, error) {
	s.mu.Lock()
	data, ok := s.refreshTokens[refreshToken]
	if ok {
		delete(s.refreshTokens, refreshToken)
	}
	s.mu.Unlock()

	if !ok {
		return nil, apperrors.ErrInvalidRefreshToken
	}
	if time.Now().After(data.ExpiresAt) {
		return nil, apperrors.ErrRefreshTokenExpired
	}

	s.bindStaffMember(data.Profile)

	jwtToken, err := s.GenerateJWT(data.Profile, data.Provider)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	newRefreshToken, err := s.issueRefreshToken(data.Profile, data.Provider)
	if err != nil {
		return nil, fmt.Errorf("failed to rotate refresh token: %w", err)
	}

	return &AuthResponse{
		AccessToken:  jwtToken,
		TokenType:    "bearer",
		ExpiresIn:    int64(s.config.JWTExpiry.Seconds()),
		RefreshToken: newRefreshToken,
		Profile:      data.Profile,
	}, nil
}

// RevokeRefreshToken invalidates a refresh token
func (s *AuthService) RevokeRefreshToken(refreshToken string) {
	s.mu.Lock()
	delete(s.refreshTokens, refreshToken)
	s.mu.Unlock()
}

// GenerateState creates a random state parameter for OAuth2 flows
func (s *AuthService) GenerateState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate random state: %w", err)
	}
	return base64.URLEncoding.EncodeToString(b), nil
}

// GetStaffIDByEmail returns the ID of the staff member with the given email,
// or nil when no staff member matches
func (s *AuthService) GetStaffIDByEmail(email string) *string {
	if s.staffRepo == nil || email == "" {
		return nil
	}
	member, err := s.staffRepo.GetByEmail(email)
	if err != nil {
		return nil
	}
	id := member.ID.String()
	return &id
}

// bindStaffMember attaches the matching staff member ID to the profile
func (s *AuthService) bindStaffMember(profile *UserProfile) {
	if profile == nil {
		return
	}
	profile.StaffID = s.GetStaffIDByEmail(profile.Email)
}

// issueRefreshToken creates and stores a new refresh token for the profile
func (s *AuthService) issueRefreshToken(profile *UserProfile, provider string) (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	token := base64.URLEncoding.EncodeToString(b)

	s.mu.Lock()
	s.refreshTokens[token] = &RefreshTokenData{
		Profile:   profile,
		Provider:  provider,
		ExpiresAt: time.Now().Add(s.config.RefreshExpiry),
	}
	s.mu.Unlock()

	return token, nil
}
