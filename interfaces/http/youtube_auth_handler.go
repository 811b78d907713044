package http

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"

	"my-videos/domain/model"
	"my-videos/infrastructure/configuration"
	"my-videos/infrastructure/logger"
	"my-videos/infrastructure/session"
)

// exchangeTimeout bounds the token exchange with the provider.
const exchangeTimeout = 10 * time.Second

// IYouTubeAuthHandler defines the OAuth2 authorization flow handlers.
type IYouTubeAuthHandler interface {
	Authorize(ctx *gin.Context)
	Callback(ctx *gin.Context)
}

// YouTubeAuthHandler runs the authorization-code flow against the platform,
// keeping state and the resulting credential bundle in the caller's session.
type YouTubeAuthHandler struct {
	oauth2Config *oauth2.Config
}

// NewYouTubeAuthHandler creates the auth handler from the shared OAuth config.
func NewYouTubeAuthHandler() (IYouTubeAuthHandler, error) {
	config, err := configuration.GetOAuthConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to get OAuth config: %w", err)
	}
	return &YouTubeAuthHandler{oauth2Config: config}, nil
}

// Authorize handles GET /authorize
func (h *YouTubeAuthHandler) Authorize(ctx *gin.Context) {
	sess := session.FromContext(ctx)
	if sess == nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "no session available"})
		return
	}

	state := generateRandomState()
	sess.SetState(state)

	// Offline access yields a refresh token; incremental auth keeps scopes
	// already granted.
	authURL := h.oauth2Config.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("include_granted_scopes", "true"),
	)
	ctx.Redirect(http.StatusFound, authURL)
}

// Callback handles GET /oauth2callback
func (h *YouTubeAuthHandler) Callback(ctx *gin.Context) {
	if errorParam := ctx.Query("error"); errorParam != "" {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":       fmt.Sprintf("OAuth error: %s", errorParam),
			"description": ctx.Query("error_description"),
		})
		return
	}

	sess := session.FromContext(ctx)
	if sess == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "no session available"})
		return
	}

	// State mismatch is a hard failure; anything else leaves the CSRF gap open.
	state := ctx.Query("state")
	expected := sess.ConsumeState()
	if expected == "" || subtle.ConstantTimeCompare([]byte(state), []byte(expected)) != 1 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "state mismatch"})
		return
	}

	code := ctx.Query("code")
	if code == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "authorization code not found"})
		return
	}

	exchangeCtx, cancel := context.WithTimeout(ctx.Request.Context(), exchangeTimeout)
	defer cancel()
	token, err := h.oauth2Config.Exchange(exchangeCtx, code)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Token exchange failed")
		ctx.JSON(http.StatusBadGateway, gin.H{"error": "failed to exchange code for token"})
		return
	}

	sess.SetCredentials(&model.CredentialBundle{
		Token:        token.AccessToken,
		RefreshToken: token.RefreshToken,
		TokenURI:     h.oauth2Config.Endpoint.TokenURL,
		ClientID:     h.oauth2Config.ClientID,
		ClientSecret: h.oauth2Config.ClientSecret,
		Scopes:       h.oauth2Config.Scopes,
	})

	ctx.Redirect(http.StatusFound, "/videos/youtube")
}

// generateRandomState generates a random state parameter for OAuth2.
func generateRandomState() string {
	b := make([]byte, 32)
	_, _ = rand.Read(b)
	return base64.RawURLEncoding.EncodeToString(b)
}
