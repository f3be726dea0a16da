// Package controllers handles HTTP request handling
package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/takeuforward/portal/internal/app/models/dto"
	"github.com/takeuforward/portal/internal/app/services"
	"github.com/takeuforward/portal/internal/middleware"
	"github.com/takeuforward/portal/internal/pkg/apperrors"
	"github.com/takeuforward/portal/internal/pkg/auth"
	"github.com/takeuforward/portal/internal/pkg/logger"
)

const stateCookieName = "tuf_oauth_state"

// Authenticator is the identity provider side of the login flow
type Authenticator interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*dto.IdentityClaims, error)
}

// SessionSettings control the session cookie written after login
type SessionSettings struct {
	CookieName   string
	Secure       bool
	PostLoginURL string
}

// AuthController handles authentication related operations
type AuthController struct {
	userService services.UserService
	jwtService  *auth.JWTService
	provider    Authenticator
	session     SessionSettings
}

// NewAuthController creates a new AuthController. provider may be nil when
// login is disabled; session tokens are still accepted.
func NewAuthController(userService services.UserService, jwtService *auth.JWTService, provider Authenticator, session SessionSettings) *AuthController {
	if session.PostLoginURL == "" {
		session.PostLoginURL = "/"
	}
	return &AuthController{
		userService: userService,
		jwtService:  jwtService,
		provider:    provider,
		session:     session,
	}
}

// GetCurrentUser returns the authenticated user
// @Summary Get the current user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User
// @Failure 401 {object} dto.ErrorDetail "Not authenticated"
// @Router /auth/user [get]
func (c *AuthController) GetCurrentUser(ctx *gin.Context) {
	user, err := c.userService.GetCurrentUser(ctx.Request.Context(), middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}

// Login redirects the browser to the identity provider
// @Summary Start login
// @Tags auth
// @Success 302
// @Failure 401 {object} dto.ErrorDetail "Login is not configured"
// @Router /login [get]
func (c *AuthController) Login(ctx *gin.Context) {
	if c.provider == nil {
		middleware.HandleAPIError(ctx, apperrors.NewCustomError(apperrors.ErrLoginFailed, "login is not configured"))
		return
	}

	state, err := auth.NewState()
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(stateCookieName, state, 600, "/", "", c.session.Secure, true)
	ctx.Redirect(http.StatusFound, c.provider.AuthCodeURL(state))
}

// Callback completes the login, stores the user and issues the session cookie
// @Summary Finish login
// @Tags auth
// @Param code query string true "Authorization code"
// @Param state query string true "Login state"
// @Success 302
// @Failure 401 {object} dto.ErrorDetail "Login failed"
// @Router /callback [get]
func (c *AuthController) Callback(ctx *gin.Context) {
	if c.provider == nil {
		middleware.HandleAPIError(ctx, apperrors.NewCustomError(apperrors.ErrLoginFailed, "login is not configured"))
		return
	}

	expected, err := ctx.Cookie(stateCookieName)
	if err != nil || expected == "" || ctx.Query("state") != expected {
		middleware.HandleAPIError(ctx, apperrors.NewCustomError(apperrors.ErrLoginFailed, "login state mismatch"))
		return
	}
	ctx.SetCookie(stateCookieName, "", -1, "/", "", c.session.Secure, true)

	if providerErr := ctx.Query("error"); providerErr != "" {
		middleware.HandleAPIError(ctx, apperrors.NewCustomError(apperrors.ErrLoginFailed, "identity provider returned "+providerErr))
		return
	}

	claims, err := c.provider.Exchange(ctx.Request.Context(), ctx.Query("code"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	user, err := c.userService.SyncIdentity(ctx.Request.Context(), *claims)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	token, _, err := c.jwtService.GenerateToken(user.ID, claims.Email)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	logger.Info().Str("userID", user.ID).Msg("User logged in")
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(c.session.CookieName, token, int(c.jwtService.TTL().Seconds()), "/", "", c.session.Secure, true)
	ctx.Redirect(http.StatusFound, c.session.PostLoginURL)
}

// Logout clears the session cookie
// @Summary Log out
// @Tags auth
// @Success 302
// @Router /logout [get]
func (c *AuthController) Logout(ctx *gin.Context) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(c.session.CookieName, "", -1, "/", "", c.session.Secure, true)
	ctx.Redirect(http.StatusFound, c.session.PostLoginURL)
}
