package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"onesat-market/internal/auth"
	"onesat-market/internal/auth/provider"
	"onesat-market/internal/errs"
	"onesat-market/internal/httpx"
	"onesat-market/internal/logger"
	"onesat-market/internal/middleware"
	"onesat-market/internal/profile"
	"onesat-market/internal/session"
)

// Redirect targets after the provider callback. The error codes are part
// of the front end contract.
const (
	landingConnected   = "/?handcash_connected=true"
	landingNoAuthToken = "/?error=no_auth_token"
	landingAuthFailed  = "/?error=handcash_auth_failed"
)

type loginResponse struct {
	Success     bool   `json:"success"`
	RedirectURL string `json:"redirectUrl"`
}

type logoutResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type sessionResponse struct {
	Success     bool          `json:"success"`
	IsConnected bool          `json:"isConnected"`
	User        *auth.Profile `json:"user"`
}

type balanceResponse struct {
	Success bool          `json:"success"`
	Balance *auth.Balance `json:"balance"`
}

type Handler struct {
	connect   provider.Connector
	directory *profile.Directory
	cookies   session.CookieOptions
}

func NewHandler(
	connect provider.Connector,
	directory *profile.Directory,
	cookies session.CookieOptions,
) *Handler {
	return &Handler{
		connect:   connect,
		directory: directory,
		cookies:   cookies,
	}
}

// RegisterRoutes mounts the session endpoints. limit guards the two
// endpoints that reach the provider unauthenticated.
func (h *Handler) RegisterRoutes(r gin.IRouter, limit gin.HandlerFunc) {
	r.GET("/api/auth/handcash/login", limit, h.login)
	r.GET("/api/auth/handcash/callback", limit, h.callback)
	r.POST("/api/auth/handcash/logout", h.logout)
	r.GET("/api/auth/handcash/session", h.sessionState)

	r.GET("/api/wallet/balance", middleware.GinRequireSession(), h.balance)
}

// login godoc
//
//	@Summary		Start HandCash login
//	@Description	Builds the HandCash authorization URL. Every query parameter except redirect is forwarded to HandCash and handed back on the callback.
//	@Tags			Auth
//	@Produce		json
//	@Param			redirect	query		bool			false	"Answer 302 to HandCash instead of JSON"
//	@Success		200			{object}	loginResponse	"success, redirectUrl"
//	@Success		302			"Redirect to HandCash"
//	@Failure		429			{object}	httpx.ErrorBody	"Too many requests"
//	@Failure		500			{object}	httpx.ErrorBody	"Failed to generate login URL"
//	@Router			/api/auth/handcash/login [get]
func (h *Handler) login(c *gin.Context) {
	log := logger.FromContext(c.Request.Context())

	p, err := h.connect()
	if err != nil {
		log.Error("handcash login url generation failed", "error", err.Error())
		httpx.Fail(c.Writer, http.StatusInternalServerError, "Failed to generate login URL")
		return
	}

	params := make(map[string]string)
	for k, v := range c.Request.URL.Query() {
		if k == "redirect" || len(v) == 0 {
			continue
		}
		params[k] = v[0]
	}

	redirectURL := p.RedirectURL(params)

	if redirect, _ := strconv.ParseBool(c.Query("redirect")); redirect {
		c.Redirect(http.StatusFound, redirectURL)
		return
	}

	httpx.WriteJSON(c.Writer, http.StatusOK, loginResponse{
		Success:     true,
		RedirectURL: redirectURL,
	})
}

// callback godoc
//
//	@Summary		Complete HandCash login
//	@Description	Exchanges the authToken for the HandCash profile, sets the handcash_auth_token (HttpOnly) and handcash_user cookies for 7 days and redirects home. Failures redirect to /?error=no_auth_token or /?error=handcash_auth_failed.
//	@Tags			Auth
//	@Param			authToken	query	string	true	"Token issued by HandCash"
//	@Success		302			"Redirect to /?handcash_connected=true"
//	@Failure		429			{object}	httpx.ErrorBody	"Too many requests"
//	@Router			/api/auth/handcash/callback [get]
func (h *Handler) callback(c *gin.Context) {
	ctx := c.Request.Context()
	log := logger.FromContext(ctx)

	token := auth.NewAuthToken(c.Query("authToken"))
	if token.Empty() {
		log.Warn("handcash callback without auth token")
		c.Redirect(http.StatusFound, landingNoAuthToken)
		return
	}

	p, err := h.connect()
	if err != nil {
		log.Error("handcash callback with unconfigured provider", "error", err.Error())
		c.Redirect(http.StatusFound, landingAuthFailed)
		return
	}

	prof, err := p.Profile(ctx, token)
	if err != nil {
		log.Error("handcash profile exchange failed", "error", err.Error())
		c.Redirect(http.StatusFound, landingAuthFailed)
		return
	}

	if err := h.directory.Remember(ctx, *prof); err != nil {
		// profile pages fall back to a placeholder; login proceeds
		log.Warn("profile directory update failed", "handle", prof.Handle, "error", err.Error())
	}

	if err := session.Issue(c.Writer, token, *prof, h.cookies); err != nil {
		log.Error("issuing session cookies failed", "error", err.Error())
		c.Redirect(http.StatusFound, landingAuthFailed)
		return
	}

	log.Info("handcash login succeeded", "handle", prof.Handle, "client_ip", c.ClientIP())

	c.Redirect(http.StatusFound, landingConnected)
}

// logout godoc
//
//	@Summary		End the session
//	@Description	Expires both session cookies. Succeeds with or without a session.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	logoutResponse	"success, message"
//	@Router			/api/auth/handcash/logout [post]
func (h *Handler) logout(c *gin.Context) {
	session.Clear(c.Writer, h.cookies)

	logger.FromContext(c.Request.Context()).Info("handcash logout", "client_ip", c.ClientIP())

	httpx.WriteJSON(c.Writer, http.StatusOK, logoutResponse{
		Success: true,
		Message: "Logged out successfully",
	})
}

// sessionState godoc
//
//	@Summary		Read the display session
//	@Description	Derived from the handcash_user cookie and never used for authorization. A corrupt cookie clears both session cookies.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	sessionResponse	"success, isConnected, user"
//	@Router			/api/auth/handcash/session [get]
func (h *Handler) sessionState(c *gin.Context) {
	st := session.Read(c.Writer, c.Request, h.cookies)

	httpx.WriteJSON(c.Writer, http.StatusOK, sessionResponse{
		Success:     true,
		IsConnected: st.IsConnected,
		User:        st.User,
	})
}

// balance godoc
//
//	@Summary		Spendable wallet balance
//	@Tags			Wallet
//	@Produce		json
//	@Security		SessionCookie
//	@Success		200	{object}	balanceResponse	"success, balance"
//	@Failure		401	{object}	httpx.ErrorBody	"Authentication required"
//	@Failure		500	{object}	httpx.ErrorBody	"Wallet provider not configured"
//	@Failure		502	{object}	httpx.ErrorBody	"Failed to get balance"
//	@Router			/api/wallet/balance [get]
func (h *Handler) balance(c *gin.Context) {
	ctx := c.Request.Context()
	log := logger.FromContext(ctx)

	token, ok := middleware.TokenFromContext(ctx)
	if !ok {
		httpx.Fail(c.Writer, http.StatusUnauthorized, "Authentication required")
		return
	}

	p, err := h.connect()
	if err != nil {
		log.Error("balance with unconfigured provider", "error", err.Error())
		httpx.Fail(c.Writer, http.StatusInternalServerError, "Wallet provider not configured")
		return
	}

	b, err := p.SpendableBalance(ctx, token)
	if err != nil {
		log.Error("handcash balance failed", "error", err.Error())
		httpx.Fail(c.Writer, errs.Status(err), "Failed to get balance")
		return
	}

	httpx.WriteJSON(c.Writer, http.StatusOK, balanceResponse{
		Success: true,
		Balance: b,
	})
}
