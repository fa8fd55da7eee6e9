package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"

	"onesat-market/internal/auth/handler"
	"onesat-market/internal/auth/provider"
	"onesat-market/internal/auth/provider/handcash"
	"onesat-market/internal/config"
	_ "onesat-market/internal/docs"
	"onesat-market/internal/errs"
	"onesat-market/internal/httpx"
	"onesat-market/internal/kv"
	"onesat-market/internal/logger"
	"onesat-market/internal/middleware"
	"onesat-market/internal/profile"
	"onesat-market/internal/session"
	"onesat-market/internal/socials"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {
	infra, err := setupInfra(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	router := NewRouter(cfg, infra.Store, connector(cfg))

	return router, infra.Close, nil
}

// connector builds the HandCash provider once. Missing credentials do not
// stop the server; they surface on the endpoints that need the provider.
func connector(cfg config.Config) provider.Connector {
	if !cfg.HandCashConfigured() {
		err := fmt.Errorf("app: HANDCASH_APP_ID and HANDCASH_APP_SECRET must be set: %w", errs.ErrConfiguration)
		logger.Error("handcash login disabled", map[string]any{
			"app_id_set":     cfg.HandCashAppID != "",
			"app_secret_set": cfg.HandCashAppSecret != "",
		})
		return provider.Static(nil, err)
	}

	p, err := handcash.New(handcash.Config{
		AppID:     cfg.HandCashAppID,
		AppSecret: cfg.HandCashAppSecret,
		AuthURL:   cfg.HandCashAuthURL,
		APIURL:    cfg.HandCashAPIURL,
		Timeout:   cfg.HandCashTimeout,
	})
	if err != nil {
		logger.Error("handcash provider unavailable", map[string]any{"error": err.Error()})
		return provider.Static(nil, err)
	}
	return provider.Static(p, nil)
}

// NewRouter wires every HTTP surface on top of store and connect.
//
//	@title			1Sat Market API
//	@version		1.0
//	@description	HandCash login, session cookies and token social links.
//
//	@BasePath		/
//
//	@securityDefinitions.apikey	SessionCookie
//	@in							header
//	@name						Cookie
//	@description				handcash_auth_token cookie set by the HandCash callback. Format: "handcash_auth_token={token}".
func NewRouter(cfg config.Config, store kv.Store, connect provider.Connector) *gin.Engine {
	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	cookies := session.OptionsFor(cfg.Production())
	directory := profile.NewDirectory(store)

	authHandler := handler.NewHandler(connect, directory, cookies)
	socialsHandler := socials.NewHandler(socials.NewService(store))
	profileHandler := profile.NewHandler(directory)

	authLimit := middleware.NewRateLimiter(cfg.AuthRateLimitPerMin)
	writeLimit := middleware.NewRateLimiter(cfg.WriteRateLimitPerMin)

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())

	authHandler.RegisterRoutes(router, authLimit.Middleware())
	socialsHandler.RegisterRoutes(router, middleware.GinRequireSession(), writeLimit.Middleware())
	profileHandler.RegisterRoutes(router)

	router.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := store.Ping(ctx); err != nil {
			logger.FromContext(ctx).Error("health check failed", "error", err.Error())
			httpx.WriteJSON(c.Writer, http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		httpx.WriteJSON(c.Writer, http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/swagger/*any", gin.WrapH(httpSwagger.Handler()))

	return router
}
