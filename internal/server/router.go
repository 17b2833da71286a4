// Package server exposes the REST surface over the resolver services.
package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/meusite/cms/internal/access"
	"github.com/meusite/cms/internal/buttons"
	"github.com/meusite/cms/internal/menu"
	"github.com/meusite/cms/internal/pages"
	"github.com/meusite/cms/internal/settings"
	"go.uber.org/zap"
)

const requestIDContextKey = "cms_request_id"

var (
	errMissingPagesService    = errors.New("pages service dependency required")
	errMissingMenuService     = errors.New("menu service dependency required")
	errMissingButtonsService  = errors.New("buttons service dependency required")
	errMissingSettingsService = errors.New("settings service dependency required")
	errMissingAccessGate      = errors.New("access gate dependency required")
)

// Dependencies bundles everything the HTTP handlers need.
type Dependencies struct {
	Pages    *pages.Service
	Menu     *menu.Service
	Buttons  *buttons.Service
	Settings *settings.Service
	Gate     *access.Gate
	Logger   *zap.Logger
}

// NewHTTPHandler wires the REST routes onto a gin engine.
func NewHTTPHandler(deps Dependencies) (http.Handler, error) {
	if deps.Pages == nil {
		return nil, errMissingPagesService
	}
	if deps.Menu == nil {
		return nil, errMissingMenuService
	}
	if deps.Buttons == nil {
		return nil, errMissingButtonsService
	}
	if deps.Settings == nil {
		return nil, errMissingSettingsService
	}
	if deps.Gate == nil {
		return nil, errMissingAccessGate
	}

	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestIDMiddleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{"Content-Type"},
		MaxAge:       12 * time.Hour,
	}))

	handler := &httpHandler{
		pages:    deps.Pages,
		menu:     deps.Menu,
		buttons:  deps.Buttons,
		settings: deps.Settings,
		gate:     deps.Gate,
		logger:   logger,
	}

	router.GET("/healthz", handler.handleHealth)

	api := router.Group("/api")
	{
		api.GET("/pages", handler.handleListPages)
		api.GET("/pages/:slug", handler.handleGetPageBySlug)
		api.POST("/pages", handler.handleCreatePage)
		api.PUT("/pages/:id", handler.handleUpdatePage)
		api.DELETE("/pages/:id", handler.handleDeletePage)

		api.GET("/menu", handler.handleListMenu)
		api.POST("/menu", handler.handleCreateMenuItem)
		api.POST("/menu/reorder", handler.handleReorderMenu)
		api.PUT("/menu/:id", handler.handleUpdateMenuItem)
		api.DELETE("/menu/:id", handler.handleDeleteMenuItem)

		api.GET("/custom-buttons", handler.handleListButtons)
		api.GET("/custom-buttons/page/:slug", handler.handleListButtonsForPage)
		api.GET("/custom-buttons/:id", handler.handleGetButton)
		api.POST("/custom-buttons", handler.handleCreateButton)
		api.PUT("/custom-buttons/:id", handler.handleUpdateButton)
		api.DELETE("/custom-buttons/:id", handler.handleDeleteButton)

		api.GET("/settings/:name", handler.handleGetSetting)
		api.PUT("/settings/:name", handler.handleSaveSetting)

		api.POST("/auth", handler.handleAuth)
	}

	return router, nil
}

type httpHandler struct {
	pages    *pages.Service
	menu     *menu.Service
	buttons  *buttons.Service
	settings *settings.Service
	gate     *access.Gate
	logger   *zap.Logger
}

func (h *httpHandler) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// requestIDMiddleware tags every request with a UUIDv7 so failures in
// the logs can be correlated with client reports.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID, err := uuid.NewV7()
		if err == nil {
			c.Set(requestIDContextKey, requestID.String())
			c.Header("X-Request-ID", requestID.String())
		}
		c.Next()
	}
}
