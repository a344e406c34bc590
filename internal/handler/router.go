package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"vending-server/internal/handler/api"
	"vending-server/internal/handler/middleware"
	"vending-server/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type MetricsExporter interface {
	Handler() http.Handler
}

type Handlers struct {
	Vending *api.VendingHandler
	Session *api.SessionHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, handlers Handlers, authMiddleware *middleware.AuthMiddleware, metrics MetricsExporter) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, handlers, authMiddleware, metrics)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, metrics MetricsExporter) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(metrics.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		authRequired := apiGroup.Group("")
		authRequired.Use(authMiddleware.RequireAuth())
		addRoutes(authRequired, []route{
			{Method: http.MethodPost, Path: "/sessions", Handler: h.Session.Connect},
			{Method: http.MethodDelete, Path: "/sessions", Handler: h.Session.Disconnect},
			{Method: http.MethodGet, Path: "/events", Handler: h.Session.Events},
		})

		auth := []gin.HandlerFunc{authMiddleware.RequireAuth()}
		addRoutes(apiGroup.Group("/vending"), []route{
			{Method: http.MethodGet, Path: "/shops", Handler: h.Vending.ListShops},
			{Method: http.MethodGet, Path: "/shops/:charId", Handler: h.Vending.GetShop},
			{Method: http.MethodGet, Path: "/shops/:charId/selling/:itemId", Handler: h.Vending.IsSelling},
			{Method: http.MethodPost, Path: "/search", Handler: h.Vending.Search},
			{Method: http.MethodPost, Path: "/prepare", Handler: h.Vending.Prepare, Mw: auth},
			{Method: http.MethodPost, Path: "/shop", Handler: h.Vending.Open, Mw: auth},
			{Method: http.MethodDelete, Path: "/shop", Handler: h.Vending.Close, Mw: auth},
			{Method: http.MethodPost, Path: "/autotrade", Handler: h.Vending.Autotrade, Mw: auth},
			{Method: http.MethodGet, Path: "/sellers/:accountId/items", Handler: h.Vending.ListItems, Mw: auth},
			{Method: http.MethodPost, Path: "/purchase", Handler: h.Vending.Purchase, Mw: auth},
			{Method: http.MethodPost, Path: "/search/select", Handler: h.Vending.SelectResult, Mw: auth},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
