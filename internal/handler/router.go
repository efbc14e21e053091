package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"pricing-panel/internal/handler/api"
	"pricing-panel/internal/handler/middleware"
	"pricing-panel/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Product *api.ProductHandler
	Pricing *api.PricingHandler
	Webhook *api.WebhookHandler
	Session *middleware.SessionMiddleware
}

func NewHandlers(product *api.ProductHandler, pricing *api.PricingHandler, webhook *api.WebhookHandler, session *middleware.SessionMiddleware) Handlers {
	return Handlers{Product: product, Pricing: pricing, Webhook: webhook, Session: session}
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		products := apiGroup.Group("/products")
		products.Use(h.Session.RequireSession())
		{
			companyScoped := []gin.HandlerFunc{middleware.RequireCompany()}
			addRoutes(products, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Product.ListProducts, Mw: companyScoped},
				{Method: http.MethodGet, Path: "/application/:application_id", Handler: h.Product.ListApplicationProducts, Mw: companyScoped},
				{Method: http.MethodGet, Path: "/pricing-status", Handler: h.Product.PricingStatus},
				{Method: http.MethodGet, Path: "/suggest-promotion", Handler: h.Product.SuggestPromotion},
				{Method: http.MethodPost, Path: "/accept-price-update", Handler: h.Product.AcceptPriceUpdate},
				{Method: http.MethodPost, Path: "/deny-price-update", Handler: h.Product.DenyPriceUpdate},
				{Method: http.MethodPost, Path: "/edit-price-update", Handler: h.Product.EditPriceUpdate},
				{Method: http.MethodPost, Path: "/publish-promotion", Handler: h.Product.PublishPromotion},
			})
		}

		pricing := apiGroup.Group("/pricing")
		{
			addRoutes(pricing, []route{
				{Method: http.MethodPost, Path: "/optimize-batch", Handler: h.Pricing.OptimizeBatch},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/webhook-events", Handler: h.Webhook.Receive},
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
