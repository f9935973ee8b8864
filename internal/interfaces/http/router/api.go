package router

import (
	"github.com/gin-gonic/gin"
	catalogapp "github.com/ivoirestore/backend/internal/application/catalog"
	feedbackapp "github.com/ivoirestore/backend/internal/application/feedback"
	identityapp "github.com/ivoirestore/backend/internal/application/identity"
	"github.com/ivoirestore/backend/internal/application/media"
	reportapp "github.com/ivoirestore/backend/internal/application/report"
	tradeapp "github.com/ivoirestore/backend/internal/application/trade"
	"github.com/ivoirestore/backend/internal/domain/identity"
	"github.com/ivoirestore/backend/internal/infrastructure/cache"
	"github.com/ivoirestore/backend/internal/infrastructure/config"
	"github.com/ivoirestore/backend/internal/infrastructure/logger"
	"github.com/ivoirestore/backend/internal/interfaces/http/handler"
	"github.com/ivoirestore/backend/internal/interfaces/http/middleware"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// Services are the application services exposed over HTTP.
type Services struct {
	Auth      *identityapp.AuthService
	Admins    *identityapp.AdminService
	Boutiques *catalogapp.BoutiqueService
	Products  *catalogapp.ProductService
	Orders    *tradeapp.OrderService
	Avis      *feedbackapp.AvisService
	Stats     *reportapp.StatsService
	Uploads   *media.UploadService
}

// Config carries everything the engine needs besides the services.
type Config struct {
	App     config.AppConfig
	HTTP    config.HTTPConfig
	Tracing middleware.TracingConfig
	Logger  *zap.Logger
	// Meter records HTTP metrics when set.
	Meter metric.Meter
	// RateCounter backs both rate limiters. Required when rate limiting is enabled.
	RateCounter cache.WindowCounter
	DB          handler.Pinger
}

// New builds the gin engine with the full middleware chain and every route.
func New(cfg Config, svc Services) (*gin.Engine, error) {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		return nil, err
	}

	engine.Use(logger.Recovery(log))
	engine.Use(middleware.RequestID())
	engine.Use(middleware.Tracing(cfg.Tracing))
	engine.Use(middleware.SpanEnricher())
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.HTTPMetrics(cfg.Meter))
	engine.Use(middleware.SecureWithConfig(securityConfig(cfg.App)))
	engine.Use(middleware.CORSWithConfig(corsConfig(cfg.HTTP)))

	base := handler.NewBaseHandler(cfg.App.Env)
	system := handler.NewSystemHandler(base, cfg.App.Version, cfg.App.Env, cfg.DB)
	engine.GET("/", system.Welcome)
	engine.GET("/health", system.Health)
	engine.NoRoute(system.NotFound)
	engine.NoMethod(system.NotFound)

	var apiMiddleware []gin.HandlerFunc
	authLimit := func(c *gin.Context) { c.Next() }
	if cfg.HTTP.RateLimitEnabled && cfg.RateCounter != nil {
		apiMiddleware = append(apiMiddleware, middleware.RateLimit(middleware.RateLimitConfig{
			Name:    "global",
			Counter: cfg.RateCounter,
			Limit:   cfg.HTTP.RateLimitRequests,
			Window:  cfg.HTTP.RateLimitWindow,
			Message: middleware.MessageGlobalRateLimited,
			Logger:  log,
		}))
		authLimit = middleware.RateLimit(middleware.RateLimitConfig{
			Name:    "auth",
			Counter: cfg.RateCounter,
			Limit:   cfg.HTTP.AuthRateLimitRequests,
			Window:  cfg.HTTP.AuthRateLimitWindow,
			Message: middleware.MessageAuthRateLimited,
			Logger:  log,
		})
	}

	protect := middleware.Protect(svc.Auth, log)
	optional := middleware.OptionalAuth(svc.Auth)
	require := middleware.RequireCapability
	jsonLimit := middleware.BodyLimit(cfg.HTTP.MaxBodySize)

	authHandler := handler.NewAuthHandler(base, svc.Auth)
	boutiqueHandler := handler.NewBoutiqueHandler(base, svc.Boutiques)
	productHandler := handler.NewProductHandler(base, svc.Products)
	orderHandler := handler.NewOrderHandler(base, svc.Orders)
	avisHandler := handler.NewAvisHandler(base, svc.Avis)
	adminHandler := handler.NewAdminHandler(base, svc.Stats, svc.Admins)
	uploadHandler := handler.NewUploadHandler(base, svc.Uploads)

	auth := NewDomainGroup("auth", "/auth").Use(jsonLimit)
	auth.POST("/register", authLimit, authHandler.Register)
	auth.POST("/login", authLimit, authHandler.Login)
	auth.GET("/me", protect, authHandler.Me)

	boutiques := NewDomainGroup("boutiques", "/boutiques").Use(jsonLimit)
	boutiques.GET("", optional, boutiqueHandler.List)
	boutiques.GET("/:id", optional, boutiqueHandler.Get)
	boutiques.POST("", protect, require(identity.CapManageCatalog), boutiqueHandler.Create)
	boutiques.PUT("/:id", protect, require(identity.CapManageCatalog), boutiqueHandler.Update)
	boutiques.DELETE("/:id", protect, require(identity.CapManageCatalog), boutiqueHandler.Delete)

	products := NewDomainGroup("products", "/products").Use(jsonLimit)
	products.GET("", optional, productHandler.List)
	products.GET("/:id", optional, productHandler.Get)
	products.POST("", protect, require(identity.CapManageCatalog), productHandler.Create)
	products.PUT("/:id", protect, require(identity.CapManageCatalog), productHandler.Update)
	products.DELETE("/:id", protect, require(identity.CapManageCatalog), productHandler.Delete)

	orders := NewDomainGroup("orders", "/orders").Use(jsonLimit)
	orders.POST("", orderHandler.Place)
	orders.GET("", protect, require(identity.CapManageOrders), orderHandler.List)
	orders.PUT("/:id/status", protect, require(identity.CapManageOrders), orderHandler.UpdateStatus)

	avis := NewDomainGroup("avis", "/avis").Use(jsonLimit)
	avis.GET("", avisHandler.List)
	avis.POST("", avisHandler.Create)

	admin := NewDomainGroup("admin", "/admin").Use(protect)
	admin.GET("/stats", require(identity.CapViewStats), adminHandler.Stats)
	admin.GET("/admins", require(identity.CapManageAdmins), adminHandler.Admins)

	upload := NewDomainGroup("upload", "/upload").
		Use(middleware.BodyLimit(cfg.HTTP.MaxUploadSize), protect, require(identity.CapUploadMedia))
	upload.POST("/product-image", uploadHandler.ProductImage)
	upload.POST("/boutique-image", uploadHandler.BoutiqueImage)

	NewRouter(engine, WithBasePath("/api"), WithMiddleware(apiMiddleware...)).
		Register(auth).
		Register(boutiques).
		Register(products).
		Register(orders).
		Register(avis).
		Register(admin).
		Register(upload).
		Setup()

	return engine, nil
}

func securityConfig(app config.AppConfig) middleware.SecurityConfig {
	cfg := middleware.DefaultSecurityConfig()
	cfg.HSTSEnabled = app.IsProduction()
	return cfg
}

func corsConfig(httpCfg config.HTTPConfig) middleware.CORSConfig {
	cfg := middleware.DefaultCORSConfig()
	cfg.AllowOrigins = httpCfg.CORSAllowOrigins
	cfg.AllowLocalhost = httpCfg.CORSAllowLocalhost
	if len(httpCfg.CORSAllowMethods) > 0 {
		cfg.AllowMethods = httpCfg.CORSAllowMethods
	}
	if len(httpCfg.CORSAllowHeaders) > 0 {
		cfg.AllowHeaders = httpCfg.CORSAllowHeaders
	}
	return cfg
}
