package handlers

import (
	"log/slog"

	"github.com/SscSPs/bookkeeping_app/cmd/docs"
	portssvc "github.com/SscSPs/bookkeeping_app/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_app/internal/middleware"
	"github.com/SscSPs/bookkeeping_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	RegisterValidators()
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	api := r.Group("/api")

	// Public routes
	api.GET("/health", getHealth)
	loginLimiter, err := middleware.NewMemoryLimiter(cfg.LoginRateLimit)
	if err != nil {
		slog.Warn("Invalid LOGIN_RATE_LIMIT, login is not rate limited",
			slog.String("value", cfg.LoginRateLimit), slog.String("error", err.Error()))
		loginLimiter = nil
	}
	registerAuthRoutes(api, services, loginLimiter)

	setupAPIRoutes(api, cfg, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIRoutes registers the bookkeeping routes, behind AuthMiddleware when REQUIRE_AUTH is set.
func setupAPIRoutes(
	api *gin.RouterGroup,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	protected := api
	if cfg.RequireAuth {
		protected = api.Group("", middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer))
	}

	registerSaleRoutes(protected, services.Sale)
	registerPurchaseRoutes(protected, services.Purchase)
	registerReportingRoutes(protected, services.Reporting)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
