package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quickway/travels_backoffice/cmd/docs"
	"github.com/quickway/travels_backoffice/internal/core/domain"
	portssvc "github.com/quickway/travels_backoffice/internal/core/ports/services"
	"github.com/quickway/travels_backoffice/internal/middleware"
	"github.com/quickway/travels_backoffice/internal/platform/config"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// loginLimiter throttles token issuance; nil disables throttling.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	loginLimiter *limiter.Limiter,
) {
	registerValidators()

	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	r.GET("/", getHome)
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	registerAuthRoutes(r, services.Auth, loginLimiter)

	api := r.Group("", middleware.AuthMiddleware(cfg.JWTSecret))
	registerOfficeRoutes(api, services.Office)
	registerUserRoutes(api, services.User)
	registerAirlineRoutes(api, services.Airline)
	registerSupplierRoutes(api, services.Supplier)
	registerSaleRoutes(api, services.Sale, services.Export)
	registerPaymentRoutes(api, services.Payment)

	setupSwaggerRoutes(r, cfg)
}

// superAdminOnly gates whole route groups ahead of the service policy.
var superAdminOnly = middleware.RequireRoles(domain.RoleSuperAdmin)

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
