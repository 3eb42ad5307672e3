package handlers

import (
	"fmt"
	"html/template"
	"net/http"

	"github.com/SscSPs/currency_toolkit/cmd/docs"
	portssvc "github.com/SscSPs/currency_toolkit/internal/core/ports/services"
	"github.com/SscSPs/currency_toolkit/internal/middleware"
	"github.com/SscSPs/currency_toolkit/internal/platform/config"
	"github.com/SscSPs/currency_toolkit/internal/utils"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	posthogClient *utils.PosthogClientWrapper,
) error {
	if err := registerValidators(); err != nil {
		return fmt.Errorf("failed to register validators: %w", err)
	}

	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return fmt.Errorf("failed to parse page templates: %w", err)
	}
	r.SetHTMLTemplate(tmpl)

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/", getHome)

	// Register public authentication routes
	registerAuthRoutes(r, services.AdminToken)

	// The seeding endpoint and the page that drives it
	if err := setupSeedRoutes(r, cfg, services, posthogClient); err != nil {
		return err
	}
	registerAdminPageRoutes(r, cfg)

	// Detection API is public; it never touches storage
	setupAPIV1Routes(r, services, posthogClient)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupSeedRoutes mounts /api/seed-currency behind the rate limiter and, when configured, admin auth.
func setupSeedRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	posthogClient *utils.PosthogClientWrapper,
) error {
	seedLimiter, err := middleware.NewMemoryLimiter(cfg.SeedRateLimit)
	if err != nil {
		return fmt.Errorf("invalid SEED_RATE_LIMIT %q: %w", cfg.SeedRateLimit, err)
	}

	guards := []gin.HandlerFunc{middleware.RateLimit(seedLimiter)}
	if cfg.RequireAdminAuth {
		guards = append(guards, middleware.AuthMiddleware(cfg.JWTSecret))
	}

	api := r.Group("/api", guards...)
	registerSeedCurrencyRoutes(api, services.CurrencySeeder, posthogClient)
	return nil
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
	posthogClient *utils.PosthogClientWrapper,
) {
	v1 := r.Group("/api/v1")
	registerDetectionRoutes(v1, services.Detection, posthogClient)
}

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
