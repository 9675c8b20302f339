package handlers

import (
	"net/http"

	"github.com/SscSPs/budget_ledger/cmd/docs"
	portssvc "github.com/SscSPs/budget_ledger/internal/core/ports/services"
	"github.com/SscSPs/budget_ledger/internal/middleware"
	"github.com/SscSPs/budget_ledger/internal/platform/config"
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
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	setupAPIV1Routes(r, cfg, services)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer))
	registerAPIRoutes(v1, services)
}

// registerAPIRoutes registers every authenticated route on rg.
func registerAPIRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	registerProfileRoutes(rg, services.Profile)
	registerWorkspaceRoutes(rg, services)
	registerMonthRoutes(rg, services)
	registerBudgetRoutes(rg, services.Budget)
	registerExpenseRoutes(rg, services.Expense)
	registerReimbursementRoutes(rg, services.Reimbursement)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
