package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"invoice-dashboard-backend/internal/actions"
	"invoice-dashboard-backend/internal/auth"
	"invoice-dashboard-backend/internal/cache"
	handler "invoice-dashboard-backend/internal/handlers"
	"invoice-dashboard-backend/internal/middleware"
	"invoice-dashboard-backend/internal/repository"
)

// RegisterRoutes wires repositories, actions and handlers onto the engine.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, routeCache cache.RouteCache, sessions *auth.SessionManager, logger *zap.Logger) {
	invoiceRepo := repository.NewInvoiceRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	userRepo := repository.NewUserRepository(db)

	provider := auth.NewCredentialsProvider(userRepo, sessions, logger)

	invoiceActions := actions.NewInvoiceActions(invoiceRepo, routeCache, logger)
	authActions := actions.NewAuthActions(provider, logger)

	invoiceHandler := handler.NewInvoiceHandler(invoiceActions, invoiceRepo, customerRepo)
	authHandler := handler.NewAuthHandler(authActions, sessions, logger)

	r.Use(middleware.DashboardGate(sessions))

	api := r.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api.GET("/customers", invoiceHandler.CustomerOptions)

	// Credentials sign-in flow
	r.POST("/login", authHandler.Login)
	r.POST("/logout", authHandler.Logout)

	// Invoice form actions
	invoices := r.Group("/dashboard/invoices")
	{
		invoices.POST("", invoiceHandler.Create)
		invoices.GET("/:id/edit", invoiceHandler.Edit)
		invoices.POST("/:id", invoiceHandler.Update)
		invoices.POST("/:id/delete", invoiceHandler.Delete)
	}
}
