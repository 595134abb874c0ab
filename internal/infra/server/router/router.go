// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/ledgerkeep/backend/internal/integration/entrypoint/controller"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	accountController     *controller.AccountController
	transactionController *controller.TransactionController
	budgetController      *controller.BudgetController
	goalController        *controller.GoalController
	investmentController  *controller.InvestmentController
	backupController      *controller.BackupController
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	accountController *controller.AccountController,
	transactionController *controller.TransactionController,
	budgetController *controller.BudgetController,
	goalController *controller.GoalController,
	investmentController *controller.InvestmentController,
	backupController *controller.BackupController,
) *Router {
	return &Router{
		healthController:      healthController,
		accountController:     accountController,
		transactionController: transactionController,
		budgetController:      budgetController,
		goalController:        goalController,
		investmentController:  investmentController,
		backupController:      backupController,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		accounts := v1.Group("/accounts")
		{
			accounts.GET("", r.accountController.List)
			accounts.POST("", r.accountController.Create)
			accounts.PUT("/order", r.accountController.Reorder)
			accounts.PATCH("/:id", r.accountController.Update)
			accounts.DELETE("/:id", r.accountController.Delete)
		}

		transactions := v1.Group("/transactions")
		{
			transactions.GET("", r.transactionController.List)
			transactions.POST("", r.transactionController.Create)
			transactions.GET("/spending", r.transactionController.CategorySpending)
			transactions.POST("/transfer", r.transactionController.Transfer)
			transactions.PATCH("/transfer/:id", r.transactionController.UpdateTransfer)
			transactions.PATCH("/:id", r.transactionController.Update)
			transactions.DELETE("/:id", r.transactionController.Delete)
		}

		budgets := v1.Group("/budgets")
		{
			budgets.GET("", r.budgetController.List)
			budgets.POST("", r.budgetController.Create)
			budgets.GET("/categories", r.budgetController.Categories)
			budgets.PATCH("/:id", r.budgetController.Update)
			budgets.DELETE("/:id", r.budgetController.Delete)
		}

		goals := v1.Group("/goals")
		{
			goals.GET("", r.goalController.List)
			goals.POST("", r.goalController.Create)
			goals.PATCH("/:id", r.goalController.Update)
			goals.DELETE("/:id", r.goalController.Delete)
			goals.POST("/:id/adjust", r.goalController.Adjust)
		}

		investments := v1.Group("/investments")
		{
			investments.GET("", r.investmentController.List)
			investments.POST("", r.investmentController.Create)
			investments.PUT("/stock-price", r.investmentController.UpdateStockPrice)
			investments.PATCH("/:id", r.investmentController.Update)
			investments.POST("/:id/action", r.investmentController.Action)
		}

		backupRoutes := v1.Group("/backup")
		{
			backupRoutes.GET("/export", r.backupController.Export)
			backupRoutes.POST("/import", r.backupController.Import)
		}
	}
}
