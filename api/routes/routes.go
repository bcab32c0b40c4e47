package routes

import (
	"net/http"

	"github.com/engagecrm/engage-backend/internal/config"
	"github.com/engagecrm/engage-backend/internal/handlers"
	"github.com/engagecrm/engage-backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HandlerDependencies bundles the handlers the router wires up
type HandlerDependencies struct {
	AuthHandler      *handlers.AuthHandler
	CampaignHandler  *handlers.CampaignHandler
	CustomerHandler  *handlers.CustomerHandler
	TaskHandler      *handlers.TaskHandler
	AIHandler        *handlers.AIHandler
	DashboardHandler *handlers.DashboardHandler
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, log *zap.Logger, deps HandlerDependencies) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware(log))

	// Public routes
	public := router.Group("/api/v1")
	{
		public.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		auth := public.Group("/auth")
		{
			auth.POST("/register", deps.AuthHandler.Register)
			auth.POST("/login", deps.AuthHandler.Login)
			auth.POST("/google", deps.AuthHandler.Google)
		}
	}

	// Protected routes
	protected := router.Group("/api/v1")
	protected.Use(middleware.JWTAuthMiddleware(cfg))
	{
		campaigns := protected.Group("/campaigns")
		{
			campaigns.GET("", deps.CampaignHandler.ListCampaigns)
			campaigns.POST("", deps.CampaignHandler.CreateCampaign)
			campaigns.GET("/:id", deps.CampaignHandler.GetCampaign)
			campaigns.PUT("/:id", deps.CampaignHandler.UpdateCampaign)
			campaigns.DELETE("/:id", deps.CampaignHandler.DeleteCampaign)
		}

		customers := protected.Group("/customers")
		{
			customers.GET("", deps.CustomerHandler.ListCustomers)
			customers.POST("", deps.CustomerHandler.CreateCustomer)
			customers.GET("/:id", deps.CustomerHandler.GetCustomer)
			customers.PUT("/:id", deps.CustomerHandler.UpdateCustomer)
			customers.DELETE("/:id", deps.CustomerHandler.DeleteCustomer)
		}

		tasks := protected.Group("/tasks")
		{
			tasks.GET("", deps.TaskHandler.ListTasks)
			tasks.POST("", deps.TaskHandler.CreateTask)
			tasks.GET("/:id", deps.TaskHandler.GetTask)
			tasks.PUT("/:id", deps.TaskHandler.UpdateTask)
			tasks.DELETE("/:id", deps.TaskHandler.DeleteTask)
		}

		ai := protected.Group("/ai")
		{
			ai.POST("/suggest-messages", deps.AIHandler.SuggestMessages)
			ai.POST("/summarize", deps.AIHandler.Summarize)
			ai.POST("/translate-segment", deps.AIHandler.TranslateSegment)
			ai.GET("/marketing-tips", deps.AIHandler.MarketingTips)
		}

		protected.GET("/dashboard/stats", deps.DashboardHandler.GetStats)
	}

	return router
}
