package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/engagecrm/engage-backend/api/routes"
	"github.com/engagecrm/engage-backend/internal/config"
	"github.com/engagecrm/engage-backend/internal/handlers"
	"github.com/engagecrm/engage-backend/internal/repositories"
	"github.com/engagecrm/engage-backend/internal/repositories/memory"
	mongorepo "github.com/engagecrm/engage-backend/internal/repositories/mongodb"
	"github.com/engagecrm/engage-backend/internal/services"
	"github.com/engagecrm/engage-backend/pkg/delivery"
	"github.com/engagecrm/engage-backend/pkg/genai"
	"github.com/engagecrm/engage-backend/pkg/googleauth"
	"github.com/engagecrm/engage-backend/pkg/mongodb"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Missing .env is fine, config falls back to defaults
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	// Select repositories: the primary document store or the ephemeral
	// in-memory fallback.
	var (
		campaignRepo repositories.CampaignRepository
		customerRepo repositories.CustomerRepository
		taskRepo     repositories.TaskRepository
		userRepo     repositories.UserRepository
	)
	if cfg.Store.UseMemory {
		logger.Warn("using in-memory store, data will not survive a restart")
		campaignRepo = memory.NewCampaignRepository()
		customerRepo = memory.NewCustomerRepository()
		taskRepo = memory.NewTaskRepository()
		userRepo = memory.NewUserRepository()
	} else {
		mongoClient, err := mongodb.NewClient(cfg.MongoDB.URI)
		if err != nil {
			logger.Fatal("failed to connect to MongoDB", zap.Error(err))
		}
		defer func() {
			if err := mongoClient.Disconnect(context.Background()); err != nil {
				logger.Error("error disconnecting from MongoDB", zap.Error(err))
			}
		}()

		db := mongoClient.Database(cfg.MongoDB.Database)
		campaignRepo = mongorepo.NewCampaignRepository(db)
		customerRepo = mongorepo.NewCustomerRepository(db)
		taskRepo = mongorepo.NewTaskRepository(db)
		userRepo = mongorepo.NewUserRepository(db)
	}

	// External collaborators
	var genaiClient genai.Client
	if cfg.GenAI.MockAPI {
		genaiClient = genai.NewMockClient()
	} else {
		genaiClient = genai.NewHTTPClient(cfg.GenAI.BaseURL, cfg.GenAI.APIKey)
	}

	var verifier googleauth.Verifier
	if cfg.Google.MockVerify {
		verifier = googleauth.MockVerifier{}
	} else {
		verifier = googleauth.NewClient(cfg.Google.ClientID)
	}

	simulator := delivery.NewRandomSimulator(cfg.Delivery.MinSuccessRate, cfg.Delivery.MaxSuccessRate)

	// Services
	authService := services.NewAuthService(userRepo, verifier, cfg, logger)
	campaignService := services.NewCampaignService(campaignRepo, customerRepo, simulator, logger)
	customerService := services.NewCustomerService(customerRepo, logger)
	taskService := services.NewTaskService(taskRepo, logger)
	aiService := services.NewAIService(genaiClient, logger)
	dashboardService := services.NewDashboardService(campaignRepo, customerRepo, taskRepo)

	// Handlers
	deps := routes.HandlerDependencies{
		AuthHandler:      handlers.NewAuthHandler(authService),
		CampaignHandler:  handlers.NewCampaignHandler(campaignService),
		CustomerHandler:  handlers.NewCustomerHandler(customerService),
		TaskHandler:      handlers.NewTaskHandler(taskService),
		AIHandler:        handlers.NewAIHandler(aiService),
		DashboardHandler: handlers.NewDashboardHandler(dashboardService),
	}

	router := routes.SetupRouter(cfg, logger, deps)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		logger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen failed", zap.Error(err))
		}
	}()

	// Wait for interrupt, then shut down gracefully
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server exiting")
}
