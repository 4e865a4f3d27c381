package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"carelink/config"
	"carelink/cron"
	"carelink/database"
	factsRepo "carelink/database/repository/facts"
	"carelink/handlers"
	"carelink/middleware"
	"carelink/routes"
	"carelink/services/agent"
	"carelink/services/appointment"
	"carelink/services/emergency"
	"carelink/services/followup"
	"carelink/services/notification"
	"carelink/services/retrieval"
	"carelink/services/session"
	"carelink/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Health-record store: MongoDB when configured, otherwise the
	// seeded in-memory demo store.
	var facts factsRepo.Repository
	if config.AppConfig.MongoURI != "" {
		database.InitDB()
		facts = factsRepo.NewMongoFactRepo()
	} else {
		logger.Sugar().Info("main: no MONGO_URI set, using seeded in-memory fact store")
		facts = factsRepo.NewMemoryFactRepo(factsRepo.SeedFacts())
	}

	store := session.NewStore()
	delay := time.Duration(config.AppConfig.FollowupDelayMinutes) * time.Minute

	// Follow-up delivery: asynq over Redis when configured, otherwise
	// in-process timers.
	var scheduler followup.Scheduler
	if config.AppConfig.RedisAddr != "" {
		client := asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisFollowupQueueDB,
		})
		defer client.Close()
		scheduler = followup.NewAsynqScheduler(client, delay)
		cron.InitFollowupWorker(store)
	} else {
		logger.Sugar().Info("main: no REDIS_ADDR set, using in-process follow-up timers")
		scheduler = followup.NewTimerScheduler(store, delay)
	}

	retriever := retrieval.NewRetriever(facts, logger.Named("retrieval"))
	notifier := notification.NewGoogleNotificationService(context.Background())
	schedule := appointment.NewInMemorySchedule(nil, notifier)
	controller := appointment.NewFlowController(schedule, retriever)
	machine := emergency.NewMachine(scheduler)

	llm := agent.NewOpenAIClient(config.AppConfig.OpenAIAPIKey, config.AppConfig.OpenAIModel)
	orchestrator := agent.NewOrchestrator(
		store,
		llm,
		retriever,
		controller,
		machine,
		scheduler,
		time.Duration(config.AppConfig.LLMTimeoutSeconds)*time.Second,
	)

	handlerBundle := handlers.NewHandlerBundle(store, orchestrator)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(routes.CORSMiddleware())
	middleware.SetRateLimit(config.AppConfig.MaxRequestsPerMin)
	router.Use(middleware.RateLimitMiddleware())

	routes.RegisterChatRoutes(router, handlerBundle)
	routes.RegisterHealthRoute(router)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "5050"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
