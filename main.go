package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"astromarket/config"
	"astromarket/cron"
	"astromarket/database"
	bookingRepo "astromarket/database/repository/booking"
	catalogRepo "astromarket/database/repository/catalog"
	consultationRepo "astromarket/database/repository/consultation"
	customerRepo "astromarket/database/repository/customer"
	"astromarket/handlers"
	"astromarket/metrics"
	"astromarket/routes"
	"astromarket/services/booking"
	"astromarket/services/catalog"
	"astromarket/services/customer"
	"astromarket/services/sarthi"
	"astromarket/services/tasks"
	"astromarket/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stripe/stripe-go/v76"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	if err := config.Validate(); err != nil {
		logger.Fatal("main: invalid configuration", zap.Error(err))
	}
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	rootCtx, stopMonitors := context.WithCancel(context.Background())
	defer stopMonitors()

	sessionCache := utils.GetSessionCacheClient()

	// repositories.
	var (
		customers     customerRepo.CustomerRepository
		bookings      bookingRepo.BookingRepository
		requests      consultationRepo.ConsultationRequestRepository
		mongoClient   *mongo.Client
		mockRoster    = customerRepo.MockRoster(time.Now())
		catalogSource = catalogRepo.NewStaticCatalogRepo()
	)
	if config.UsesMongo() {
		database.InitDB()
		mongoClient = database.MongoClient

		mongoCustomers := customerRepo.NewMongoCustomerRepo()
		seeded, err := mongoCustomers.SeedIfEmpty(rootCtx, mockRoster)
		if err != nil {
			logger.Warn("main: failed to seed customers", zap.Error(err))
		} else if seeded > 0 {
			logger.Info("main: seeded customer roster", zap.Int("count", seeded))
		}
		customers = mongoCustomers
		bookings = bookingRepo.NewMongoBookingRepo()
		requests = consultationRepo.NewMongoRequestRepo()
	} else {
		logger.Info("main: serving mock data from memory")
		customers = customerRepo.NewMemoryCustomerRepo(mockRoster)
		bookings = bookingRepo.NewMemoryBookingRepo()
		requests = consultationRepo.NewMemoryRequestRepo()
	}

	// metrics.
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	bookingMetrics := metrics.NewBookingMetrics(registry)

	// payments.
	var payments booking.PaymentHandler
	if config.AppConfig.StripeKey != "" {
		stripe.Key = config.AppConfig.StripeKey
		payments = booking.NewStripePaymentHandler(logger)
		logger.Info("main: using Stripe payments")
	} else {
		payments = booking.NewSimulatedPaymentHandler(config.PaymentDelay(), logger)
	}

	// reminders.
	reminderClient := asynq.NewClient(cron.RedisOpt())
	defer reminderClient.Close()
	reminderWorker := cron.InitReminderWorker(logger)

	// services.
	catalogService := &catalog.DefaultCatalogService{Repo: catalogSource}
	sarthiService := &sarthi.DefaultSarthiService{
		Catalog:  catalogService,
		Requests: requests,
		Metrics:  bookingMetrics,
		Logger:   logger,
	}
	bookingService := booking.NewBookingSessionService(booking.Deps{
		Catalog:   catalogService,
		Store:     booking.NewRedisSessionStore(sessionCache, config.SessionTTL()),
		Payments:  payments,
		Bookings:  bookings,
		Reminders: tasks.NewAsynqReminderScheduler(reminderClient, config.ReminderLead(), logger),
		Metrics:   bookingMetrics,
		Logger:    logger,
		Currency:  config.AppConfig.Currency,
	})
	customerService := &customer.DefaultCustomerAdminService{
		Repo:    customers,
		Metrics: bookingMetrics,
		Logger:  logger,
	}

	utils.StartHealthMonitor(rootCtx, 15*time.Second, sessionCache, mongoClient)

	if config.AppConfig.AdminPasswordHash == "" {
		logger.Warn("main: ADMIN_PASSWORD_HASH is not set; admin login is disabled")
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Catalog: handlers.NewCatalogHandler(catalogService),
		Sarthi:  handlers.NewSarthiHandler(sarthiService),
		Booking: handlers.NewBookingHandler(bookingService),
		Admin: handlers.NewAdminHandler(customerService, handlers.AdminCredentials{
			Username:     config.AppConfig.AdminUsername,
			PasswordHash: config.AppConfig.AdminPasswordHash,
		}),
		Health:            &handlers.HealthHandler{},
		Metrics:           promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		Logger:            logger,
		MaxRequestsPerMin: config.AppConfig.MaxRequestsPerMin,
	}

	router := gin.New()
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
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
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}

	bookingService.Shutdown()
	reminderWorker.Shutdown()
	stopMonitors()
	if err := database.Disconnect(ctx); err != nil {
		logger.Warn("main: failed to disconnect MongoDB", zap.Error(err))
	}
	_ = logger.Sync()

	logger.Sugar().Info("main: server stopped gracefully")
}
