package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-rental-inventory/internal/config"
	"go-rental-inventory/internal/handler"
	"go-rental-inventory/internal/middleware"
	"go-rental-inventory/internal/model"
	"go-rental-inventory/internal/repository"
	"go-rental-inventory/internal/scheduler"
	"go-rental-inventory/internal/service"
	"go-rental-inventory/internal/ws"
	"go-rental-inventory/pkg/database"
	appjwt "go-rental-inventory/pkg/jwt"
	"go-rental-inventory/pkg/logger"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

func main() {
	// 1. Configuration (read once, passed explicitly everywhere)
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	zlog := logger.Must(logger.New())
	defer zlog.Sync()

	// 2. Database
	db, err := database.Connect(cfg.Database)
	if err != nil {
		zlog.Fatal("failed to connect to database", zap.Error(err))
	}
	db.AutoMigrate(
		&model.User{}, &model.UserProfile{},
		&model.Party{}, &model.Product{}, &model.Transaction{},
		&model.DashboardMetric{},
	)

	// 3. WebSocket hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 4. Dependency injection
	tokens := appjwt.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTLHours)

	userRepo := repository.NewUserRepo(db)
	partyRepo := repository.NewPartyRepo(db)
	productRepo := repository.NewProductRepo(db)
	txRepo := repository.NewTransactionRepo(db)
	metricRepo := repository.NewMetricRepo(db)

	authService := service.NewAuthService(userRepo, tokens, logger.Named(zlog, "auth"))
	partyService := service.NewPartyService(partyRepo, logger.Named(zlog, "party"))
	productService := service.NewProductService(productRepo, logger.Named(zlog, "product"))
	metricsService := service.NewMetricsService(metricRepo, logger.Named(zlog, "metrics"))
	txService := service.NewTransactionService(txRepo, metricsService, wsHub, logger.Named(zlog, "transaction"))

	authHandler := handler.NewAuthHandler(authService)
	partyHandler := handler.NewPartyHandler(partyService)
	productHandler := handler.NewProductHandler(productService)
	txHandler := handler.NewTransactionHandler(txService)
	dashHandler := handler.NewDashboardHandler(metricsService, txService)

	// 5. Scheduled snapshot
	sched := scheduler.NewScheduler(cfg.Metrics, metricsService, logger.Named(zlog, "scheduler"))
	sched.Start()
	defer sched.Stop()

	// 6. Fiber
	app := fiber.New(fiber.Config{
		AppName: "Rental Inventory v1.0",
	})

	app.Use(fiberlogger.New())
	app.Use(recover.New())
	app.Use(cors.New())

	// 7. Routes
	api := app.Group("/api/v1")

	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	protected := api.Group("", middleware.RequireAuth(tokens, userRepo))
	protected.Post("/auth/logout", authHandler.Logout)

	protected.Get("/parties", partyHandler.GetParties)
	protected.Post("/parties", partyHandler.CreateParty)
	protected.Delete("/parties/:id", partyHandler.DeleteParty)
	protected.Get("/parties/:id/transactions", txHandler.GetPartyTransactions)

	protected.Get("/products", productHandler.GetProducts)
	protected.Post("/products", productHandler.CreateProduct)
	protected.Put("/products/:id/stock", productHandler.UpdateStock)

	protected.Post("/transactions/bulk", txHandler.SubmitBulk)

	protected.Get("/dashboard/metrics", dashHandler.GetMetrics)
	protected.Post("/dashboard/metrics/recalculate", dashHandler.Recalculate)
	protected.Get("/dashboard/recent", dashHandler.GetRecentActivity)

	// WebSocket route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful shutdown
	go func() {
		if err := app.Listen(":" + cfg.Server.Port); err != nil {
			zlog.Fatal("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("shutting down server")
	if err := app.Shutdown(); err != nil {
		zlog.Fatal("server forced to shutdown", zap.Error(err))
	}
	zlog.Info("server exited")
}
