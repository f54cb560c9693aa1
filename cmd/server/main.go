package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"citizen_registry/internal/config"
	"citizen_registry/internal/handler"
	"citizen_registry/internal/metrics"
	"citizen_registry/internal/repository"
	"citizen_registry/internal/router"
	"citizen_registry/internal/service"
	"citizen_registry/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading, relying on environment variables")
	}

	// --- Configuration ---
	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		log.Fatalf("Failed to load DB config: %v", err)
	}

	jwtSecret := os.Getenv("JWT_SECRET_KEY")
	if jwtSecret == "" {
		log.Fatalf("JWT_SECRET_KEY not set in environment")
	}
	jwtExpHoursStr := os.Getenv("JWT_EXPIRATION_HOURS")
	jwtExpHours, err := strconv.ParseInt(jwtExpHoursStr, 10, 64)
	if err != nil {
		log.Printf("Invalid JWT_EXPIRATION_HOURS, defaulting to 24: %v", err)
		jwtExpHours = 24
	}

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080" // Default port
	}

	// --- Database Connection ---
	dbPool, err := config.ConnectDB(dbCfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	// --- Auto Migration ---
	if err := config.AutoMigrate(dbPool); err != nil {
		log.Fatalf("Failed to auto-migrate database: %v", err)
	}

	// --- Initialize Utilities ---
	jwtUtil := utils.NewJWTUtil(jwtSecret, jwtExpHours)

	// --- Initialize Repositories ---
	userRepo := repository.NewUserRepository(dbPool)
	countryRepo := repository.NewCountryRepository(dbPool)
	stateRepo := repository.NewStateRepository(dbPool)
	cityRepo := repository.NewCityRepository(dbPool)
	citizenRepo := repository.NewCitizenRepository(dbPool)

	// --- Initialize Services ---
	authService := service.NewAuthService(userRepo, jwtUtil)
	userService := service.NewUserService(userRepo)
	countryService := service.NewCountryService(countryRepo)
	stateService := service.NewStateService(stateRepo, countryRepo)
	cityService := service.NewCityService(cityRepo, stateRepo)
	citizenService := service.NewCitizenService(citizenRepo, cityRepo)

	// --- Initial Admin Bootstrap ---
	if adminEmail := os.Getenv("ADMIN_EMAIL"); adminEmail != "" {
		_, err := authService.RegisterAdmin(context.Background(), adminEmail, os.Getenv("ADMIN_NAME"), os.Getenv("ADMIN_PASSWORD"))
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			log.Printf("Admin account %s already exists, skipping bootstrap", adminEmail)
		case err != nil:
			log.Fatalf("Failed to bootstrap admin account: %v", err)
		default:
			log.Printf("Admin account %s created via ADMIN_EMAIL bootstrap", adminEmail)
		}
	}

	// --- Initialize Handlers ---
	userHandler := handler.NewUserHandler(authService, userService)
	locationHandler := handler.NewLocationHandler(countryService, stateService, cityService)
	citizenHandler := handler.NewCitizenHandler(citizenService)

	// --- Setup Router ---
	// gin.SetMode(gin.ReleaseMode) // Uncomment for production
	appMetrics := metrics.New()
	engine := router.New(router.Handlers{
		Users:     userHandler,
		Locations: locationHandler,
		Citizens:  citizenHandler,
	}, jwtUtil, appMetrics.Middleware())

	// Operational endpoints
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
	engine.GET("/health", func(c *gin.Context) {
		if err := dbPool.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "db": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "healthy"})
	})

	// --- Start Server ---
	srv := &http.Server{
		Addr:    ":" + serverPort,
		Handler: engine,
	}

	go func() {
		log.Printf("Server starting on port %s", serverPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
