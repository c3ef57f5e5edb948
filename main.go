package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vidly/config"
	"vidly/cron"
	"vidly/database"
	customerRepo "vidly/database/repository/customer"
	genreRepo "vidly/database/repository/genre"
	movieRepo "vidly/database/repository/movie"
	rentalRepo "vidly/database/repository/rental"
	userRepoPkg "vidly/database/repository/user"
	"vidly/handlers"
	"vidly/middleware"
	"vidly/routes"
	"vidly/services/customer"
	"vidly/services/genre"
	"vidly/services/movie"
	"vidly/services/rental"
	"vidly/services/tasks"
	"vidly/services/user"
	"vidly/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	mongoClient, err := database.Connect(context.Background())
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := database.Disconnect(mongoClient); err != nil {
			logger.Sugar().Errorf("main: failed to close MongoDB connection: %v", err)
		}
	}()
	db := mongoClient.Database(config.AppConfig.DatabaseName)

	utils.InitAuthCache()
	utils.StartHealthMonitor(utils.GetAuthCacheClient(), mongoClient)

	// Create the Gin router.
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(cors.Default())

	// repositories.
	genres := genreRepo.NewMongoGenreRepo(db)
	customers := customerRepo.NewMongoCustomerRepo(db)
	movies := movieRepo.NewMongoMovieRepo(db)
	rentals := rentalRepo.NewMongoRentalRepo(db)
	users := userRepoPkg.NewMongoUserRepo(db)

	// background task queue for overdue checks.
	scheduler := tasks.NewScheduler()
	defer scheduler.Close()
	cron.InitOverdueWorker(rentals)

	// services.
	genreService := &genre.DefaultGenreService{Repo: genres}
	customerService := &customer.DefaultCustomerService{Repo: customers}
	movieService := &movie.DefaultMovieService{Repo: movies, Genres: genres}
	userService := &user.DefaultUserService{Repo: users}
	rentalService := &rental.DefaultRentalService{
		Repo:         rentals,
		Customers:    customers,
		Movies:       movies,
		Scheduler:    scheduler,
		OverdueAfter: time.Duration(config.AppConfig.OverdueAfterDays) * 24 * time.Hour,
	}

	// handlers.
	h := &routes.Handlers{
		Genres:    handlers.NewGenreHandler(genreService),
		Customers: handlers.NewCustomerHandler(customerService),
		Movies:    handlers.NewMovieHandler(movieService),
		Rentals:   handlers.NewRentalHandler(rentalService),
		Users:     handlers.NewUserHandler(userService),
		UserRepo:  users,
	}
	routes.RegisterRoutes(router, h)

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
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
