package routes

import (
	userRepo "vidly/database/repository/user"
	"vidly/handlers"
	"vidly/middleware"

	"github.com/gin-gonic/gin"
)

// Handlers bundles everything route registration needs.
type Handlers struct {
	Genres    *handlers.GenreHandler
	Customers *handlers.CustomerHandler
	Movies    *handlers.MovieHandler
	Rentals   *handlers.RentalHandler
	Users     *handlers.UserHandler

	// UserRepo backs the admin middleware's freshness check.
	UserRepo userRepo.UserRepository
}

// RegisterRoutes wires the API surface. Reads are public; writes require a
// token; deletes of master records additionally require admin.
func RegisterRoutes(r *gin.Engine, h *Handlers) {
	auth := middleware.AuthRequired()
	admin := middleware.AdminRequired(h.UserRepo)

	r.GET("/health", handlers.Health)

	genres := r.Group("/api/genres")
	{
		genres.GET("", h.Genres.ListGenres)
		genres.GET("/:id", h.Genres.GetGenre)
		genres.POST("", auth, h.Genres.CreateGenre)
		genres.PUT("/:id", auth, h.Genres.UpdateGenre)
		genres.DELETE("/:id", auth, admin, h.Genres.DeleteGenre)
	}

	customers := r.Group("/api/customers")
	{
		customers.GET("", h.Customers.ListCustomers)
		customers.GET("/:id", h.Customers.GetCustomer)
		customers.POST("", auth, h.Customers.CreateCustomer)
		customers.PUT("/:id", auth, h.Customers.UpdateCustomer)
		customers.DELETE("/:id", auth, admin, h.Customers.DeleteCustomer)
	}

	movies := r.Group("/api/movies")
	{
		movies.GET("", h.Movies.ListMovies)
		movies.GET("/:id", h.Movies.GetMovie)
		movies.POST("", auth, h.Movies.CreateMovie)
		movies.PUT("/:id", auth, h.Movies.UpdateMovie)
		movies.DELETE("/:id", auth, admin, h.Movies.DeleteMovie)
	}

	rentals := r.Group("/api/rentals")
	{
		rentals.GET("", h.Rentals.ListRentals)
		rentals.GET("/:id", h.Rentals.GetRental)
		rentals.POST("", auth, h.Rentals.CreateRental)
	}

	r.POST("/api/returns", auth, h.Rentals.ReturnRental)

	users := r.Group("/api/users")
	{
		users.POST("", h.Users.RegisterUser)
		users.GET("/me", auth, h.Users.Me)
	}

	r.POST("/api/auth", h.Users.Authenticate)
}
