package routes

import (
	"net/http"

	"pickup-sports-backend/internal/api/handlers"
	"pickup-sports-backend/internal/api/middleware"
	"pickup-sports-backend/internal/auth"
	"pickup-sports-backend/internal/config"
	"pickup-sports-backend/internal/logger"
	"pickup-sports-backend/internal/repository"
	"pickup-sports-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Version is reported by the health endpoint
var Version = "1.0.0"

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	router := gin.New()

	router.Use(middleware.Logger())

	// Metrics wraps Recovery so recovered panics are counted as 500s
	if cfg.MetricsEnabled {
		if err := middleware.RegisterMetrics(prometheus.DefaultRegisterer); err != nil {
			return nil, err
		}
		router.Use(middleware.Metrics())
	}
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	if cfg.MetricsEnabled {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	authService, err := auth.NewAuthService(auth.NewAuthConfig(cfg))
	if err != nil {
		return nil, err
	}
	authMiddleware := auth.NewAuthMiddleware(authService)
	requireAuth := authMiddleware.RequireAuth()

	validator := service.NewValidator()

	// Repositories share one store; multi-row writes go through the transactor
	store := repository.NewStore(db)
	tx := repository.NewTransactor(db)

	userService := service.NewUserService(store.Users, validator)
	locationService := service.NewLocationService(store.Locations, validator)
	teamService := service.NewTeamService(store, tx, validator)
	roleService := service.NewRoleService(store, tx, validator, cfg.GameCutoff())
	gameService := service.NewGameService(store, tx, validator, cfg.GameCutoff())
	rsvpService := service.NewRsvpService(store, validator)

	healthHandler := handlers.NewHealthHandler(handlers.GormPinger{DB: db}, Version)
	userHandler := handlers.NewUserHandler(userService, authService)
	locationHandler := handlers.NewLocationHandler(locationService)
	teamHandler := handlers.NewTeamHandler(teamService, roleService)
	gameHandler := handlers.NewGameHandler(gameService)
	rsvpHandler := handlers.NewRsvpHandler(rsvpService)

	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Reads are public; a valid token only adds the caller's own rsvp to game responses
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.OptionalAuth())
	{
		users := v1.Group("/users")
		{
			users.POST("", userHandler.Register)
			users.GET("/current", requireAuth, userHandler.GetCurrentUser)
			users.PUT("/current", requireAuth, userHandler.UpdateCurrentUser)
			users.PATCH("/current", requireAuth, userHandler.UpdateCurrentUser)
			users.GET("/:id", userHandler.GetUser)
		}

		locations := v1.Group("/locations")
		{
			locations.GET("", locationHandler.SearchLocations)
			locations.POST("", requireAuth, locationHandler.CreateLocation)
			locations.GET("/:id", locationHandler.GetLocation)
		}

		teams := v1.Group("/teams")
		{
			teams.GET("", teamHandler.ListTeams)
			teams.POST("", requireAuth, teamHandler.CreateTeam)
			teams.GET("/my", requireAuth, teamHandler.ListMyTeams)
			teams.GET("/managed", requireAuth, teamHandler.ListManagedTeams)
			teams.GET("/invites", requireAuth, teamHandler.ListTeamInvites)
			teams.GET("/:id", teamHandler.GetTeam)
			teams.PUT("/:id", requireAuth, teamHandler.UpdateTeam)
			teams.PATCH("/:id", requireAuth, teamHandler.UpdateTeam)
			teams.DELETE("/:id", requireAuth, teamHandler.DeleteTeam)
			teams.GET("/:id/games", gameHandler.ListTeamGames)

			players := teams.Group("/:id/players")
			{
				players.GET("", teamHandler.ListPlayers)
				players.POST("", requireAuth, teamHandler.AddPlayer)
				players.PUT("/:roleId", requireAuth, teamHandler.UpdatePlayer)
				players.PATCH("/:roleId", requireAuth, teamHandler.UpdatePlayer)
				players.DELETE("/:roleId", requireAuth, teamHandler.RemovePlayer)
			}
		}

		games := v1.Group("/games")
		{
			games.GET("", gameHandler.ListGames)
			games.POST("", requireAuth, gameHandler.CreateGame)
			games.GET("/pickup", gameHandler.ListPickupGames)
			games.GET("/my", requireAuth, gameHandler.ListMyGames)
			games.GET("/invites", requireAuth, gameHandler.ListGameInvites)
			games.GET("/:id", gameHandler.GetGame)
			games.PUT("/:id", requireAuth, gameHandler.UpdateGame)
			games.PATCH("/:id", requireAuth, gameHandler.UpdateGame)
			games.DELETE("/:id", requireAuth, gameHandler.DeleteGame)

			players := games.Group("/:id/players")
			{
				players.GET("", rsvpHandler.ListPlayers)
				players.POST("", requireAuth, rsvpHandler.AddPlayer)
				players.PUT("/:rsvpId", requireAuth, rsvpHandler.UpdatePlayer)
				players.PATCH("/:rsvpId", requireAuth, rsvpHandler.UpdatePlayer)
				players.DELETE("/:rsvpId", requireAuth, rsvpHandler.RemovePlayer)
			}
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	logger.New().WithFields(map[string]interface{}{
		"metrics":     cfg.MetricsEnabled,
		"game_cutoff": cfg.GameCutoff().String(),
	}).Info("Routes configured")

	return router, nil
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db handlers.Pinger) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db, Version)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
