package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"pickup-sports-backend/internal/api/routes"
	"pickup-sports-backend/internal/auth"
	"pickup-sports-backend/internal/config"
	"pickup-sports-backend/internal/database"
	"pickup-sports-backend/internal/logger"
	"pickup-sports-backend/internal/repository"
	"pickup-sports-backend/internal/seed"
	"pickup-sports-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "pickup-sports-backend",
		Short:         "Pickup sports backend API server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
	root.AddCommand(newServeCmd(), newMigrateCmd(), newSeedCmd(), newTokenCmd())
	return root
}

// loadConfig reads .env (if any) and the configuration, then sets up logging
func loadConfig() (*config.Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger.Setup(logger.Options{
		Level:      cfg.LogLevel,
		File:       cfg.LogFile,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAgeDays: cfg.LogMaxAgeDays,
	})
	return cfg, nil
}

func openDatabase(cfg *config.Config, migrate bool) (*gorm.DB, error) {
	db, err := database.Initialize(cfg.DatabaseURL, &database.Options{SkipMigrate: !migrate})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return db, nil
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}

func runServe() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := openDatabase(cfg, true)
	if err != nil {
		return err
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router, err := routes.SetupRoutes(db, cfg)
	if err != nil {
		return fmt.Errorf("failed to set up routes: %w", err)
	}

	port := cfg.Port
	if port == "" {
		port = "8000"
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logrus.Infof("Starting server on port %s", port)
	return serveHTTP(ctx, &http.Server{Addr: ":" + port, Handler: router}, shutdownTimeout)
}

// serveHTTP runs srv until ctx is done, then gives in-flight requests up to
// timeout to finish
func serveHTTP(ctx context.Context, srv *http.Server, timeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logrus.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}
	logrus.Info("Server stopped")
	return nil
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if _, err := openDatabase(cfg, true); err != nil {
				return err
			}
			logrus.Info("Database schema is up to date")
			return nil
		},
	}
}

func newSeedCmd() *cobra.Command {
	var (
		file  string
		users int
		games int
		teams bool
		rseed int64
	)
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load fixtures or generate random development data",
		Long: "Load a YAML fixture file with --file, or generate random users, locations, " +
			"teams and pickup games with --users. Loading is idempotent.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" && users == 0 {
				return fmt.Errorf("either --file or --users is required")
			}

			var (
				fixtures *seed.Fixtures
				err      error
			)
			if file != "" {
				fixtures, err = seed.LoadFile(file)
			} else {
				fixtures, err = seed.NewGenerator(rseed).Generate(seed.RandomOptions{Users: users, Games: games, Teams: teams}, time.Now())
			}
			if err != nil {
				return err
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, err := openDatabase(cfg, true)
			if err != nil {
				return err
			}

			store := repository.NewStore(db)
			gameService := service.NewGameService(store, repository.NewTransactor(db), service.NewValidator(), cfg.GameCutoff())
			result, err := seed.NewLoader(store, gameService).Load(context.Background(), fixtures)
			if err != nil {
				return err
			}

			logrus.WithFields(logrus.Fields{
				"users":     result.Users,
				"locations": result.Locations,
				"teams":     result.Teams,
				"games":     result.Games,
			}).Info("Seed data loaded")
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "YAML fixture file")
	cmd.Flags().IntVar(&users, "users", 0, "number of random users to generate")
	cmd.Flags().IntVar(&games, "games", 100, "number of random pickup games to generate")
	cmd.Flags().BoolVar(&teams, "teams", true, "generate teams with rosters from the random users")
	cmd.Flags().Int64Var(&rseed, "seed", 1, "random seed")
	return cmd
}

func newTokenCmd() *cobra.Command {
	var userID uint
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an access token for a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, err := openDatabase(cfg, false)
			if err != nil {
				return err
			}

			user, err := repository.NewUserRepository(db).GetByID(userID)
			if err != nil {
				return fmt.Errorf("failed to get user %d: %w", userID, err)
			}

			authService, err := auth.NewAuthService(auth.NewAuthConfig(cfg))
			if err != nil {
				return err
			}
			token, err := authService.IssueToken(user)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token.AccessToken)
			return nil
		},
	}
	cmd.Flags().UintVar(&userID, "user", 0, "user id")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
