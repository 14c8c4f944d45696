package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/MobeenM17/SuswearGProject/config"
	"github.com/MobeenM17/SuswearGProject/internal/api/handler"
	"github.com/MobeenM17/SuswearGProject/internal/api/router"
	"github.com/MobeenM17/SuswearGProject/internal/model"
	"github.com/MobeenM17/SuswearGProject/internal/repository"
	"github.com/MobeenM17/SuswearGProject/internal/service"
	"github.com/MobeenM17/SuswearGProject/pkg/database"
	"github.com/MobeenM17/SuswearGProject/pkg/jwt"
	applogger "github.com/MobeenM17/SuswearGProject/pkg/logger"
	"github.com/MobeenM17/SuswearGProject/pkg/photostore/local"
	"github.com/MobeenM17/SuswearGProject/pkg/redis"
	"github.com/MobeenM17/SuswearGProject/pkg/validate"
)

// app state shared by the commands
type app struct {
	cfg    *config.Config
	logger *zap.Logger
}

var (
	configPath string
	a          = &app{}
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sustainwear",
		Short: "SustainWear donation service",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a config file (default ./config/config.yaml)")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(createAdminCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func (a *app) init() error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.cfg = cfg
	a.logger = logger
	return nil
}

// openDB connects, migrates and seeds the reference data
func (a *app) openDB(ctx context.Context) (*gorm.DB, error) {
	db, err := database.NewDB(&a.cfg.Database, a.cfg.Log.Level, a.logger)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	if err := database.Migrate(db, a.cfg.Database.Driver, a.logger, model.AllModels()...); err != nil {
		_ = database.Close(db)
		return nil, fmt.Errorf("database migration failed: %w", err)
	}
	if err := repository.NewRepository(db).SeedReferenceData(ctx); err != nil {
		_ = database.Close(db)
		return nil, fmt.Errorf("seeding reference data failed: %w", err)
	}
	return db, nil
}

// ── serve ──

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.serve(cmd.Context())
		},
	}
}

func (a *app) serve(ctx context.Context) error {
	cfg, logger := a.cfg, a.logger

	logger.Info("starting server",
		zap.Int("port", cfg.Server.Port),
		zap.String("db_driver", cfg.Database.Driver),
		zap.String("log_level", cfg.Log.Level),
	)

	if err := validate.RegisterGinTags(); err != nil {
		return fmt.Errorf("failed to register validators: %w", err)
	}

	db, err := a.openDB(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logger.Error("failed to close database", zap.Error(err))
		}
	}()
	logger.Info("database ready")

	// Redis is optional: revocation and throttling degrade to no-ops without it
	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb, err = redis.NewClient(&cfg.Redis, logger)
		if err != nil {
			logger.Warn("redis unavailable, session revocation and rate limiting disabled", zap.Error(err))
			rdb = nil
		} else {
			defer rdb.Close()
		}
	}

	photos, err := local.NewStore(cfg.Storage.PhotoPath, cfg.Storage.PublicPrefix, logger)
	if err != nil {
		return err
	}

	jwtMgr := jwt.NewManager(&cfg.Auth)

	// Repository → Service → Handler
	repo := repository.NewRepository(db)
	svc := service.NewService(cfg, repo, jwtMgr, rdb, photos, logger)
	h := handler.NewHandler(cfg, svc, jwtMgr, logger)

	engine := router.Setup(cfg, h, jwtMgr, rdb, photos.BasePath(), logger)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-quit:
		logger.Info("shutdown signal received", zap.String("signal", sig.String()))
	case err := <-errCh:
		return fmt.Errorf("http server failed: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}

	logger.Info("server stopped")
	return nil
}

// ── migrate ──

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and seed reference data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := a.openDB(cmd.Context())
			if err != nil {
				return err
			}
			a.logger.Info("migrations applied")
			return database.Close(db)
		},
	}
}

// ── create-admin ──

func createAdminCmd() *cobra.Command {
	var name, email, password string

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an administrator account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := a.openDB(cmd.Context())
			if err != nil {
				return err
			}
			defer database.Close(db)

			roles := service.NewRoleService(a.cfg, repository.NewRepository(db), a.logger)
			resp, err := roles.CreateAccount(cmd.Context(), model.RoleAdmin, name, email, password)
			if err != nil {
				return err
			}

			fmt.Printf("Admin created: id=%d email=%s\n", resp.ID, resp.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "full name")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&password, "password", "", "password (at least 8 characters with a letter and a digit)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
