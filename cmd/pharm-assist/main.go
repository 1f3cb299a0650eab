package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/arthur04112006/Pharm-Assist/internal/config"
	"github.com/arthur04112006/Pharm-Assist/internal/domain/catalog"
	"github.com/arthur04112006/Pharm-Assist/internal/domain/interview"
	"github.com/arthur04112006/Pharm-Assist/internal/domain/patient"
	"github.com/arthur04112006/Pharm-Assist/internal/domain/recommend"
	"github.com/arthur04112006/Pharm-Assist/internal/domain/triage"
	"github.com/arthur04112006/Pharm-Assist/internal/platform/cache"
	"github.com/arthur04112006/Pharm-Assist/internal/platform/db"
	"github.com/arthur04112006/Pharm-Assist/internal/platform/middleware"
	"github.com/arthur04112006/Pharm-Assist/internal/scripts"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pharm-assist",
		Short: "Pharmacy self-triage API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(modulesCmd())
	rootCmd.AddCommand(extractCmd())
	rootCmd.AddCommand(seedCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the triage API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	// migrate up
	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			count, err := migrator.Up(ctx)
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			fmt.Printf("Applied %d migration(s) successfully.\n", count)
			return nil
		},
	}
	upCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(upCmd)

	// migrate status
	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			statuses, err := migrator.Status(ctx)
			if err != nil {
				return fmt.Errorf("failed to get migration status: %w", err)
			}

			fmt.Printf("%-10s %-40s %-10s %s\n", "VERSION", "NAME", "STATUS", "APPLIED AT")
			fmt.Println("---------- ---------------------------------------- ---------- --------------------")
			for _, s := range statuses {
				status := "pending"
				appliedAt := ""
				if s.Applied {
					status = "applied"
					if s.AppliedAt != nil {
						appliedAt = s.AppliedAt.Format("2006-01-02 15:04:05")
					}
				}
				fmt.Printf("%-10d %-40s %-10s %s\n", s.Version, s.Name, status, appliedAt)
			}
			return nil
		},
	}
	statusCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(statusCmd)

	// migrate down - keep as warning
	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Rollback last migration (not supported)",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("WARNING: migrate down is destructive and not supported by the built-in runner.")
			fmt.Println("Roll back by restoring a database snapshot instead.")
			return nil
		},
	})

	return cmd
}

// modulesCmd lists the triage modules available in the script corpus without
// needing a database.
func modulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "modules",
		Short: "List available triage modules",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			svc := newInterviewService(cfg, zerolog.Nop())
			modules, err := svc.ListModules()
			if err != nil {
				return err
			}

			fmt.Printf("%-20s %s\n", "MODULE", "QUESTIONS")
			for _, m := range modules {
				fmt.Printf("%-20s %d\n", m.Slug, m.QuestionCount)
			}
			return nil
		},
	}
}

// extractCmd dumps the questions extracted from one module's interview script.
func extractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract <module>",
		Short: "Extract questions from a module's interview script",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filterKnown, _ := cmd.Flags().GetBool("filter-known")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			svc := newInterviewService(cfg, zerolog.Nop())
			questions, err := svc.Questions(args[0], filterKnown)
			if err != nil {
				return err
			}

			fmt.Printf("%-20s %-8s %-6s %-10s %s\n", "ID", "TYPE", "WEIGHT", "CATEGORY", "TEXT")
			for _, q := range questions {
				fmt.Printf("%-20s %-8s %-6.1f %-10s %s\n", q.ID, q.Type, q.Weight, q.Category, q.Text)
			}
			return nil
		},
	}
	cmd.Flags().Bool("filter-known", false, "Drop questions answerable from the patient registration")
	return cmd
}

// seedCmd loads the embedded medication catalog into the database.
func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed the medication catalog from the embedded dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			catalogSvc := catalog.NewService(catalog.NewMedicationRepoPG(pool), zerolog.Nop())
			count, err := catalogSvc.Seed(ctx)
			if err != nil {
				return fmt.Errorf("seed failed: %w", err)
			}

			fmt.Printf("Seeded %d medication(s).\n", count)
			return nil
		},
	}
}

func newInterviewService(cfg *config.Config, logger zerolog.Logger) *interview.Service {
	store := scripts.NewStore(cfg.ScriptsDir)
	registry := triage.NewRegistry()
	extractCache := cache.NewLRU(cfg.ExtractCacheSize, 10*time.Minute)
	return interview.NewService(store, registry, extractCache, logger)
}

func runServer() error {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	// Database
	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()
	logger.Info().Msg("connected to database")

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(middleware.RequestTimeout(30 * time.Second))
	e.Use(middleware.BodyLimit("1M"))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))

	// API group
	apiV1 := e.Group("/api/v1")

	// Rate limiting middleware
	rateLimitCfg := middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	}
	if rateLimitCfg.RequestsPerSecond <= 0 {
		rateLimitCfg = middleware.DefaultRateLimitConfig()
	}
	apiV1.Use(middleware.RateLimit(rateLimitCfg))

	// Health checks
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})
	e.GET("/health/db", db.HealthHandler(pool))

	// Shared infrastructure
	store := scripts.NewStore(cfg.ScriptsDir)
	registry := triage.NewRegistry()
	extractCache := cache.NewLRU(cfg.ExtractCacheSize, 10*time.Minute)

	// Interview domain
	interviewSvc := interview.NewService(store, registry, extractCache, logger)
	interviewHandler := interview.NewHandler(interviewSvc)
	interviewHandler.RegisterRoutes(apiV1)

	// Triage domain
	thresholds := triage.Thresholds{
		Moderate: cfg.RiskThresholdModerate,
		High:     cfg.RiskThresholdHigh,
		Referral: cfg.RiskThresholdReferral,
	}
	engine := triage.NewEngine(registry, thresholds)
	triageRepo := triage.NewTriageRecordRepoPG(pool)
	triageSvc := triage.NewService(interviewSvc, engine, triageRepo)
	triageHandler := triage.NewHandler(triageSvc)
	triageHandler.RegisterRoutes(apiV1)

	// Medication catalog domain
	catalogRepo := catalog.NewMedicationRepoPG(pool)
	catalogSvc := catalog.NewService(catalogRepo, logger)
	catalogHandler := catalog.NewHandler(catalogSvc)
	catalogHandler.RegisterRoutes(apiV1)

	// Patient domain
	patientRepo := patient.NewPatientRepoPG(pool)
	patientSvc := patient.NewService(patientRepo)
	patientHandler := patient.NewHandler(patientSvc)
	patientHandler.RegisterRoutes(apiV1)

	// Recommendation domain
	recommendSvc := recommend.NewService(store, catalogSvc, logger, cfg.SimilarityThreshold, cfg.MaxRecommendations)
	recommendHandler := recommend.NewHandler(recommendSvc)
	recommendHandler.RegisterRoutes(apiV1)

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}
