package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/hms/hms/internal/config"
	"github.com/hms/hms/internal/domain/admin"
	"github.com/hms/hms/internal/domain/clinical"
	"github.com/hms/hms/internal/domain/identity"
	"github.com/hms/hms/internal/domain/medication"
	"github.com/hms/hms/internal/domain/nursing"
	"github.com/hms/hms/internal/domain/scheduling"
	"github.com/hms/hms/internal/platform/apierr"
	"github.com/hms/hms/internal/platform/db"
	"github.com/hms/hms/internal/platform/middleware"
	"github.com/hms/hms/internal/platform/ref"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hms-server",
		Short: "Hospital Management System API Server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HMS API server",
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

	return cmd
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
	e.HTTPErrorHandler = apierr.HTTPErrorHandler(logger)

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowHeaders: []string{"Content-Type", "X-Request-ID"},
	}))

	// Repositories
	patientRepo := identity.NewPatientRepoPG(pool)
	doctorRepo := identity.NewDoctorRepoPG(pool)
	departmentRepo := admin.NewDepartmentRepoPG(pool)
	roomRepo := admin.NewRoomRepoPG(pool)
	nurseRepo := nursing.NewNurseRepoPG(pool)
	medicationRepo := medication.NewMedicationRepoPG(pool)
	prescriptionRepo := medication.NewPrescriptionRepoPG(pool)
	procedureRepo := clinical.NewProcedureRepoPG(pool)
	undergoesRepo := clinical.NewUndergoesRepoPG(pool)
	appointmentRepo := scheduling.NewAppointmentRepoPG(pool)

	// Reference resolver. Each lookup goes through the repository of the
	// owning domain; the nil checks keep an absent record from surfacing as
	// a non-nil interface holding a typed nil pointer.
	resolver := ref.NewResolver()
	resolver.Register(ref.Patient, func(ctx context.Context, id uuid.UUID) (interface{}, error) {
		p, err := patientRepo.GetByID(ctx, id)
		if err != nil || p == nil {
			return nil, err
		}
		return p, nil
	})
	resolver.Register(ref.Doctor, func(ctx context.Context, id uuid.UUID) (interface{}, error) {
		d, err := doctorRepo.GetByID(ctx, id)
		if err != nil || d == nil {
			return nil, err
		}
		return d, nil
	})
	resolver.Register(ref.Department, func(ctx context.Context, id uuid.UUID) (interface{}, error) {
		d, err := departmentRepo.GetByID(ctx, id)
		if err != nil || d == nil {
			return nil, err
		}
		return d, nil
	})
	resolver.Register(ref.Room, func(ctx context.Context, id uuid.UUID) (interface{}, error) {
		r, err := roomRepo.GetByID(ctx, id)
		if err != nil || r == nil {
			return nil, err
		}
		return r, nil
	})
	resolver.Register(ref.Medication, func(ctx context.Context, id uuid.UUID) (interface{}, error) {
		m, err := medicationRepo.GetByID(ctx, id)
		if err != nil || m == nil {
			return nil, err
		}
		return m, nil
	})
	resolver.Register(ref.Procedure, func(ctx context.Context, id uuid.UUID) (interface{}, error) {
		p, err := procedureRepo.GetByID(ctx, id)
		if err != nil || p == nil {
			return nil, err
		}
		return p, nil
	})

	// Services and handlers
	identityHandler := identity.NewHandler(identity.NewService(patientRepo, doctorRepo, resolver))
	adminHandler := admin.NewHandler(admin.NewService(departmentRepo, roomRepo))
	nursingHandler := nursing.NewHandler(nursing.NewService(nurseRepo, resolver))
	medicationHandler := medication.NewHandler(medication.NewService(medicationRepo, prescriptionRepo, resolver))
	clinicalHandler := clinical.NewHandler(clinical.NewService(procedureRepo, undergoesRepo, resolver))
	schedulingHandler := scheduling.NewHandler(scheduling.NewService(appointmentRepo, resolver))

	// Root and health endpoints
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"message": "Hospital Management System API",
		})
	})
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})
	e.GET("/health/db", db.HealthHandler(pool))

	// API routes
	api := e.Group("/api")
	identityHandler.RegisterRoutes(api)
	adminHandler.RegisterRoutes(api)
	nursingHandler.RegisterRoutes(api)
	medicationHandler.RegisterRoutes(api)
	clinicalHandler.RegisterRoutes(api)
	schedulingHandler.RegisterRoutes(api)

	// Start server
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("forced shutdown")
		return err
	}

	logger.Info().Msg("server stopped")
	return nil
}
