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

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/clinica/clinica/internal/config"
	"github.com/clinica/clinica/internal/domain/account"
	"github.com/clinica/clinica/internal/domain/appointment"
	"github.com/clinica/clinica/internal/domain/clinical"
	"github.com/clinica/clinica/internal/domain/dashboard"
	"github.com/clinica/clinica/internal/domain/finance"
	"github.com/clinica/clinica/internal/domain/patient"
	"github.com/clinica/clinica/internal/domain/roster"
	"github.com/clinica/clinica/internal/domain/waitlist"
	"github.com/clinica/clinica/internal/platform/auth"
	"github.com/clinica/clinica/internal/platform/db"
	"github.com/clinica/clinica/internal/platform/httpx"
	"github.com/clinica/clinica/internal/platform/middleware"
)

const version = "0.1.0"

// patientDirAdapter exposes the patient service to the appointment and
// clinical packages without a direct import between the domains.
type patientDirAdapter struct {
	svc *patient.Service
}

func (a *patientDirAdapter) Snapshot(ctx context.Context, dentistID, patientID uuid.UUID) (string, *string, error) {
	p, err := a.svc.Get(ctx, dentistID, patientID)
	if err != nil {
		if errors.Is(err, patient.ErrNotFound) {
			return "", nil, pgx.ErrNoRows
		}
		return "", nil, err
	}
	return p.Name, p.Phone, nil
}

func (a *patientDirAdapter) Exists(ctx context.Context, dentistID, patientID uuid.UUID) (bool, error) {
	_, err := a.svc.Get(ctx, dentistID, patientID)
	if errors.Is(err, patient.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// dentistDirAdapter resolves the practice display fields for the public
// confirmation view from the account service.
type dentistDirAdapter struct {
	svc *account.Service
}

func (a *dentistDirAdapter) Practice(ctx context.Context, dentistID uuid.UUID) (string, string, string, error) {
	d, err := a.svc.Get(ctx, dentistID)
	if err != nil {
		return "", "", "", err
	}
	clinic, phone := "", ""
	if d.Clinic != nil {
		clinic = *d.Clinic
	}
	if d.Phone != nil {
		phone = *d.Phone
	}
	return clinic, d.Name, phone, nil
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "clinica-server",
		Short: "API de gestão para consultórios odontológicos",
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
		Short: "Start the API server",
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
	if os.Getenv("ENV") == "development" || os.Getenv("ENV") == "" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}

	secret := cfg.JWTSecret
	if secret == "" && cfg.IsDev() {
		secret = "dev-secret"
		logger.Warn().Msg("JWT_SECRET not set, using development secret")
	}
	tm, err := auth.NewTokenManager(secret)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to init token manager")
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
	e.HTTPErrorHandler = httpx.ErrorHandler(logger)

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))

	// Route groups. Public carries registration, login and the confirmation
	// endpoints reached from the patient's phone; everything else requires a
	// bearer token.
	public := e.Group("/api")
	authed := e.Group("/api", auth.Middleware(tm))

	// Services
	accountSvc := account.NewService(account.NewRepoPG(pool), tm)
	patientSvc := patient.NewService(patient.NewRepoPG(pool))

	patientDir := &patientDirAdapter{svc: patientSvc}
	dentistDir := &dentistDirAdapter{svc: accountSvc}

	appointmentSvc := appointment.NewService(appointment.NewRepoPG(pool), patientDir, dentistDir)
	clinicalSvc := clinical.NewService(clinical.NewRepoPG(pool), patientDir)
	financeSvc := finance.NewService(finance.NewEntryRepoPG(pool), finance.NewInvoiceRepoPG(pool))
	rosterSvc := roster.NewService(roster.NewRepoPG(pool), accountSvc)
	waitlistSvc := waitlist.NewService(waitlist.NewRepoPG(pool))
	dashboardSvc := dashboard.NewService(dashboard.NewRepoPG(pool))

	// Handlers
	account.NewHandler(accountSvc).RegisterRoutes(public, authed)
	patient.NewHandler(patientSvc).RegisterRoutes(authed)
	appointment.NewHandler(appointmentSvc).RegisterRoutes(public, authed)
	clinical.NewHandler(clinicalSvc).RegisterRoutes(authed)
	finance.NewHandler(financeSvc).RegisterRoutes(authed)
	roster.NewHandler(rosterSvc).RegisterRoutes(authed)
	waitlist.NewHandler(waitlistSvc).RegisterRoutes(authed)
	dashboard.NewHandler(dashboardSvc).RegisterRoutes(authed)

	// Status endpoints
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"servico": "clinica-api",
			"versao":  version,
			"status":  "ok",
		})
	})
	e.GET("/health", db.HealthHandler(pool))

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
