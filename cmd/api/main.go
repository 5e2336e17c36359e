// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sethvargo/go-retry"

	"salon-manager/internal/auth"
	"salon-manager/internal/config"
	"salon-manager/internal/handler"
	"salon-manager/internal/middleware"
	"salon-manager/internal/notify"
	"salon-manager/internal/storage/postgres"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.MustLoad()
	ctx := context.Background()

	poolCfg, err := pgxpool.ParseConfig(cfg.DBConn)
	if err != nil {
		slog.Error("invalid database config", "error", err)
		os.Exit(1)
	}
	// Amounts are NUMERIC columns scanned into decimal.Decimal.
	poolCfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		slog.Error("failed to create connection pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	backoff := retry.WithMaxRetries(5, retry.NewExponential(time.Second))
	if err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := pool.Ping(ctx); err != nil {
			slog.Warn("database not ready, retrying", "error", err)
			return retry.RetryableError(err)
		}
		return nil
	}); err != nil {
		slog.Error("database unreachable", "error", err)
		os.Exit(1)
	}
	slog.Info("connected to PostgreSQL")

	store := postgres.NewStorage(pool)

	// The singleton login credential must exist before the first login.
	if err := seedCredential(ctx, store, cfg.AdminPassword); err != nil {
		slog.Error("failed to seed login credential", "error", err)
		os.Exit(1)
	}

	tokenService := auth.NewTokenService(cfg)
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	var notifier notify.Notifier = notify.Noop{}
	if cfg.TelegramToken != "" {
		tg, err := notify.NewTelegram(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			slog.Error("failed to initialize telegram notifier", "error", err)
			os.Exit(1)
		}
		notifier = tg
		slog.Info("telegram notifications enabled")
	}

	authHandler := handler.NewAuthHandler(store, store, tokenService)
	staffHandler := handler.NewStaffHandler(store)
	customerHandler := handler.NewCustomerHandler(store, notifier)
	expenseHandler := handler.NewExpenseHandler(store, notifier)
	personHandler := handler.NewPersonHandler(store)
	exportHandler := handler.NewExportHandler(store, store)
	healthHandler := handler.NewHealthHandler(store)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	api := router.Group("/api")
	api.GET("/health", healthHandler.Check)
	api.POST("/login", authHandler.Login)
	api.POST("/staff-login", authHandler.StaffLogin)

	protected := api.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		protected.POST("/change-password", authHandler.ChangePassword)

		protected.POST("/persons", personHandler.Add)

		protected.GET("/staff", staffHandler.List)
		protected.POST("/staff", staffHandler.Add)
		protected.PUT("/staff/:id/salary", staffHandler.UpdateSalary)
		protected.PUT("/staff/:id/password", staffHandler.UpdatePassword)
		protected.DELETE("/staff/:id", staffHandler.Delete)

		protected.GET("/customers", customerHandler.List)
		protected.GET("/customers/export", exportHandler.Customers)
		protected.POST("/customers", customerHandler.Add)
		protected.DELETE("/customers/:id", customerHandler.Delete)

		protected.GET("/expenses", expenseHandler.List)
		protected.GET("/expenses/export", exportHandler.Expenses)
		protected.POST("/expenses", expenseHandler.Add)
		protected.PUT("/expenses/:id", expenseHandler.Update)
		protected.DELETE("/expenses/:id", expenseHandler.Delete)
	}

	srv := &http.Server{Addr: cfg.ServerPort, Handler: router}

	go func() {
		slog.Info("server started", "addr", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	stopCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-stopCtx.Done()

	slog.Info("shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("forced shutdown", "error", err)
		os.Exit(1)
	}
	slog.Info("server closed gracefully")
}

func seedCredential(ctx context.Context, store *postgres.Storage, adminPassword string) error {
	cred, err := store.GetCredential(ctx)
	if err != nil {
		return err
	}
	if cred != nil {
		return nil
	}
	hash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return err
	}
	slog.Info("seeding initial login credential")
	return store.SeedCredential(ctx, hash)
}
