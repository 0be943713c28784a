package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/crucial707/hci-inventory/internal/config"
	"github.com/crucial707/hci-inventory/internal/db"
	"github.com/crucial707/hci-inventory/internal/handlers"
	"github.com/crucial707/hci-inventory/internal/middleware"
	"github.com/crucial707/hci-inventory/internal/service"
	"github.com/crucial707/hci-inventory/internal/store"
)

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "apply database migrations and exit")
	flag.Parse()

	// Load configuration
	cfg := config.Load()
	setupLogger(cfg.LogFormat)

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	if *migrateOnly || cfg.DBAutoMigrate {
		version, err := db.Migrate(cfg.DatabaseURL())
		if err != nil {
			slog.Error("migrations failed", "error", err)
			os.Exit(1)
		}
		slog.Info("migrations applied", "version", version)
		if *migrateOnly {
			return
		}
	}

	// Connect to database FIRST
	database, err := db.Connect(context.Background(), db.Options{
		Host:         cfg.DBHost,
		Port:         cfg.DBPort,
		Name:         cfg.DBName,
		User:         cfg.DBUser,
		Password:     cfg.DBPass,
		SSLMode:      cfg.DBSSLMode,
		MaxOpenConns: cfg.DBMaxOpenConns,
		MaxIdleConns: cfg.DBMaxIdleConns,
	})
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close()
	slog.Info("connected to database", "host", cfg.DBHost, "name", cfg.DBName)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           newRouter(database, cfg),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		var err error
		if cfg.TLSCertFile != "" {
			slog.Info("starting server", "addr", srv.Addr, "tls", true)
			err = srv.ListenAndServeTLS(cfg.TLSCertFile, cfg.TLSKeyFile)
		} else {
			slog.Info("starting server", "addr", srv.Addr, "tls", false)
			err = srv.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("listen", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	slog.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown", "error", err)
	}
}

// setupLogger installs the default slog logger. format is "json" or "text".
func setupLogger(format string) {
	var h slog.Handler
	if format == "json" {
		h = slog.NewJSONHandler(os.Stdout, nil)
	} else {
		h = slog.NewTextHandler(os.Stdout, nil)
	}
	slog.SetDefault(slog.New(h))
}

// newRouter wires middleware, handlers and routes over database.
func newRouter(database *sql.DB, cfg config.Config) http.Handler {
	svc := service.New(store.New(database), slog.Default())
	maxLimit := cfg.PageMaxLimit

	companies := &handlers.CompanyHandler{Svc: svc, MaxLimit: maxLimit}
	users := &handlers.UserHandler{Svc: svc, MaxLimit: maxLimit}
	assets := &handlers.AssetHandler{Svc: svc, MaxLimit: maxLimit}
	access := &handlers.AccessHandler{Svc: svc, MaxLimit: maxLimit}
	audit := &handlers.AuditHandler{Svc: svc, MaxLimit: maxLimit}
	health := &handlers.HealthHandler{DB: svc}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestLog)
	r.Use(middleware.Prometheus)
	r.Use(middleware.SecurityHeaders(cfg.TLSCertFile != ""))
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	r.NotFound(handlers.NotFound)
	r.MethodNotAllowed(handlers.MethodNotAllowed)

	r.Get("/", health.Info)
	r.Get("/health", health.Health)
	r.Get("/ready", health.Ready)
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.Actor([]byte(cfg.JWTSecret)))
		r.Use(middleware.PerMinute(cfg.RateLimitPerMinute).Middleware)
		r.Use(middleware.MaxBytes(cfg.MaxBodyBytes))

		r.Route("/companies", func(r chi.Router) {
			r.Get("/", companies.ListCompanies)
			r.Post("/", companies.CreateCompany)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", companies.GetCompany)
				r.Patch("/", companies.UpdateCompany)
				r.Delete("/", companies.DeleteCompany)

				r.Get("/users", access.ListCompanyUsers)
				r.Post("/users", access.Grant)
				r.Delete("/users/{userID}", access.Revoke)
			})
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", users.ListUsers)
			r.Post("/", users.CreateUser)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", users.GetUser)
				r.Patch("/", users.UpdateUser)
				r.Delete("/", users.DeleteUser)
				r.Get("/companies", users.ListUserCompanies)
				r.Get("/audit-logs", users.ListUserAuditLogs)
			})
		})

		r.Route("/assets", func(r chi.Router) {
			r.Get("/", assets.ListAssets)
			r.Post("/", assets.CreateAsset)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", assets.GetAsset)
				r.Patch("/", assets.UpdateAsset)
				r.Delete("/", assets.DeleteAsset)
			})
		})

		r.Get("/audit-logs", audit.List)
	})

	return r
}
