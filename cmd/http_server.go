package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	"github.com/spf13/cobra"

	internal "github.com/bomberosvinadelmar/portal-admin/internal"
	"github.com/bomberosvinadelmar/portal-admin/internal/auth"
	"github.com/bomberosvinadelmar/portal-admin/internal/citation"
	"github.com/bomberosvinadelmar/portal-admin/internal/core/events"
	"github.com/bomberosvinadelmar/portal-admin/internal/permission"
	"github.com/bomberosvinadelmar/portal-admin/internal/personnel"
	"github.com/bomberosvinadelmar/portal-admin/internal/registration"
	"github.com/bomberosvinadelmar/portal-admin/internal/session"
	"github.com/bomberosvinadelmar/portal-admin/internal/storage"
	"github.com/bomberosvinadelmar/portal-admin/internal/storage/gormstore"
	"github.com/bomberosvinadelmar/portal-admin/internal/storage/memory"
	"github.com/bomberosvinadelmar/portal-admin/internal/storage/sqlxstore"
	"github.com/bomberosvinadelmar/portal-admin/internal/transport/middleware"
	"github.com/bomberosvinadelmar/portal-admin/internal/transport/rest"
	"github.com/bomberosvinadelmar/portal-admin/internal/video"
	"github.com/bomberosvinadelmar/portal-admin/pkg/logger"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle portal API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config   *internal.Config
	Storage  storage.Store
	CloseFn  func() error
	Router   *chi.Mux
	Handlers rest.Handlers
	ModAuth  *auth.ModuleAuthorization
	Logger   *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	deps.Router.Use(middleware.LoggingMiddleware(deps.Logger))
	rest.RegisterAllRoutes(deps.Router, deps.Storage, deps.Handlers, deps.ModAuth, deps.Logger)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	slog.Info("Starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		slog.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
		if deps.CloseFn != nil {
			if err := deps.CloseFn(); err != nil {
				slog.Error("Storage close error", "error", err)
			}
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("Server stopped")
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	env := "development"
	if config.Observability.Logging.Format == "json" {
		env = "production"
	}
	logger.Init(env)
	lg := logger.LoggerWrapper()

	st, closeFn, err := initStorage(config.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	ctx := context.Background()

	sessions := session.NewStore(st, lg)
	verifier := initVerifier(ctx, st, lg)
	tokenGen := auth.NewJWTTokenGenerator(
		config.Security.AccessTokenSecret,
		config.Security.RefreshTokenSecret,
		config.Security.AccessTokenDuration,
		config.Security.RefreshTokenDuration,
	)
	authService := auth.NewService(verifier, sessions, tokenGen, lg)
	authHandler := auth.NewHandler(authService)

	permissionService := permission.NewService(ctx, st, lg)
	modAuth := auth.NewModuleAuthorization(permissionService, lg)

	bus := events.NewBus(lg)

	personnelService := personnel.NewService(personnel.NewRepository(st), lg)
	citationService := citation.NewService(citation.NewRepository(st), lg)
	videoService := video.NewService(video.NewRepository(st), lg)
	registrationService := registration.NewService(registration.NewRepository(st), bus, lg)

	return &Dependencies{
		Config:  config,
		Storage: st,
		CloseFn: closeFn,
		Router:  chi.NewRouter(),
		Handlers: rest.Handlers{
			Auth:         authHandler,
			Permission:   permission.NewHandler(permissionService),
			Personnel:    personnel.NewHandler(personnelService),
			Citation:     citation.NewHandler(citationService),
			Video:        video.NewHandler(videoService),
			Registration: registration.NewHandler(registrationService),
		},
		ModAuth: modAuth,
		Logger:  lg,
	}, nil
}

// initStorage selects the key-value backend by configured driver.
func initStorage(cfg internal.StorageConfig) (storage.Store, func() error, error) {
	switch cfg.Driver {
	case "memory":
		return memory.New(), nil, nil
	case "sqlite":
		st, err := gormstore.Open("sqlite", cfg.Source)
		if err != nil {
			return nil, nil, err
		}
		return st, nil, nil
	case "postgres":
		st, err := sqlxstore.Open(cfg.Source, cfg.MaxOpenConns, cfg.MaxIdleConns)
		if err != nil {
			return nil, nil, err
		}
		return st, st.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

// initVerifier prefers bcrypt credentials seeded into storage; when
// none are present it falls back to the development catalog with its
// placeholder secret.
func initVerifier(ctx context.Context, st storage.Store, lg *slog.Logger) auth.CredentialVerifier {
	raw, err := st.Get(ctx, storage.KeyCredentials)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			lg.Warn("failed to load seeded credentials, using catalog verifier", "error", err)
		}
		return auth.NewCatalogVerifier(nil)
	}

	var principals []auth.BcryptPrincipal
	if err := json.Unmarshal([]byte(raw), &principals); err != nil {
		lg.Warn("corrupt seeded credentials, using catalog verifier", "error", err)
		return auth.NewCatalogVerifier(nil)
	}

	lg.Info("using bcrypt credential verifier", "principals", len(principals))
	return auth.NewBcryptVerifier(principals)
}
