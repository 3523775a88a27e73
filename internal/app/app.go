package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/contentstudio/server/internal/controller"
	metadataRedis "github.com/contentstudio/server/internal/repository/metadata/redis"
	"github.com/contentstudio/server/internal/repository/session/inmemory"
	"github.com/contentstudio/server/internal/service/studio"
	"github.com/contentstudio/server/pkg/ctxlogger"
	"github.com/contentstudio/server/pkg/redisclient"
	"github.com/contentstudio/server/pkg/ytvideodata"
)

type AppConfig struct {
	Secret          string        `json:"-"`
	Host            string        `json:"host"`
	Port            int           `json:"port"`
	LogLevel        string        `json:"log_level"`
	Origin          string        `json:"origin"`
	SessionTTL      time.Duration `json:"session_ttl"`
	RedisPort       int           `json:"redis_port"`
	RedisHost       string        `json:"redis_host"`
	RedisPassword   string        `json:"-"`
	MetadataTTL     time.Duration `json:"metadata_ttl"`
	MetadataEnabled bool          `json:"metadata_enabled"`
}

func (cfg *AppConfig) Validate() error {
	return validation.ValidateStruct(cfg,
		validation.Field(&cfg.Secret, validation.Required, validation.Length(16, 0)),
		validation.Field(&cfg.Host, validation.Required, is.Host),
		validation.Field(&cfg.Port, validation.Required, validation.Min(1), validation.Max(65535)),
		validation.Field(&cfg.LogLevel, validation.Required, validation.In("DEBUG", "INFO", "WARN", "ERROR")),
		validation.Field(&cfg.Origin, is.URL),
		validation.Field(&cfg.SessionTTL, validation.Required, validation.Min(time.Second)),
		validation.Field(&cfg.RedisHost, validation.When(cfg.MetadataEnabled, validation.Required, is.Host)),
		validation.Field(&cfg.RedisPort, validation.When(cfg.MetadataEnabled, validation.Required, validation.Min(1), validation.Max(65535))),
		validation.Field(&cfg.MetadataTTL, validation.When(cfg.MetadataEnabled, validation.Required, validation.Min(time.Minute))),
	)
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	logLevel := slog.LevelInfo
	if err := logLevel.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		return nil, fmt.Errorf("failed to parse log level: %w", err)
	}

	h := ctxlogger.ContextHandler{
		Handler: slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		}),
	}

	return slog.New(h), nil
}

type sessionExpirer interface {
	ExpireSessions(context.Context, time.Time) []string
}

// newHandler wires repositories, the studio service and the controller. The
// returned func releases the redis client when one was opened.
func newHandler(ctx context.Context, cfg *AppConfig, logger *slog.Logger) (http.Handler, sessionExpirer, func()) {
	cleanup := func() {}
	sessionRepo := inmemory.NewRepo[*studio.Session]()
	studioConfig := &studio.Config{
		Secret:     cfg.Secret,
		SessionTTL: cfg.SessionTTL,
		Origin:     cfg.Origin,
	}

	studioService := studio.NewService(sessionRepo, nil, nil, logger, studioConfig)
	if cfg.MetadataEnabled {
		rc, err := redisclient.NewRedisClient(ctx, &redisclient.Config{
			Port:     cfg.RedisPort,
			Host:     cfg.RedisHost,
			Password: cfg.RedisPassword,
		})
		if err != nil {
			logger.WarnContext(ctx, "redis unavailable, video metadata disabled", "error", err)
		} else {
			cleanup = func() { rc.Close() }
			metadataRepo := metadataRedis.NewRepo(rc, cfg.MetadataTTL)
			studioService = studio.NewService(sessionRepo, metadataRepo, ytvideodata.NewClient(), logger, studioConfig)
		}
	}

	var allowedOrigins []string
	if cfg.Origin != "" {
		allowedOrigins = []string{cfg.Origin}
	}

	return controller.NewController(studioService, logger, allowedOrigins).GetMux(), studioService, cleanup
}

// expireSessions sweeps unconnected sessions until ctx is done.
func expireSessions(ctx context.Context, expirer sessionExpirer, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			expirer.ExpireSessions(ctx, now)
		}
	}
}

func Run(ctx context.Context, cfg *AppConfig) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger, err := newLogger(os.Stdout, cfg.LogLevel)
	if err != nil {
		return err
	}

	handler, expirer, cleanup := newHandler(ctx, cfg, logger)
	defer cleanup()

	server := &http.Server{Addr: fmt.Sprintf("%s:%d", cfg.Host, cfg.Port), Handler: handler}

	// graceful shutdown
	serverCtx, serverStopCtx := context.WithCancel(ctx)
	defer serverStopCtx()

	go expireSessions(serverCtx, expirer, cfg.SessionTTL)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		<-sig

		shutdownCtx, c := context.WithTimeout(serverCtx, 30*time.Second)
		defer c()

		go func() {
			<-shutdownCtx.Done()
			if shutdownCtx.Err() == context.DeadlineExceeded {
				log.Fatal("graceful shutdown timed out.. forcing exit.")
			}
		}()

		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Fatal(err)
		}
		serverStopCtx()
	}()

	logger.InfoContext(serverCtx, "starting server", "address", server.Addr, "metadata_enabled", cfg.MetadataEnabled)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	<-serverCtx.Done()

	return nil
}
