package daemon

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/globallingo/lingo/internal/api"
	"github.com/globallingo/lingo/internal/app/lookup"
	"github.com/globallingo/lingo/internal/app/session"
	"github.com/globallingo/lingo/internal/health"
	"github.com/globallingo/lingo/internal/infra/redisstore"
	"github.com/globallingo/lingo/internal/infra/sqlite"
	"github.com/globallingo/lingo/internal/logger"
)

// Daemon is the Lingo runtime. It wires together all services.
type Daemon struct {
	Config  Config
	Log     *zap.Logger
	DB      *sqlite.DB
	Redis   *redisstore.Store
	Session *session.Service
	Server  *api.Server
	Health  *health.Checker
	cancel  context.CancelFunc
}

// New creates a Daemon from the config file under LingoHome.
func New() (*Daemon, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return NewWithConfig(cfg)
}

// NewWithConfig creates a Daemon with the given configuration.
func NewWithConfig(cfg Config) (*Daemon, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	// SQLite always backs the notification inbox.
	db, err := sqlite.Open(LingoHome())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	d := &Daemon{Config: cfg, Log: log, DB: db}

	var store session.Store = db
	if cfg.Store.Backend == BackendRedis {
		rs, err := redisstore.New(cfg.Redis)
		if err != nil {
			d.Close()
			return nil, fmt.Errorf("open redis store: %w", err)
		}
		d.Redis = rs
		store = rs
	}

	dict, err := lookup.New()
	if err != nil {
		d.Close()
		return nil, fmt.Errorf("load phrase table: %w", err)
	}

	checks := []health.Check{
		health.DirCheck("home", LingoHome()),
		health.PingCheck("sqlite", db),
	}
	if d.Redis != nil {
		checks = append(checks, health.PingCheck("redis", d.Redis))
	}
	d.Health = health.NewChecker(log, checks...)

	d.Session = session.New(store, db, dict, nil, log)
	d.Server = api.NewServer(d.Session, log)
	d.Server.SetHealth(d.Health)
	if cfg.Telemetry.Prometheus {
		d.Server.EnableMetrics()
	}

	log.Debug("daemon initialized",
		zap.String("home", LingoHome()),
		zap.String("store", cfg.Store.Backend),
		zap.Int("phrases", dict.Len()),
	)
	return d, nil
}

// Serve starts the HTTP server and blocks until ctx is cancelled or the
// process receives SIGINT/SIGTERM.
func (d *Daemon) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	d.cancel = cancel

	restored, err := d.Session.Load(ctx)
	if err != nil {
		return fmt.Errorf("load state: %w", err)
	}

	go d.Health.Run(ctx)

	ln, err := net.Listen("tcp", d.Config.Addr())
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}

	httpServer := &http.Server{
		Handler:      d.Server.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  2 * time.Minute,
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	go func() {
		select {
		case <-sigCh:
		case <-ctx.Done():
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			d.Log.Warn("http shutdown", zap.Error(err))
		}
	}()

	d.Log.Info("lingo serving",
		zap.String("addr", ln.Addr().String()),
		zap.String("store", d.Config.Store.Backend),
		zap.Bool("restored", restored),
		zap.Bool("metrics", d.Config.Telemetry.Prometheus),
	)

	if err := httpServer.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	d.Log.Info("lingo stopped")
	return nil
}

// Close shuts down all daemon resources.
func (d *Daemon) Close() {
	if d.cancel != nil {
		d.cancel()
	}
	if d.Redis != nil {
		if err := d.Redis.Close(); err != nil {
			d.Log.Warn("close redis", zap.Error(err))
		}
	}
	if d.DB != nil {
		if err := d.DB.Close(); err != nil {
			d.Log.Warn("close database", zap.Error(err))
		}
	}
	_ = d.Log.Sync()
}
