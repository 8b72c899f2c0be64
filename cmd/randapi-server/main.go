package main

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/yndnr/randapi-go/internal/core/content"
	"github.com/yndnr/randapi-go/internal/core/service"
	"github.com/yndnr/randapi-go/internal/infra/buildinfo"
	"github.com/yndnr/randapi-go/internal/infra/confloader"
	"github.com/yndnr/randapi-go/internal/infra/shutdown"
	"github.com/yndnr/randapi-go/internal/infra/tlsroots"
	"github.com/yndnr/randapi-go/internal/server/config"
	"github.com/yndnr/randapi-go/internal/server/httpserver"
	"github.com/yndnr/randapi-go/internal/storage/memory"
	"github.com/yndnr/randapi-go/internal/telemetry/logger"
	"github.com/yndnr/randapi-go/internal/telemetry/metric"
	"github.com/yndnr/randapi-go/internal/telemetry/tracer"
)

const serviceName = "randapi-server"

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newApp(out io.Writer) *cli.App {
	cli.VersionPrinter = func(c *cli.Context) {
		fmt.Fprintf(c.App.Writer, "%s %s\n", serviceName, buildinfo.String())
	}

	return &cli.App{
		Name:    serviceName,
		Usage:   "Random Data API server",
		Version: buildinfo.Get().Version,
		Writer:  out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to YAML configuration file",
				EnvVars: []string{"RANDAPI_CONFIG"},
			},
		},
		Action: func(c *cli.Context) error {
			return run(c.Context, options{configFile: c.String("config"), output: out})
		},
	}
}

// options controls a server run.
type options struct {
	configFile string
	output     io.Writer

	// ready, when set, receives the bound address once the listener is open.
	ready func(addr string)
}

func run(ctx context.Context, opts options) error {
	loader := newLoader(opts.configFile)
	cfg, err := loadConfig(loader)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	info := buildinfo.Get()
	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: opts.output,
		Attrs:  []any{"service", serviceName},
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	logger.SetDefault(log)

	log.Info("starting "+serviceName,
		"version", info.Version,
		"commit", info.Commit,
		"config", opts.configFile,
		"effective", config.Sanitize(cfg),
	)

	tp, err := tracer.New(ctx, tracer.Config{
		Enabled:     cfg.Tracing.Enabled,
		Exporter:    cfg.Tracing.Exporter,
		Endpoint:    cfg.Tracing.Endpoint,
		ServiceName: cfg.Tracing.ServiceName,
		Version:     info.Version,
	})
	if err != nil {
		return fmt.Errorf("init tracer: %w", err)
	}

	store := memory.NewTokenStore()
	registry := service.NewRegistry(store, nil)

	var metrics *metric.Registry
	if cfg.Metrics.Enabled {
		metrics = metric.NewRegistry()
		metrics.MustRegister(metric.NewCollector(store))
	}

	router := httpserver.NewRouter(&httpserver.RouterConfig{
		Registry:           registry,
		Content:            content.NewSource(),
		Logger:             log,
		Metrics:            metrics,
		Tracer:             tp.Tracer(),
		CORSAllowedOrigins: cfg.Server.HTTP.CORSOrigins,
		EnableAudit:        true,
	})

	var watcher *confloader.Watcher
	if loader.FilePath() != "" {
		watcher, err = confloader.NewWatcher(loader.FilePath(),
			func() { reloadLogLevel(loader, log) },
			confloader.WithWatchLogger(log))
		if err != nil {
			return fmt.Errorf("watch config: %w", err)
		}
	}

	var certs *tlsroots.CertReloader
	if cfg.Server.HTTP.TLS.Enabled {
		certs, err = tlsroots.NewCertReloader(cfg.Server.HTTP.TLS.CertFile, cfg.Server.HTTP.TLS.KeyFile,
			tlsroots.WithLogger(log))
		if err != nil {
			stopWatchers(watcher, nil)
			return fmt.Errorf("init tls: %w", err)
		}
	}

	ln, err := net.Listen("tcp", cfg.Server.HTTP.Addr())
	if err != nil {
		stopWatchers(watcher, certs)
		return fmt.Errorf("listen %s: %w", cfg.Server.HTTP.Addr(), err)
	}
	scheme := "http"
	if certs != nil {
		ln = tls.NewListener(ln, certs.ServerConfig())
		scheme = "https"
	}
	srv := httpserver.New(ln.Addr().String(), router,
		httpserver.WithReadHeaderTimeout(cfg.Server.HTTP.ReadHeaderTimeout))

	// Hooks run in reverse: HTTP first, tracer last so in-flight spans flush.
	sh := shutdown.NewHandler(cfg.Shutdown.Timeout, shutdown.WithLogger(log))
	sh.OnShutdown("tracer", tp.Shutdown)

	g, gctx := errgroup.WithContext(ctx)

	if watcher != nil {
		sh.OnShutdown("config-watcher", func(context.Context) error { return watcher.Stop() })
		g.Go(func() error { return watcher.Run(gctx) })
	}
	if certs != nil {
		sh.OnShutdown("tls-reloader", func(context.Context) error { return certs.Stop() })
		g.Go(func() error { return certs.Run(gctx) })
	}

	sh.OnShutdown("http", srv.Shutdown)

	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error { return sh.Wait(gctx) })

	port := ln.Addr().(*net.TCPAddr).Port
	log.Info("Server running on port "+strconv.Itoa(port), "addr", ln.Addr().String(), "scheme", scheme)
	if opts.ready != nil {
		opts.ready(ln.Addr().String())
	}

	if err := g.Wait(); err != nil {
		log.Error("server stopped with error", "error", err)
		return err
	}

	log.Info("server stopped gracefully")
	return nil
}

// stopWatchers releases file watchers when startup fails before the
// shutdown handler owns them.
func stopWatchers(w *confloader.Watcher, certs *tlsroots.CertReloader) {
	if w != nil {
		w.Stop()
	}
	if certs != nil {
		certs.Stop()
	}
}

func newLoader(configFile string) *confloader.Loader {
	return confloader.NewLoader(
		confloader.WithConfigFile(configFile),
		confloader.WithEnvAlias("PORT", "server.http.port"),
	)
}

// loadConfig loads defaults, file and environment, then validates.
func loadConfig(loader *confloader.Loader) (*config.ServerConfig, error) {
	cfg := config.Default()
	if err := loader.Load(cfg); err != nil {
		return nil, err
	}
	if err := config.Verify(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// reloadLogLevel applies log.level from the changed config file.
// Other settings take effect on restart.
func reloadLogLevel(loader *confloader.Loader, log logger.Logger) {
	cfg := config.Default()
	if err := loader.Reload(cfg); err != nil {
		log.Warn("config reload failed", "error", err)
		return
	}
	if err := config.Verify(cfg); err != nil {
		log.Warn("reloaded config is invalid, keeping current settings", "error", err)
		return
	}

	if prev := logger.GetLevel(); prev != strings.ToLower(cfg.Log.Level) {
		logger.SetLevel(cfg.Log.Level)
		log.Info("log level changed", "from", prev, "to", logger.GetLevel())
	}
}
