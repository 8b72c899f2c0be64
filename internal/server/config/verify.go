package config

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/multierr"

	"github.com/yndnr/randapi-go/internal/telemetry/tracer"
)

// Verify validates the configuration. All problems are reported together.
func Verify(cfg *ServerConfig) error {
	if cfg == nil {
		return errors.New("config is nil")
	}
	return multierr.Combine(
		verifyServer(&cfg.Server),
		verifyLog(&cfg.Log),
		verifyTracing(&cfg.Tracing),
		verifyShutdown(&cfg.Shutdown),
	)
}

func verifyServer(cfg *ServerSection) error {
	var err error
	// Port 0 asks the kernel for a free port.
	if cfg.HTTP.Port < 0 || cfg.HTTP.Port > 65535 {
		err = multierr.Append(err, fmt.Errorf("server.http.port %d out of range 0-65535", cfg.HTTP.Port))
	}
	if cfg.HTTP.ReadHeaderTimeout < 0 {
		err = multierr.Append(err, errors.New("server.http.read_header_timeout must not be negative"))
	}
	if tls := cfg.HTTP.TLS; tls.Enabled && (tls.CertFile == "" || tls.KeyFile == "") {
		err = multierr.Append(err, errors.New("server.http.tls requires cert_file and key_file when enabled"))
	}
	for _, o := range cfg.HTTP.CORSOrigins {
		if strings.TrimSpace(o) == "" {
			err = multierr.Append(err, errors.New("server.http.cors_origins contains an empty origin"))
			break
		}
	}
	return err
}

func verifyLog(cfg *LogSection) error {
	var err error
	switch strings.ToLower(cfg.Level) {
	case "debug", "info", "warn", "error":
	default:
		err = multierr.Append(err, fmt.Errorf("log.level %q must be one of debug, info, warn, error", cfg.Level))
	}
	switch strings.ToLower(cfg.Format) {
	case "json", "text", "console":
	default:
		err = multierr.Append(err, fmt.Errorf("log.format %q must be json or text", cfg.Format))
	}
	return err
}

func verifyTracing(cfg *TracingSection) error {
	if !cfg.Enabled {
		return nil
	}
	if !tracer.ValidExporter(cfg.Exporter) {
		return fmt.Errorf("tracing.exporter %q is not supported", cfg.Exporter)
	}
	if cfg.Exporter == tracer.ExporterOTLP && cfg.Endpoint == "" {
		return errors.New("tracing.endpoint is required for the otlp exporter")
	}
	return nil
}

func verifyShutdown(cfg *ShutdownSection) error {
	if cfg.Timeout <= 0 {
		return errors.New("shutdown.timeout must be positive")
	}
	return nil
}
