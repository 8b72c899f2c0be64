package config

import (
	"net"
	"strconv"
	"time"
)

// Default configuration values.
const (
	DefaultHTTPHost          = ""
	DefaultHTTPPort          = 3000
	DefaultReadHeaderTimeout = 10 * time.Second

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"

	DefaultTracingExporter = "stdout"
	DefaultServiceName     = "randapi-server"

	DefaultShutdownTimeout = 30 * time.Second
)

// Default returns the default server configuration.
func Default() *ServerConfig {
	return &ServerConfig{
		Server: ServerSection{
			HTTP: HTTPConfig{
				Host:              DefaultHTTPHost,
				Port:              DefaultHTTPPort,
				CORSOrigins:       []string{"*"},
				ReadHeaderTimeout: DefaultReadHeaderTimeout,
			},
		},
		Log: LogSection{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		Metrics: MetricsSection{
			Enabled: true,
		},
		Tracing: TracingSection{
			Enabled:     false,
			Exporter:    DefaultTracingExporter,
			ServiceName: DefaultServiceName,
		},
		Shutdown: ShutdownSection{
			Timeout: DefaultShutdownTimeout,
		},
	}
}

// Addr returns the listen address built from host and port.
func (c HTTPConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
