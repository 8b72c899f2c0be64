package config

import "time"

// ServerConfig is the root configuration for randapi-server.
type ServerConfig struct {
	Server   ServerSection   `koanf:"server"`
	Log      LogSection      `koanf:"log"`
	Metrics  MetricsSection  `koanf:"metrics"`
	Tracing  TracingSection  `koanf:"tracing"`
	Shutdown ShutdownSection `koanf:"shutdown"`
}

// ServerSection configures server endpoints.
type ServerSection struct {
	HTTP HTTPConfig `koanf:"http"`
}

// HTTPConfig configures the HTTP server.
type HTTPConfig struct {
	// Host is the bind host. Empty binds all interfaces.
	Host string `koanf:"host"`

	// Port is the TCP port. The PORT environment variable overrides it.
	Port int `koanf:"port"`

	// CORSOrigins lists allowed origins. Empty or "*" allows any origin.
	CORSOrigins []string `koanf:"cors_origins"`

	ReadHeaderTimeout time.Duration `koanf:"read_header_timeout"`

	TLS TLSConfig `koanf:"tls"`
}

// TLSConfig enables HTTPS. The key pair is reloaded when either file changes.
type TLSConfig struct {
	Enabled  bool   `koanf:"enabled"`
	CertFile string `koanf:"cert_file"`
	KeyFile  string `koanf:"key_file"`
}

// LogSection configures logging.
type LogSection struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// MetricsSection configures the Prometheus endpoint.
type MetricsSection struct {
	Enabled bool `koanf:"enabled"`
}

// TracingSection configures OpenTelemetry tracing.
type TracingSection struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}

// ShutdownSection configures graceful shutdown.
type ShutdownSection struct {
	Timeout time.Duration `koanf:"timeout"`
}
