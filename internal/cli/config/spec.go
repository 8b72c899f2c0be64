package config

// DefaultServer is the server address used when none is configured.
const DefaultServer = "http://localhost:3000"

// CLIConfig is the configuration for randapi-cli.
type CLIConfig struct {
	Server string `yaml:"server"`
	APIKey string `yaml:"api_key,omitempty"`
	Output string `yaml:"output,omitempty"` // table, json, yaml
	CAFile string `yaml:"ca_file,omitempty"`
}

// Default returns the default CLI configuration.
func Default() *CLIConfig {
	return &CLIConfig{
		Server: DefaultServer,
		Output: "table",
	}
}
