// Package config defines the randapi-server configuration.
//
//   - spec.go: ServerConfig struct definition
//   - default.go: default values
//   - verify.go: validation of loaded values
//   - sanitize.go: normalized copy for logging
//
// Values are loaded through internal/infra/confloader from defaults, an
// optional YAML file, RANDAPI_* environment variables and PORT.
package config
