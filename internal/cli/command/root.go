package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/randapi-go/internal/cli/config"
	"github.com/yndnr/randapi-go/internal/cli/connection"
	"github.com/yndnr/randapi-go/internal/cli/output"
	"github.com/yndnr/randapi-go/internal/infra/buildinfo"
	"github.com/yndnr/randapi-go/internal/infra/tlsroots"
)

const cliConfigKey = "cliConfig"

// ErrNoAPIKey is returned by gated commands when no key is configured.
var ErrNoAPIKey = errors.New("no API key: run 'randapi-cli register --save' or pass --api-key")

// App creates the CLI application.
func App() *cli.App {
	return NewApp(os.Stdout, os.Stderr)
}

// NewApp creates the CLI application writing to the given streams.
func NewApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "randapi-cli",
		Usage:     "command-line client for the Random Data API",
		Version:   buildinfo.String(),
		Writer:    stdout,
		ErrWriter: stderr,
		Flags:     globalFlags(),
		Commands: []*cli.Command{
			InfoCommand(),
			RegisterCommand(),
			UserCommand(),
			QuoteCommand(),
			JokeCommand(),
			StatsCommand(),
		},
		Before: func(c *cli.Context) error {
			cfg, err := config.Load(c.String("config"))
			if err != nil {
				return fmt.Errorf("load cli config: %w", err)
			}
			if c.App.Metadata == nil {
				c.App.Metadata = make(map[string]any)
			}
			c.App.Metadata[cliConfigKey] = cfg

			if _, err := output.ParseFormat(ResolveSettings(c).Output); err != nil {
				return err
			}
			return nil
		},
	}
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "server",
			Aliases: []string{"s"},
			Usage:   "server address (e.g. localhost:3000)",
			EnvVars: []string{"RANDAPI_SERVER"},
		},
		&cli.StringFlag{
			Name:    "api-key",
			Aliases: []string{"k"},
			Usage:   "API key sent in the X-API-Key header",
			EnvVars: []string{"RANDAPI_API_KEY"},
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format: table, json, yaml",
		},
		&cli.StringFlag{
			Name:    "config",
			Usage:   "CLI config file",
			EnvVars: []string{"RANDAPI_CLI_CONFIG"},
			Value:   config.DefaultConfigPath(),
		},
		&cli.StringFlag{
			Name:    "ca-file",
			Usage:   "PEM file with extra CA certificates for https servers",
			EnvVars: []string{"RANDAPI_CA_FILE"},
		},
		&cli.DurationFlag{
			Name:  "timeout",
			Usage: "request timeout",
			Value: 10 * time.Second,
		},
	}
}

// Settings are the effective connection and output settings.
type Settings struct {
	Server     string
	APIKey     string
	Output     string
	CAFile     string
	ConfigPath string
	Timeout    time.Duration
}

// ResolveSettings merges flags and environment over the CLI config file.
func ResolveSettings(c *cli.Context) *Settings {
	cfg, ok := c.App.Metadata[cliConfigKey].(*config.CLIConfig)
	if !ok {
		cfg = config.Default()
	}

	s := &Settings{
		Server:     cfg.Server,
		APIKey:     cfg.APIKey,
		Output:     cfg.Output,
		CAFile:     cfg.CAFile,
		ConfigPath: c.String("config"),
		Timeout:    c.Duration("timeout"),
	}
	if v := c.String("server"); c.IsSet("server") && v != "" {
		s.Server = v
	}
	if v := c.String("api-key"); c.IsSet("api-key") && v != "" {
		s.APIKey = v
	}
	if v := c.String("output"); c.IsSet("output") && v != "" {
		s.Output = v
	}
	if v := c.String("ca-file"); c.IsSet("ca-file") && v != "" {
		s.CAFile = v
	}
	if s.Server == "" {
		s.Server = config.DefaultServer
	}
	return s
}

// newClient builds an HTTP client from the effective settings.
func newClient(c *cli.Context, requireKey bool) (*connection.HTTPClient, *Settings, error) {
	s := ResolveSettings(c)
	if requireKey && s.APIKey == "" {
		return nil, nil, ErrNoAPIKey
	}
	var opts []connection.ClientOption
	if s.CAFile != "" {
		pool := tlsroots.NewPool()
		if err := pool.AddCertFile(s.CAFile); err != nil {
			return nil, nil, err
		}
		opts = append(opts, connection.WithTLSConfig(pool.ClientConfig()))
	}
	return connection.NewHTTPClient(s.Server, s.APIKey, opts...), s, nil
}

// requestContext bounds one command's requests by --timeout.
func requestContext(c *cli.Context, s *Settings) (context.Context, context.CancelFunc) {
	parent := c.Context
	if parent == nil {
		parent = context.Background()
	}
	if s.Timeout <= 0 {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, s.Timeout)
}

// render writes data in the selected output format.
func render(c *cli.Context, s *Settings, data any) error {
	format, err := output.ParseFormat(s.Output)
	if err != nil {
		return err
	}
	return output.NewFormatter(format).Format(c.App.Writer, data)
}

// fetch performs a GET and decodes the JSON body into target.
func fetch(c *cli.Context, path string, requireKey bool, target any) (*Settings, error) {
	client, s, err := newClient(c, requireKey)
	if err != nil {
		return nil, err
	}

	ctx, cancel := requestContext(c, s)
	defer cancel()

	resp, err := client.Get(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	if err := connection.ParseResponse(resp, target); err != nil {
		return nil, explain(err)
	}
	return s, nil
}

// explain adds a hint to authentication failures.
func explain(err error) error {
	var apiErr *connection.APIError
	if errors.As(err, &apiErr) && apiErr.IsUnauthorized() {
		return fmt.Errorf("%w (hint: run 'randapi-cli register --save')", err)
	}
	return err
}
