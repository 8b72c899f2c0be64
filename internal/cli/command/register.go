package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/randapi-go/internal/cli/config"
	"github.com/yndnr/randapi-go/internal/cli/connection"
)

// RegisterCommand obtains a new API key.
func RegisterCommand() *cli.Command {
	return &cli.Command{
		Name:  "register",
		Usage: "Register and print a new API key",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "save",
				Usage: "store the key and server in the CLI config file",
			},
		},
		Action: runRegister,
	}
}

func runRegister(c *cli.Context) error {
	client, s, err := newClient(c, false)
	if err != nil {
		return err
	}

	ctx, cancel := requestContext(c, s)
	defer cancel()

	resp, err := client.Post(ctx, "/register")
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	var reg Registration
	if err := connection.ParseResponse(resp, &reg); err != nil {
		return err
	}

	if c.Bool("save") {
		cfg, err := config.Load(s.ConfigPath)
		if err != nil {
			return err
		}
		cfg.Server = s.Server
		cfg.APIKey = reg.APIKey
		cfg.CAFile = s.CAFile
		if err := config.Save(cfg, s.ConfigPath); err != nil {
			return fmt.Errorf("save api key: %w", err)
		}
		fmt.Fprintf(c.App.ErrWriter, "API key saved to %s\n", s.ConfigPath)
	}

	return render(c, s, reg)
}
