package command

import (
	"github.com/urfave/cli/v2"

	"github.com/yndnr/randapi-go/internal/cli/output"
)

// InfoCommand describes the server and its health.
func InfoCommand() *cli.Command {
	return &cli.Command{
		Name:   "info",
		Usage:  "Show the service description and health",
		Action: runInfo,
	}
}

// serverInfo combines GET / and GET /health.
type serverInfo struct {
	HomeInfo
	Health Health `json:"health"`
}

// infoRow is the flattened table view of serverInfo.
type infoRow struct {
	Name         string   `json:"name"`
	Version      string   `json:"version"`
	Endpoints    []string `json:"endpoints"`
	Registration string   `json:"registration"`
	Status       string   `json:"status"`
	Tokens       *int     `json:"tokens"`
}

func runInfo(c *cli.Context) error {
	var info serverInfo
	s, err := fetch(c, "/", false, &info.HomeInfo)
	if err != nil {
		return err
	}
	if _, err := fetch(c, "/health", false, &info.Health); err != nil {
		return err
	}

	if f, _ := output.ParseFormat(s.Output); f == output.FormatTable {
		return render(c, s, &infoRow{
			Name:         info.Name,
			Version:      info.Version,
			Endpoints:    info.Endpoints,
			Registration: info.Registration,
			Status:       info.Health.Status,
			Tokens:       info.Health.Tokens,
		})
	}
	return render(c, s, info)
}
