package command

import (
	"github.com/urfave/cli/v2"
)

// StatsCommand shows usage of the current API key. The request itself
// is counted by the server.
func StatsCommand() *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Show call count and creation time of the API key",
		Action: func(c *cli.Context) error {
			var st Stats
			return fetchAndRender(c, "/api/stats", &st)
		},
	}
}
