package command

import (
	"github.com/urfave/cli/v2"
)

// UserCommand fetches a random user profile.
func UserCommand() *cli.Command {
	return &cli.Command{
		Name:  "user",
		Usage: "Fetch a random user profile",
		Action: func(c *cli.Context) error {
			var u User
			return fetchAndRender(c, "/api/user", &u)
		},
	}
}

// QuoteCommand fetches a random quote.
func QuoteCommand() *cli.Command {
	return &cli.Command{
		Name:  "quote",
		Usage: "Fetch a random quote",
		Action: func(c *cli.Context) error {
			var q Quote
			return fetchAndRender(c, "/api/quote", &q)
		},
	}
}

// JokeCommand fetches a random joke.
func JokeCommand() *cli.Command {
	return &cli.Command{
		Name:  "joke",
		Usage: "Fetch a random joke",
		Action: func(c *cli.Context) error {
			var j Joke
			return fetchAndRender(c, "/api/joke", &j)
		},
	}
}

// fetchAndRender runs a gated GET and prints the decoded body.
func fetchAndRender(c *cli.Context, path string, target any) error {
	s, err := fetch(c, path, true, target)
	if err != nil {
		return err
	}
	return render(c, s, target)
}
