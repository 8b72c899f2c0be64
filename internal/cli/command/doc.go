// Package command defines the randapi-cli commands using urfave/cli/v2:
//
//   - root.go: application, global flags, settings resolution
//   - info.go: service description and health
//   - register.go: obtain (and optionally save) an API key
//   - content.go: user, quote and joke
//   - stats.go: usage of the current API key
package command
