// Package config stores randapi-cli settings in a small YAML file so that
// an API key obtained with "register --save" is reused by later commands.
package config
