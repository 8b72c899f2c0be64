// Package output renders randapi-cli results as a table, JSON or YAML.
//
// Tables are two-column FIELD/VALUE listings keyed by the JSON field
// names of the response. Counts and timestamps are humanized.
package output
