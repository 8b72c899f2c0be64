// Package main provides the entry point for randapi-cli.
//
// Usage:
//
//	randapi-cli register --save
//	randapi-cli quote
//	randapi-cli --output yaml user
//	randapi-cli --server api.example:3000 --api-key KEY stats
//	randapi-cli --server https://api.example --ca-file ca.pem info
package main
