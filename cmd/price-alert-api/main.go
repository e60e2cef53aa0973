// Package main is the entry point for the price-alert-api server.
package main

import (
	"os"

	"github.com/donaldgifford/price-alert-api/cmd/price-alert-api/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
