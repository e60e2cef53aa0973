// Package main is the entry point for the palert CLI.
package main

import "github.com/donaldgifford/price-alert-api/cmd/palert/cmd"

func main() {
	cmd.Execute()
}
