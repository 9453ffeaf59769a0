// Package main is the entry point for the itinerary CLI.
package main

import "github.com/mesh-intelligence/itinerary/internal/cli"

func main() {
	cli.Execute()
}
