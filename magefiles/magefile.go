// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build mage

// Package main provides build targets for the itinerary project using Mage.
//
// Usage:
//
//	mage build      Compile the itinerary binary to bin/
//	mage test       Run all tests
//	mage testUnit   Run only unit tests (exclude tests/integration)
//	mage testIntegration Build, then run the binary-driven tests
//	mage testRace   Run all tests with the race detector
//	mage lint       Run golangci-lint
//	mage clean      Remove build artifacts
//	mage install    Install itinerary to GOPATH/bin
//	mage stats      Print Go LOC per package and documentation word counts
package main

const (
	binGo      = "go"
	binaryName = "itinerary"
	binaryDir  = "bin"
	cmdDir     = "./cmd/itinerary"
)

