//go:build tools

// Package tools pins the command-line tools used to build and check the
// service so `go run` resolves the versions in go.mod.
package tools

import (
	// lint
	_ "github.com/golangci/golangci-lint/cmd/golangci-lint"
	// migrations/ against a live database outside the server's auto-migrate
	_ "github.com/pressly/goose/v3/cmd/goose"
	// swagger docs from the handler annotations
	_ "github.com/swaggo/swag/cmd/swag"
	// mocks for the collaborator interfaces
	_ "github.com/vektra/mockery/v2"
	// comparing catalog and crafting benchmark runs
	_ "golang.org/x/perf/cmd/benchstat"
)
