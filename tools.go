//go:build tools

// Package tools pins the code generators (sqlc, swag), the linter and the
// goose CLI so `go run` resolves them at the versions in go.mod
package tools

import (
	_ "github.com/golangci/golangci-lint/cmd/golangci-lint"
	_ "github.com/pressly/goose/v3/cmd/goose"
	_ "github.com/sqlc-dev/sqlc/cmd/sqlc"
	_ "github.com/swaggo/swag/cmd/swag"
)
