//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// - github.com/matryer/moq (go:generate mocks in *_mock_test.go)
// - github.com/pressly/goose/v3/cmd/goose (go.mod tool directive, migrations/)
