//go:build debug

// Package debug exposes the build-time debug flag. Building with the
// "debug" tag keeps solver trace logging on, including under go test.
package debug

const Debug = true
