// Package cli defines the Cobra command tree for the vuegen CLI. Each file
// in this package registers one top-level command with the root command.
// Command implementations delegate to internal packages for name resolution
// and file generation and only handle flag parsing, I/O formatting, and
// user interaction.
package cli
