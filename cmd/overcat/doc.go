// Package main hosts the overcat CLI entrypoint and command graph.
//
// The Cobra-based command tree turns an Overcast OPML export into typed
// JSON on stdout, keeping structured diagnostics on stderr so output can be
// piped. Subcommands cover summary statistics and configuration
// scaffolding. It centralizes configuration resolution and logger setup so
// subcommands can focus on user experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
