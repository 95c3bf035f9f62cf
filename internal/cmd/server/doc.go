// Package serverrun wires configuration, storage and the HTTP transport
// into a blocking server run with signal-aware graceful shutdown. It is
// the single entry point shared by the CLI serve command.
package serverrun
