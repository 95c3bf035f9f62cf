// Package runtime wires the Pebble store, the shared event log, and the
// effective configuration into a single handle passed to services and
// transports by dependency injection. There is no ambient global state;
// every component receives the Runtime explicitly.
package runtime
