// Package infrastructure contains the concrete implementations of the
// core interfaces: cache backends (in-memory, Redis), the outbound HTTP
// client, and the logger adapter. Each implementation lives in its own
// sub-package so backends can be swapped at wiring time.
package infrastructure
