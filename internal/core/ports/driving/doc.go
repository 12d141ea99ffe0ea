// Package driving defines the interfaces that drive the core from outside.
//
// These are the "driving" or "primary" ports. The CLI, TUI and MCP
// adapters call these interfaces; core services implement them.
package driving
