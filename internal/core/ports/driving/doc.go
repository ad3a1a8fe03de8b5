// Package driving defines the driving ports: the service interfaces
// offered to the CLI, TUI, and MCP adapters.
package driving
