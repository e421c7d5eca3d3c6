// Package api holds the request and response messages of the saladbowl.v1
// RPC services. Messages travel as JSON over the Connect protocol; field
// names are camelCase to match the web client.
package api
