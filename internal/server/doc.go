// Package server runs the development server's HTTP transport, including
// startup, signal handling and graceful shutdown.
package server
