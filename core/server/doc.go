// Package server holds the HTTP server configuration.
//
// While the main application entry point handles the server startup, this package
// defines the configuration structure for the listener, the frontend asset locations
// and the real-time endpoint.
//
// # Configuration
//
// The Config struct defines the HTTP port, the static asset directory, the landing
// page file name, the WebSocket path and the write deadline applied to every
// message sent to a live session.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server settings
// and by the start command when wiring features.
package server
