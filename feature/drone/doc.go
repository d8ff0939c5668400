// Package drone implements the drone config feature.
//
// It owns the drone_configs table (one row per drone profile key), the allow-listed
// partial update applied by REST and live-session writers, and the default seed set
// inserted at startup.
//
// # Components
//
//   - Store: durable key to Config table (GormStore on sqlite or MySQL).
//   - Patch: partial update of style, color, scale, animate and simulator.
//   - Service: validates, persists and broadcasts exactly one update event per change.
//   - Handler: REST endpoints.
//   - Feature: registers the handler with the application.
//
// # HTTP Endpoints
//
//   - GET /api/drones : List every config.
//   - GET /api/drones/:key : Get one config (404 {"detail":"Drone not found"}).
//   - POST /api/drones/:key/update : Apply a partial update.
package drone
