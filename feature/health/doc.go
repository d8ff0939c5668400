// Package health reports whether the service can do its job.
//
// # Checks Provided
//
//   - Database: pings the connection and verifies that the drone_configs table
//     carries every column the drone.Config model maps.
//   - Storage: verifies the frontend bucket exists. Reported as "disabled" when
//     the frontend is served from disk.
//
// # HTTP Endpoints
//
//   - GET /health : 200 with status "ok", or 503 with status "degraded".
package health
