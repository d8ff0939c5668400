// Package metrics owns the prometheus registry of the service.
//
// Components that export metrics accept a *Registry and register their collectors
// on construction; a nil registry disables their metrics. Handler mounts the
// registry on the Fiber app (GET /metrics).
package metrics
