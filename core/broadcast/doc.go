// Package broadcast fans JSON events out to live sessions.
//
// A Broadcaster owns the set of connected sessions. Register, Unregister and the
// recipient snapshot taken by Broadcast are serialized by one mutex; the actual
// writes happen after the lock is released, one goroutine per recipient, so a
// slow session never blocks admission of new ones.
//
// Delivery is best-effort: a failing session does not affect the others and is
// not removed by Broadcast. Sessions leave the set when their own connection
// handler notices the disconnect and calls Unregister.
//
// # Events
//
//	{"type":"update","key":"quadcopter","payload":{"scale":2.5}}
//	{"type":"error","detail":"invalid json"}
//	{"type":"message","data":{...}}
package broadcast
