// Package live serves the real-time WebSocket endpoint.
//
// Every connection becomes a Session that moves Connecting -> Open -> Closed.
// On Open it joins the shared broadcast.Broadcaster; whatever ends the read loop
// (peer close, transport error, server shutdown) unregisters it exactly once.
//
// # Inbound Messages
//
//   - {"type":"update","key":K,"payload":{...},"persist":true}: applied through the
//     drone service, which broadcasts the persisted fields. Unknown keys and invalid
//     values are answered with an error event to the sender only.
//   - {"type":"update","key":K,"payload":{...}}: broadcast as-is, nothing is stored.
//   - anything else that decodes: relayed as {"type":"message","data":...}.
//   - undecodable text: {"type":"error","detail":"invalid json"} to the sender only.
//
// Broadcasts go to every open session, the sender included.
package live
