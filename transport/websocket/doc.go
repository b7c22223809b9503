// Package websocket provides real-time game updates over WebSocket
// connections using a hub-and-spoke model.
//
// Clients connect with a game id (the ?game= query parameter on the /ws
// endpoint) and receive JSON messages whenever that game changes: full
// state snapshots after every mutating action, individual message-log
// entries, and custom events. Connections are read-only; actions go
// through the HTTP API.
//
// Message Protocol:
//
// Outgoing messages are JSON-encoded Message values:
//   - {game_id: "ab12", event: "state_update", game: {...}}
//   - {game_id: "ab12", event: "log_entry", log_entry: {...}}
//
// Usage:
//
//	hub := websocket.NewHub()
//	go hub.Run()
//
//	http.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
//		hub.ServeWS(w, r, r.URL.Query().Get("game"))
//	})
//
// Concurrency:
//
// The Hub owns all connection state. Run must be started in its own
// goroutine before any broadcasts; registration, unregistration, and
// fan-out all flow through its event loop, so no locking is needed.
// Slow clients whose send buffers fill up are dropped rather than
// allowed to stall a broadcast.
package websocket
