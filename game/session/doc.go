// Package session provides session management for Shipping Investors.
//
// The session package implements:
//   - Thread-safe session storage and retrieval
//   - Unique session ID generation
//   - Session lifecycle management
//   - Optional JSON file persistence of game snapshots
//
// Core Types:
//
// Manager is the main session manager that handles all session operations.
// FilePersistence stores each game as a JSON snapshot file; ship and
// player references inside the snapshot are flattened to ids and resolved
// again on load.
//
// Session Identifiers:
//
// Sessions use 4-character hex IDs for easy reference, generated with
// cryptographic randomness. Lookups are case-insensitive.
//
// Concurrency:
//
// The session manager is thread-safe. Multiple goroutines can safely
// create, retrieve, and delete sessions concurrently; the games inside
// the sessions are serialised by the service layer.
//
// Usage:
//
//	persistence, _ := session.NewFilePersistence("sessions")
//	manager := session.NewManagerWithPersistence(persistence)
//
//	// Create a 3-player game under the given rules
//	sess, err := manager.Create("", "standard", rules, 3)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Retrieve it later, possibly from disk
//	sess, err = manager.Get(sess.ID)
package session
