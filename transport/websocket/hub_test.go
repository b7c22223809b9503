package websocket

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/hey-amo/ShippingInvestors/game/engine"
)

func TestNewHub(t *testing.T) {
	hub := NewHub()

	if hub == nil {
		t.Fatal("NewHub() returned nil")
	}
	if hub.games == nil {
		t.Error("Hub games map is nil")
	}
	if hub.broadcast == nil {
		t.Error("Hub broadcast channel is nil")
	}
	if hub.register == nil {
		t.Error("Hub register channel is nil")
	}
	if hub.unregister == nil {
		t.Error("Hub unregister channel is nil")
	}
}

func TestHubRegisterClient(t *testing.T) {
	hub := NewHub()

	client := &Client{
		hub:    hub,
		gameID: "test-game",
		send:   make(chan []byte, 256),
	}

	hub.registerClient(client)

	if _, exists := hub.games["test-game"]; !exists {
		t.Error("Game watcher set was not created")
	}
	if !hub.games["test-game"][client] {
		t.Error("Client was not registered")
	}
	if len(hub.games["test-game"]) != 1 {
		t.Errorf("Expected 1 client, got %d", len(hub.games["test-game"]))
	}
}

func TestHubUnregisterClient(t *testing.T) {
	hub := NewHub()

	client := &Client{
		hub:    hub,
		gameID: "test-game",
		send:   make(chan []byte, 256),
	}

	hub.registerClient(client)
	hub.unregisterClient(client)

	if _, exists := hub.games["test-game"]; exists {
		t.Error("Empty watcher set should have been cleaned up")
	}
}

func TestHubMultipleClientsPerGame(t *testing.T) {
	hub := NewHub()
	gameID := "multi-client-game"

	client1 := &Client{hub: hub, gameID: gameID, send: make(chan []byte, 256)}
	client2 := &Client{hub: hub, gameID: gameID, send: make(chan []byte, 256)}

	hub.registerClient(client1)
	hub.registerClient(client2)

	if len(hub.games[gameID]) != 2 {
		t.Errorf("Expected 2 clients, got %d", len(hub.games[gameID]))
	}

	hub.unregisterClient(client1)

	if len(hub.games[gameID]) != 1 {
		t.Errorf("Expected 1 client remaining, got %d", len(hub.games[gameID]))
	}
	if !hub.games[gameID][client2] {
		t.Error("client2 should still be registered")
	}
}

func TestHubBroadcastMessage(t *testing.T) {
	hub := NewHub()
	gameID := "broadcast-test"

	client := &Client{hub: hub, gameID: gameID, send: make(chan []byte, 256)}
	hub.registerClient(client)

	snapshot := &engine.GameSnapshot{
		State:         engine.StatePlaying,
		CurrentPlayer: 2,
	}
	hub.broadcastMessage(&Message{
		GameID: gameID,
		Game:   snapshot,
		Event:  "state_update",
	})

	select {
	case data := <-client.send:
		var message Message
		if err := json.Unmarshal(data, &message); err != nil {
			t.Fatalf("Failed to unmarshal message: %v", err)
		}
		if message.GameID != gameID {
			t.Errorf("Expected gameID %s, got %s", gameID, message.GameID)
		}
		if message.Event != "state_update" {
			t.Errorf("Expected event 'state_update', got %s", message.Event)
		}
		if message.Game.CurrentPlayer != 2 {
			t.Error("Snapshot not correctly transmitted")
		}
	case <-time.After(100 * time.Millisecond):
		t.Error("No message received within timeout")
	}
}

func TestHubBroadcastLogEntry(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	gameID := "log-test"

	client := &Client{hub: hub, gameID: gameID, send: make(chan []byte, 256)}
	hub.register <- client
	time.Sleep(10 * time.Millisecond)

	hub.BroadcastLogEntry(gameID, engine.Message{
		Text: "Ship 3 departs dock 1.",
		Kind: engine.MessageInfo,
		Time: time.Now(),
	})

	select {
	case data := <-client.send:
		var message Message
		if err := json.Unmarshal(data, &message); err != nil {
			t.Fatalf("Failed to unmarshal message: %v", err)
		}
		if message.Event != "log_entry" {
			t.Errorf("Expected event 'log_entry', got %s", message.Event)
		}
		if message.LogEntry == nil || message.LogEntry.Text != "Ship 3 departs dock 1." {
			t.Error("Log entry not correctly transmitted")
		}
	case <-time.After(time.Second):
		t.Error("No message received within timeout")
	}
}

func TestWebSocketUpgrade(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gameID := r.URL.Query().Get("game")
		if gameID == "" {
			gameID = "default"
		}
		hub.ServeWS(w, r, gameID)
	}))
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "?game=ws-test"

	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("Failed to connect to WebSocket: %v", err)
	}
	defer conn.Close()

	// Give some time for registration
	time.Sleep(50 * time.Millisecond)

	if len(hub.games["ws-test"]) != 1 {
		t.Errorf("Expected 1 client registered, got %d", len(hub.games["ws-test"]))
	}

	conn.Close()
	time.Sleep(50 * time.Millisecond)

	if _, exists := hub.games["ws-test"]; exists {
		t.Error("Watcher set should have been cleaned up after close")
	}
}

func TestWebSocketReceivesState(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hub.ServeWS(w, r, r.URL.Query().Get("game"))
	}))
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "?game=msg-test"

	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("Failed to connect to WebSocket: %v", err)
	}
	defer conn.Close()

	time.Sleep(50 * time.Millisecond)

	hub.BroadcastState("msg-test", &engine.GameSnapshot{
		State:         engine.StatePlaying,
		CurrentPlayer: 3,
		Weather:       engine.WeatherCalm,
	})

	conn.SetReadDeadline(time.Now().Add(time.Second))
	_, messageData, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("Failed to read WebSocket message: %v", err)
	}

	var message Message
	if err := json.Unmarshal(messageData, &message); err != nil {
		t.Fatalf("Failed to unmarshal message: %v", err)
	}
	if message.GameID != "msg-test" {
		t.Errorf("Expected gameID 'msg-test', got %s", message.GameID)
	}
	if message.Game == nil || message.Game.CurrentPlayer != 3 {
		t.Error("Snapshot not correctly received")
	}
}
