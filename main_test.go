package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestConstants(t *testing.T) {
	if Version == "" {
		t.Error("Version should not be empty")
	}
	if AppName == "" {
		t.Error("AppName should not be empty")
	}
}

func TestRootCommand(t *testing.T) {
	cmd := rootCommand()

	if cmd.Name != "shippinginvestors" {
		t.Errorf("Expected command name shippinginvestors, got %s", cmd.Name)
	}
	if cmd.DefaultCommand != "serve" {
		t.Errorf("Expected serve as the default command, got %s", cmd.DefaultCommand)
	}

	names := make(map[string]bool)
	for _, sub := range cmd.Commands {
		names[sub.Name] = true
	}
	for _, want := range []string{"serve", "mcp"} {
		if !names[want] {
			t.Errorf("Expected a %q command", want)
		}
	}
}

func TestInitializeServices(t *testing.T) {
	opts := serverOptions{
		rulesDir:    t.TempDir(),
		sessionsDir: t.TempDir(),
	}

	gameService, sessionManager, err := initializeServices(opts)
	if err != nil {
		t.Fatalf("initializeServices failed: %v", err)
	}
	if gameService == nil {
		t.Error("Expected a game service")
	}
	if sessionManager == nil {
		t.Error("Expected a session manager")
	}
	if sessionManager.Count() != 0 {
		t.Errorf("Expected no games loaded from an empty directory, got %d", sessionManager.Count())
	}
}

func TestMCPHandlerRejectsNonPost(t *testing.T) {
	handler := mcpHandler(nil)

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest("GET", "/mcp", nil))

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected status 405 for GET, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Method not allowed") {
		t.Errorf("Expected a method not allowed message, got %q", w.Body.String())
	}
}
