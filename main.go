// Command shippinginvestors starts the shipping game server.
//
// It supports two modes:
//  1. "serve" (default) – runs the HTTP server exposing REST API, WebSocket, and an /mcp HTTP endpoint
//  2. "mcp" – runs an MCP stdio server and spins up an internal HTTP API if none is available
//
// Flags control host/port, the rules and sessions directories, and debug
// logging.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"
	"github.com/urfave/cli/v3"

	"github.com/hey-amo/ShippingInvestors/api"
	"github.com/hey-amo/ShippingInvestors/game/config"
	"github.com/hey-amo/ShippingInvestors/game/service"
	"github.com/hey-amo/ShippingInvestors/game/session"
	"github.com/hey-amo/ShippingInvestors/transport/mcp"
	"github.com/hey-amo/ShippingInvestors/transport/websocket"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "Shipping Investors Server"
)

// serverOptions carries the flag values the commands run with
type serverOptions struct {
	host        string
	port        int
	rulesDir    string
	sessionsDir string
	debug       bool
}

func main() {
	// Load .env file if it exists (ignore error if not found)
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	} else {
		log.Println("Loaded environment variables from .env file")
	}

	cmd := rootCommand()
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

// rootCommand builds the CLI with the serve and mcp commands
func rootCommand() *cli.Command {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:    "host",
			Value:   "localhost",
			Usage:   "HTTP server host",
			Sources: cli.EnvVars("HOST"),
		},
		&cli.IntFlag{
			Name:    "port",
			Value:   8080,
			Usage:   "HTTP server port",
			Sources: cli.EnvVars("PORT"),
		},
		&cli.StringFlag{
			Name:    "rules-dir",
			Value:   "rules",
			Usage:   "Directory containing rule set files",
			Sources: cli.EnvVars("RULES_DIR"),
		},
		&cli.StringFlag{
			Name:    "sessions-dir",
			Value:   "sessions",
			Usage:   "Directory for persisted games",
			Sources: cli.EnvVars("SESSIONS_DIR"),
		},
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "Enable debug logging",
		},
	}

	return &cli.Command{
		Name:    "shippinginvestors",
		Usage:   AppName,
		Version: Version,
		Flags:   flags,
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "Run the HTTP server with REST API, WebSocket, and MCP endpoint",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runServe(optionsFromCommand(cmd))
				},
			},
			{
				Name:    "mcp",
				Aliases: []string{"stdio-mcp", "mcp-stdio"},
				Usage:   "Run an MCP stdio server backed by an HTTP API",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runStdioMCP(optionsFromCommand(cmd))
				},
			},
		},
		DefaultCommand: "serve",
	}
}

func optionsFromCommand(cmd *cli.Command) serverOptions {
	opts := serverOptions{
		host:        cmd.String("host"),
		port:        cmd.Int("port"),
		rulesDir:    cmd.String("rules-dir"),
		sessionsDir: cmd.String("sessions-dir"),
		debug:       cmd.Bool("debug"),
	}
	if opts.debug {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	} else {
		log.SetFlags(log.LstdFlags)
	}
	return opts
}

// runServe starts the HTTP server with REST API, WebSocket hub, and an
// /mcp proxy endpoint, and blocks until a shutdown signal arrives.
func runServe(opts serverOptions) error {
	log.Printf("Starting %s v%s", AppName, Version)

	gameService, sessionManager, err := initializeServices(opts)
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	hub := websocket.NewHub()
	go hub.Run()

	apiServer := api.NewServer(gameService, hub)

	addr := fmt.Sprintf("%s:%d", opts.host, opts.port)
	mcpClient := mcp.NewClient(fmt.Sprintf("http://%s", addr))

	mainRouter := http.NewServeMux()
	mainRouter.Handle("/", apiServer)
	mainRouter.HandleFunc("/mcp", mcpHandler(mcpClient))

	httpServer := &http.Server{
		Addr:         addr,
		Handler:      mainRouter,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("HTTP server listening on %s", addr)
		log.Printf("REST API: http://%s/api", addr)
		log.Printf("WebSocket: ws://%s/ws?game=<game_id>", addr)
		log.Printf("MCP endpoint: http://%s/mcp", addr)

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	sig := <-stop
	log.Printf("Received signal: %v. Shutting down...", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	if err := sessionManager.SaveAllSessions(); err != nil {
		log.Printf("Warning: Failed to save games on shutdown: %v", err)
	}

	log.Println("Server stopped")
	return nil
}

// mcpHandler serves MCP-over-HTTP by handing raw JSON-RPC messages to the
// proxy client's server.
func mcpHandler(mcpClient *mcp.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "Failed to read request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		response := mcpClient.GetMCPServer().HandleMessage(r.Context(), body)

		w.Header().Set("Content-Type", "application/json")
		responseData, err := json.Marshal(response)
		if err != nil {
			http.Error(w, "Failed to marshal response", http.StatusInternalServerError)
			return
		}
		w.Write(responseData)
	}
}

// initializeServices wires session/config managers and the game service.
// It also starts a background cleanup routine to prune stale games.
func initializeServices(opts serverOptions) (service.GameService, *session.Manager, error) {
	rulesManager, err := config.NewManager(opts.rulesDir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create rules manager: %w", err)
	}

	persistence, err := session.NewFilePersistence(opts.sessionsDir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create game persistence: %w", err)
	}

	sessionManager := session.NewManagerWithPersistence(persistence)

	if err := sessionManager.LoadPersistedSessions(); err != nil {
		log.Printf("Warning: Failed to load persisted games: %v", err)
	}

	gameService := service.NewGameService(sessionManager, rulesManager)

	go sessionCleanupRoutine(sessionManager)

	return gameService, sessionManager, nil
}

// sessionCleanupRoutine periodically removes games that have not been
// accessed within the retention window.
func sessionCleanupRoutine(manager *session.Manager) {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		removed := manager.CleanupExpiredSessions(24 * time.Hour)
		if removed > 0 {
			log.Printf("Cleaned up %d expired games", removed)
		}
	}
}

// runStdioMCP runs an MCP stdio server. It tries to reuse an external API
// at http://localhost:<port>; if unavailable, it starts a minimal internal
// HTTP API bound to a random loopback port and targets that.
func runStdioMCP(opts serverOptions) error {
	gameService, _, err := initializeServices(opts)
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	externalURL := fmt.Sprintf("http://localhost:%d", opts.port)
	log.Printf("Checking for external API server at %s...", externalURL)

	baseURL := externalURL
	testClient := &http.Client{Timeout: 2 * time.Second}
	resp, err := testClient.Get(externalURL + "/health")
	if err == nil && resp.StatusCode < 500 {
		resp.Body.Close()
		log.Printf("External API server found at %s, using it for MCP", externalURL)
	} else {
		log.Printf("No external API server found, starting internal HTTP server")

		listener, err := net.Listen("tcp", "127.0.0.1:0")
		if err != nil {
			return fmt.Errorf("failed to get available port: %w", err)
		}

		internalAddr := listener.Addr().String()
		log.Printf("Starting internal HTTP server on %s for MCP stdio", internalAddr)

		hub := websocket.NewHub()
		go hub.Run()

		apiServer := api.NewServer(gameService, hub)
		httpServer := &http.Server{Handler: apiServer}

		go func() {
			if err := httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
				log.Printf("Internal HTTP server error: %v", err)
			}
		}()

		// Wait a moment for the server to be ready
		time.Sleep(100 * time.Millisecond)

		baseURL = fmt.Sprintf("http://%s", internalAddr)
	}

	mcpClient := mcp.NewClient(baseURL)

	log.Println("MCP stdio server ready")
	if err := server.ServeStdio(mcpClient.GetMCPServer()); err != nil {
		return fmt.Errorf("MCP stdio server error: %w", err)
	}
	return nil
}
