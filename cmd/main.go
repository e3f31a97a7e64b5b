/**
 * @description
 * This is the main entry point for the client gateway. It is responsible for
 * initializing all components of the service, including configuration, the
 * remote job service client, the per-session entity caches, the core
 * orchestration service, and the HTTP server. It wires everything together and
 * starts the service.
 *
 * @dependencies
 * - log, net/http: Standard Go libraries for logging and HTTP server functionality.
 * - github.com/joho/godotenv: Optional .env loading for local development.
 * - internal/api, internal/app, internal/config, internal/store: Internal packages for the service.
 * - pkg/marketclient: Client for the remote job service API.
 */

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/workbridge/client-gateway/internal/api"
	"github.com/workbridge/client-gateway/internal/app"
	"github.com/workbridge/client-gateway/internal/config"
	"github.com/workbridge/client-gateway/internal/store"
	"github.com/workbridge/client-gateway/pkg/marketclient"
)

func main() {
	// Load a local .env if present; real deployments configure the
	// environment directly.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("level=warn component=bootstrap msg=\"dotenv load failed\" err=%v", err)
	}

	// Load application configuration from environment variables.
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("level=fatal component=bootstrap msg=\"config load failed\" err=%v", err)
	}
	if cfg.SessionJWTSecret == "" {
		log.Fatalf("level=fatal component=bootstrap msg=\"session secret must be configured\" env=SESSION_JWT_SECRET")
	}

	log.Printf("level=info component=bootstrap msg=\"starting client-gateway\" port=%s market_api=%s", cfg.ServerPort, cfg.MarketAPIBaseURL)

	// Initialize the client for the remote job service.
	marketClient := marketclient.NewClient(cfg.MarketAPIBaseURL)
	marketClient.HTTPClient.Timeout = time.Duration(cfg.RequestTimeoutSeconds) * time.Second

	// Initialize the per-session entity caches and the orchestration core.
	caches := store.NewCaches()
	service := app.NewService(marketClient, caches)

	// Initialize the API handlers and router.
	handlers := api.NewHandlers(service)
	router := api.Routes(handlers, cfg.SessionJWTSecret, cfg.Origins())

	// Start the HTTP server.
	serverAddr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("level=info component=http msg=\"server listening\" addr=%s", serverAddr)

	server := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("level=fatal component=http msg=\"server stopped unexpectedly\" err=%v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	log.Println("level=info component=http msg=\"shutdown started\"")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("level=error component=http msg=\"shutdown failed\" err=%v", err)
	}

	log.Println("level=info component=http msg=\"shutdown complete\"")
}
