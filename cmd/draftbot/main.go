// DraftBot - Discord bot for Dota 2 draft advice.
// Optimized for minimal resource usage.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/draftbot/internal/bot"
	"github.com/draftbot/internal/config"
	"github.com/draftbot/internal/data"
	"github.com/draftbot/internal/services/scraper"
	"github.com/draftbot/internal/storage"
	"github.com/draftbot/pkg/healthcheck"
)

func init() {
	// Optimize garbage collector for low memory
	debug.SetGCPercent(50)

	// Limit max memory usage (soft limit)
	debug.SetMemoryLimit(50 * 1024 * 1024) // 50MB

	// Use minimal number of OS threads
	runtime.GOMAXPROCS(1)
}

func main() {
	// Health check flag for Docker
	healthFlag := flag.Bool("health", false, "Run health check")
	syncFlag := flag.Bool("sync", false, "Rebuild the strategy documents from the tips site and exit")
	flag.Parse()

	if *healthFlag {
		if err := runHealthCheck(); err != nil {
			os.Exit(1)
		}
		os.Exit(0)
	}

	// Minimal logging - write directly to stdout for Docker
	log.SetFlags(log.Ltime)
	log.SetOutput(os.Stdout)
	log.Println("Starting DraftBot...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	// Load the knowledge base; missing data degrades, never aborts
	kb := data.Load(cfg.DataDir)

	if *syncFlag {
		if err := runSync(cfg, kb); err != nil {
			log.Fatalf("Sync error: %v", err)
		}
		return
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Config invalid: %v", err)
	}

	// Create bot
	draftBot, err := bot.New(cfg, kb)
	if err != nil {
		log.Fatalf("Bot error: %v", err)
	}

	// Start health check server (lightweight)
	healthServer := healthcheck.New(cfg.HealthAddr, draftBot.Ready)
	go func() {
		if err := healthServer.Start(); err != nil && err != http.ErrServerClosed {
			log.Printf("Health server error: %v", err)
		}
	}()

	// Start bot
	if err := draftBot.Start(); err != nil {
		log.Fatalf("Start error: %v", err)
	}

	log.Println("DraftBot running")

	// Wait for interrupt signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down...")

	// Graceful shutdown with short timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	healthServer.Stop(ctx)
	draftBot.Stop()

	log.Println("Stopped")
}

// runSync rebuilds the on-disk strategy documents from the tips site.
func runSync(cfg *config.Config, kb *data.KnowledgeBase) error {
	redisClient := storage.NewRedisClient(cfg.RedisURL)
	client := scraper.NewClient(cfg.StrategyBaseURL, redisClient)
	return client.SyncAll(kb, cfg.DataDir)
}

// runHealthCheck performs a quick health check
func runHealthCheck() error {
	client := &http.Client{Timeout: 3 * time.Second}
	resp, err := client.Get("http://localhost:8080/health")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unhealthy: %d", resp.StatusCode)
	}
	return nil
}
