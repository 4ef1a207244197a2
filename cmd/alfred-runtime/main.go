// Alfred runtime server - tails each user's whiteboard, drives the Manager
// graph and serves the subscriber endpoints and user-action ingress.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/thegaltinator/alfred-fabric/pkg/api"
	"github.com/thegaltinator/alfred-fabric/pkg/calendarplanner"
	"github.com/thegaltinator/alfred-fabric/pkg/config"
	"github.com/thegaltinator/alfred-fabric/pkg/database"
	"github.com/thegaltinator/alfred-fabric/pkg/manager"
	"github.com/thegaltinator/alfred-fabric/pkg/planner"
	"github.com/thegaltinator/alfred-fabric/pkg/redisclient"
	"github.com/thegaltinator/alfred-fabric/pkg/streams"
	"github.com/thegaltinator/alfred-fabric/pkg/whiteboard"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		log.Printf("Warning: Could not load %s file: %v", envPath, err)
		log.Printf("Continuing with existing environment variables...")
	} else {
		log.Printf("Loaded environment from %s", envPath)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if len(cfg.Users) == 0 {
		log.Fatalf("USERS must name at least one user to watch")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	redisCfg, err := redisclient.LoadConfigFromEnv()
	if err != nil {
		log.Fatalf("Failed to load redis config: %v", err)
	}
	rdb, err := redisclient.NewClient(ctx, redisCfg)
	if err != nil {
		log.Fatalf("Failed to connect to redis: %v", err)
	}
	defer func() { _ = rdb.Close() }()
	log.Println("✓ Connected to Redis")

	dbCfg, err := database.LoadConfigFromEnv()
	if err != nil {
		log.Fatalf("Failed to load database config: %v", err)
	}
	dbClient, err := database.NewClient(ctx, dbCfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			log.Printf("Error closing database client: %v", err)
		}
	}()
	log.Println("✓ Connected to PostgreSQL database")

	sc := streams.New(rdb)
	bus := whiteboard.New(sc, cfg.MaxLenApprox)
	checkpoints := manager.NewEntCheckpointStore(dbClient.Client)

	// The apply choice runs the Calendar-Planner's drift-checked confirm;
	// the runtime hosts a confirmer over the same stores the calendar
	// subagent writes.
	var confirmer manager.ProposalConfirmer
	if cfg.CalendarURL != "" {
		confirmer = calendarplanner.New(calendarplanner.Config{
			CalendarID:   "primary",
			Streams:      sc,
			Bus:          bus,
			Shadow:       calendarplanner.NewShadowStore(dbClient.Client),
			Sync:         calendarplanner.NewSyncStore(dbClient.Client),
			Proposals:    calendarplanner.NewProposalStore(dbClient.Client),
			Collaborator: calendarplanner.NewHTTPCollaborator(cfg.CalendarURL),
			Planner:      planner.New(cfg.PlannerURL),
		})
	}

	graph, err := manager.NewManagerGraph(manager.GraphConfig{
		PlannerURL:     cfg.PlannerURL,
		ProdControlURL: cfg.ProdControlURL,
		Bus:            bus,
		Planner:        planner.New(cfg.PlannerURL),
		ControlStreams: sc,
		Checkpoints:    checkpoints,
		Confirmer:      confirmer,
	})
	if err != nil {
		log.Fatalf("Failed to build manager graph: %v", err)
	}

	server := api.NewServer(bus, slog.Default())
	server.AddHealthCheck("redis", func(ctx context.Context) error {
		return rdb.Ping(ctx).Err()
	})
	server.AddHealthCheck("postgres", func(ctx context.Context) error {
		_, err := dbClient.Health(ctx)
		return err
	})

	var wg sync.WaitGroup
	for _, userID := range cfg.Users {
		worker := manager.NewWorker(userID, cfg.StartAfterID, bus, graph, checkpoints, slog.Default())
		server.AddWorkerMetrics("runtime:"+userID, worker.Metrics())
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := worker.Run(ctx); err != nil && ctx.Err() == nil {
				slog.Error("runtime worker exited", "user_id", userID, "error", err)
			}
		}()
	}
	log.Printf("✓ Runtime workers started for %d users", len(cfg.Users))

	go func() {
		if err := server.Start(":" + cfg.HTTPPort); err != nil {
			slog.Error("http server exited", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error shutting down http server: %v", err)
	}
	wg.Wait()
	log.Println("Shutdown complete")
}
