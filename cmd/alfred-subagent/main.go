// Alfred subagent runner - hosts one subagent role (calendar, productivity
// or email) with one worker per configured user.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/thegaltinator/alfred-fabric/pkg/calendarplanner"
	"github.com/thegaltinator/alfred-fabric/pkg/config"
	"github.com/thegaltinator/alfred-fabric/pkg/database"
	"github.com/thegaltinator/alfred-fabric/pkg/emailtriage"
	"github.com/thegaltinator/alfred-fabric/pkg/observability"
	"github.com/thegaltinator/alfred-fabric/pkg/planner"
	"github.com/thegaltinator/alfred-fabric/pkg/productivity"
	"github.com/thegaltinator/alfred-fabric/pkg/ratelimit"
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
	role := flag.String("role", "", "Subagent role: calendar, productivity or email")
	flag.Parse()

	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		log.Printf("Warning: Could not load %s file: %v", envPath, err)
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

	sc := streams.New(rdb)
	bus := whiteboard.New(sc, cfg.MaxLenApprox)
	hostname, _ := os.Hostname()

	var wg sync.WaitGroup
	runForUser := func(userID string, run func(context.Context) error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := run(ctx); err != nil && ctx.Err() == nil {
				slog.Error("worker exited", "role", *role, "user_id", userID, "error", err)
			}
		}()
	}

	switch *role {
	case "calendar":
		dbClient := mustDB(ctx)
		defer func() { _ = dbClient.Close() }()
		for _, userID := range cfg.Users {
			sub := calendarplanner.New(calendarplanner.Config{
				UserID:       userID,
				CalendarID:   "primary",
				ConsumerName: fmt.Sprintf("%s-%s", hostname, userID),
				Streams:      sc,
				Bus:          bus,
				Shadow:       calendarplanner.NewShadowStore(dbClient.Client),
				Sync:         calendarplanner.NewSyncStore(dbClient.Client),
				Proposals:    calendarplanner.NewProposalStore(dbClient.Client),
				Collaborator: calendarplanner.NewHTTPCollaborator(cfg.CalendarURL),
				Planner:      planner.New(cfg.PlannerURL),
				Caps:         ratelimit.New(cfg.PlannerRatePerMin, cfg.PlannerRatePerHour),
			})
			if err := sub.SyncWindow(ctx); err != nil {
				slog.Warn("initial calendar sync failed", "user_id", userID, "error", err)
			}
			runForUser(userID, sub.Run)

			rollover := observability.NewRolloverScheduler(time.Local, func(ctx context.Context) {
				if err := sub.SyncWindow(ctx); err != nil {
					slog.Error("rollover calendar sync failed", "user_id", userID, "error", err)
				}
			}, slog.Default())
			runForUser(userID, rollover.Run)
		}
	case "productivity":
		for _, userID := range cfg.Users {
			sub := productivity.New(productivity.Config{
				UserID:       userID,
				ConsumerName: fmt.Sprintf("%s-%s", hostname, userID),
				Streams:      sc,
				Bus:          bus,
				Threshold:    cfg.MismatchThreshold,
				Cooldown:     cfg.MismatchCooldown,
			})
			runForUser(userID, sub.Run)
			runForUser(userID, sub.RunControlListener)

			rollover := observability.NewRolloverScheduler(time.Local, func(ctx context.Context) {
				if err := sub.Rollover(ctx, productivity.DayPlan{}); err != nil {
					slog.Error("rollover recompute failed", "user_id", userID, "error", err)
				}
			}, slog.Default())
			runForUser(userID, rollover.Run)
		}
	case "email":
		for _, userID := range cfg.Users {
			sub := emailtriage.New(emailtriage.Config{
				UserID:       userID,
				ConsumerName: fmt.Sprintf("%s-%s", hostname, userID),
				Streams:      sc,
				Bus:          bus,
				Classifier:   emailtriage.NewHTTPClassifier(cfg.ClassifierURL),
				Caps:         ratelimit.New(0, cfg.EmailTriagePerHour),
			})
			runForUser(userID, sub.Run)
		}
	default:
		log.Fatalf("Unknown --role %q: expected calendar, productivity or email", *role)
	}

	log.Printf("✓ %s workers started for %d users", *role, len(cfg.Users))
	<-ctx.Done()
	log.Println("Shutting down...")
	wg.Wait()
	log.Println("Shutdown complete")
}

func mustDB(ctx context.Context) *database.Client {
	dbCfg, err := database.LoadConfigFromEnv()
	if err != nil {
		log.Fatalf("Failed to load database config: %v", err)
	}
	dbClient, err := database.NewClient(ctx, dbCfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return dbClient
}
