// Alfred mailer - drains each user's mail control channel and delivers
// confirmed drafts through the external mail gateway.
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

	"github.com/joho/godotenv"

	"github.com/thegaltinator/alfred-fabric/pkg/config"
	"github.com/thegaltinator/alfred-fabric/pkg/mailer"
	"github.com/thegaltinator/alfred-fabric/pkg/ratelimit"
	"github.com/thegaltinator/alfred-fabric/pkg/redisclient"
	"github.com/thegaltinator/alfred-fabric/pkg/streams"
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
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if len(cfg.Users) == 0 {
		log.Fatalf("USERS must name at least one user to watch")
	}
	if cfg.MailURL == "" {
		log.Fatalf("MAIL_URL must point at the mail gateway")
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
	sender := mailer.NewHTTPSender(cfg.MailURL)
	hostname, _ := os.Hostname()

	var wg sync.WaitGroup
	for _, userID := range cfg.Users {
		w := mailer.New(mailer.Config{
			UserID:       userID,
			ConsumerName: fmt.Sprintf("%s-%s", hostname, userID),
			Streams:      sc,
			Sender:       sender,
			Caps:         ratelimit.New(0, cfg.EmailSendCapPerHour),
		})
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := w.Run(ctx); err != nil && ctx.Err() == nil {
				slog.Error("mailer worker exited", "user_id", userID, "error", err)
			}
		}()
	}

	log.Printf("✓ Mailer workers started for %d users", len(cfg.Users))
	<-ctx.Done()
	log.Println("Shutting down...")
	wg.Wait()
	log.Println("Shutdown complete")
}
