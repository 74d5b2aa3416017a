package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	kafkago "github.com/segmentio/kafka-go"

	"github.com/thebettinginsider/splitsight/internal/cache"
	"github.com/thebettinginsider/splitsight/internal/httpapi"
	kafkautil "github.com/thebettinginsider/splitsight/internal/kafka"
	"github.com/thebettinginsider/splitsight/internal/logging"
	"github.com/thebettinginsider/splitsight/internal/queue"
	"github.com/thebettinginsider/splitsight/internal/scraper"
	"github.com/thebettinginsider/splitsight/internal/splits"
)

func main() {
	godotenv.Load()
	logging.InitFromEnv()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ttl := time.Duration(envInt("CACHE_DURATION_MINUTES", 30)) * time.Minute

	client := scraper.NewClient(scraper.ClientConfig{
		BaseURL: os.Getenv("SPLITS_BASE_URL"),
		Timeout: time.Duration(envInt("SPLITS_TIMEOUT_SECONDS", 0)) * time.Second,
	})
	pipeline := scraper.New(client, nil)

	store := openStore(ttl)
	defer store.Close()

	writer := setupWriter(ctx)
	defer func() {
		if writer != nil {
			writer.Close()
		}
	}()

	manager := cache.NewManager(cache.Config{
		Store:   store,
		Refresh: pipeline.Scrape,
		TTL:     ttl,
		OnInstall: func(ctx context.Context, snap splits.Snapshot) {
			if writer == nil {
				return
			}
			if err := queue.PublishSnapshot(ctx, writer, snap); err != nil {
				logging.Errorf("[server] publish snapshot: %v", err)
			}
		},
	})

	router := httpapi.NewRouter(httpapi.NewHandler(manager), corsOrigins())

	addr := ":" + envString("PORT", "5000")
	srv := &http.Server{Addr: addr, Handler: router}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	logging.Infof("[server] listening on %s (snapshot TTL %s)", addr, ttl)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logging.Fatalf("[server] listen: %v", err)
	}
}

// openStore picks the snapshot store backend from SNAPSHOT_STORE
// (memory|redis|sqlite). Memory is the default and keeps nothing
// across restarts.
func openStore(ttl time.Duration) cache.Store {
	switch strings.ToLower(envString("SNAPSHOT_STORE", "memory")) {
	case "redis":
		store, err := cache.NewRedisStore(
			envString("REDIS_ADDR", "localhost:6379"),
			os.Getenv("REDIS_PASSWORD"),
			envInt("REDIS_DB", 0),
			ttl,
			os.Getenv("SNAPSHOT_KEY"),
		)
		if err != nil {
			logging.Fatalf("[server] open redis store: %v", err)
		}
		return store
	case "sqlite":
		store, err := cache.NewSQLiteStore(os.Getenv("SQLITE_PATH"))
		if err != nil {
			logging.Fatalf("[server] open sqlite store: %v", err)
		}
		return store
	default:
		return cache.NewMemoryStore()
	}
}

// setupWriter enables snapshot fan-out when KAFKA_BROKERS is set.
func setupWriter(ctx context.Context) *kafkago.Writer {
	brokers := kafkautil.Brokers()
	if len(brokers) == 0 {
		return nil
	}
	topic := kafkautil.TopicFromEnv("SPLITS_KAFKA_TOPIC", kafkautil.DefaultSplitsTopic)

	waitCtx, cancel := context.WithTimeout(ctx, 45*time.Second)
	defer cancel()
	if err := kafkautil.WaitForBroker(waitCtx, brokers); err != nil {
		logging.Errorf("[server] kafka unavailable, fan-out disabled: %v", err)
		return nil
	}
	ensureCtx, cancelEnsure := context.WithTimeout(ctx, 30*time.Second)
	defer cancelEnsure()
	if err := kafkautil.EnsureTopic(ensureCtx, brokers, topic); err != nil {
		logging.Errorf("[server] ensure topic warning: %v", err)
	}
	return kafkautil.NewWriter(brokers, topic)
}

func corsOrigins() []string {
	raw := os.Getenv("CORS_ORIGINS")
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func envString(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func envInt(key string, def int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return def
}
