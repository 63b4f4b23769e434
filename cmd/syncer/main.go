package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"subfeed/internal/config"
	"subfeed/internal/domain"
	"subfeed/internal/filter"
	"subfeed/internal/metrics"
	"subfeed/internal/publisher"
	"subfeed/internal/scheduler"
	"subfeed/internal/service"
	"subfeed/internal/source/youtube"
	"subfeed/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	once := flag.Bool("once", false, "run a single sync pass and exit")
	subscribe := flag.String("subscribe", "", "comma separated channel ids to subscribe to before syncing")
	feedSize := flag.Int("feed", 0, "print the newest N videos of the subscription feed and exit")
	channelID := flag.String("channel", "", "print the recent videos of a channel and exit")
	migrate := flag.Bool("migrate", true, "apply database migrations on startup")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	logger.Info("connected to database")

	if *migrate {
		if err := postgres.Migrate(db); err != nil {
			logger.Error("failed to migrate database", "error", err)
			os.Exit(1)
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	store := postgres.NewStore(db)

	source := youtube.New(youtube.Config{
		FeedURL:        cfg.YouTube.FeedURL,
		APIURL:         cfg.YouTube.APIURL,
		Timeout:        cfg.YouTube.Timeout,
		RateLimit:      cfg.YouTube.RateLimit,
		MaxAttempts:    cfg.YouTube.Retry.MaxAttempts,
		InitialBackoff: cfg.YouTube.Retry.InitialBackoff,
		MaxBackoff:     cfg.YouTube.Retry.MaxBackoff,
	}, logger)

	if *subscribe != "" {
		for _, id := range strings.Split(*subscribe, ",") {
			id = strings.TrimSpace(id)
			if id == "" {
				continue
			}
			if err := subscribeChannel(ctx, store, source, domain.ChannelID(id), logger); err != nil {
				logger.Error("failed to subscribe", "channel_id", id, "error", err)
				os.Exit(1)
			}
		}
	}

	var pub service.Publisher
	if cfg.RabbitMQ.Enabled {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer rabbitMQ.Close()
		pub = rabbitMQ
	}

	blocker, err := filter.New(cfg.Filter)
	if err != nil {
		logger.Error("failed to build content filter", "error", err)
		os.Exit(1)
	}

	recorder := metrics.NewRecorder(nil)

	syncService := service.NewSyncService(source, store, pub, recorder, logger, cfg.Sync)
	feedService := service.NewFeedService(
		source,
		func(id domain.ChannelID, after time.Time) service.Pager {
			return source.ChannelPager(id, after)
		},
		store,
		service.NewContentFilter(blocker, logger),
		logger,
		cfg.Sync,
	)

	switch {
	case *feedSize > 0:
		cards, err := feedService.LoadFeedView(ctx, store.SubscriptionFeed(cfg.Sync.BacklogSize), service.FeedView{
			Target:        *feedSize,
			Filtering:     true,
			Subscriptions: true,
			Reset:         true,
		})
		printCards(cards)
		if err != nil {
			os.Exit(1)
		}
		return
	case *channelID != "":
		cards, err := feedService.ChannelVideos(ctx, domain.ChannelID(*channelID), nil)
		printCards(cards)
		if err != nil {
			logger.Error("failed to load channel videos", "channel_id", *channelID, "error", err)
			os.Exit(1)
		}
		return
	}

	sched := scheduler.NewScheduler(syncService, cfg.Sync.Interval, cfg.Sync.RunTimeout, logger)

	if *once {
		if sched.RunOnce(ctx) == nil {
			os.Exit(1)
		}
		return
	}

	metricsServer := &http.Server{
		Addr:              cfg.Metrics.Addr,
		Handler:           metricsMux(recorder),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server error", "error", err)
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = metricsServer.Shutdown(shutdownCtx)
	}()

	logger.Info("starting subscription syncer",
		"source", youtube.SourceID,
		"interval", cfg.Sync.Interval,
		"concurrency", cfg.Sync.Concurrency,
		"metrics_addr", cfg.Metrics.Addr,
	)

	if err := sched.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("scheduler error", "error", err)
		os.Exit(1)
	}
}

// subscribeChannel marks a channel as subscribed and caches its title when the feed is reachable.
func subscribeChannel(
	ctx context.Context,
	store *postgres.Store,
	source *youtube.Source,
	channelID domain.ChannelID,
	logger *slog.Logger,
) error {
	ch, err := source.FetchChannel(ctx, channelID)
	if err != nil {
		logger.Warn("channel metadata unavailable, subscribing without it", "channel_id", channelID, "error", err)
	} else {
		ch.Subscribed = true
		if err := store.Channels().UpsertBatch(ctx, []domain.Channel{*ch}); err != nil {
			return err
		}
	}

	if err := store.Channels().SetSubscribed(ctx, channelID, true); err != nil {
		return err
	}
	logger.Info("subscribed", "channel_id", channelID, "title", titleOf(ch))
	return nil
}

func titleOf(ch *domain.Channel) string {
	if ch == nil {
		return ""
	}
	return ch.Title
}

func metricsMux(recorder *metrics.Recorder) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", recorder.Handler())
	return mux
}

type cardOutput struct {
	Kind        string    `json:"kind"`
	ID          string    `json:"id"`
	ChannelID   string    `json:"channel_id"`
	Title       string    `json:"title"`
	PublishedAt time.Time `json:"published_at,omitzero"`
}

func printCards(cards []domain.Card) {
	enc := json.NewEncoder(os.Stdout)
	for _, c := range cards {
		out := cardOutput{
			Kind:      c.Kind.String(),
			ID:        c.ID,
			ChannelID: string(c.ChannelID),
			Title:     c.Title,
		}
		if c.Video != nil {
			out.PublishedAt = c.Video.PublishedAt
		}
		_ = enc.Encode(out)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
