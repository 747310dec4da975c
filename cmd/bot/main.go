package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/KirkDiggler/pokemon-tabletop-bot/internal/clients/pokeapi"
	"github.com/KirkDiggler/pokemon-tabletop-bot/internal/config"
	"github.com/KirkDiggler/pokemon-tabletop-bot/internal/discord"
	"github.com/KirkDiggler/pokemon-tabletop-bot/internal/discord/middleware"
	"github.com/KirkDiggler/pokemon-tabletop-bot/internal/logging"
	"github.com/KirkDiggler/pokemon-tabletop-bot/internal/observe"
	"github.com/KirkDiggler/pokemon-tabletop-bot/internal/repositories/profiles"
	"github.com/KirkDiggler/pokemon-tabletop-bot/internal/services"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := logging.Init(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	defer func() { _ = logger.Sync() }()

	// Connect to Redis, the profile store is required
	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		logger.Fatal("failed to parse Redis URL", zap.Error(err))
	}
	redisClient := redis.NewClient(opts)
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("error closing Redis connection", zap.Error(err))
		}
	}()

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	err = redisClient.Ping(pingCtx).Err()
	cancel()
	if err != nil {
		logger.Fatal("failed to connect to Redis", zap.String("addr", opts.Addr), zap.Error(err))
	}
	logger.Info("connected to Redis", zap.String("addr", opts.Addr))

	metrics, shutdownMetrics, err := observe.InitProvider()
	if err != nil {
		logger.Fatal("failed to initialize metrics", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownMetrics(ctx)
	}()

	pokeClient, err := pokeapi.New(&pokeapi.Config{
		BaseURL:  cfg.PokeAPI.BaseURL,
		Timeout:  cfg.PokeAPI.Timeout,
		Observer: metrics,
	})
	if err != nil {
		logger.Fatal("failed to create PokeAPI client", zap.Error(err))
	}

	serviceProvider := services.NewProvider(&services.ProviderConfig{
		PokeAPIClient:     pokeClient,
		ProfileRepository: profiles.NewRedis(redisClient),
	})

	bot, err := discord.NewBot(&discord.BotConfig{
		ServiceProvider:    serviceProvider,
		Metrics:            metrics,
		RateLimitStore:     middleware.NewRedisRateLimitStore(redisClient),
		RateLimitPerMinute: cfg.RateLimit.PerMinute,
		Logger:             logger,
	})
	if err != nil {
		logger.Fatal("failed to create bot", zap.Error(err))
	}

	var metricsServer *observe.Server
	if cfg.Metrics.Addr != "" {
		health := observe.NewHealth(observe.Checker{
			Name:  "redis",
			Check: func(ctx context.Context) error { return redisClient.Ping(ctx).Err() },
		})
		metricsServer = observe.NewServer(cfg.Metrics.Addr, health, nil)
		if err := metricsServer.Start(); err != nil {
			logger.Fatal("failed to start metrics server", zap.Error(err))
		}
	}

	// Create Discord session
	dg, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		logger.Fatal("failed to create Discord session", zap.Error(err))
	}
	dg.AddHandler(bot.HandleInteraction)

	if err := dg.Open(); err != nil {
		logger.Error("failed to open Discord connection", zap.Error(err))
		return
	}
	defer func() {
		if err := dg.Close(); err != nil {
			logger.Warn("failed to close Discord connection", zap.Error(err))
		}
	}()

	// Use empty string for global commands, or set a specific guild ID for testing
	if err := bot.RegisterCommands(dg, cfg.Discord.GuildID); err != nil {
		logger.Error("failed to register commands", zap.Error(err))
		return
	}

	if cfg.Discord.GuildID != "" {
		logger.Info("registered guild commands", zap.String("guild_id", cfg.Discord.GuildID))
	} else {
		logger.Info("registered global commands (may take up to 1 hour to propagate)")
	}

	logger.Info("bot is now running, press CTRL-C to exit")

	// Wait for interrupt signal
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	logger.Info("shutting down")

	if metricsServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := metricsServer.Shutdown(ctx); err != nil {
			logger.Warn("metrics server shutdown", zap.Error(err))
		}
		cancel()
	}
}
