// Package discord wires the slash command surface onto the services
package discord

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/KirkDiggler/pokemon-tabletop-bot/internal/discord/commands"
	"github.com/KirkDiggler/pokemon-tabletop-bot/internal/discord/core"
	"github.com/KirkDiggler/pokemon-tabletop-bot/internal/discord/handlers"
	"github.com/KirkDiggler/pokemon-tabletop-bot/internal/discord/middleware"
	"github.com/KirkDiggler/pokemon-tabletop-bot/internal/logging"
	"github.com/KirkDiggler/pokemon-tabletop-bot/internal/services"
	"github.com/KirkDiggler/pokemon-tabletop-bot/internal/uuid"
)

// DefaultRateLimitPerMinute applies when BotConfig.RateLimitPerMinute is unset
const DefaultRateLimitPerMinute = 30

// Bot routes interactions through the middleware pipeline to the command handlers
type Bot struct {
	pipeline *core.Pipeline
	catalog  *commands.Catalog
	logger   *zap.Logger
}

// BotConfig holds the bot's collaborators
type BotConfig struct {
	ServiceProvider *services.Provider // Required

	// Optional, the embedded catalog when nil
	Catalog *commands.Catalog

	// Optional, interactions are not counted when nil
	Metrics middleware.MetricsCollector

	// Optional, in-memory when nil
	RateLimitStore     middleware.RateLimitStore
	RateLimitPerMinute int

	// Optional, uses the global logger when nil
	Logger *zap.Logger

	// Optional, random UUIDs when nil
	RequestIDs uuid.Generator

	// Optional, 2s when zero
	DeferAfter time.Duration

	// Optional, replies through the interaction API when nil
	ResponderFactory core.ResponderFactory
}

// NewBot builds the pipeline and registers every catalog command
func NewBot(cfg *BotConfig) (*Bot, error) {
	if cfg == nil || cfg.ServiceProvider == nil {
		return nil, fmt.Errorf("service provider is required")
	}

	catalog := cfg.Catalog
	if catalog == nil {
		catalog = commands.MustLoad()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.L()
	}

	perMinute := cfg.RateLimitPerMinute
	if perMinute <= 0 {
		perMinute = DefaultRateLimitPerMinute
	}

	deferCfg := middleware.DefaultDeferConfig()
	if cfg.DeferAfter > 0 {
		deferCfg.DeferAfter = cfg.DeferAfter
	}
	deferCfg.SkipDeferFor = []string{commands.HelpMenu}

	pipeline := core.NewPipeline()
	if cfg.ResponderFactory != nil {
		pipeline.SetResponderFactory(cfg.ResponderFactory)
	}
	pipeline.Use(
		middleware.RequestIDMiddleware(cfg.RequestIDs),
		middleware.RecoveryMiddleware(),
		middleware.LoggingMiddleware(logger),
		middleware.MetricsMiddleware(cfg.Metrics),
		middleware.DeferMiddleware(deferCfg),
		middleware.ErrorMiddleware(middleware.DefaultErrorConfig()),
		middleware.UserRateLimitMiddleware(perMinute, time.Minute, cfg.RateLimitStore),
	)

	moveHandler, err := handlers.NewMoveHandler(&handlers.MoveHandlerConfig{
		Service: cfg.ServiceProvider.MoveService,
	})
	if err != nil {
		return nil, err
	}

	registryHandler, err := handlers.NewRegistryHandler(&handlers.RegistryHandlerConfig{
		Service: cfg.ServiceProvider.RegistryService,
	})
	if err != nil {
		return nil, err
	}

	router := core.NewRouter(pipeline)
	router.
		CommandFunc(commands.RegisterMoves, registryHandler.Register).
		CommandFunc(commands.ReplaceMoves, registryHandler.Replace).
		CommandFunc(commands.ViewMoves, registryHandler.View).
		CommandFunc(commands.MoveInfo, moveHandler.Info).
		CommandFunc(commands.MoveStatus, moveHandler.Info).
		CommandFunc(commands.TTMove, moveHandler.Convert).
		Command(commands.HelpMenu, handlers.Help(catalog))

	for _, name := range catalog.Names() {
		if !slices.Contains(router.Commands(), name) {
			return nil, fmt.Errorf("command %q has no handler", name)
		}
	}

	router.Register()

	return &Bot{
		pipeline: pipeline,
		catalog:  catalog,
		logger:   logger,
	}, nil
}

// HandleInteraction is the discordgo event handler for interactions
func (b *Bot) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	if err := b.pipeline.Execute(context.Background(), s, i); err != nil {
		b.logger.Error("failed to handle interaction",
			zap.String("command", i.ApplicationCommandData().Name),
			zap.Error(err),
		)
	}
}

// RegisterCommands replaces the application's commands with the catalog.
// An empty guildID registers global commands.
func (b *Bot) RegisterCommands(s *discordgo.Session, guildID string) error {
	if s.State == nil || s.State.User == nil {
		return fmt.Errorf("session is not open")
	}

	cmds := b.catalog.ApplicationCommands()
	registered, err := s.ApplicationCommandBulkOverwrite(s.State.User.ID, guildID, cmds)
	if err != nil {
		return fmt.Errorf("failed to register commands: %w", err)
	}

	for _, cmd := range registered {
		b.logger.Info("registered command", zap.String("command", cmd.Name), zap.String("guild_id", guildID))
	}

	return nil
}
