package handlers

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/pokemon-tabletop-bot/internal/discord/builders"
	"github.com/KirkDiggler/pokemon-tabletop-bot/internal/discord/commands"
	"github.com/KirkDiggler/pokemon-tabletop-bot/internal/discord/core"
	"github.com/KirkDiggler/pokemon-tabletop-bot/internal/entities"
	"github.com/KirkDiggler/pokemon-tabletop-bot/internal/services/registry"
)

// EmptyMovesMessage is shown to users who never registered moves
const EmptyMovesMessage = "You have not registered any moves yet. Use /registermoves to register four moves."

// RegistryHandler answers the move registration commands
type RegistryHandler struct {
	service registry.Service
}

// RegistryHandlerConfig holds the configuration
type RegistryHandlerConfig struct {
	Service registry.Service
}

// NewRegistryHandler creates a new registry handler
func NewRegistryHandler(cfg *RegistryHandlerConfig) (*RegistryHandler, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if cfg.Service == nil {
		return nil, fmt.Errorf("registry service is required")
	}

	return &RegistryHandler{service: cfg.Service}, nil
}

// Register handles /registermoves
func (h *RegistryHandler) Register(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	profile, err := h.service.Register(ctx.Context, ctx.UserID, ctx.Username, moveParams(ctx))
	if err != nil {
		return nil, err
	}

	return savedResult("Moves registered", profile), nil
}

// Replace handles /replacemoves
func (h *RegistryHandler) Replace(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	profile, err := h.service.Replace(ctx.Context, ctx.UserID, ctx.Username, moveParams(ctx))
	if err != nil {
		return nil, err
	}

	return savedResult("Moves replaced", profile), nil
}

// View handles /viewmoves
func (h *RegistryHandler) View(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	list, err := h.service.View(ctx.Context, ctx.UserID)
	if err != nil {
		return nil, err
	}

	if list.Empty {
		return &core.HandlerResult{
			Response: core.NewEphemeralResponse(EmptyMovesMessage),
		}, nil
	}

	embed := builders.InfoEmbed(ctx.Username+"'s Registered Moves", numbered(list.Moves)).Build()
	return &core.HandlerResult{
		Response: core.NewEmbedResponse(embed),
	}, nil
}

func moveParams(ctx *core.InteractionContext) []string {
	names := make([]string, 0, len(commands.MoveOptions))
	for _, opt := range commands.MoveOptions {
		names = append(names, ctx.GetStringParam(opt))
	}
	return names
}

func savedResult(title string, profile *entities.UserMoveProfile) *core.HandlerResult {
	display := make([]string, 0, len(profile.RegisteredMoves))
	for _, name := range profile.RegisteredMoves {
		display = append(display, entities.DisplayName(name))
	}

	embed := builders.SuccessEmbed(title, numbered(display)).Build()
	return &core.HandlerResult{
		Response: core.NewEmbedResponse(embed),
	}
}

func numbered(names []string) string {
	var b strings.Builder
	for i, name := range names {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%d. %s", i+1, name)
	}
	return b.String()
}
