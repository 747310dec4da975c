package handlers

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/pokemon-tabletop-bot/internal/discord/builders"
	"github.com/KirkDiggler/pokemon-tabletop-bot/internal/discord/commands"
	"github.com/KirkDiggler/pokemon-tabletop-bot/internal/discord/core"
	"github.com/KirkDiggler/pokemon-tabletop-bot/internal/domain/tabletop"
	"github.com/KirkDiggler/pokemon-tabletop-bot/internal/entities"
	"github.com/KirkDiggler/pokemon-tabletop-bot/internal/services/move"
)

// MoveHandler answers the move lookup commands
type MoveHandler struct {
	service move.Service
}

// MoveHandlerConfig holds the configuration
type MoveHandlerConfig struct {
	Service move.Service
}

// NewMoveHandler creates a new move handler
func NewMoveHandler(cfg *MoveHandlerConfig) (*MoveHandler, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if cfg.Service == nil {
		return nil, fmt.Errorf("move service is required")
	}

	return &MoveHandler{service: cfg.Service}, nil
}

// Convert handles /ttmove
func (h *MoveHandler) Convert(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	result, err := h.service.ConvertMove(ctx.Context, ctx.GetStringParam(commands.OptionMove))
	if err != nil {
		return nil, err
	}

	return &core.HandlerResult{
		Response: core.NewEmbedResponse(ConversionEmbed(result.Conversion)),
	}, nil
}

// Info handles /moveinfo and /movestatus
func (h *MoveHandler) Info(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	details, err := h.service.DescribeMove(ctx.Context, ctx.GetStringParam(commands.OptionMove))
	if err != nil {
		return nil, err
	}

	return &core.HandlerResult{
		Response: core.NewEmbedResponse(DetailsEmbed(details)),
	}, nil
}

// ConversionEmbed renders a tabletop conversion
func ConversionEmbed(conv *tabletop.Conversion) *discordgo.MessageEmbed {
	return builders.NewEmbed().
		Title("Table Top Converted Version: "+entities.DisplayName(conv.MoveName)).
		Color(builders.ColorOrange).
		Field("Table Top Formula", conv.Formula, false).
		Field("EP Cost", conv.EP.String(), false).
		Field("Move Category", conv.Category.String(), false).
		FieldIf(conv.Note != "", "Additional Info", conv.Note, false).
		Build()
}

// DetailsEmbed renders the raw provider fields of a move
func DetailsEmbed(details *tabletop.MoveDetails) *discordgo.MessageEmbed {
	return builders.InfoEmbed(details.Name, details.Description).
		Field("PP", details.PP, true).
		Field("Accuracy", details.Accuracy, true).
		Field("Power", details.Power, true).
		Field("Category", details.Category, true).
		Build()
}
