package handlers

import (
	"github.com/KirkDiggler/pokemon-tabletop-bot/internal/discord/commands"
	"github.com/KirkDiggler/pokemon-tabletop-bot/internal/discord/core"
)

// Help returns the /helpmenu handler for a catalog
func Help(catalog *commands.Catalog) core.HandlerFunc {
	embed := catalog.HelpEmbed()

	return func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
		return &core.HandlerResult{
			Response: core.NewEmbedResponse(embed).AsEphemeral(),
		}, nil
	}
}
