// Package commands describes the slash commands the bot exposes
package commands

import (
	_ "embed"
	"fmt"
	"regexp"

	"github.com/bwmarrin/discordgo"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/pokemon-tabletop-bot/internal/discord/builders"
	pkerr "github.com/KirkDiggler/pokemon-tabletop-bot/internal/errors"
)

// Command names
const (
	RegisterMoves = "registermoves"
	ViewMoves     = "viewmoves"
	ReplaceMoves  = "replacemoves"
	MoveInfo      = "moveinfo"
	MoveStatus    = "movestatus"
	TTMove        = "ttmove"
	HelpMenu      = "helpmenu"
)

// Option names
const (
	OptionMove = "move"
)

// MoveOptions are the four options of registermoves and replacemoves, in order
var MoveOptions = []string{"move1", "move2", "move3", "move4"}

//go:embed catalog.yaml
var catalogYAML []byte

// Discord's naming rule for commands and options
var namePattern = regexp.MustCompile(`^[a-z0-9_-]{1,32}$`)

type Option struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Required    bool   `yaml:"required"`
}

type Command struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Help        string   `yaml:"help"`
	Options     []Option `yaml:"options"`
}

// Catalog is the ordered list of commands
type Catalog struct {
	Commands []Command `yaml:"commands"`
}

// Load parses and validates a catalog document
func Load(data []byte) (*Catalog, error) {
	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, pkerr.WrapWithCode(err, pkerr.CodeInvalidArgument, "failed to parse command catalog")
	}

	if err := catalog.validate(); err != nil {
		return nil, err
	}

	return &catalog, nil
}

// MustLoad returns the embedded catalog and panics if it is broken
func MustLoad() *Catalog {
	catalog, err := Load(catalogYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded command catalog: %v", err))
	}
	return catalog
}

func (c *Catalog) validate() error {
	if len(c.Commands) == 0 {
		return pkerr.InvalidArgument("command catalog is empty")
	}

	seen := make(map[string]bool, len(c.Commands))
	for _, cmd := range c.Commands {
		if !namePattern.MatchString(cmd.Name) {
			return pkerr.InvalidArgumentf("invalid command name %q", cmd.Name)
		}
		if seen[cmd.Name] {
			return pkerr.InvalidArgumentf("duplicate command %q", cmd.Name)
		}
		seen[cmd.Name] = true

		if cmd.Description == "" || len(cmd.Description) > 100 {
			return pkerr.InvalidArgumentf("command %q needs a description of 1-100 characters", cmd.Name)
		}

		for _, opt := range cmd.Options {
			if !namePattern.MatchString(opt.Name) {
				return pkerr.InvalidArgumentf("invalid option name %q on command %q", opt.Name, cmd.Name)
			}
			if opt.Description == "" {
				return pkerr.InvalidArgumentf("option %q on command %q needs a description", opt.Name, cmd.Name)
			}
		}
	}

	return nil
}

// Names returns the command names in catalog order
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.Commands))
	for _, cmd := range c.Commands {
		names = append(names, cmd.Name)
	}
	return names
}

// ApplicationCommands converts the catalog into Discord command definitions
func (c *Catalog) ApplicationCommands() []*discordgo.ApplicationCommand {
	cmds := make([]*discordgo.ApplicationCommand, 0, len(c.Commands))
	for _, cmd := range c.Commands {
		appCmd := &discordgo.ApplicationCommand{
			Name:        cmd.Name,
			Description: cmd.Description,
		}
		for _, opt := range cmd.Options {
			appCmd.Options = append(appCmd.Options, &discordgo.ApplicationCommandOption{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        opt.Name,
				Description: opt.Description,
				Required:    opt.Required,
			})
		}
		cmds = append(cmds, appCmd)
	}
	return cmds
}

// HelpEmbed lists every command with its usage
func (c *Catalog) HelpEmbed() *discordgo.MessageEmbed {
	embed := builders.InfoEmbed("Pokémon Tabletop Bot Commands", "Here are the available commands:")
	for _, cmd := range c.Commands {
		help := cmd.Help
		if help == "" {
			help = cmd.Description
		}
		embed.Field("/"+cmd.Name+usage(cmd), help, false)
	}
	return embed.Build()
}

func usage(cmd Command) string {
	var out string
	for _, opt := range cmd.Options {
		if opt.Required {
			out += " <" + opt.Name + ">"
		} else {
			out += " [" + opt.Name + "]"
		}
	}
	return out
}
