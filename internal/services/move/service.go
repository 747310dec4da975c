package move

//go:generate mockgen -destination=mock/mock_service.go -package=mockmove -source=service.go

import (
	"context"
	"strings"
	"unicode"

	"github.com/KirkDiggler/pokemon-tabletop-bot/internal/clients/pokeapi"
	"github.com/KirkDiggler/pokemon-tabletop-bot/internal/domain/tabletop"
	"github.com/KirkDiggler/pokemon-tabletop-bot/internal/entities"
	pkerr "github.com/KirkDiggler/pokemon-tabletop-bot/internal/errors"
)

// Service looks moves up and renders them for the tabletop game
type Service interface {
	// GetMove fetches a move by user-typed name
	GetMove(ctx context.Context, name string) (*entities.Move, error)

	// ConvertMove fetches a move and converts it to the tabletop format
	ConvertMove(ctx context.Context, name string) (*MoveConversion, error)

	// DescribeMove fetches a move and returns its raw provider fields for display
	DescribeMove(ctx context.Context, name string) (*tabletop.MoveDetails, error)
}

// MoveConversion pairs the provider move with its tabletop rendition
type MoveConversion struct {
	Move       *entities.Move
	Conversion *tabletop.Conversion
}

type service struct {
	client pokeapi.Client
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Client pokeapi.Client // Required
}

// NewService creates a new move service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil || cfg.Client == nil {
		panic("pokeapi client is required")
	}

	return &service{
		client: cfg.Client,
	}
}

// Normalize turns user input into the provider's identifier form:
// "  Thunder Punch " -> "thunder-punch", "quick_attack" -> "quick-attack"
func Normalize(name string) string {
	fields := strings.FieldsFunc(strings.ToLower(strings.TrimSpace(name)), func(r rune) bool {
		return unicode.IsSpace(r) || r == '_'
	})
	return strings.Join(fields, "-")
}

func (s *service) GetMove(ctx context.Context, name string) (*entities.Move, error) {
	normalized := Normalize(name)
	if normalized == "" {
		return nil, pkerr.Validationf("Please enter a move name.")
	}

	move, err := s.client.GetMove(ctx, normalized)
	if err != nil {
		return nil, pkerr.Wrapf(err, "failed to get move '%s'", name).WithMeta("move", name)
	}

	return move, nil
}

func (s *service) ConvertMove(ctx context.Context, name string) (*MoveConversion, error) {
	move, err := s.GetMove(ctx, name)
	if err != nil {
		return nil, err
	}

	return &MoveConversion{
		Move:       move,
		Conversion: tabletop.Convert(move),
	}, nil
}

func (s *service) DescribeMove(ctx context.Context, name string) (*tabletop.MoveDetails, error) {
	move, err := s.GetMove(ctx, name)
	if err != nil {
		return nil, err
	}

	return tabletop.DescribeMove(move), nil
}
