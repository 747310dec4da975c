package registry

//go:generate mockgen -destination=mock/mock_service.go -package=mockregistry -source=service.go

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/pokemon-tabletop-bot/internal/entities"
	pkerr "github.com/KirkDiggler/pokemon-tabletop-bot/internal/errors"
	"github.com/KirkDiggler/pokemon-tabletop-bot/internal/repositories/profiles"
	"github.com/KirkDiggler/pokemon-tabletop-bot/internal/services/move"
)

// Repository is an alias for the profile repository interface
type Repository = profiles.Repository

// Service manages the four moves each user registers
type Service interface {
	// Register validates the names and stores them as the user's moves
	Register(ctx context.Context, userID, username string, names []string) (*entities.UserMoveProfile, error)

	// Replace overwrites the user's moves. Same semantics as Register.
	Replace(ctx context.Context, userID, username string, names []string) (*entities.UserMoveProfile, error)

	// View lists the user's moves as display names
	View(ctx context.Context, userID string) (*MoveList, error)
}

// MoveList is what View returns. Empty is set when the user never registered.
type MoveList struct {
	Empty bool
	Moves []string
}

type service struct {
	repository  Repository
	moveService move.Service
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository  Repository   // Required
	MoveService move.Service // Required
}

// NewService creates a new registry service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("registry config is required")
	}
	if cfg.Repository == nil {
		panic("repository is required")
	}
	if cfg.MoveService == nil {
		panic("move service is required")
	}

	return &service{
		repository:  cfg.Repository,
		moveService: cfg.MoveService,
	}
}

func (s *service) Register(ctx context.Context, userID, username string, names []string) (*entities.UserMoveProfile, error) {
	return s.upsert(ctx, userID, username, names)
}

func (s *service) Replace(ctx context.Context, userID, username string, names []string) (*entities.UserMoveProfile, error) {
	return s.upsert(ctx, userID, username, names)
}

// upsert writes nothing unless every name resolves
func (s *service) upsert(ctx context.Context, userID, username string, names []string) (*entities.UserMoveProfile, error) {
	if userID == "" {
		return nil, pkerr.InvalidArgument("user ID is required")
	}
	if len(names) != entities.RegisteredMoveCount {
		return nil, pkerr.Validationf("Please provide exactly %d moves.", entities.RegisteredMoveCount).
			WithMeta("count", len(names))
	}

	canonical, err := s.resolve(ctx, names)
	if err != nil {
		return nil, err
	}

	profile := &entities.UserMoveProfile{
		DiscordID:       userID,
		Username:        username,
		RegisteredMoves: canonical,
	}

	if err := s.repository.Upsert(ctx, profile); err != nil {
		return nil, pkerr.Wrapf(err, "failed to save moves for user '%s'", userID)
	}

	return profile, nil
}

// resolve looks every name up concurrently. Lookups are independent so one
// failure does not cancel the others; the first failure in argument order wins.
func (s *service) resolve(ctx context.Context, names []string) ([]string, error) {
	moves := make([]*entities.Move, len(names))
	errs := make([]error, len(names))

	var g errgroup.Group
	for i, name := range names {
		if move.Normalize(name) == "" {
			errs[i] = pkerr.Validationf("Move %d of %d is empty.", i+1, len(names))
			continue
		}
		g.Go(func() error {
			moves[i], errs[i] = s.moveService.GetMove(ctx, name)
			return nil
		})
	}
	_ = g.Wait()

	canonical := make([]string, len(names))
	for i, name := range names {
		if errs[i] != nil {
			return nil, pkerr.Wrapf(errs[i], "move %d of %d is invalid", i+1, len(names)).
				WithMeta("move", name).
				WithMeta("position", i+1)
		}
		canonical[i] = moves[i].Name
	}

	return canonical, nil
}

func (s *service) View(ctx context.Context, userID string) (*MoveList, error) {
	if userID == "" {
		return nil, pkerr.InvalidArgument("user ID is required")
	}

	profile, err := s.repository.Get(ctx, userID)
	if err != nil {
		if pkerr.IsNotFound(err) {
			return &MoveList{Empty: true}, nil
		}
		return nil, pkerr.Wrapf(err, "failed to load moves for user '%s'", userID)
	}

	if !profile.HasMoves() {
		return &MoveList{Empty: true}, nil
	}

	list := &MoveList{Moves: make([]string, 0, len(profile.RegisteredMoves))}
	for _, name := range profile.RegisteredMoves {
		list.Moves = append(list.Moves, entities.DisplayName(name))
	}

	return list, nil
}
