package services

import (
	"github.com/KirkDiggler/pokemon-tabletop-bot/internal/clients/pokeapi"
	"github.com/KirkDiggler/pokemon-tabletop-bot/internal/repositories/profiles"
	moveService "github.com/KirkDiggler/pokemon-tabletop-bot/internal/services/move"
	registryService "github.com/KirkDiggler/pokemon-tabletop-bot/internal/services/registry"
)

// Provider holds all service instances
type Provider struct {
	MoveService     moveService.Service
	RegistryService registryService.Service
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	PokeAPIClient     pokeapi.Client      // Required
	ProfileRepository profiles.Repository // Optional, in-memory when nil
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	if cfg == nil || cfg.PokeAPIClient == nil {
		panic("pokeapi client is required")
	}

	profileRepo := cfg.ProfileRepository
	if profileRepo == nil {
		profileRepo = profiles.NewInMemoryRepository()
	}

	moves := moveService.NewService(&moveService.ServiceConfig{
		Client: cfg.PokeAPIClient,
	})

	registry := registryService.NewService(&registryService.ServiceConfig{
		Repository:  profileRepo,
		MoveService: moves,
	})

	return &Provider{
		MoveService:     moves,
		RegistryService: registry,
	}
}
