package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mockpokeapi "github.com/KirkDiggler/pokemon-tabletop-bot/internal/clients/pokeapi/mock"
	"github.com/KirkDiggler/pokemon-tabletop-bot/internal/entities"
	"github.com/KirkDiggler/pokemon-tabletop-bot/internal/services"
	"github.com/KirkDiggler/pokemon-tabletop-bot/internal/testutils"
)

func TestNewProvider_DefaultsToInMemoryProfiles(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mockpokeapi.NewMockClient(ctrl)
	client.EXPECT().GetMove(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, name string) (*entities.Move, error) {
			return testutils.CreateTestMove(name, entities.DamageClassPhysical, 50, ""), nil
		}).Times(4)

	provider := services.NewProvider(&services.ProviderConfig{PokeAPIClient: client})
	require.NotNil(t, provider.MoveService)
	require.NotNil(t, provider.RegistryService)

	ctx := context.Background()
	_, err := provider.RegistryService.Register(ctx, "user-1", "ash", []string{"tackle", "ember", "growl", "leer"})
	require.NoError(t, err)

	list, err := provider.RegistryService.View(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"Tackle", "Ember", "Growl", "Leer"}, list.Moves)
}

func TestNewProvider_RequiresClient(t *testing.T) {
	assert.Panics(t, func() {
		services.NewProvider(&services.ProviderConfig{})
	})
}
