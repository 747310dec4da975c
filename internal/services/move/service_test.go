package move_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mockpokeapi "github.com/KirkDiggler/pokemon-tabletop-bot/internal/clients/pokeapi/mock"
	"github.com/KirkDiggler/pokemon-tabletop-bot/internal/entities"
	pkerr "github.com/KirkDiggler/pokemon-tabletop-bot/internal/errors"
	"github.com/KirkDiggler/pokemon-tabletop-bot/internal/services/move"
	"github.com/KirkDiggler/pokemon-tabletop-bot/internal/testutils"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "thunderbolt", expected: "thunderbolt"},
		{input: "  Thunder Punch ", expected: "thunder-punch"},
		{input: "QUICK_ATTACK", expected: "quick-attack"},
		{input: "will  o\twisp", expected: "will-o-wisp"},
		{input: "double-edge", expected: "double-edge"},
		{input: "   ", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, move.Normalize(tt.input))
		})
	}
}

func TestService_ConvertMove(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mockpokeapi.NewMockClient(ctrl)
	svc := move.NewService(&move.ServiceConfig{Client: client})

	vineWhip := testutils.CreateTestMove("vine-whip", entities.DamageClassPhysical, 45, "Inflicts regular damage.")
	client.EXPECT().GetMove(gomock.Any(), "vine-whip").Return(vineWhip, nil)

	result, err := svc.ConvertMove(context.Background(), "Vine Whip")
	require.NoError(t, err)

	assert.Same(t, vineWhip, result.Move)
	assert.Equal(t, "d5 + ATK", result.Conversion.Formula)
	assert.Equal(t, 1, result.Conversion.EP.Points)
	assert.Equal(t, entities.CategoryStandard, result.Conversion.Category)
}

func TestService_DescribeMove(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mockpokeapi.NewMockClient(ctrl)
	svc := move.NewService(&move.ServiceConfig{Client: client})

	growl := testutils.CreateTestStatusMove("growl", 40, "Lowers the target's Attack by one stage.")
	client.EXPECT().GetMove(gomock.Any(), "growl").Return(growl, nil)

	details, err := svc.DescribeMove(context.Background(), "growl")
	require.NoError(t, err)

	assert.Equal(t, "Growl", details.Name)
	assert.Equal(t, "40", details.PP)
	assert.Equal(t, "Status", details.Category)
}

func TestService_ErrorsKeepTheirCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mockpokeapi.NewMockClient(ctrl)
	svc := move.NewService(&move.ServiceConfig{Client: client})

	client.EXPECT().GetMove(gomock.Any(), "splashh").
		Return(nil, pkerr.NotFoundf("move 'splashh' not found"))
	_, err := svc.ConvertMove(context.Background(), "splashh")
	assert.True(t, pkerr.IsNotFound(err))
	assert.Equal(t, "splashh", pkerr.GetMeta(err)["move"])

	client.EXPECT().GetMove(gomock.Any(), "tackle").
		Return(nil, pkerr.Unavailable(assert.AnError, "pokeapi request failed"))
	_, err = svc.DescribeMove(context.Background(), "tackle")
	assert.True(t, pkerr.IsUnavailable(err))
}

func TestService_EmptyName(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mockpokeapi.NewMockClient(ctrl)
	svc := move.NewService(&move.ServiceConfig{Client: client})

	_, err := svc.GetMove(context.Background(), "  ")
	assert.True(t, pkerr.IsValidation(err))
}

func TestNewService_RequiresClient(t *testing.T) {
	assert.Panics(t, func() {
		move.NewService(&move.ServiceConfig{})
	})
}
