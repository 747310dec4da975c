package errors_test

import (
	stderrors "errors"
	"testing"

	pkerr "github.com/KirkDiggler/pokemon-tabletop-bot/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap_PreservesCodeAndMeta(t *testing.T) {
	base := pkerr.NotFoundf("move '%s' not found", "splashh").WithMeta("move", "splashh")

	wrapped := pkerr.Wrap(base, "failed to register moves")
	require.NotNil(t, wrapped)

	assert.Equal(t, pkerr.CodeNotFound, wrapped.Code)
	assert.True(t, pkerr.IsNotFound(wrapped))
	assert.Equal(t, "splashh", pkerr.GetMeta(wrapped)["move"])
	assert.Equal(t, "failed to register moves: move 'splashh' not found", wrapped.Error())

	// meta is copied, not shared
	wrapped.WithMeta("extra", true)
	_, shared := base.Meta["extra"]
	assert.False(t, shared)
}

func TestWrap_ForeignErrorIsUnknown(t *testing.T) {
	wrapped := pkerr.Wrap(stderrors.New("boom"), "context")
	assert.Equal(t, pkerr.CodeUnknown, pkerr.GetCode(wrapped))
	assert.Nil(t, pkerr.Wrap(nil, "nothing"))
	assert.Nil(t, pkerr.Wrapf(nil, "nothing %d", 1))
}

func TestUnavailable(t *testing.T) {
	cause := stderrors.New("dial tcp: i/o timeout")
	err := pkerr.Unavailable(cause, "pokeapi unreachable")

	assert.True(t, pkerr.IsUnavailable(err))
	assert.False(t, pkerr.IsNotFound(err))
	assert.ErrorIs(t, err, cause)
}

func TestGetCode_PlainError(t *testing.T) {
	assert.Equal(t, pkerr.CodeUnknown, pkerr.GetCode(stderrors.New("plain")))
	assert.True(t, pkerr.IsValidation(pkerr.Validationf("need %d moves", 4)))
	assert.True(t, pkerr.IsInvalidArgument(pkerr.InvalidArgument("empty id")))
}
