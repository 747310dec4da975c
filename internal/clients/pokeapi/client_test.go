package pokeapi_test

import (
	"context"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttputil"

	"github.com/KirkDiggler/pokemon-tabletop-bot/internal/clients/pokeapi"
	"github.com/KirkDiggler/pokemon-tabletop-bot/internal/entities"
	pkerr "github.com/KirkDiggler/pokemon-tabletop-bot/internal/errors"
)

const doubleSlapJSON = `{
	"id": 3,
	"name": "double-slap",
	"accuracy": 85,
	"power": 15,
	"pp": 10,
	"effect_chance": null,
	"damage_class": {"name": "physical", "url": "https://pokeapi.co/api/v2/move-damage-class/2/"},
	"effect_entries": [{
		"effect": "Hits 2-5 times in one turn.",
		"short_effect": "Hits 2-5 times in one turn.",
		"language": {"name": "en", "url": "https://pokeapi.co/api/v2/language/9/"}
	}]
}`

const growlJSON = `{
	"id": 45,
	"name": "growl",
	"accuracy": 100,
	"power": null,
	"pp": 40,
	"damage_class": {"name": "status", "url": ""},
	"effect_entries": []
}`

type recordingObserver struct {
	mu       sync.Mutex
	statuses []string
}

func (o *recordingObserver) ObserveProviderRequest(_ context.Context, status string, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.statuses = append(o.statuses, status)
}

type ClientTestSuite struct {
	suite.Suite
	listener *fasthttputil.InmemoryListener
	client   pokeapi.Client
	observer *recordingObserver
	paths    []string
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) SetupTest() {
	s.paths = nil
	s.listener = fasthttputil.NewInmemoryListener()
	s.observer = &recordingObserver{}

	server := &fasthttp.Server{Handler: s.handle}
	go func() {
		_ = server.Serve(s.listener)
	}()

	client, err := pokeapi.New(&pokeapi.Config{
		BaseURL: "http://pokeapi.test/api/v2/",
		HTTPClient: &fasthttp.Client{
			Dial: func(addr string) (net.Conn, error) {
				return s.listener.Dial()
			},
		},
		Observer: s.observer,
	})
	s.Require().NoError(err)
	s.client = client
}

func (s *ClientTestSuite) TearDownTest() {
	_ = s.listener.Close()
}

func (s *ClientTestSuite) handle(ctx *fasthttp.RequestCtx) {
	path := string(ctx.Path())
	s.paths = append(s.paths, path)

	switch path {
	case "/api/v2/move/double-slap":
		ctx.SetContentType("application/json")
		ctx.SetBodyString(doubleSlapJSON)
	case "/api/v2/move/growl":
		ctx.SetContentType("application/json")
		ctx.SetBodyString(growlJSON)
	case "/api/v2/move/broken":
		ctx.SetContentType("application/json")
		ctx.SetBodyString(`{"name": `)
	case "/api/v2/move/outage":
		ctx.SetStatusCode(fasthttp.StatusBadGateway)
	default:
		ctx.SetStatusCode(fasthttp.StatusNotFound)
		ctx.SetBodyString("Not Found")
	}
}

func (s *ClientTestSuite) TestGetMove_HappyPath() {
	move, err := s.client.GetMove(context.Background(), "double-slap")
	s.Require().NoError(err)

	s.Equal("double-slap", move.Name)
	s.Equal(3, move.ID)
	s.Equal(entities.DamageClassPhysical, move.DamageClass)
	s.Require().NotNil(move.Power)
	s.Equal(15, *move.Power)
	s.Require().NotNil(move.Accuracy)
	s.Equal(85, *move.Accuracy)
	s.Nil(move.EffectChance)
	s.Require().Len(move.EffectEntries, 1)
	s.Equal("Hits 2-5 times in one turn.", move.EffectEntries[0].ShortEffect)
	s.Equal("en", move.EffectEntries[0].Language)
	s.Equal([]string{"/api/v2/move/double-slap"}, s.paths)
	s.Equal([]string{pokeapi.StatusOK}, s.observer.statuses)
}

func (s *ClientTestSuite) TestGetMove_NullPower() {
	move, err := s.client.GetMove(context.Background(), "growl")
	s.Require().NoError(err)

	s.Nil(move.Power)
	s.False(move.HasPower())
	s.Equal(entities.DamageClassStatus, move.DamageClass)
	s.Empty(move.EffectEntries)
}

func (s *ClientTestSuite) TestGetMove_NotFound() {
	_, err := s.client.GetMove(context.Background(), "splashh")
	s.Require().Error(err)

	s.True(pkerr.IsNotFound(err))
	s.Equal("splashh", pkerr.GetMeta(err)["move"])
	s.Equal([]string{pokeapi.StatusNotFound}, s.observer.statuses)
}

func (s *ClientTestSuite) TestGetMove_UpstreamFailure() {
	_, err := s.client.GetMove(context.Background(), "outage")
	s.Require().Error(err)
	s.True(pkerr.IsUnavailable(err))

	_, err = s.client.GetMove(context.Background(), "broken")
	s.Require().Error(err)
	s.True(pkerr.IsUnavailable(err))

	s.Equal([]string{pokeapi.StatusError, pokeapi.StatusError}, s.observer.statuses)
}

func (s *ClientTestSuite) TestGetMove_EmptyName() {
	_, err := s.client.GetMove(context.Background(), "  ")
	s.Require().Error(err)
	s.True(pkerr.IsInvalidArgument(err))
	s.Empty(s.paths)
}

func TestGetMove_TransportFailure(t *testing.T) {
	client, err := pokeapi.New(&pokeapi.Config{
		BaseURL: "http://pokeapi.test/api/v2",
		Timeout: time.Second,
		HTTPClient: &fasthttp.Client{
			Dial: func(addr string) (net.Conn, error) {
				return nil, &net.OpError{Op: "dial", Net: "tcp", Err: assert.AnError}
			},
		},
	})
	require.NoError(t, err)

	_, err = client.GetMove(context.Background(), "tackle")
	require.Error(t, err)
	assert.True(t, pkerr.IsUnavailable(err))
	assert.False(t, pkerr.IsNotFound(err))
}

func TestNew_RequiresConfig(t *testing.T) {
	_, err := pokeapi.New(nil)
	require.Error(t, err)
	assert.True(t, pkerr.IsInvalidArgument(err))
}
