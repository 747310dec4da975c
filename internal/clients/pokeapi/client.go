package pokeapi

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/KirkDiggler/pokemon-tabletop-bot/internal/entities"
	pkerr "github.com/KirkDiggler/pokemon-tabletop-bot/internal/errors"
)

const (
	DefaultBaseURL = "https://pokeapi.co/api/v2"
	DefaultTimeout = 10 * time.Second
)

// Request outcomes reported to a RequestObserver
const (
	StatusOK       = "ok"
	StatusNotFound = "not_found"
	StatusError    = "error"
)

// RequestObserver is told about every provider round trip
type RequestObserver interface {
	ObserveProviderRequest(ctx context.Context, status string, duration time.Duration)
}

type Config struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *fasthttp.Client // Optional, mostly for tests
	Observer   RequestObserver  // Optional
}

type client struct {
	baseURL  string
	timeout  time.Duration
	http     *fasthttp.Client
	observer RequestObserver
}

func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, pkerr.InvalidArgument("pokeapi config is required")
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &fasthttp.Client{
			Name:            "pokemon-tabletop-bot",
			ReadTimeout:     timeout,
			WriteTimeout:    timeout,
			MaxConnsPerHost: 32,
		}
	}

	return &client{
		baseURL:  baseURL,
		timeout:  timeout,
		http:     httpClient,
		observer: cfg.Observer,
	}, nil
}

func (c *client) GetMove(ctx context.Context, name string) (*entities.Move, error) {
	if strings.TrimSpace(name) == "" {
		return nil, pkerr.InvalidArgument("move name is required")
	}

	var response apiMove
	status, err := c.getJSON(ctx, "/move/"+url.PathEscape(name), &response)
	if err != nil {
		return nil, pkerr.Unavailable(err, "pokeapi request failed").WithMeta("move", name)
	}

	switch {
	case status == fasthttp.StatusNotFound:
		return nil, pkerr.NotFoundf("move '%s' not found", name).WithMeta("move", name)
	case status < 200 || status >= 300:
		return nil, pkerr.Newf(pkerr.CodeUnavailable, "pokeapi returned status %d", status).
			WithMeta("move", name).
			WithMeta("status", status)
	}

	return apiMoveToMove(&response), nil
}

// getJSON performs a GET and decodes 2xx bodies into out. Non-2xx statuses are
// returned without an error so callers can map them.
func (c *client) getJSON(ctx context.Context, path string, out any) (status int, err error) {
	start := time.Now()
	defer func() {
		c.observe(ctx, status, err, time.Since(start))
	}()

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer func() {
		fasthttp.ReleaseRequest(req)
		fasthttp.ReleaseResponse(resp)
	}()

	req.Header.SetMethod(fasthttp.MethodGet)
	req.SetRequestURI(c.baseURL + path)
	req.Header.Set("Accept", "application/json")

	if err := c.http.DoDeadline(req, resp, c.deadline(ctx)); err != nil {
		return 0, err
	}

	status = resp.StatusCode()
	if status < 200 || status >= 300 {
		return status, nil
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return status, err
	}
	return status, nil
}

func (c *client) deadline(ctx context.Context) time.Time {
	clientDL := time.Now().Add(c.timeout)
	if dl, ok := ctx.Deadline(); ok && dl.Before(clientDL) {
		return dl
	}
	return clientDL
}

func (c *client) observe(ctx context.Context, status int, err error, d time.Duration) {
	if c.observer == nil {
		return
	}

	outcome := StatusOK
	switch {
	case err != nil:
		outcome = StatusError
	case status == fasthttp.StatusNotFound:
		outcome = StatusNotFound
	case status < 200 || status >= 300:
		outcome = StatusError
	}
	c.observer.ObserveProviderRequest(ctx, outcome, d)
}
