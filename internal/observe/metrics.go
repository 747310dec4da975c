// Package observe provides the bot's metrics instruments, the Prometheus
// bridge that exposes them and the health endpoints served next to it.
//
// Tests should build [Metrics] with [NewMetrics] over their own
// [metric.MeterProvider] to avoid sharing state through the global provider.
package observe

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// meterName is the instrumentation scope for all bot metrics
const meterName = "github.com/KirkDiggler/pokemon-tabletop-bot"

// Metrics holds the OpenTelemetry instruments. Safe for concurrent use.
type Metrics struct {
	// Interactions counts handled slash commands. Attributes: command, outcome.
	Interactions metric.Int64Counter

	// InteractionErrors counts failed slash commands. Attributes: command, code.
	InteractionErrors metric.Int64Counter

	// InteractionDuration tracks handler latency in seconds. Attribute: command.
	InteractionDuration metric.Float64Histogram

	// ProviderRequests counts move provider round trips. Attribute: status.
	ProviderRequests metric.Int64Counter

	// ProviderDuration tracks move provider latency in seconds
	ProviderDuration metric.Float64Histogram
}

// latencyBuckets in seconds. Discord expects an acknowledgement within 3s.
var latencyBuckets = []float64{
	0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 3, 5, 10,
}

// NewMetrics creates all instruments on the given provider
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	m := mp.Meter(meterName)
	var err error
	met := &Metrics{}

	if met.Interactions, err = m.Int64Counter("pokebot.interactions",
		metric.WithDescription("Total slash command interactions by command and outcome."),
	); err != nil {
		return nil, err
	}
	if met.InteractionErrors, err = m.Int64Counter("pokebot.interaction.errors",
		metric.WithDescription("Total failed interactions by command and error code."),
	); err != nil {
		return nil, err
	}
	if met.InteractionDuration, err = m.Float64Histogram("pokebot.interaction.duration",
		metric.WithDescription("Latency of slash command handling."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}
	if met.ProviderRequests, err = m.Int64Counter("pokebot.provider.requests",
		metric.WithDescription("Total move provider requests by status."),
	); err != nil {
		return nil, err
	}
	if met.ProviderDuration, err = m.Float64Histogram("pokebot.provider.duration",
		metric.WithDescription("Latency of move provider requests."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}

	return met, nil
}

// RecordInteraction records one handled command. An empty code means success.
func (m *Metrics) RecordInteraction(ctx context.Context, command, code string, d time.Duration) {
	outcome := "ok"
	if code != "" {
		outcome = "error"
		m.InteractionErrors.Add(ctx, 1, metric.WithAttributes(
			attribute.String("command", command),
			attribute.String("code", code),
		))
	}

	m.Interactions.Add(ctx, 1, metric.WithAttributes(
		attribute.String("command", command),
		attribute.String("outcome", outcome),
	))
	m.InteractionDuration.Record(ctx, d.Seconds(), metric.WithAttributes(
		attribute.String("command", command),
	))
}

// ObserveProviderRequest records one move provider round trip
func (m *Metrics) ObserveProviderRequest(ctx context.Context, status string, d time.Duration) {
	m.ProviderRequests.Add(ctx, 1, metric.WithAttributes(attribute.String("status", status)))
	m.ProviderDuration.Record(ctx, d.Seconds())
}
