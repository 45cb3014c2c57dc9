package metrics

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Recorder counts business events. A nil *Recorder is valid and records nothing.
type Recorder struct {
	postings    metric.Int64Counter
	volume      metric.Float64Counter
	transitions metric.Int64Counter
	emails      metric.Int64Counter
}

// NewRecorder creates the marketplace instruments on meter.
func NewRecorder(meter metric.Meter) (*Recorder, error) {
	postings, err := meter.Int64Counter("backma.ledger.postings",
		metric.WithDescription("Number of ledger postings by transaction type."))
	if err != nil {
		return nil, fmt.Errorf("could not create postings counter: %w", err)
	}
	volume, err := meter.Float64Counter("backma.ledger.volume",
		metric.WithDescription("Absolute amount moved by ledger postings."))
	if err != nil {
		return nil, fmt.Errorf("could not create volume counter: %w", err)
	}
	transitions, err := meter.Int64Counter("backma.purchase.transitions",
		metric.WithDescription("Number of purchase request status changes."))
	if err != nil {
		return nil, fmt.Errorf("could not create transitions counter: %w", err)
	}
	emails, err := meter.Int64Counter("backma.emails",
		metric.WithDescription("Number of email deliveries by template and outcome."))
	if err != nil {
		return nil, fmt.Errorf("could not create emails counter: %w", err)
	}

	return &Recorder{
		postings:    postings,
		volume:      volume,
		transitions: transitions,
		emails:      emails,
	}, nil
}

// LedgerPosted records one posting of the given type and amount.
func (r *Recorder) LedgerPosted(ctx context.Context, txType string, amount decimal.Decimal) {
	if r == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("type", txType))
	r.postings.Add(ctx, 1, attrs)
	r.volume.Add(ctx, amount.Abs().InexactFloat64(), attrs)
}

// PurchaseTransitioned records a purchase request moving to status to.
func (r *Recorder) PurchaseTransitioned(ctx context.Context, from, to string) {
	if r == nil {
		return
	}
	r.transitions.Add(ctx, 1, metric.WithAttributes(
		attribute.String("from", from),
		attribute.String("to", to),
	))
}

// EmailDelivered records the outcome of an email job.
func (r *Recorder) EmailDelivered(ctx context.Context, template, outcome string) {
	if r == nil {
		return
	}
	r.emails.Add(ctx, 1, metric.WithAttributes(
		attribute.String("template", template),
		attribute.String("outcome", outcome),
	))
}
