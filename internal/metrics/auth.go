package metrics

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Authorization decision outcomes.
const (
	DecisionForwarded    = "forwarded"
	DecisionUnauthorized = "unauthorized"
	DecisionForbidden    = "forbidden"
	DecisionError        = "error"
)

// AuthDecisionRecorder counts request interceptor decisions by access class and outcome.
type AuthDecisionRecorder interface {
	RecordDecision(ctx context.Context, accessClass, outcome string)
}

type authDecisionRecorder struct {
	counter metric.Int64Counter
}

// NewAuthDecisionRecorder creates the "<namespace>_auth_decisions_total" counter.
func NewAuthDecisionRecorder(meterProvider metric.MeterProvider, namespace string) (AuthDecisionRecorder, error) {
	counter, err := meterProvider.Meter(namespace).Int64Counter(
		fmt.Sprintf("%s_auth_decisions_total", namespace),
		metric.WithDescription("Total number of request authorization decisions"),
		metric.WithUnit("{decision}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create auth decision counter: %w", err)
	}
	return &authDecisionRecorder{counter: counter}, nil
}

func (a *authDecisionRecorder) RecordDecision(ctx context.Context, accessClass, outcome string) {
	a.counter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("access_class", accessClass),
		attribute.String("outcome", outcome),
	))
}

// NoOpAuthDecisionRecorder discards every decision.
type NoOpAuthDecisionRecorder struct{}

// NewNoOpAuthDecisionRecorder creates a no-op AuthDecisionRecorder.
func NewNoOpAuthDecisionRecorder() AuthDecisionRecorder {
	return &NoOpAuthDecisionRecorder{}
}

func (n *NoOpAuthDecisionRecorder) RecordDecision(ctx context.Context, accessClass, outcome string) {}
