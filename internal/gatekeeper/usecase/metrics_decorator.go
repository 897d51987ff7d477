package usecase

import (
	"context"
	"time"

	apperrors "github.com/allisson/gatekeeper/internal/errors"
	"github.com/allisson/gatekeeper/internal/gatekeeper/domain"
	"github.com/allisson/gatekeeper/internal/metrics"
)

const metricsDomain = "gatekeeper"

// gatekeeperUseCaseWithMetrics decorates GatekeeperUseCase with metrics instrumentation.
type gatekeeperUseCaseWithMetrics struct {
	next    GatekeeperUseCase
	metrics metrics.BusinessMetrics
}

// NewGatekeeperUseCaseWithMetrics wraps a GatekeeperUseCase with metrics recording.
// Pure predicates (IsReadOperation, Classify, ...) are not recorded.
func NewGatekeeperUseCaseWithMetrics(useCase GatekeeperUseCase, m metrics.BusinessMetrics) GatekeeperUseCase {
	return &gatekeeperUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// record emits the operation counter, the duration histogram and, for read-only
// violations, the violation counter.
func (g *gatekeeperUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	g.metrics.RecordOperation(ctx, metricsDomain, operation, status)
	g.metrics.RecordDuration(ctx, metricsDomain, operation, time.Since(start), status)

	var violation *domain.ReadOnlyViolation
	if apperrors.As(err, &violation) {
		g.metrics.RecordViolation(ctx, g.next.CatalogName(), string(violation.Reason))
	}
}

func (g *gatekeeperUseCaseWithMetrics) CatalogName() string {
	return g.next.CatalogName()
}

func (g *gatekeeperUseCaseWithMetrics) ValidateOperation(ctx context.Context, operation string) error {
	start := time.Now()
	err := g.next.ValidateOperation(ctx, operation)
	g.record(ctx, "validate_operation", start, err)
	return err
}

func (g *gatekeeperUseCaseWithMetrics) IsReadOperation(operation string) bool {
	return g.next.IsReadOperation(operation)
}

func (g *gatekeeperUseCaseWithMetrics) IsWriteOperation(operation string) bool {
	return g.next.IsWriteOperation(operation)
}

func (g *gatekeeperUseCaseWithMetrics) Classify(operation string) domain.Kind {
	return g.next.Classify(operation)
}

func (g *gatekeeperUseCaseWithMetrics) ReadOperations() []string {
	return g.next.ReadOperations()
}

func (g *gatekeeperUseCaseWithMetrics) WriteOperations() []string {
	return g.next.WriteOperations()
}

func (g *gatekeeperUseCaseWithMetrics) ValidateQueryText(ctx context.Context, text string) error {
	start := time.Now()
	err := g.next.ValidateQueryText(ctx, text)
	g.record(ctx, "validate_query", start, err)
	return err
}

func (g *gatekeeperUseCaseWithMetrics) ValidateDocument(ctx context.Context, query string) error {
	start := time.Now()
	err := g.next.ValidateDocument(ctx, query)
	g.record(ctx, "validate_document", start, err)
	return err
}

func (g *gatekeeperUseCaseWithMetrics) FilterTools(ctx context.Context, tools []domain.Tool) []domain.Tool {
	start := time.Now()
	allowed := g.next.FilterTools(ctx, tools)
	g.record(ctx, "filter_tools", start, nil)
	return allowed
}

func (g *gatekeeperUseCaseWithMetrics) ValidateChannelAccess(
	ctx context.Context,
	channelID string,
	channelType domain.ChannelType,
) error {
	start := time.Now()
	err := g.next.ValidateChannelAccess(ctx, channelID, channelType)
	g.record(ctx, "validate_channel", start, err)
	return err
}
