package usecase

import (
	"context"
	"log/slog"

	apperrors "github.com/allisson/gatekeeper/internal/errors"
	"github.com/allisson/gatekeeper/internal/gatekeeper/domain"
)

type gatekeeperUseCase struct {
	catalog  *domain.Catalog
	channels *domain.ChannelPolicy
	logger   *slog.Logger
}

// NewGatekeeperUseCase creates a GatekeeperUseCase for catalog. A nil channel policy
// permits every public channel.
func NewGatekeeperUseCase(
	catalog *domain.Catalog,
	channels *domain.ChannelPolicy,
	logger *slog.Logger,
) GatekeeperUseCase {
	if channels == nil {
		channels = domain.NewChannelPolicy(nil)
	}
	return &gatekeeperUseCase{
		catalog:  catalog,
		channels: channels,
		logger:   logger.With(slog.String("catalog", catalog.Name())),
	}
}

func (g *gatekeeperUseCase) CatalogName() string {
	return g.catalog.Name()
}

// ValidateOperation logs blocked writes at error level, unknown names at warn
// level and allowed reads at debug level.
func (g *gatekeeperUseCase) ValidateOperation(ctx context.Context, operation string) error {
	switch g.catalog.Classify(operation) {
	case domain.KindRead:
		g.logger.DebugContext(ctx, "read operation allowed", slog.String("operation", operation))
		return nil

	case domain.KindWrite:
		g.logger.ErrorContext(ctx, "blocked write operation",
			slog.String("operation", operation),
			slog.String("reason", string(domain.ReasonWriteOperation)))

	default:
		g.logger.WarnContext(ctx, "unknown operation blocked",
			slog.String("operation", operation),
			slog.String("reason", string(domain.ReasonUnknownOperation)),
			slog.String("hint", "add it to the read set if it is read-only"))
	}

	return g.catalog.Validate(operation)
}

func (g *gatekeeperUseCase) IsReadOperation(operation string) bool {
	return g.catalog.IsRead(operation)
}

func (g *gatekeeperUseCase) IsWriteOperation(operation string) bool {
	return g.catalog.IsWrite(operation)
}

func (g *gatekeeperUseCase) Classify(operation string) domain.Kind {
	return g.catalog.Classify(operation)
}

func (g *gatekeeperUseCase) ReadOperations() []string {
	return g.catalog.ReadOperations()
}

func (g *gatekeeperUseCase) WriteOperations() []string {
	return g.catalog.WriteOperations()
}

func (g *gatekeeperUseCase) ValidateQueryText(ctx context.Context, text string) error {
	if err := domain.ValidateQueryText(text); err != nil {
		g.logger.ErrorContext(ctx, "blocked graphql mutation", slog.Any("error", err))
		return err
	}
	return nil
}

func (g *gatekeeperUseCase) ValidateDocument(ctx context.Context, query string) error {
	err := domain.ValidateDocument(query)
	if err == nil {
		return nil
	}

	var violation *domain.ReadOnlyViolation
	if apperrors.As(err, &violation) {
		g.logger.ErrorContext(ctx, "blocked graphql operation", slog.String("operation", violation.Operation))
	} else {
		g.logger.WarnContext(ctx, "invalid graphql document", slog.Any("error", err))
	}
	return err
}

// FilterTools logs every dropped tool at warn level.
func (g *gatekeeperUseCase) FilterTools(ctx context.Context, tools []domain.Tool) []domain.Tool {
	allowed, dropped := domain.FilterTools(g.catalog, tools)
	for _, tool := range dropped {
		g.logger.WarnContext(ctx, "tool filtered out",
			slog.String("tool", tool.Name),
			slog.String("kind", string(g.catalog.Classify(tool.Name))))
	}
	return allowed
}

func (g *gatekeeperUseCase) ValidateChannelAccess(
	ctx context.Context,
	channelID string,
	channelType domain.ChannelType,
) error {
	if err := g.channels.Validate(channelID, channelType); err != nil {
		g.logger.WarnContext(ctx, "channel access denied",
			slog.String("channel_id", channelID),
			slog.String("channel_type", string(channelType)),
			slog.Any("error", err))
		return err
	}
	return nil
}
