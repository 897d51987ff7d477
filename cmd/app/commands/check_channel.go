package commands

import (
	"context"
	"fmt"

	apperrors "github.com/allisson/gatekeeper/internal/errors"
	"github.com/allisson/gatekeeper/internal/gatekeeper/domain"
	"github.com/allisson/gatekeeper/internal/gatekeeper/usecase"
)

// RunCheckChannel reports whether a Slack channel may be read. A denied channel is
// printed and returned as an error.
func RunCheckChannel(
	ctx context.Context,
	guard usecase.GatekeeperUseCase,
	channelID string,
	channelType string,
	format string,
	io IOTuple,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	checkErr := guard.ValidateChannelAccess(ctx, channelID, domain.ChannelType(channelType))

	result := checkResult{
		Catalog: guard.CatalogName(),
		Input:   channelID,
		Kind:    channelType,
		Allowed: checkErr == nil,
	}
	if checkErr != nil {
		var denied *domain.ChannelAccessDenied
		if !apperrors.As(checkErr, &denied) {
			return fmt.Errorf("failed to validate channel: %w", checkErr)
		}
		result.Reason = "channel_access_denied"
		result.Message = denied.Error()
	}

	if err := printCheckResult(result, format, io); err != nil {
		return err
	}
	return checkErr
}
