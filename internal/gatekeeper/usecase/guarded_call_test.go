package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "github.com/allisson/gatekeeper/internal/errors"
	"github.com/allisson/gatekeeper/internal/gatekeeper/domain"
	"github.com/allisson/gatekeeper/internal/gatekeeper/usecase"
	usecaseMocks "github.com/allisson/gatekeeper/internal/gatekeeper/usecase/mocks"
)

type boardQuery struct {
	BoardID int
}

func TestGuardedCall(t *testing.T) {
	ctx := context.Background()
	guard := usecase.NewGatekeeperUseCase(domain.MondayCatalog, nil, newTestLogger(io.Discard))

	t.Run("Success_ReadInvokesFn", func(t *testing.T) {
		var buf bytes.Buffer
		calls := 0
		fn := func(_ context.Context, q boardQuery) (string, error) {
			calls++
			assert.Equal(t, 42, q.BoardID)
			return "board-42", nil
		}

		res, err := usecase.GuardedCall(ctx, guard, newTestLogger(&buf),
			"mcp_monday-mcp_get_board_info", fn, boardQuery{BoardID: 42})

		assert.NoError(t, err)
		assert.Equal(t, "board-42", res)
		assert.Equal(t, 1, calls)
		assert.Contains(t, buf.String(), "executing read-only operation")
	})

	t.Run("Success_FnErrorPassesThrough", func(t *testing.T) {
		fnErr := errors.New("upstream unavailable")
		fn := func(context.Context, boardQuery) (string, error) { return "", fnErr }

		_, err := usecase.GuardedCall(ctx, guard, nil, "mcp_monday-mcp_search", fn, boardQuery{})

		assert.ErrorIs(t, err, fnErr)
	})

	blocked := []string{"mcp_monday-mcp_create_item", "mcp_monday-mcp_unknown_tool", ""}
	for _, op := range blocked {
		t.Run("Error_NeverInvokes_"+op, func(t *testing.T) {
			calls := 0
			fn := func(context.Context, boardQuery) (*string, error) {
				calls++
				s := "should not run"
				return &s, nil
			}

			res, err := usecase.GuardedCall(ctx, guard, nil, op, fn, boardQuery{})

			assert.ErrorIs(t, err, apperrors.ErrReadOnlyViolation)
			assert.Nil(t, res)
			assert.Equal(t, 0, calls)
		})
	}

	t.Run("Success_PassesContext", func(t *testing.T) {
		type ctxKey struct{}
		valueCtx := context.WithValue(ctx, ctxKey{}, "v")
		mockGuard := &usecaseMocks.MockGatekeeperUseCase{}
		mockGuard.On("ValidateOperation", valueCtx, "op").Return(nil).Once()

		res, err := usecase.GuardedCall(valueCtx, mockGuard, nil, "op",
			func(c context.Context, _ struct{}) (any, error) { return c.Value(ctxKey{}), nil }, struct{}{})

		assert.NoError(t, err)
		assert.Equal(t, "v", res)
		mockGuard.AssertExpectations(t)
	})

	t.Run("Error_MockGuardRefuses", func(t *testing.T) {
		mockGuard := &usecaseMocks.MockGatekeeperUseCase{}
		mockGuard.On("ValidateOperation", mock.Anything, "op").
			Return(domain.NewReadOnlyViolation("op", domain.ReasonWriteOperation)).
			Once()

		res, err := usecase.GuardedCall(ctx, mockGuard, nil, "op",
			func(context.Context, int) (int, error) { return 7, nil }, 1)

		assert.ErrorIs(t, err, apperrors.ErrReadOnlyViolation)
		assert.Zero(t, res)
		mockGuard.AssertExpectations(t)
	})
}
