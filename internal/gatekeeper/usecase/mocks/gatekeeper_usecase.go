// Package mocks provides testify mock implementations of the gatekeeper use cases.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/allisson/gatekeeper/internal/gatekeeper/domain"
	"github.com/allisson/gatekeeper/internal/gatekeeper/usecase"
)

// MockGatekeeperUseCase is a mock implementation of GatekeeperUseCase.
type MockGatekeeperUseCase struct {
	mock.Mock
}

func (m *MockGatekeeperUseCase) CatalogName() string {
	return m.Called().String(0)
}

func (m *MockGatekeeperUseCase) ValidateOperation(ctx context.Context, operation string) error {
	return m.Called(ctx, operation).Error(0)
}

func (m *MockGatekeeperUseCase) IsReadOperation(operation string) bool {
	return m.Called(operation).Bool(0)
}

func (m *MockGatekeeperUseCase) IsWriteOperation(operation string) bool {
	return m.Called(operation).Bool(0)
}

func (m *MockGatekeeperUseCase) Classify(operation string) domain.Kind {
	return m.Called(operation).Get(0).(domain.Kind)
}

func (m *MockGatekeeperUseCase) ReadOperations() []string {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}

func (m *MockGatekeeperUseCase) WriteOperations() []string {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}

func (m *MockGatekeeperUseCase) ValidateQueryText(ctx context.Context, text string) error {
	return m.Called(ctx, text).Error(0)
}

func (m *MockGatekeeperUseCase) ValidateDocument(ctx context.Context, query string) error {
	return m.Called(ctx, query).Error(0)
}

func (m *MockGatekeeperUseCase) FilterTools(ctx context.Context, tools []domain.Tool) []domain.Tool {
	args := m.Called(ctx, tools)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.Tool)
}

func (m *MockGatekeeperUseCase) ValidateChannelAccess(
	ctx context.Context,
	channelID string,
	channelType domain.ChannelType,
) error {
	return m.Called(ctx, channelID, channelType).Error(0)
}

// MockGatekeepers is a mock implementation of Gatekeepers.
type MockGatekeepers struct {
	mock.Mock
}

func (m *MockGatekeepers) Get(catalog string) (usecase.GatekeeperUseCase, error) {
	args := m.Called(catalog)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(usecase.GatekeeperUseCase), args.Error(1)
}

func (m *MockGatekeepers) Names() []string {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}
