package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
)

// MockManager stands in for the transaction manager.
type MockManager struct {
	mock.Mock
}

func (m *MockManager) Do(ctx context.Context, fn func(context.Context) error) error {
	args := m.Called(ctx, fn)
	if rf, ok := args.Get(0).(func(context.Context, func(context.Context) error) error); ok {
		return rf(ctx, fn)
	}
	return args.Error(0)
}

// NewPassthroughManager returns a MockManager that runs fn once with ctx and
// returns its error, like a real manager whose commit always succeeds.
// Tests that never open a transaction may use it too.
func NewPassthroughManager(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockManager {
	m := &MockManager{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	m.On("Do", mock.Anything, mock.AnythingOfType("func(context.Context) error")).
		Return(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).
		Maybe()

	return m
}
