package commands_test

import (
	"context"
	"errors"
	"testing"

	"geodispatch/internal/core/application/usecases/commands"
	"geodispatch/internal/core/domain/model/assignment"
	"geodispatch/internal/core/domain/model/kernel"
	"geodispatch/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) SaveAssignment(ctx context.Context, record ports.OrderAssignmentRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) PublishAssignmentSubmitted(ctx context.Context, event ports.AssignmentSubmittedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func TestSubmitAssignmentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewSubmitAssignmentCommand(orderID, submittableResult(t), assignment.Delivery)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("SaveAssignment", mock.Anything, mock.AnythingOfType("ports.OrderAssignmentRecord")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	publisher.On("PublishAssignmentSubmitted", mock.Anything,
		mock.AnythingOfType("ports.AssignmentSubmittedEvent")).Return(nil).Once()

	h := commands.NewSubmitAssignmentCommandHandler(factory, publisher, nil)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	factory.AssertExpectations(t)
	uow.AssertExpectations(t)
	repo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestSubmitAssignmentCommandHandler_Handle_SaveFails(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewSubmitAssignmentCommand(kernel.NewUUID(), submittableResult(t), assignment.Delivery)
	require.NoError(t, err)

	boom := errors.New("draft order not found")
	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("SaveAssignment", mock.Anything, mock.Anything).Return(boom).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)

	h := commands.NewSubmitAssignmentCommandHandler(factory, publisher, nil)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, boom)
	publisher.AssertNotCalled(t, "PublishAssignmentSubmitted", mock.Anything, mock.Anything)
}

func TestSubmitAssignmentCommandHandler_Handle_PublishFailureIsSwallowed(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewSubmitAssignmentCommand(kernel.NewUUID(), submittableResult(t), assignment.Delivery)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("SaveAssignment", mock.Anything, mock.Anything).Return(nil).Once()
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	publisher.On("PublishAssignmentSubmitted", mock.Anything, mock.Anything).
		Return(errors.New("broker down")).Once()

	h := commands.NewSubmitAssignmentCommandHandler(factory, publisher, nil)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
}

func TestSubmitAssignmentCommandHandler_Handle_NilPublisher(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewSubmitAssignmentCommand(kernel.NewUUID(), submittableResult(t), assignment.Pickup)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("SaveAssignment", mock.Anything, mock.Anything).Return(nil).Once()
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitAssignmentCommandHandler(factory, nil, nil)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
}

func TestSubmitAssignmentCommandHandler_Handle_InvalidCommand(t *testing.T) {
	factory := new(MockOrderUoWFactory)

	h := commands.NewSubmitAssignmentCommandHandler(factory, nil, nil)
	err := h.Handle(t.Context(), commands.SubmitAssignmentCommand{})

	require.ErrorIs(t, err, commands.ErrSubmitAssignmentCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
