package commands_test

import (
	"testing"
	"time"

	"github.com/vudinhquy04/NovaTechApp/internal/core/application/usecases/commands"
	"github.com/vudinhquy04/NovaTechApp/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	existing := placedOrder(t, now)
	notes := "ordered by mistake"
	cmd, err := commands.NewCancelOrderCommand(existing.ID(), order.ChangedMind, &notes)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once(),
		repo.On("Update", mock.Anything, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory, fixedClock{now.Add(time.Hour)})
	cancelled, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, cancelled.Status())
	require.NotNil(t, cancelled.Cancellation())
	assert.Equal(t, order.ChangedMind, cancelled.Cancellation().Reason())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_AlreadyTerminal(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	existing := placedOrder(t, now)
	require.NoError(t, existing.Cancel(order.ChangedMind, nil, now.Add(time.Hour)))

	cmd, err := commands.NewCancelOrderCommand(existing.ID(), order.OtherReason, nil)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory, fixedClock{now.Add(2 * time.Hour)})
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrOrderAlreadyTerminal)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCancelOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CancelOrderCommand{} // not constructed properly
	factory := new(MockOrderUoWFactory)

	h := commands.NewCancelOrderCommandHandler(factory, fixedClock{time.Now()})
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}
