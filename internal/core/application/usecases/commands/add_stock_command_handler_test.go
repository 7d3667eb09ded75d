package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"effdel/internal/core/application/usecases/commands"
	"effdel/internal/core/domain/model/product"
	"effdel/internal/core/domain/model/stock"
	"effdel/internal/core/domain/services"
	"effdel/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Get(ctx context.Context, id string) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) GetAll(ctx context.Context) ([]*product.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

func (m *MockProductRepository) GetAllBySubCategory(ctx context.Context, subCategoryID string) ([]*product.Product, error) {
	args := m.Called(ctx, subCategoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

func (m *MockProductRepository) IncrementInventory(ctx context.Context, id string, units int) (int, error) {
	args := m.Called(ctx, id, units)
	return args.Int(0), args.Error(1)
}

type MockRequestRepository struct{ mock.Mock }

func (m *MockRequestRepository) Add(ctx context.Context, request *stock.Request) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockRequestRepository) Update(ctx context.Context, request *stock.Request) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockRequestRepository) GetByRequestID(ctx context.Context, requestID string) (*stock.Request, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stock.Request), args.Error(1)
}

func (m *MockRequestRepository) GetAllByStatus(ctx context.Context, status stock.RequestStatus) ([]*stock.Request, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*stock.Request), args.Error(1)
}

type MockAdditionLog struct{ mock.Mock }

func (m *MockAdditionLog) Append(ctx context.Context, addition stock.Addition) error {
	args := m.Called(ctx, addition)
	return args.Error(0)
}

func (m *MockAdditionLog) GetAllByProduct(ctx context.Context, productID string) ([]stock.Addition, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]stock.Addition), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newAddStockHandler(
	products *MockProductRepository,
	requests *MockRequestRepository,
	additions *MockAdditionLog,
) commands.AddStockCommandHandler {
	return commands.NewAddStockCommandHandler(
		products,
		requests,
		additions,
		services.NewStockReconciler(),
		discardLogger(),
	)
}

func TestAddStockCommandHandler_Handle_Matched(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAddStockCommand("prod-1", "req-1", 50)
	require.NoError(t, err)

	request, err := stock.NewRequest("req-1", "prod-1", 50)
	require.NoError(t, err)

	products := new(MockProductRepository)
	requests := new(MockRequestRepository)
	additions := new(MockAdditionLog)
	mock.InOrder(
		products.On("IncrementInventory", ctx, "prod-1", 50).Return(150, nil).Once(),
		requests.On("GetByRequestID", ctx, "req-1").Return(request, nil).Once(),
		requests.On("Update", ctx, request).Return(nil).Once(),
		additions.On("Append", ctx, mock.AnythingOfType("stock.Addition")).Return(nil).Once(),
	)

	h := newAddStockHandler(products, requests, additions)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, 150, result.NewInventory)
	require.Equal(t, stock.RequestMatched, result.RequestStatus)
	require.Equal(t, stock.RequestMatched, request.Status())
	products.AssertExpectations(t)
	requests.AssertExpectations(t)
	additions.AssertExpectations(t)
}

func TestAddStockCommandHandler_Handle_Unmatched(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAddStockCommand("prod-1", "req-1", 30)
	require.NoError(t, err)

	request, err := stock.NewRequest("req-1", "prod-1", 50)
	require.NoError(t, err)

	products := new(MockProductRepository)
	requests := new(MockRequestRepository)
	additions := new(MockAdditionLog)
	mock.InOrder(
		products.On("IncrementInventory", ctx, "prod-1", 30).Return(30, nil).Once(),
		requests.On("GetByRequestID", ctx, "req-1").Return(request, nil).Once(),
		requests.On("Update", ctx, request).Return(nil).Once(),
		additions.On("Append", ctx, mock.AnythingOfType("stock.Addition")).Return(nil).Once(),
	)

	h := newAddStockHandler(products, requests, additions)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, stock.RequestUnmatched, result.RequestStatus)
	require.Equal(t, 30, request.FulfilledUnits())
	products.AssertExpectations(t)
	requests.AssertExpectations(t)
	additions.AssertExpectations(t)
}

func TestAddStockCommandHandler_Handle_UnknownRequestLeavesInventoryIncremented(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAddStockCommand("prod-1", "req-missing", 50)
	require.NoError(t, err)

	products := new(MockProductRepository)
	requests := new(MockRequestRepository)
	additions := new(MockAdditionLog)
	mock.InOrder(
		products.On("IncrementInventory", ctx, "prod-1", 50).Return(50, nil).Once(),
		requests.On("GetByRequestID", ctx, "req-missing").
			Return(nil, errs.NewObjectNotFoundError("request id", "req-missing")).Once(),
	)

	h := newAddStockHandler(products, requests, additions)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	// The increment was already committed; no compensation happens.
	products.AssertExpectations(t)
	requests.AssertExpectations(t)
	additions.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestAddStockCommandHandler_Handle_IncrementFailureIsInternal(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAddStockCommand("prod-1", "req-1", 50)
	require.NoError(t, err)

	products := new(MockProductRepository)
	requests := new(MockRequestRepository)
	additions := new(MockAdditionLog)
	products.On("IncrementInventory", ctx, "prod-1", 50).
		Return(0, errors.New("connection refused")).Once()

	h := newAddStockHandler(products, requests, additions)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInternal)
	// The generic message must not leak the infrastructure detail.
	require.Equal(t, "internal error", err.Error())
	requests.AssertNotCalled(t, "GetByRequestID", mock.Anything, mock.Anything)
}

func TestAddStockCommandHandler_Handle_AuditAppendFailureIsInternal(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAddStockCommand("prod-1", "req-1", 50)
	require.NoError(t, err)

	request, err := stock.NewRequest("req-1", "prod-1", 50)
	require.NoError(t, err)

	products := new(MockProductRepository)
	requests := new(MockRequestRepository)
	additions := new(MockAdditionLog)
	mock.InOrder(
		products.On("IncrementInventory", ctx, "prod-1", 50).Return(50, nil).Once(),
		requests.On("GetByRequestID", ctx, "req-1").Return(request, nil).Once(),
		requests.On("Update", ctx, request).Return(nil).Once(),
		additions.On("Append", ctx, mock.AnythingOfType("stock.Addition")).
			Return(errors.New("disk full")).Once(),
	)

	h := newAddStockHandler(products, requests, additions)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInternal)
	products.AssertExpectations(t)
	requests.AssertExpectations(t)
	additions.AssertExpectations(t)
}

func TestNewAddStockCommand_Invalid(t *testing.T) {
	t.Run("missing product ID", func(t *testing.T) {
		_, err := commands.NewAddStockCommand("", "req-1", 50)
		require.ErrorIs(t, err, commands.ErrProductIDIsRequired)
	})

	t.Run("missing request ID", func(t *testing.T) {
		_, err := commands.NewAddStockCommand("prod-1", "", 50)
		require.ErrorIs(t, err, commands.ErrRequestIDIsRequired)
	})

	t.Run("non-positive units", func(t *testing.T) {
		_, err := commands.NewAddStockCommand("prod-1", "req-1", 0)
		require.ErrorIs(t, err, commands.ErrUnitsAreInvalid)
	})

	t.Run("zero value command fails validation", func(t *testing.T) {
		cmd := commands.AddStockCommand{}
		require.ErrorIs(t, cmd.Validate(), commands.ErrAddStockCommandIsNotConstructed)
	})
}
