package commands_test

import (
	"context"
	"testing"

	"geodispatch/internal/core/application/usecases/commands"
	"geodispatch/internal/core/domain/model/branch"
	"geodispatch/internal/core/domain/model/kernel"
	"geodispatch/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBranchRepository struct{ mock.Mock }

func (m *MockBranchRepository) Add(ctx context.Context, b *branch.Branch) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBranchRepository) Update(ctx context.Context, b *branch.Branch) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBranchRepository) Get(ctx context.Context, id kernel.UUID) (*branch.Branch, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*branch.Branch), args.Error(1)
}

func (m *MockBranchRepository) GetAllAccepting(ctx context.Context, partnerID kernel.UUID) ([]*branch.Branch, error) {
	args := m.Called(ctx, partnerID)
	return args.Get(0).([]*branch.Branch), args.Error(1)
}

func (m *MockBranchRepository) GetAllMissingCoordinate(ctx context.Context) ([]*branch.Branch, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*branch.Branch), args.Error(1)
}

type MockBranchUoW struct{ mock.Mock }

func (m *MockBranchUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockBranchUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockBranchUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockBranchUoW) BranchRepository() ports.BranchRepository {
	args := m.Called()
	return args.Get(0).(ports.BranchRepository)
}

type MockBranchUoWFactory struct{ mock.Mock }

func (m *MockBranchUoWFactory) Create() commands.BranchUoW {
	args := m.Called()
	return args.Get(0).(commands.BranchUoW)
}

type MockGeocodingClient struct{ mock.Mock }

func (m *MockGeocodingClient) Geocode(ctx context.Context, addressText string) (ports.GeocodedAddress, error) {
	args := m.Called(ctx, addressText)
	return args.Get(0).(ports.GeocodedAddress), args.Error(1)
}

func (m *MockGeocodingClient) ReverseGeocode(ctx context.Context, point kernel.Coordinate) (string, error) {
	args := m.Called(ctx, point)
	return args.String(0), args.Error(1)
}

func pendingBranch(t *testing.T, address string) *branch.Branch {
	t.Helper()
	b, err := branch.NewBranch(kernel.NewUUID(), kernel.NewUUID(), "Pending", address, true)
	require.NoError(t, err)
	return b
}

func TestRefreshBranchCoordinatesCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	pending := pendingBranch(t, "12 Chorsu street")

	repo := new(MockBranchRepository)
	uow := new(MockBranchUoW)
	geocoder := new(MockGeocodingClient)

	point := mustCoordinate(t, 41.32, 69.23)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BranchRepository").Return(repo).Once(),
		repo.On("GetAllMissingCoordinate", mock.Anything).Return([]*branch.Branch{pending}, nil).Once(),
		geocoder.On("Geocode", mock.Anything, "12 Chorsu street").
			Return(ports.GeocodedAddress{Coordinate: point, FormattedAddress: "12 Chorsu St"}, nil).Once(),
		repo.On("Update", mock.Anything, pending).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBranchUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRefreshBranchCoordinatesCommandHandler(factory, geocoder, nil)
	err := h.Handle(ctx, commands.NewRefreshBranchCoordinatesCommand())

	require.NoError(t, err)
	require.True(t, pending.HasCoordinate())
	uow.AssertExpectations(t)
	repo.AssertExpectations(t)
	geocoder.AssertExpectations(t)
}

func TestRefreshBranchCoordinatesCommandHandler_Handle_SkipsUnresolvableAddress(t *testing.T) {
	ctx := t.Context()
	bad := pendingBranch(t, "gibberish")
	good := pendingBranch(t, "12 Chorsu street")

	repo := new(MockBranchRepository)
	repo.On("GetAllMissingCoordinate", mock.Anything).Return([]*branch.Branch{bad, good}, nil).Once()
	repo.On("Update", mock.Anything, good).Return(nil).Once()

	uow := new(MockBranchUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("BranchRepository").Return(repo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	geocoder := new(MockGeocodingClient)
	geocoder.On("Geocode", mock.Anything, "gibberish").
		Return(ports.GeocodedAddress{}, ports.ErrAddressNotFound).Once()
	geocoder.On("Geocode", mock.Anything, "12 Chorsu street").
		Return(ports.GeocodedAddress{Coordinate: mustCoordinate(t, 41.32, 69.23)}, nil).Once()

	factory := new(MockBranchUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRefreshBranchCoordinatesCommandHandler(factory, geocoder, nil)
	err := h.Handle(ctx, commands.NewRefreshBranchCoordinatesCommand())

	require.NoError(t, err)
	require.False(t, bad.HasCoordinate())
	require.True(t, good.HasCoordinate())
	repo.AssertExpectations(t)
}

func TestRefreshBranchCoordinatesCommandHandler_Handle_ProviderOutageAborts(t *testing.T) {
	ctx := t.Context()
	pending := pendingBranch(t, "12 Chorsu street")

	repo := new(MockBranchRepository)
	repo.On("GetAllMissingCoordinate", mock.Anything).Return([]*branch.Branch{pending}, nil).Once()

	uow := new(MockBranchUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("BranchRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	geocoder := new(MockGeocodingClient)
	geocoder.On("Geocode", mock.Anything, mock.Anything).
		Return(ports.GeocodedAddress{}, ports.ErrProviderUnavailable).Once()

	factory := new(MockBranchUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRefreshBranchCoordinatesCommandHandler(factory, geocoder, nil)
	err := h.Handle(ctx, commands.NewRefreshBranchCoordinatesCommand())

	require.ErrorIs(t, err, ports.ErrProviderUnavailable)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestRefreshBranchCoordinatesCommand_Validate(t *testing.T) {
	var zero commands.RefreshBranchCoordinatesCommand

	require.ErrorIs(t, zero.Validate(), commands.ErrRefreshBranchCoordinatesCommandIsNotConstructed)
	require.NoError(t, commands.NewRefreshBranchCoordinatesCommand().Validate())
}
