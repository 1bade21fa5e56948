package branch_test

import (
	"testing"

	"geodispatch/internal/core/domain/model/branch"
	"geodispatch/internal/core/domain/model/kernel"
	"geodispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBranch(t *testing.T) {
	t.Run("creates branch without coordinate", func(t *testing.T) {
		id := kernel.NewUUID()
		partnerID := kernel.NewUUID()

		b, err := branch.NewBranch(id, partnerID, "Chilanzar", "12 Chilanzar street", true)

		require.NoError(t, err)
		assert.True(t, b.ID().IsEqual(id))
		assert.True(t, b.PartnerID().IsEqual(partnerID))
		assert.Equal(t, "Chilanzar", b.Name())
		assert.Equal(t, "12 Chilanzar street", b.Address())
		assert.False(t, b.HasCoordinate())
		assert.Nil(t, b.Coordinate())
		assert.True(t, b.IsAcceptingOrders())
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := branch.NewBranch(kernel.NewUUID(), kernel.NewUUID(), "", "somewhere", true)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects zero id", func(t *testing.T) {
		var zeroID kernel.UUID

		_, err := branch.NewBranch(zeroID, kernel.NewUUID(), "Center", "somewhere", true)

		require.Error(t, err)
	})
}

func TestRestoreBranch(t *testing.T) {
	t.Run("restores branch with coordinate", func(t *testing.T) {
		point, _ := kernel.NewCoordinate(41.3111, 69.2797)

		b, err := branch.RestoreBranch(kernel.NewUUID(), kernel.NewUUID(), "Center", "1 Main square", &point, true)

		require.NoError(t, err)
		assert.True(t, b.HasCoordinate())
		equal, _ := b.Coordinate().IsEqual(point)
		assert.True(t, equal)
	})

	t.Run("restores branch without coordinate", func(t *testing.T) {
		b, err := branch.RestoreBranch(kernel.NewUUID(), kernel.NewUUID(), "Center", "1 Main square", nil, false)

		require.NoError(t, err)
		assert.False(t, b.HasCoordinate())
		assert.False(t, b.IsAcceptingOrders())
	})

	t.Run("rejects zero-value coordinate", func(t *testing.T) {
		var zero kernel.Coordinate

		_, err := branch.RestoreBranch(kernel.NewUUID(), kernel.NewUUID(), "Center", "1 Main square", &zero, true)

		require.Error(t, err)
	})
}

func TestBranch_AssignCoordinate(t *testing.T) {
	t.Run("assigns resolved coordinate", func(t *testing.T) {
		b, _ := branch.NewBranch(kernel.NewUUID(), kernel.NewUUID(), "Center", "1 Main square", true)
		point, _ := kernel.NewCoordinate(41.3111, 69.2797)

		err := b.AssignCoordinate(point)

		require.NoError(t, err)
		assert.True(t, b.HasCoordinate())
	})

	t.Run("rejects zero-value coordinate", func(t *testing.T) {
		b, _ := branch.NewBranch(kernel.NewUUID(), kernel.NewUUID(), "Center", "1 Main square", true)
		var zero kernel.Coordinate

		err := b.AssignCoordinate(zero)

		require.Error(t, err)
		assert.False(t, b.HasCoordinate())
	})
}

func TestBranch_Validate(t *testing.T) {
	t.Run("nil branch fails validation", func(t *testing.T) {
		var b *branch.Branch

		require.ErrorIs(t, b.Validate(), branch.ErrBranchIsNotConstructed)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		b := &branch.Branch{}

		require.ErrorIs(t, b.Validate(), branch.ErrBranchIsNotConstructed)
	})
}
