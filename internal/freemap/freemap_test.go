package freemap_test

import (
	goerrors "errors"
	"testing"

	"github.com/felixdube/sfs/errors"
	"github.com/felixdube/sfs/internal/freemap"
	"github.com/felixdube/sfs/internal/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetIndex_LowestFirst(t *testing.T) {
	a := freemap.New(8)
	a.ForceSetIndex(0)
	a.ForceSetIndex(1)

	id, err := a.GetIndex()
	require.NoError(t, err)
	assert.Equal(t, layout.BlockID(2), id)
	assert.False(t, a.IsFree(2))
}

func TestGetIndex_ExhaustedReturnsNoSpace(t *testing.T) {
	a := freemap.New(2)
	_, err := a.GetIndex()
	require.NoError(t, err)
	_, err = a.GetIndex()
	require.NoError(t, err)

	_, err = a.GetIndex()
	require.Error(t, err)
	assert.True(t, goerrors.Is(err, errors.ErrNoSpace))
}

func TestRmIndex_FreesBlock(t *testing.T) {
	a := freemap.New(4)
	id, err := a.GetIndex()
	require.NoError(t, err)
	assert.False(t, a.IsFree(id))

	a.RmIndex(id)
	assert.True(t, a.IsFree(id))
}

func TestForceSetIndex_ReservesWithoutAllocating(t *testing.T) {
	a := freemap.New(4)
	a.ForceSetIndex(3)
	assert.False(t, a.IsFree(3))

	id, err := a.GetIndex()
	require.NoError(t, err)
	assert.NotEqual(t, layout.BlockID(3), id)
}

func TestFromBytes_RoundTripsThroughBitmap(t *testing.T) {
	a := freemap.New(16)
	a.ForceSetIndex(5)
	saved := append([]byte(nil), a.Bitmap()...)

	restored := freemap.FromBytes(saved, 16)
	assert.False(t, restored.IsFree(5))
	assert.True(t, restored.IsFree(6))
}
