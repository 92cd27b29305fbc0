package buf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//
// -----------------------------------------------------------------------------
// Alloc
// -----------------------------------------------------------------------------

// TestAlloc_Zero verifies Alloc(0) holds no block.
func TestAlloc_Zero(t *testing.T) {
	t.Parallel()

	o := Alloc[int](0)
	assert.True(t, o.IsNil())
	assert.Equal(t, 0, o.Len())
	assert.Nil(t, o.Raw())
}

// TestAlloc_DefaultInitialized verifies Alloc(n) yields n zero-valued slots.
func TestAlloc_DefaultInitialized(t *testing.T) {
	t.Parallel()

	o := Alloc[string](3)
	require.False(t, o.IsNil())
	require.Equal(t, 3, o.Len())
	for _, s := range o.Raw() {
		assert.Equal(t, "", s)
	}
}

//
// -----------------------------------------------------------------------------
// Raw
// -----------------------------------------------------------------------------

// TestRaw_AliasesBlock verifies writes through the raw view land in the block.
func TestRaw_AliasesBlock(t *testing.T) {
	t.Parallel()

	o := Alloc[int](2)
	o.Raw()[1] = 42
	assert.Equal(t, 42, o.Raw()[1])
}

//
// -----------------------------------------------------------------------------
// Swap / Move / Release
// -----------------------------------------------------------------------------

// TestSwap_ExchangesBlocks verifies Swap hands each block to the other owner.
func TestSwap_ExchangesBlocks(t *testing.T) {
	t.Parallel()

	a := Alloc[int](1)
	b := Alloc[int](2)
	a.Raw()[0] = 7

	a.Swap(&b)

	require.Equal(t, 2, a.Len())
	require.Equal(t, 1, b.Len())
	assert.Equal(t, 7, b.Raw()[0])
}

// TestSwap_WithNilHandle verifies swapping against a nil handle transfers the block.
func TestSwap_WithNilHandle(t *testing.T) {
	t.Parallel()

	a := Alloc[int](4)
	var b Owner[int]

	a.Swap(&b)

	assert.True(t, a.IsNil())
	require.Equal(t, 4, b.Len())
}

// TestMove_TransfersOwnership verifies Move hands the block over and empties the source.
func TestMove_TransfersOwnership(t *testing.T) {
	t.Parallel()

	src := Alloc[int](3)
	src.Raw()[0] = 1

	dst := src.Move()

	assert.True(t, src.IsNil())
	require.Equal(t, 3, dst.Len())
	assert.Equal(t, 1, dst.Raw()[0])
}

// TestRelease_DropsBlock verifies Release leaves the handle nil.
func TestRelease_DropsBlock(t *testing.T) {
	t.Parallel()

	o := Alloc[int](2)
	o.Release()

	assert.True(t, o.IsNil())
	assert.Equal(t, 0, o.Len())
}

// TestZeroValue_Usable verifies the zero Owner behaves like an empty handle.
func TestZeroValue_Usable(t *testing.T) {
	t.Parallel()

	var o Owner[int]
	assert.True(t, o.IsNil())
	assert.Equal(t, 0, o.Len())
	o.Release() // no-op
	m := o.Move()
	assert.True(t, m.IsNil())
}
