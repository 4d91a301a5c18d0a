package depmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/tracekit/pkg/types"
)

func access(id int, dir types.Direction, lba, blocks int64) types.Access {
	return types.Access{ID: types.AccessID(id), Dir: dir, LBA: lba, Blocks: blocks}
}

func TestBuildSimpleDependency(t *testing.T) {
	accesses := []types.Access{
		access(0, types.DirWrite, 0, 8),
		access(1, types.DirRead, 0, 4),
		access(2, types.DirRead, 4, 4),
	}

	rc, wc := Build(accesses)

	require.Len(t, rc, 2)
	assert.True(t, rc[1].Has(0))
	assert.True(t, rc[2].Has(0))

	require.Len(t, wc, 1)
	assert.True(t, wc[0].Has(1))
	assert.True(t, wc[0].Has(2))
}

func TestBuildIndependentRead(t *testing.T) {
	accesses := []types.Access{
		access(0, types.DirWrite, 0, 8),
		access(1, types.DirRead, 100, 8),
	}

	rc, wc := Build(accesses)

	// No overlap: neither side gets an entry.
	assert.Empty(t, rc)
	assert.Empty(t, wc)
}

func TestBuildOverwriteBreaksDependency(t *testing.T) {
	accesses := []types.Access{
		access(0, types.DirWrite, 0, 8),
		access(1, types.DirWrite, 0, 8),
		access(2, types.DirRead, 0, 8),
	}

	rc, wc := Build(accesses)

	// The read only sees write 1's data; write 0 was fully overwritten
	// before anything read it.
	require.Contains(t, rc, types.AccessID(2))
	assert.True(t, rc[2].Has(1))
	assert.False(t, rc[2].Has(0))

	assert.NotContains(t, wc, types.AccessID(0))
	require.Contains(t, wc, types.AccessID(1))
	assert.True(t, wc[1].Has(2))
}

func TestBuildPartialOverwrite(t *testing.T) {
	accesses := []types.Access{
		access(0, types.DirWrite, 0, 8),
		access(1, types.DirWrite, 4, 4), // overwrites the back half
		access(2, types.DirRead, 0, 8),  // spans both writers
	}

	rc, wc := Build(accesses)

	require.Contains(t, rc, types.AccessID(2))
	assert.True(t, rc[2].Has(0), "front half still belongs to write 0")
	assert.True(t, rc[2].Has(1), "back half belongs to write 1")
	assert.True(t, wc[0].Has(2))
	assert.True(t, wc[1].Has(2))
}

func TestBuildReadBeforeWriteIsIndependent(t *testing.T) {
	accesses := []types.Access{
		access(0, types.DirRead, 0, 8),
		access(1, types.DirWrite, 0, 8),
	}

	rc, wc := Build(accesses)
	assert.Empty(t, rc)
	assert.Empty(t, wc)
}

func TestBuildZeroLengthAccesses(t *testing.T) {
	accesses := []types.Access{
		access(0, types.DirWrite, 0, 0),
		access(1, types.DirRead, 0, 0),
		access(2, types.DirWrite, 0, 8),
		access(3, types.DirRead, 0, 0),
	}

	rc, wc := Build(accesses)
	assert.Empty(t, rc, "zero-length reads depend on nothing")
	assert.Empty(t, wc, "zero-length writes claim nothing")
}

func TestBuildDistinctDependenciesAreSets(t *testing.T) {
	accesses := []types.Access{
		access(0, types.DirWrite, 0, 16),
		access(1, types.DirRead, 0, 16), // 16 blocks, one writer
	}

	rc, _ := Build(accesses)
	require.Contains(t, rc, types.AccessID(1))
	assert.Len(t, rc[1], 1, "one writer, one set element regardless of block count")
}
