package layout_test

import (
	"testing"

	"github.com/felixdube/sfs/internal/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeometryConstants(t *testing.T) {
	assert.Equal(t, 256, layout.NumIndirect, "NumIndirect must be BlockSize/sizeof(block_id), not NumBlocks/sizeof(block_id)")
	assert.Equal(t, (12+256)*1024, layout.MaxFileBytes)
	assert.Equal(t, layout.BlockID(0xFFFFFFFF), layout.Sentinel)
}

func TestSuperblockRoundTrip(t *testing.T) {
	sb := layout.NewSuperblock()
	require.Equal(t, uint64(layout.Magic), sb.Magic)

	encoded := layout.EncodeSuperblock(sb)
	require.Len(t, encoded, layout.BlockSize)

	decoded := layout.DecodeSuperblock(encoded)
	assert.Equal(t, sb, decoded)
}

func TestInodeRoundTrip(t *testing.T) {
	n := layout.NewFileInode()
	n.Size = 42
	n.DataPtrs[0] = 9

	encoded := layout.EncodeInode(n)
	require.Len(t, encoded, layout.InodeSize)

	decoded := layout.DecodeInode(encoded)
	assert.Equal(t, n, decoded)
	assert.True(t, decoded.IsUsed())
	assert.Equal(t, layout.Sentinel, decoded.IndirectPtr)
}

func TestInodeTableRoundTrip(t *testing.T) {
	inodes := make([]layout.RawInode, layout.NumInodes)
	inodes[0] = layout.NewFileInode()
	for i := 1; i < len(inodes); i++ {
		inodes[i] = layout.NewFreeInode()
	}

	encoded := layout.EncodeInodeTable(inodes)
	require.Len(t, encoded, layout.InodeTableBlocks*layout.BlockSize)

	decoded := layout.DecodeInodeTable(encoded)
	require.Len(t, decoded, layout.NumInodes)
	assert.True(t, decoded[0].IsUsed())
	assert.False(t, decoded[1].IsUsed())
}

func TestDirentRoundTrip(t *testing.T) {
	d := layout.NewDirent(3, "report.txt")

	encoded := layout.EncodeDirent(d)
	require.Len(t, encoded, layout.DirentSize)

	decoded := layout.DecodeDirent(encoded)
	assert.Equal(t, "report.txt", decoded.NameString())
	assert.Equal(t, uint64(3), decoded.Inode)
	assert.True(t, decoded.IsUsed())
}

func TestDirentNameStringStripsPadding(t *testing.T) {
	d := layout.NewDirent(0, "a")
	assert.Equal(t, "a", d.NameString())

	empty := layout.RawDirent{}
	assert.Equal(t, "", empty.NameString())
}

func TestDirTableRoundTrip(t *testing.T) {
	entries := make([]layout.RawDirent, layout.DirTableEntries)
	entries[0] = layout.NewDirent(1, "a")
	entries[1] = layout.NewDirent(2, "b")

	encoded := layout.EncodeDirTable(entries)
	require.Len(t, encoded, layout.DirTableBlocks*layout.BlockSize)

	decoded := layout.DecodeDirTable(encoded)
	require.Len(t, decoded, layout.DirTableEntries)
	assert.Equal(t, "a", decoded[0].NameString())
	assert.Equal(t, "b", decoded[1].NameString())
	assert.False(t, decoded[2].IsUsed())
}

func TestIndirectBlockRoundTrip(t *testing.T) {
	ptrs := layout.NewIndirectBlock()
	require.Len(t, ptrs, layout.NumIndirect)
	ptrs[5] = 123

	encoded := layout.EncodeIndirectBlock(ptrs)
	require.Len(t, encoded, layout.BlockSize)

	decoded := layout.DecodeIndirectBlock(encoded)
	assert.Equal(t, layout.BlockID(123), decoded[5])
	assert.Equal(t, layout.Sentinel, decoded[0])
}
