package layout

import (
	"bytes"
	"encoding/binary"

	"github.com/noxer/bytewriter"
)

// RawSuperblock is the fixed-width, byte-exact on-disk representation of
// block 0 (spec.md §3, §6.3).
type RawSuperblock struct {
	Magic         uint64
	BlockSize     uint64
	FSSize        uint64
	InodeTableLen uint64
	RootDirInode  uint64
}

// NewSuperblock builds the superblock written once at format time. It is
// immutable after that (spec.md §3).
func NewSuperblock() RawSuperblock {
	return RawSuperblock{
		Magic:         Magic,
		BlockSize:     BlockSize,
		FSSize:        uint64(NumBlocks) * uint64(BlockSize),
		InodeTableLen: uint64(InodeTableBlocks),
		RootDirInode:  0,
	}
}

// EncodeSuperblock writes sb into a BlockSize-sized buffer, little-endian,
// padding the remainder of the block with zeroes.
func EncodeSuperblock(sb RawSuperblock) []byte {
	buf := make([]byte, BlockSize)
	writer := bytewriter.New(buf)
	binary.Write(writer, binary.LittleEndian, &sb)
	return buf
}

// DecodeSuperblock reads a RawSuperblock out of a BlockSize-sized buffer.
func DecodeSuperblock(buf []byte) RawSuperblock {
	var sb RawSuperblock
	reader := bytes.NewReader(buf)
	binary.Read(reader, binary.LittleEndian, &sb)
	return sb
}
