package layout

import (
	"bytes"
	"encoding/binary"

	"github.com/noxer/bytewriter"
)

// DefaultMode is the mode value new inodes are created with. This mirrors
// the original source's `new_inode.mode = 777` literally (a decimal 777,
// not the octal permission bits 0o777) — mode is advisory only (spec.md
// §1: permission enforcement is out of scope) so its exact value only
// matters for byte-for-byte compatibility with the source it was distilled
// from.
const DefaultMode = 777

// RawInode is the fixed-width, byte-exact on-disk representation of a
// single inode table slot (spec.md §3).
type RawInode struct {
	Used        uint64
	Mode        uint64
	LinkCount   uint64
	UID         uint64
	GID         uint64
	Size        uint64
	DataPtrs    [NumDirect]BlockID
	IndirectPtr BlockID
}

// NewFreeInode returns the RawInode value for an unused inode table slot.
func NewFreeInode() RawInode {
	return RawInode{Used: 0}
}

// NewFileInode returns the RawInode value for a freshly created, empty
// file: size 0, every pointer slot set to the sentinel (spec.md §4.5 step
// 4).
func NewFileInode() RawInode {
	inode := RawInode{
		Used:        1,
		Mode:        DefaultMode,
		LinkCount:   1,
		UID:         0,
		GID:         0,
		Size:        0,
		IndirectPtr: Sentinel,
	}
	for i := range inode.DataPtrs {
		inode.DataPtrs[i] = Sentinel
	}
	return inode
}

// IsUsed reports whether this inode table slot is allocated.
func (n RawInode) IsUsed() bool {
	return n.Used != 0
}

// EncodeInode writes n into a fixed-size buffer.
func EncodeInode(n RawInode) []byte {
	buf := make([]byte, InodeSize)
	writer := bytewriter.New(buf)
	binary.Write(writer, binary.LittleEndian, &n)
	return buf
}

// DecodeInode reads a RawInode out of a fixed-size buffer.
func DecodeInode(buf []byte) RawInode {
	var n RawInode
	reader := bytes.NewReader(buf)
	binary.Read(reader, binary.LittleEndian, &n)
	return n
}

// EncodeInodeTable serializes the full inode table into a
// InodeTableBlocks*BlockSize buffer, zero-padded past the last inode.
func EncodeInodeTable(inodes []RawInode) []byte {
	buf := make([]byte, InodeTableBlocks*BlockSize)
	writer := bytewriter.New(buf)
	for i := range inodes {
		binary.Write(writer, binary.LittleEndian, &inodes[i])
	}
	return buf
}

// DecodeInodeTable deserializes NumInodes RawInode records out of buf.
func DecodeInodeTable(buf []byte) []RawInode {
	inodes := make([]RawInode, NumInodes)
	reader := bytes.NewReader(buf)
	for i := range inodes {
		binary.Read(reader, binary.LittleEndian, &inodes[i])
	}
	return inodes
}
