package layout

import (
	"bytes"
	"encoding/binary"

	"github.com/noxer/bytewriter"
)

// RawDirent is the fixed-width, byte-exact on-disk representation of one
// directory table slot (spec.md §3). Names are stored as a fixed,
// null-terminated byte array rather than an owned pointer so the directory
// table stays a flat, serializable array (spec.md §9 redesign notes).
type RawDirent struct {
	Used  uint64
	Inode uint64
	Name  [MaxFilename + 1]byte
}

// NewFreeDirent returns the RawDirent value for an unused directory slot.
func NewFreeDirent() RawDirent {
	return RawDirent{Used: 0}
}

// NewDirent returns a RawDirent pointing at inumber with the given name.
// The caller must have already validated len(name) <= MaxFilename.
func NewDirent(inumber uint64, name string) RawDirent {
	d := RawDirent{Used: 1, Inode: inumber}
	copy(d.Name[:], name)
	return d
}

// IsUsed reports whether this directory slot is allocated.
func (d RawDirent) IsUsed() bool {
	return d.Used != 0
}

// NameString returns the directory entry's name with the null terminator
// and any trailing padding stripped.
func (d RawDirent) NameString() string {
	end := bytes.IndexByte(d.Name[:], 0)
	if end < 0 {
		end = len(d.Name)
	}
	return string(d.Name[:end])
}

// EncodeDirent writes d into a fixed-size buffer.
func EncodeDirent(d RawDirent) []byte {
	buf := make([]byte, DirentSize)
	writer := bytewriter.New(buf)
	binary.Write(writer, binary.LittleEndian, &d)
	return buf
}

// DecodeDirent reads a RawDirent out of a fixed-size buffer.
func DecodeDirent(buf []byte) RawDirent {
	var d RawDirent
	reader := bytes.NewReader(buf)
	binary.Read(reader, binary.LittleEndian, &d)
	return d
}

// EncodeDirTable serializes the full directory table into a
// DirTableBlocks*BlockSize buffer, zero-padded past the last entry.
func EncodeDirTable(entries []RawDirent) []byte {
	buf := make([]byte, DirTableBlocks*BlockSize)
	writer := bytewriter.New(buf)
	for i := range entries {
		binary.Write(writer, binary.LittleEndian, &entries[i])
	}
	return buf
}

// DecodeDirTable deserializes DirTableEntries RawDirent records out of buf.
func DecodeDirTable(buf []byte) []RawDirent {
	entries := make([]RawDirent, DirTableEntries)
	reader := bytes.NewReader(buf)
	for i := range entries {
		binary.Read(reader, binary.LittleEndian, &entries[i])
	}
	return entries
}
