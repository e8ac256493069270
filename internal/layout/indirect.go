package layout

import (
	"bytes"
	"encoding/binary"

	"github.com/noxer/bytewriter"
)

// NewIndirectBlock returns a slice of NumIndirect block pointers, all set
// to the sentinel, ready to be allocated on the 13th block of a file
// (spec.md §3).
func NewIndirectBlock() []BlockID {
	ptrs := make([]BlockID, NumIndirect)
	for i := range ptrs {
		ptrs[i] = Sentinel
	}
	return ptrs
}

// EncodeIndirectBlock serializes ptrs (len must be NumIndirect) into a
// single BlockSize buffer.
func EncodeIndirectBlock(ptrs []BlockID) []byte {
	buf := make([]byte, BlockSize)
	writer := bytewriter.New(buf)
	binary.Write(writer, binary.LittleEndian, ptrs)
	return buf
}

// DecodeIndirectBlock deserializes NumIndirect block pointers out of buf.
func DecodeIndirectBlock(buf []byte) []BlockID {
	ptrs := make([]BlockID, NumIndirect)
	reader := bytes.NewReader(buf)
	binary.Read(reader, binary.LittleEndian, ptrs)
	return ptrs
}
