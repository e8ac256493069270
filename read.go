package sfs

import (
	"github.com/felixdube/sfs/errors"
	"github.com/felixdube/sfs/internal/layout"
)

// Fread reads up to length bytes into buf starting at h's current cursor,
// per spec.md §4.6. It never reads past the file's recorded size — a read
// straddling EOF is silently clamped, not an error — and advances the
// cursor by exactly the number of bytes copied. An unused handle reads 0
// bytes without error, matching the original source's behavior.
func (v *Volume) Fread(h int, buf []byte, length int) (int, errors.DriverError) {
	if !v.handleInUse(h) {
		return 0, nil
	}
	if length > len(buf) {
		length = len(buf)
	}

	fh := &v.fdt[h]
	n := v.inode(fh.inode)

	available := int64(n.Size) - fh.rwPtr
	if available <= 0 {
		return 0, nil
	}
	if int64(length) > available {
		length = int(available)
	}
	if length <= 0 {
		return 0, nil
	}

	read := 0
	for read < length {
		blockIdx := int(fh.rwPtr / layout.BlockSize)
		offsetInBlock := int(fh.rwPtr % layout.BlockSize)

		blockID, err := v.resolveBlockForRead(n, blockIdx)
		if err != nil {
			return read, err
		}
		blockBuf, err := v.readBlock(blockID)
		if err != nil {
			return read, err
		}

		chunk := layout.BlockSize - offsetInBlock
		if remaining := length - read; chunk > remaining {
			chunk = remaining
		}

		copy(buf[read:read+chunk], blockBuf[offsetInBlock:offsetInBlock+chunk])
		read += chunk
		fh.rwPtr += int64(chunk)
	}

	return read, nil
}
