package sfs

import (
	"log"

	"github.com/felixdube/sfs/errors"
	"github.com/felixdube/sfs/internal/layout"
)

// Fwrite writes up to length bytes from buf at h's current cursor, per
// spec.md §4.7, growing the file and allocating blocks on demand. Every
// iteration re-derives the target block index from the cursor itself
// (rwPtr/BlockSize) rather than carrying a running pointer index forward —
// the original source's off-by-one on a leading partial block came from
// doing the latter. A write that would need a block at file-relative index
// NumDirect+NumIndirect or beyond (i.e. past MaxFileBytes) fails with
// ErrFileTooLarge, returning the bytes successfully written before that
// point.
func (v *Volume) Fwrite(h int, buf []byte, length int) (int, errors.DriverError) {
	if !v.handleInUse(h) {
		return 0, errors.ErrBadHandle.WithMessage("handle is not open")
	}
	if length > len(buf) {
		length = len(buf)
	}
	if length <= 0 {
		return 0, nil
	}

	fh := &v.fdt[h]
	n := v.inode(fh.inode)

	written := 0
	var failure errors.DriverError
	for written < length {
		blockIdx := int(fh.rwPtr / layout.BlockSize)
		offsetInBlock := int(fh.rwPtr % layout.BlockSize)

		if blockIdx >= layout.NumDirect+layout.NumIndirect {
			log.Printf("SFS > fwrite: write exceeds max file size, truncating at %d bytes", written)
			failure = errors.ErrFileTooLarge.WithMessage("write exceeds MaxFileBytes")
			break
		}

		blockID, err := v.resolveOrAllocateBlock(n, blockIdx)
		if err != nil {
			failure = err
			break
		}

		chunk := layout.BlockSize - offsetInBlock
		if remaining := length - written; chunk > remaining {
			chunk = remaining
		}

		var blockBuf []byte
		if offsetInBlock != 0 || chunk != layout.BlockSize {
			blockBuf, err = v.readBlock(blockID)
			if err != nil {
				failure = err
				break
			}
		} else {
			blockBuf = make([]byte, layout.BlockSize)
		}

		copy(blockBuf[offsetInBlock:offsetInBlock+chunk], buf[written:written+chunk])

		if err := v.writeBlock(blockID, blockBuf); err != nil {
			failure = err
			break
		}

		written += chunk
		fh.rwPtr += int64(chunk)
	}

	if uint64(fh.rwPtr) > n.Size {
		n.Size = uint64(fh.rwPtr)
	}

	if err := v.writeInodeTable(); err != nil {
		return written, err
	}
	if err := v.writeBitmap(); err != nil {
		return written, err
	}

	return written, failure
}
