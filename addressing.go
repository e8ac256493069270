package sfs

import (
	"github.com/felixdube/sfs/errors"
	"github.com/felixdube/sfs/internal/layout"
)

// resolveBlockForRead maps file-relative block index k to a device block
// id for a read, per spec.md §4.4. Resolving a slot that's still the
// sentinel means invariant 3 has been violated — that's an internal error,
// not a caller mistake.
func (v *Volume) resolveBlockForRead(n *layout.RawInode, k int) (layout.BlockID, errors.DriverError) {
	if k < layout.NumDirect {
		ptr := n.DataPtrs[k]
		if ptr == layout.Sentinel {
			return 0, errors.ErrInternal.WithMessage("direct pointer slot is unexpectedly empty")
		}
		return ptr, nil
	}

	if n.IndirectPtr == layout.Sentinel {
		return 0, errors.ErrInternal.WithMessage("indirect block is unexpectedly empty")
	}
	indirect, err := v.readIndirect(n.IndirectPtr)
	if err != nil {
		return 0, err
	}
	ptr := indirect[k-layout.NumDirect]
	if ptr == layout.Sentinel {
		return 0, errors.ErrInternal.WithMessage("indirect pointer slot is unexpectedly empty")
	}
	return ptr, nil
}

// resolveOrAllocateBlock maps file-relative block index k to a device
// block id for a write, allocating the data block (and the indirect block,
// if needed) on demand when the corresponding slot is still the sentinel.
// It writes the indirect block back whenever it mutates it; the inode's
// updated pointers and the bitmap are only changed in memory, and the
// caller is responsible for writing them through.
func (v *Volume) resolveOrAllocateBlock(n *layout.RawInode, k int) (layout.BlockID, errors.DriverError) {
	if k < layout.NumDirect {
		if n.DataPtrs[k] == layout.Sentinel {
			id, err := v.free.GetIndex()
			if err != nil {
				return 0, err
			}
			n.DataPtrs[k] = id
		}
		return n.DataPtrs[k], nil
	}

	if n.IndirectPtr == layout.Sentinel {
		id, err := v.free.GetIndex()
		if err != nil {
			return 0, err
		}
		n.IndirectPtr = id
		if err := v.writeIndirect(id, layout.NewIndirectBlock()); err != nil {
			return 0, err
		}
	}

	indirect, err := v.readIndirect(n.IndirectPtr)
	if err != nil {
		return 0, err
	}

	slot := k - layout.NumDirect
	if indirect[slot] == layout.Sentinel {
		id, err := v.free.GetIndex()
		if err != nil {
			return 0, err
		}
		indirect[slot] = id
		if err := v.writeIndirect(n.IndirectPtr, indirect); err != nil {
			return 0, err
		}
	}
	return indirect[slot], nil
}

func (v *Volume) readIndirect(id layout.BlockID) ([]layout.BlockID, errors.DriverError) {
	buf, err := v.readBlock(id)
	if err != nil {
		return nil, err
	}
	return layout.DecodeIndirectBlock(buf), nil
}

func (v *Volume) writeIndirect(id layout.BlockID, ptrs []layout.BlockID) errors.DriverError {
	return v.writeBlock(id, layout.EncodeIndirectBlock(ptrs))
}

func (v *Volume) readBlock(id layout.BlockID) ([]byte, errors.DriverError) {
	buf := make([]byte, layout.BlockSize)
	if err := v.disk.ReadBlocks(int(id), 1, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

func (v *Volume) writeBlock(id layout.BlockID, buf []byte) errors.DriverError {
	return v.disk.WriteBlocks(int(id), 1, buf)
}
