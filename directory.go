package sfs

import (
	"fmt"
	"log"

	"github.com/felixdube/sfs/errors"
	"github.com/felixdube/sfs/internal/layout"
)

// GetFileSize returns name's size in bytes, per spec.md §4.8. A file that
// doesn't exist and a file that exists but is empty are indistinguishable
// through this call — both return 0 — per SPEC_FULL.md's resolved open
// question 5. Inside this package, fileSize tells the two cases apart.
func (v *Volume) GetFileSize(name string) int64 {
	size, err := v.fileSize(name)
	if err != nil {
		return 0
	}
	return size
}

// fileSize distinguishes "not found" from "empty file", unlike the public
// GetFileSize, which collapses both to 0 for source compatibility
// (SPEC_FULL.md resolved open question 5).
func (v *Volume) fileSize(name string) (int64, errors.DriverError) {
	idx, ok := v.findDirentIndex(name)
	if !ok {
		return 0, errors.ErrNotFound.WithMessage(fmt.Sprintf("%q", name))
	}
	inodeIdx := int(v.dirents[idx].Inode)
	return int64(v.inodes[inodeIdx].Size), nil
}

// Remove deletes name: every data block it owns, direct or indirect, and
// the indirect block itself are returned to the free-space bitmap, the
// inode and directory entry are marked unused, and any handle still open
// on it is invalidated — per spec.md §4.8, fixing the original source's
// leak of the indirect block on removal (SPEC_FULL.md item 4).
func (v *Volume) Remove(name string) errors.DriverError {
	idx, ok := v.findDirentIndex(name)
	if !ok {
		log.Printf("SFS > remove: no such file %q", name)
		return errors.ErrNotFound.WithMessage(fmt.Sprintf("%q", name))
	}

	inodeIdx := int(v.dirents[idx].Inode)
	n := v.inode(inodeIdx)

	for i := range n.DataPtrs {
		if n.DataPtrs[i] != layout.Sentinel {
			v.free.RmIndex(n.DataPtrs[i])
			n.DataPtrs[i] = layout.Sentinel
		}
	}

	if n.IndirectPtr != layout.Sentinel {
		if indirect, err := v.readIndirect(n.IndirectPtr); err == nil {
			for _, ptr := range indirect {
				if ptr != layout.Sentinel {
					v.free.RmIndex(ptr)
				}
			}
		}
		v.free.RmIndex(n.IndirectPtr)
		n.IndirectPtr = layout.Sentinel
	}

	*n = layout.NewFreeInode()
	v.dirents[idx] = layout.NewFreeDirent()

	for i := range v.fdt {
		if v.fdt[i].used && v.fdt[i].inode == inodeIdx {
			v.fdt[i] = fileHandle{}
		}
	}

	if err := v.writeInodeTable(); err != nil {
		return err
	}
	if err := v.writeDirTable(); err != nil {
		return err
	}
	return v.writeBitmap()
}

// GetNextFileName returns the name of the next used directory entry in
// enumeration order, advancing a persistent cursor one slot per call, plus
// the number of used entries remaining after this one (spec.md §4.8,
// §6.2). The cursor wraps around after the last used entry, at which
// point this returns "", 0; the next call after that starts over from the
// beginning.
func (v *Volume) GetNextFileName() (string, int) {
	n := len(v.dirents)
	for step := 0; step < n; step++ {
		v.dirCursor++
		if v.dirCursor >= n {
			v.dirCursor = -1
			return "", 0
		}
		if v.dirents[v.dirCursor].IsUsed() {
			return v.dirents[v.dirCursor].NameString(), v.countUsedAfter(v.dirCursor)
		}
	}
	v.dirCursor = -1
	return "", 0
}

func (v *Volume) countUsedAfter(idx int) int {
	remaining := 0
	for i := idx + 1; i < len(v.dirents); i++ {
		if v.dirents[i].IsUsed() {
			remaining++
		}
	}
	return remaining
}
