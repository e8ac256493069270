package sfs

import (
	"fmt"
	"log"

	"github.com/felixdube/sfs/errors"
	"github.com/felixdube/sfs/internal/layout"
)

// Fopen opens name, creating it if it doesn't already exist, per spec.md
// §4.5. Reopening an already-open file returns the existing handle
// (idempotent open); a newly opened file, whether freshly created or
// reopened, always starts with its cursor at 0 — see SPEC_FULL.md's
// resolved open question 1.
func (v *Volume) Fopen(name string) (int, errors.DriverError) {
	if len(name) == 0 || len(name) > layout.MaxFilename {
		log.Printf("SFS > fopen: invalid file name %q", name)
		return -1, errors.ErrNameInvalid.WithMessage(fmt.Sprintf("%q", name))
	}

	inodeIdx, found := v.lookupInodeByName(name)
	if !found {
		newInodeIdx, ok := v.findFreeInodeSlot()
		if !ok {
			log.Printf("SFS > fopen: inode table is full")
			return -1, errors.ErrNoSpace.WithMessage("inode table is full")
		}
		direntIdx, ok := v.findFreeDirentSlot()
		if !ok {
			log.Printf("SFS > fopen: directory table is full")
			return -1, errors.ErrNoSpace.WithMessage("directory table is full")
		}

		v.inodes[newInodeIdx] = layout.NewFileInode()
		v.dirents[direntIdx] = layout.NewDirent(uint64(newInodeIdx), name)

		if err := v.writeInodeTable(); err != nil {
			return -1, err
		}
		if err := v.writeDirTable(); err != nil {
			return -1, err
		}

		inodeIdx = newInodeIdx
	}

	if h, ok := v.findOpenHandleForInode(inodeIdx); ok {
		v.fdt[h].rwPtr = 0
		return h, nil
	}

	h, ok := v.findFreeHandleSlot()
	if !ok {
		log.Printf("SFS > fopen: file descriptor table is full")
		return -1, errors.ErrNoSpace.WithMessage("file descriptor table is full")
	}

	v.fdt[h] = fileHandle{used: true, inode: inodeIdx, rwPtr: 0}
	return h, nil
}

// Fclose releases a file handle previously returned by Fopen.
func (v *Volume) Fclose(h int) errors.DriverError {
	if !v.handleInUse(h) {
		log.Printf("SFS > fclose: bad file handle %d", h)
		return errors.ErrBadHandle.WithMessage(fmt.Sprintf("handle %d is not open", h))
	}
	v.fdt[h] = fileHandle{}
	return nil
}

// Fseek repositions h's read/write cursor. Seeking past the file's current
// size is permitted; writes may grow the file to meet it, and reads from
// beyond size return 0 bytes (spec.md §4.5).
func (v *Volume) Fseek(h int, loc int64) errors.DriverError {
	if h < 0 || h >= len(v.fdt) {
		return errors.ErrBadHandle.WithMessage(fmt.Sprintf("handle %d out of range", h))
	}
	if loc < 0 || loc > layout.MaxFileBytes {
		return errors.ErrBadRange.WithMessage(
			fmt.Sprintf("%d not in [0, %d]", loc, layout.MaxFileBytes))
	}
	v.fdt[h].rwPtr = loc
	return nil
}

func (v *Volume) handleInUse(h int) bool {
	return h >= 0 && h < len(v.fdt) && v.fdt[h].used
}

func (v *Volume) lookupInodeByName(name string) (int, bool) {
	if idx, ok := v.findDirentIndex(name); ok {
		return int(v.dirents[idx].Inode), true
	}
	return -1, false
}

func (v *Volume) findDirentIndex(name string) (int, bool) {
	for i := range v.dirents {
		if v.dirents[i].IsUsed() && v.dirents[i].NameString() == name {
			return i, true
		}
	}
	return -1, false
}

// findFreeInodeSlot searches for an unused inode slot, starting at 1 since
// inode 0 is always the root directory.
func (v *Volume) findFreeInodeSlot() (int, bool) {
	for i := 1; i < len(v.inodes); i++ {
		if !v.inodes[i].IsUsed() {
			return i, true
		}
	}
	return -1, false
}

func (v *Volume) findFreeDirentSlot() (int, bool) {
	for i := range v.dirents {
		if !v.dirents[i].IsUsed() {
			return i, true
		}
	}
	return -1, false
}

func (v *Volume) findOpenHandleForInode(inodeIdx int) (int, bool) {
	for h := range v.fdt {
		if v.fdt[h].used && v.fdt[h].inode == inodeIdx {
			return h, true
		}
	}
	return -1, false
}

func (v *Volume) findFreeHandleSlot() (int, bool) {
	for h := range v.fdt {
		if !v.fdt[h].used {
			return h, true
		}
	}
	return -1, false
}
