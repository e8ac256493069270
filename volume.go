package sfs

import (
	"github.com/felixdube/sfs/device"
	"github.com/felixdube/sfs/errors"
	"github.com/felixdube/sfs/internal/freemap"
	"github.com/felixdube/sfs/internal/layout"
)

// DiskFileName is the backing file mksfs uses when no explicit path is
// given, matching the original source's JITS_DISK constant (spec.md §6.1).
const DiskFileName = "sfs_disk.disk"

// fileHandle is one slot of the file descriptor table (spec.md §3, §4.5).
type fileHandle struct {
	used  bool
	inode int
	rwPtr int64
}

// Volume owns every in-memory structure for one mounted SFS volume: the
// superblock, inode table, directory table, free-space bitmap, open file
// table, and the getnextfilename cursor. Per spec.md §9's redesign notes,
// this replaces the original's global mutable state with a single owning
// value that every operation takes as its receiver.
type Volume struct {
	disk     *device.Device
	diskPath string

	superblock layout.RawSuperblock
	inodes     []layout.RawInode
	dirents    []layout.RawDirent
	free       *freemap.Allocator

	fdt       []fileHandle
	dirCursor int

	mounted bool
}

// NewVolume creates an unmounted Volume using the default disk file name.
// Call Mksfs before using it.
func NewVolume() *Volume {
	return &Volume{diskPath: DiskFileName, dirCursor: -1}
}

// Mksfs formats a fresh volume (fresh == true) or remounts an existing one
// (fresh == false), per spec.md §4.3. It uses the default disk file name;
// use MksfsAt to target a specific path (useful in tests).
func (v *Volume) Mksfs(fresh bool) errors.DriverError {
	return v.mksfsAt(v.diskPath, fresh)
}

// MksfsAt is Mksfs but against an explicit backing file path.
func (v *Volume) MksfsAt(path string, fresh bool) errors.DriverError {
	return v.mksfsAt(path, fresh)
}

func (v *Volume) mksfsAt(path string, fresh bool) errors.DriverError {
	v.diskPath = path
	v.fdt = make([]fileHandle, layout.NumInodes)
	v.dirCursor = -1

	if fresh {
		return v.formatFresh(path)
	}
	return v.remount(path)
}

// inode returns a pointer to inode table slot i for in-place mutation.
func (v *Volume) inode(i int) *layout.RawInode {
	return &v.inodes[i]
}

// writeSuperblock flushes the superblock to block 0.
func (v *Volume) writeSuperblock() errors.DriverError {
	buf := layout.EncodeSuperblock(v.superblock)
	return v.disk.WriteBlocks(int(layout.SuperblockNum), 1, buf)
}

// writeInodeTable flushes the entire inode table.
func (v *Volume) writeInodeTable() errors.DriverError {
	buf := layout.EncodeInodeTable(v.inodes)
	return v.disk.WriteBlocks(int(layout.InodeTableStart), layout.InodeTableBlocks, buf)
}

// writeDirTable flushes the entire directory table.
func (v *Volume) writeDirTable() errors.DriverError {
	buf := layout.EncodeDirTable(v.dirents)
	return v.disk.WriteBlocks(int(layout.DirTableStart), layout.DirTableBlocks, buf)
}

// writeBitmap flushes the free-space bitmap region (spec.md §4.2
// get_bitmap(), resolved sizing per SPEC_FULL.md open question 6).
func (v *Volume) writeBitmap() errors.DriverError {
	raw := v.free.Bitmap()
	padded := make([]byte, layout.BitmapBlocks*layout.BlockSize)
	copy(padded, raw[:layout.BitmapSizeBytes])
	return v.disk.WriteBlocks(int(layout.BitmapStart), layout.BitmapBlocks, padded)
}
