package sfs

import (
	"log"

	"github.com/felixdube/sfs/device"
	"github.com/felixdube/sfs/errors"
	"github.com/felixdube/sfs/internal/freemap"
	"github.com/felixdube/sfs/internal/layout"
)

// formatFresh implements spec.md §4.3's "If fresh" branch.
func (v *Volume) formatFresh(path string) errors.DriverError {
	v.superblock = layout.NewSuperblock()

	v.inodes = make([]layout.RawInode, layout.NumInodes)
	root := layout.NewFileInode()
	v.inodes[0] = root
	for i := 1; i < layout.NumInodes; i++ {
		v.inodes[i] = layout.NewFreeInode()
	}

	v.dirents = make([]layout.RawDirent, layout.DirTableEntries)
	for i := range v.dirents {
		v.dirents[i] = layout.NewFreeDirent()
	}

	disk, err := device.InitFreshDisk(path, layout.BlockSize, layout.NumBlocks)
	if err != nil {
		log.Printf("SFS > mksfs: could not create fresh disk at %q: %v", path, err)
		return err
	}
	v.disk = disk

	v.free = freemap.New(layout.NumBlocks)

	// Reserve the superblock and inode table.
	v.free.ForceSetIndex(layout.SuperblockNum)
	for i := 0; i < layout.InodeTableBlocks; i++ {
		v.free.ForceSetIndex(layout.InodeTableStart + layout.BlockID(i))
	}

	// Reserve the directory table, and hand its block ids to the root
	// inode's direct pointers in order (spec.md §4.3 step 5).
	j := 0
	for i := 0; i < layout.DirTableBlocks; i++ {
		blk := layout.DirTableStart + layout.BlockID(i)
		v.free.ForceSetIndex(blk)
		v.inodes[0].DataPtrs[j] = blk
		j++
	}
	for ; j < layout.NumDirect; j++ {
		v.inodes[0].DataPtrs[j] = layout.Sentinel
	}
	v.inodes[0].IndirectPtr = layout.Sentinel

	// Reserve the free-space bitmap's own region.
	for i := layout.BitmapStart; i < layout.BlockID(layout.NumBlocks); i++ {
		v.free.ForceSetIndex(i)
	}

	if err := v.writeBitmap(); err != nil {
		return err
	}
	if err := v.writeSuperblock(); err != nil {
		return err
	}
	if err := v.writeInodeTable(); err != nil {
		return err
	}
	if err := v.writeDirTable(); err != nil {
		return err
	}

	v.mounted = true
	return nil
}

// remount implements spec.md §4.3's "If not fresh" branch.
func (v *Volume) remount(path string) errors.DriverError {
	disk, err := device.InitDisk(path, layout.BlockSize, layout.NumBlocks)
	if err != nil {
		log.Printf("SFS > mksfs: could not open existing disk at %q: %v", path, err)
		return err
	}
	v.disk = disk

	sbBuf := make([]byte, layout.BlockSize)
	if err := v.disk.ReadBlocks(int(layout.SuperblockNum), 1, sbBuf); err != nil {
		return err
	}
	v.superblock = layout.DecodeSuperblock(sbBuf)

	inodeBuf := make([]byte, layout.InodeTableBlocks*layout.BlockSize)
	if err := v.disk.ReadBlocks(int(layout.InodeTableStart), layout.InodeTableBlocks, inodeBuf); err != nil {
		return err
	}
	v.inodes = layout.DecodeInodeTable(inodeBuf)

	dirBuf := make([]byte, layout.DirTableBlocks*layout.BlockSize)
	if err := v.disk.ReadBlocks(int(layout.DirTableStart), layout.DirTableBlocks, dirBuf); err != nil {
		return err
	}
	v.dirents = layout.DecodeDirTable(dirBuf)

	bitmapBuf := make([]byte, layout.BitmapBlocks*layout.BlockSize)
	if err := v.disk.ReadBlocks(int(layout.BitmapStart), layout.BitmapBlocks, bitmapBuf); err != nil {
		return err
	}
	v.free = freemap.FromBytes(bitmapBuf[:layout.BitmapSizeBytes], layout.NumBlocks)

	v.mounted = true
	return nil
}
