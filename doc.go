/*
Package sfs implements the Simple File System (SFS): a single-volume,
flat-directory file system persisted on a fixed-size block device.

It provides create / open / read / write / seek / close / delete /
enumerate operations over named byte-stream files, addressed through a
classic inode scheme of 12 direct block pointers plus one indirect block.

A [Volume] owns every in-memory structure — the superblock, inode table,
directory table, free-space bitmap, open file table, and the
getnextfilename enumeration cursor — and flushes them write-through to the
underlying [github.com/felixdube/sfs/device.Device] on every mutating call.
Package-level functions (Mksfs, Fopen, Fclose, ...) are a thin convenience
wrapper over a single default Volume, named after the original C API this
module was ported from.

The on-disk block map is fixed at format time: block 0 holds the
superblock, the next blocks hold the inode table, the blocks after that
hold the directory table, and the last several blocks (sized to fit one
bit per device block) hold the free-space bitmap. Every other block is
data, allocated on demand.
*/
package sfs
