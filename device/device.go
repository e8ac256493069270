// Package device implements the block device adapter collaborator spec.md
// §4.1 and §6.1 describe as external to the core: init_fresh_disk,
// init_disk, read_blocks, write_blocks, transferring exactly
// count*block_size bytes between the backing store and a caller buffer.
package device

import (
	"fmt"
	"io"
	"os"

	"github.com/felixdube/sfs/errors"
)

// Device is a fixed-size, block-addressed random-access store backed by
// any io.ReadWriteSeeker. The real entry points (InitFreshDisk, InitDisk)
// back it with an *os.File; tests can back it with an in-memory stream via
// Wrap (see device_test.go).
type Device struct {
	stream    io.ReadWriteSeeker
	closer    io.Closer
	blockSize int
	numBlocks int
}

// InitFreshDisk creates (or truncates) the file at path and sizes it to
// hold numBlocks blocks of blockSize bytes each, matching the source's
// init_fresh_disk.
func InitFreshDisk(path string, blockSize, numBlocks int) (*Device, errors.DriverError) {
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.ErrIOFailed.WrapError(err)
	}
	if err := f.Truncate(int64(blockSize) * int64(numBlocks)); err != nil {
		f.Close()
		return nil, errors.ErrIOFailed.WrapError(err)
	}
	return &Device{stream: f, closer: f, blockSize: blockSize, numBlocks: numBlocks}, nil
}

// InitDisk opens an existing disk image at path for reading and writing,
// matching the source's init_disk.
func InitDisk(path string, blockSize, numBlocks int) (*Device, errors.DriverError) {
	f, err := os.OpenFile(path, os.O_RDWR, 0o644)
	if err != nil {
		return nil, errors.ErrIOFailed.WrapError(err)
	}
	return &Device{stream: f, closer: f, blockSize: blockSize, numBlocks: numBlocks}, nil
}

// Wrap adapts an already-open io.ReadWriteSeeker (for example, an
// in-memory buffer wrapped with bytesextra.NewReadWriteSeeker) as a
// Device. Used by tests that don't want to touch the filesystem.
func Wrap(stream io.ReadWriteSeeker, blockSize, numBlocks int) *Device {
	return &Device{stream: stream, blockSize: blockSize, numBlocks: numBlocks}
}

// Close releases the underlying file, if any.
func (d *Device) Close() errors.DriverError {
	if d.closer == nil {
		return nil
	}
	if err := d.closer.Close(); err != nil {
		return errors.ErrIOFailed.WrapError(err)
	}
	return nil
}

// BlockSize returns the device's block size, in bytes.
func (d *Device) BlockSize() int {
	return d.blockSize
}

// NumBlocks returns the device's total capacity, in blocks.
func (d *Device) NumBlocks() int {
	return d.numBlocks
}

func (d *Device) seekToBlock(start int) errors.DriverError {
	if start < 0 || start >= d.numBlocks {
		return errors.ErrIOFailed.WithMessage(
			fmt.Sprintf("block %d not in range [0, %d)", start, d.numBlocks))
	}
	_, err := d.stream.Seek(int64(start)*int64(d.blockSize), io.SeekStart)
	if err != nil {
		return errors.ErrIOFailed.WrapError(err)
	}
	return nil
}

// ReadBlocks reads count blocks starting at block start into dst, which
// must be exactly count*BlockSize() bytes.
func (d *Device) ReadBlocks(start, count int, dst []byte) errors.DriverError {
	if len(dst) != count*d.blockSize {
		return errors.ErrIOFailed.WithMessage(
			fmt.Sprintf("buffer is %d bytes, expected %d", len(dst), count*d.blockSize))
	}
	if err := d.seekToBlock(start); err != nil {
		return err
	}
	if _, err := io.ReadFull(d.stream, dst); err != nil {
		return errors.ErrIOFailed.WrapError(err)
	}
	return nil
}

// WriteBlocks writes count blocks starting at block start from src, which
// must be exactly count*BlockSize() bytes.
func (d *Device) WriteBlocks(start, count int, src []byte) errors.DriverError {
	if len(src) != count*d.blockSize {
		return errors.ErrIOFailed.WithMessage(
			fmt.Sprintf("buffer is %d bytes, expected %d", len(src), count*d.blockSize))
	}
	if err := d.seekToBlock(start); err != nil {
		return err
	}
	if _, err := d.stream.Write(src); err != nil {
		return errors.ErrIOFailed.WrapError(err)
	}
	return nil
}
