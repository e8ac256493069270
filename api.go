package sfs

import "github.com/felixdube/sfs/errors"

// defaultVolume is the process-wide volume the package-level functions
// below operate on, mirroring the original C API's single global file
// system instance (spec.md §9's "thin adapter" note).
var defaultVolume = NewVolume()

// Mksfs formats (fresh == true) or mounts (fresh == false) the default
// volume's backing file.
func Mksfs(fresh bool) errors.DriverError {
	return defaultVolume.Mksfs(fresh)
}

// Fopen opens or creates name on the default volume.
func Fopen(name string) (int, errors.DriverError) {
	return defaultVolume.Fopen(name)
}

// Fclose closes handle h on the default volume.
func Fclose(h int) errors.DriverError {
	return defaultVolume.Fclose(h)
}

// Fread reads from h into buf on the default volume.
func Fread(h int, buf []byte, length int) (int, errors.DriverError) {
	return defaultVolume.Fread(h, buf, length)
}

// Fwrite writes buf to h on the default volume.
func Fwrite(h int, buf []byte, length int) (int, errors.DriverError) {
	return defaultVolume.Fwrite(h, buf, length)
}

// Fseek repositions h's cursor on the default volume.
func Fseek(h int, loc int64) errors.DriverError {
	return defaultVolume.Fseek(h, loc)
}

// Remove deletes name from the default volume.
func Remove(name string) errors.DriverError {
	return defaultVolume.Remove(name)
}

// GetFileSize returns name's size on the default volume.
func GetFileSize(name string) int64 {
	return defaultVolume.GetFileSize(name)
}

// GetNextFileName advances the default volume's enumeration cursor,
// returning the next used entry's name and the count of used entries
// remaining after it (spec.md §6.2).
func GetNextFileName() (string, int) {
	return defaultVolume.GetNextFileName()
}
