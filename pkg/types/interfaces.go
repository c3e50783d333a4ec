package types

import (
	"io/fs"
)

// FS abstracts filesystem operations for testability.
// Production code uses the real filesystem via filesystem.NewOS;
// tests substitute an in-memory implementation.
type FS interface {
	// Stat returns file info, following symlinks
	Stat(name string) (fs.FileInfo, error)

	// Lstat returns file info without following symlinks
	Lstat(name string) (fs.FileInfo, error)

	// ReadFile reads the named file and returns its contents
	ReadFile(name string) ([]byte, error)

	// WriteFile writes data to the named file, creating it if necessary
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// MkdirAll creates a directory path and all parents that do not exist
	MkdirAll(path string, perm fs.FileMode) error

	// ReadDir reads the named directory and returns its entries sorted
	// by filename
	ReadDir(name string) ([]fs.DirEntry, error)

	// Rename renames (moves) oldpath to newpath
	Rename(oldpath, newpath string) error

	// Remove removes the named file or empty directory
	Remove(name string) error

	// RemoveAll removes path and any children it contains
	RemoveAll(path string) error
}
