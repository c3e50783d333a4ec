// Package filesystem provides implementations of the types.FS interface.
//
// NewOS backs the interface with the real filesystem and is what the CLI
// uses. NewAferoFS adapts any afero.Fs, which lets tests run against an
// in-memory filesystem without touching disk.
package filesystem
