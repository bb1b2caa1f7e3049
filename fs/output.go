package fs

import (
	"os"
	"path/filepath"
)

// OutputFile writes a single output file with atomic update semantics.
// Data is written to path.tmp and moved to path on Commit.
type OutputFile struct {
	path string
}

// NewOutputFile creates a new OutputFile targeting path.
func NewOutputFile(path string) *OutputFile {
	return &OutputFile{path: path}
}

func (f *OutputFile) tempPath() string {
	return f.path + ".tmp"
}

// Write stores data in the temporary file, creating parent directories.
func (f *OutputFile) Write(data []byte) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
		return err
	}
	return os.WriteFile(f.tempPath(), data, 0644)
}

// Commit atomically replaces the target with the temporary file.
func (f *OutputFile) Commit() error {
	return os.Rename(f.tempPath(), f.path)
}

// Abort discards the temporary file.
func (f *OutputFile) Abort() error {
	err := os.Remove(f.tempPath())
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// WriteFileAtomic writes data to path so that readers see either the old
// content or the new content, never a partial file.
func WriteFileAtomic(path string, data []byte) error {
	f := NewOutputFile(path)
	if err := f.Write(data); err != nil {
		_ = f.Abort()
		return err
	}
	if err := f.Commit(); err != nil {
		_ = f.Abort()
		return err
	}
	return nil
}
