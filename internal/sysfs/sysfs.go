// Package sysfs is the boundary between pathfs and the operating system.
// It exposes exactly the capability surface the library consumes: stat,
// directory handles, mkdir, unlink/rmdir, and working-directory access.
// Everything above this package is pure string work.
package sysfs

import (
	"io"
	"os"
	"syscall"
	"time"
)

// Info is the slice of stat output the library consumes.
type Info struct {
	Regular bool
	Dir     bool
	ModTime time.Time
}

// DirHandle is an exclusively owned stream over one open directory.
// ReadName returns io.EOF once the entries are exhausted.
type DirHandle interface {
	ReadName() (string, error)
	Close() error
}

// API is the OS capability surface. The std implementation below is the
// only one used outside tests; tests substitute fakes for failure
// injection.
type API interface {
	Lstat(name string) (Info, error)
	Stat(name string) (Info, error)
	OpenDir(name string) (DirHandle, error)
	Mkdir(name string) error
	Unlink(name string) error
	Rmdir(name string) error
	Getwd() (string, error)
	Chdir(name string) error
}

// Std implements API using the real os package.
type Std struct{}

func (Std) Lstat(name string) (Info, error) {
	fi, err := os.Lstat(name)
	if err != nil {
		return Info{}, err
	}
	return infoOf(fi), nil
}

func (Std) Stat(name string) (Info, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return Info{}, err
	}
	return infoOf(fi), nil
}

// OpenDir opens name for entry iteration. Opening a non-directory fails the
// way opendir(2) does.
func (Std) OpenDir(name string) (DirHandle, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if !fi.IsDir() {
		f.Close()
		return nil, &os.PathError{Op: "opendir", Path: name, Err: syscall.ENOTDIR}
	}
	return &stdDirHandle{f: f, pending: []string{".", ".."}}, nil
}

func (Std) Mkdir(name string) error {
	return os.Mkdir(name, 0o755)
}

func (Std) Unlink(name string) error {
	return os.Remove(name)
}

func (Std) Rmdir(name string) error {
	return os.Remove(name)
}

func (Std) Getwd() (string, error) {
	return os.Getwd()
}

func (Std) Chdir(name string) error {
	return os.Chdir(name)
}

func infoOf(fi os.FileInfo) Info {
	return Info{
		Regular: fi.Mode().IsRegular(),
		Dir:     fi.IsDir(),
		ModTime: fi.ModTime(),
	}
}

// stdDirHandle reads one entry name at a time. Go's readdir omits the "."
// and ".." entries that the classic opendir contract delivers, so they are
// replayed ahead of the real stream.
type stdDirHandle struct {
	f       *os.File
	pending []string
}

func (h *stdDirHandle) ReadName() (string, error) {
	if len(h.pending) > 0 {
		name := h.pending[0]
		h.pending = h.pending[1:]
		return name, nil
	}
	names, err := h.f.Readdirnames(1)
	if err != nil {
		return "", err
	}
	if len(names) == 0 {
		return "", io.EOF
	}
	return names[0], nil
}

func (h *stdDirHandle) Close() error {
	return h.f.Close()
}
