package pathfs

import (
	"errors"
	"io"
	"os"
	"testing"
	"time"

	"github.com/portablefs/pathfs/internal/sysfs"
)

// fakeFS is an in-memory sysfs.API for failure injection and for asserting
// deletion order. Paths are keyed by their literal text, so tests compose
// them exactly the way the code under test does.
type fakeFS struct {
	dirs       map[string][]string // dir path -> child names, no dot entries
	files      map[string]bool
	removed    []string // unlink/rmdir calls that succeeded, in order
	failUnlink map[string]bool
	failRmdir  map[string]bool
	cwd        string
	cwdErr     error
	chdirErr   error
	handles    []*fakeHandle
}

func newFakeFS() *fakeFS {
	return &fakeFS{
		dirs:       map[string][]string{"/": {}},
		files:      map[string]bool{},
		failUnlink: map[string]bool{},
		failRmdir:  map[string]bool{},
		cwd:        "/work",
	}
}

// withSystem swaps the package OS collaborator for the duration of a test.
func withSystem(t *testing.T, fs sysfs.API) {
	t.Helper()
	old := system
	system = fs
	t.Cleanup(func() { system = old })
}

func childPath(dir, name string) string {
	return New(dir).Join(New(name)).String()
}

func (f *fakeFS) addDir(p string) {
	f.dirs[p] = []string{}
	f.attach(p)
}

func (f *fakeFS) addFile(p string) {
	f.files[p] = true
	f.attach(p)
}

func (f *fakeFS) attach(p string) {
	parent := New(p).Parent().String()
	if _, ok := f.dirs[parent]; ok {
		f.dirs[parent] = append(f.dirs[parent], New(p).Filename().String())
	}
}

func (f *fakeFS) detach(p string) {
	parent := New(p).Parent().String()
	kids := f.dirs[parent]
	for i, k := range kids {
		if childPath(parent, k) == p {
			f.dirs[parent] = append(kids[:i], kids[i+1:]...)
			return
		}
	}
}

func (f *fakeFS) Lstat(name string) (sysfs.Info, error) {
	if f.files[name] {
		return sysfs.Info{Regular: true, ModTime: time.Unix(1234, 0)}, nil
	}
	if _, ok := f.dirs[name]; ok {
		return sysfs.Info{Dir: true, ModTime: time.Unix(1234, 0)}, nil
	}
	return sysfs.Info{}, os.ErrNotExist
}

func (f *fakeFS) Stat(name string) (sysfs.Info, error) {
	return f.Lstat(name)
}

func (f *fakeFS) OpenDir(name string) (sysfs.DirHandle, error) {
	children, ok := f.dirs[name]
	if !ok {
		return nil, os.ErrNotExist
	}
	names := append([]string{".", ".."}, children...)
	h := &fakeHandle{names: names}
	f.handles = append(f.handles, h)
	return h, nil
}

func (f *fakeFS) Mkdir(name string) error {
	if _, ok := f.dirs[name]; ok {
		return os.ErrExist
	}
	f.addDir(name)
	return nil
}

func (f *fakeFS) Unlink(name string) error {
	if f.failUnlink[name] {
		return errors.New("unlink denied")
	}
	if !f.files[name] {
		return os.ErrNotExist
	}
	delete(f.files, name)
	f.detach(name)
	f.removed = append(f.removed, name)
	return nil
}

func (f *fakeFS) Rmdir(name string) error {
	if f.failRmdir[name] {
		return errors.New("rmdir denied")
	}
	children, ok := f.dirs[name]
	if !ok {
		return os.ErrNotExist
	}
	if len(children) > 0 {
		return errors.New("directory not empty")
	}
	delete(f.dirs, name)
	f.detach(name)
	f.removed = append(f.removed, name)
	return nil
}

func (f *fakeFS) Getwd() (string, error) {
	if f.cwdErr != nil {
		return "", f.cwdErr
	}
	return f.cwd, nil
}

func (f *fakeFS) Chdir(name string) error {
	if f.chdirErr != nil {
		return f.chdirErr
	}
	if _, ok := f.dirs[name]; !ok {
		return os.ErrNotExist
	}
	f.cwd = name
	return nil
}

// leakedHandles reports handles opened but never closed.
func (f *fakeFS) leakedHandles() int {
	n := 0
	for _, h := range f.handles {
		if !h.closed {
			n++
		}
	}
	return n
}

type fakeHandle struct {
	names  []string
	pos    int
	closed bool
}

func (h *fakeHandle) ReadName() (string, error) {
	if h.closed {
		return "", errors.New("read on closed handle")
	}
	if h.pos >= len(h.names) {
		return "", io.EOF
	}
	name := h.names[h.pos]
	h.pos++
	return name, nil
}

func (h *fakeHandle) Close() error {
	if h.closed {
		return errors.New("double close")
	}
	h.closed = true
	return nil
}
