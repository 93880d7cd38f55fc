package pathfs

import (
	"fmt"

	"github.com/portablefs/pathfs/internal/sysfs"
)

// DirEntry is one discovered child of an iterated directory.
type DirEntry struct {
	p Path
}

// NewDirEntry wraps an arbitrary path as an entry.
func NewDirEntry(p Path) DirEntry {
	return DirEntry{p: p}
}

// Path returns the entry's path.
func (e DirEntry) Path() Path {
	return e.p
}

// DirIterator is a lazy, single-pass stream over the entries of one
// directory, "." and ".." included. It owns the underlying OS handle
// exclusively and releases it exactly once, on exhaustion or Close.
// Rescanning requires a fresh OpenDir.
type DirIterator struct {
	handle sysfs.DirHandle // nil once exhausted or closed
	name   string          // last raw entry name read
	dir    Path
}

// OpenDir opens p for iteration and positions the iterator on the first
// entry, which per OS convention is typically ".". The iterator must be
// advanced to exhaustion or closed, or the handle leaks.
func OpenDir(p Path) (*DirIterator, error) {
	h, err := system.OpenDir(p.String())
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrOpenDir, p, err)
	}
	it := &DirIterator{handle: h, dir: p}
	it.Advance()
	return it, nil
}

// End returns the sentinel every exhausted iterator compares equal to.
func End() *DirIterator {
	return &DirIterator{}
}

// Advance moves to the next entry. Past the last entry the handle is
// released and the iterator becomes the end sentinel. Advancing an end
// iterator is a no-op.
func (it *DirIterator) Advance() {
	if it.handle == nil {
		return
	}
	name, err := it.handle.ReadName()
	if err != nil {
		it.handle.Close()
		it.handle = nil
		it.name = ""
		return
	}
	it.name = name
}

// AtEnd reports whether the stream is exhausted.
func (it *DirIterator) AtEnd() bool {
	return it.handle == nil
}

// Entry returns the entry at the current position, composed as
// directory/name. Only valid while not at end.
func (it *DirIterator) Entry() DirEntry {
	if it.AtEnd() {
		panic("pathfs: Entry on exhausted DirIterator")
	}
	return DirEntry{p: it.dir.Join(New(it.name))}
}

// Equal reports iterator equality: every end iterator equals every other
// end iterator no matter which directory produced it, while live iterators
// are equal only when handle identity, position and directory all match.
// Supports the it.Equal(End()) loop-termination idiom.
func (it *DirIterator) Equal(other *DirIterator) bool {
	if it.AtEnd() && other.AtEnd() {
		return true
	}
	return it.handle == other.handle && it.name == other.name && it.dir.String() == other.dir.String()
}

// Close releases the handle early. Safe to call repeatedly and after
// exhaustion.
func (it *DirIterator) Close() {
	if it.handle == nil {
		return
	}
	it.handle.Close()
	it.handle = nil
	it.name = ""
}
