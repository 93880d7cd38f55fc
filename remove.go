package pathfs

// Remove deletes a single file or empty directory, reporting success.
// Failure is an ordinary return value, never a panic.
func Remove(p Path) bool {
	if IsDirectory(p) {
		if system.Rmdir(p.String()) != nil {
			return false
		}
		logger.VerbosePrintf("rmdir %s\n", p)
		return true
	}
	if system.Unlink(p.String()) != nil {
		return false
	}
	logger.VerbosePrintf("unlink %s\n", p)
	return true
}

// frame is one pending directory on the explicit traversal stack.
type frame struct {
	it  *DirIterator
	dir Path
}

// RemoveAll deletes p and, when p is a directory, everything beneath it.
// The traversal keeps its own stack of (iterator, path) frames instead of
// recursing, so arbitrarily deep trees cannot exhaust the call stack, and a
// directory is only removed after all of its descendants. The first failed
// deletion aborts the whole operation with a false return; nothing already
// deleted is restored. Open handles are released on every exit path.
func RemoveAll(p Path) bool {
	if !IsDirectory(p) {
		return Remove(p)
	}

	root, err := OpenDir(p)
	if err != nil {
		return false
	}
	stack := []frame{{it: root, dir: p}}
	defer func() {
		for _, f := range stack {
			f.it.Close()
		}
	}()

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		// Scan the frame: files go immediately, subdirectories are
		// deferred so they become new stack frames rather than
		// recursive calls.
		var subdirs []frame
		for ; !top.it.AtEnd(); top.it.Advance() {
			child := top.it.Entry().Path()
			name := child.Filename().String()
			if name == "." || name == ".." {
				continue
			}
			if IsDirectory(child) {
				sub, err := OpenDir(child)
				if err != nil {
					closeFrames(subdirs)
					return false
				}
				subdirs = append(subdirs, frame{it: sub, dir: child})
			} else if !Remove(child) {
				closeFrames(subdirs)
				return false
			}
		}

		if len(subdirs) == 0 {
			// The frame's subtree is gone; the directory itself is
			// empty now. A frame revisited after its children were
			// processed lands here with an exhausted iterator.
			if !Remove(top.dir) {
				return false
			}
			stack = stack[:len(stack)-1]
		} else {
			stack = append(stack, subdirs...)
		}
	}
	return true
}

func closeFrames(frames []frame) {
	for _, f := range frames {
		f.it.Close()
	}
}
