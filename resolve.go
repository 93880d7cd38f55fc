package pathfs

import "fmt"

// Complete resolves p against the current working directory. Absolute paths
// are returned unchanged and an empty p yields the working directory
// itself. Fails when the working directory cannot be obtained.
func Complete(p Path) (Path, error) {
	if convention.IsAbs(p.s) {
		return p, nil
	}
	wd, err := system.Getwd()
	if err != nil {
		return Path{}, fmt.Errorf("%w: %v", ErrWorkingDir, err)
	}
	if p.IsEmpty() {
		return New(wd), nil
	}
	return New(wd).Join(p), nil
}

// Canonical returns the absolute, separator-normalized form of p with
// duplicate separators and "." segments collapsed. ".." segments pass
// through untouched. Canonicalizing a canonical path is a no-op.
func Canonical(p Path) (Path, error) {
	abs, err := Complete(p)
	if err != nil {
		return Path{}, err
	}
	s := convention.Normalize(abs.s)
	return Path{s: collapse(s)}, nil
}

// collapse removes empty and "." segments from an absolute, normalized
// path, scanning left to right and re-examining the current position after
// each removal so a newly abutting dot-segment is caught. The scan never
// reaches into the root marker: the leading separator (or drive root)
// always survives.
func collapse(s string) string {
	root := convention.rootLen(s)
	for i := root; i < len(s); {
		if s[i-1] != '/' {
			i++
			continue
		}
		if s[i] == '/' {
			s = s[:i] + s[i+1:]
			continue
		}
		if s[i] == '.' {
			if i == len(s)-1 {
				if i-1 < root {
					return s[:root]
				}
				return s[:i-1]
			}
			if s[i+1] == '/' {
				s = s[:i] + s[i+2:]
				continue
			}
		}
		i++
	}
	return s
}
