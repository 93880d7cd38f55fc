package pathfs

import "strings"

// Convention is the platform path policy: which bytes separate segments and
// what an absolute-path root marker looks like. It is a plain value so a
// non-native convention can be exercised on any platform.
type Convention struct {
	name         string
	acceptBack   bool // treat '\' as a separator, normalized to '/'
	driveLetters bool // recognize "C:/" style roots
}

var (
	// Posix accepts '/' only; the root marker is a leading separator.
	Posix = Convention{name: "posix"}

	// Windows accepts '/' and '\'; the root marker is a drive letter,
	// ':' and a separator.
	Windows = Convention{name: "windows", acceptBack: true, driveLetters: true}
)

// convention is the active policy. Like the working directory it is
// process-wide mutable state with no synchronization.
var convention = Native

// SetConvention replaces the active path convention for the whole process.
func SetConvention(c Convention) {
	convention = c
}

// CurrentConvention returns the active path convention.
func CurrentConvention() Convention {
	return convention
}

func (c Convention) String() string {
	return c.name
}

// IsSeparator reports whether b separates path segments under c.
func (c Convention) IsSeparator(b byte) bool {
	return b == '/' || (c.acceptBack && b == '\\')
}

// LastSeparator returns the index of the last separator in s, or -1.
func (c Convention) LastSeparator(s string) int {
	i := strings.LastIndexByte(s, '/')
	if c.acceptBack {
		if j := strings.LastIndexByte(s, '\\'); j > i {
			i = j
		}
	}
	return i
}

// Normalize rewrites every accepted separator to '/'.
func (c Convention) Normalize(s string) string {
	if !c.acceptBack {
		return s
	}
	return strings.ReplaceAll(s, "\\", "/")
}

// IsAbs reports whether s starts with the convention's root marker.
func (c Convention) IsAbs(s string) bool {
	if c.driveLetters {
		return len(s) >= 3 && isDriveLetter(s[0]) && s[1] == ':' && c.IsSeparator(s[2])
	}
	return len(s) > 0 && c.IsSeparator(s[0])
}

// rootLen returns the length of the root marker prefix of an absolute,
// separator-normalized path: 3 for a drive root, otherwise 1.
func (c Convention) rootLen(s string) int {
	if c.driveLetters && len(s) >= 3 && isDriveLetter(s[0]) && s[1] == ':' && s[2] == '/' {
		return 3
	}
	return 1
}

// isDriveRoot reports whether the last separator position i marks a
// drive-letter root such as "C:/".
func (c Convention) isDriveRoot(s string, i int) bool {
	return c.driveLetters && len(s) >= 3 && isDriveLetter(s[0]) && s[1] == ':' && i == 2
}

func isDriveLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
