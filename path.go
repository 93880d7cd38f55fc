package pathfs

import "strings"

// Path wraps raw path text in the active convention. It is a plain value:
// copy it freely, nothing is cached, every operation recomputes from the
// text. Operations never touch the filesystem except Equal, which compares
// canonical absolute forms.
type Path struct {
	s string
}

// New wraps s as a Path without any normalization.
func New(s string) Path {
	return Path{s: s}
}

// String returns the raw path text.
func (p Path) String() string {
	return p.s
}

// IsEmpty reports whether the path holds no text.
func (p Path) IsEmpty() bool {
	return p.s == ""
}

// Len returns the length of the path text in bytes.
func (p Path) Len() int {
	return len(p.s)
}

// Clear resets the path to empty.
func (p *Path) Clear() {
	p.s = ""
}

// Concat appends other's text with no separator logic.
func (p Path) Concat(other Path) Path {
	return Path{s: p.s + other.s}
}

// Join appends other below p, inserting exactly one separator unless p
// already ends in one. Panics when p is empty: there is no trailing byte to
// inspect and no sensible result.
func (p Path) Join(other Path) Path {
	if p.s == "" {
		panic("pathfs: Join on empty path")
	}
	if convention.IsSeparator(p.s[len(p.s)-1]) {
		return Path{s: p.s + other.s}
	}
	return Path{s: p.s + "/" + other.s}
}

// Filename returns the text after the last separator, or the whole path
// when it contains none.
func (p Path) Filename() Path {
	i := convention.LastSeparator(p.s)
	if i < 0 {
		return p
	}
	return Path{s: p.s[i+1:]}
}

// Ext returns the extension from the last '.' (inclusive) to the end, or an
// empty path when no dot is present. The scan covers the whole text, not
// just the final segment, so a dotted directory name supplies the
// "extension" of a dotless filename. Kept for drop-in compatibility.
func (p Path) Ext() Path {
	i := strings.LastIndexByte(p.s, '.')
	if i < 0 {
		return Path{}
	}
	return Path{s: p.s[i:]}
}

// Stem returns the text before the last '.', or the whole path when no dot
// is present. Same whole-text scan as Ext.
func (p Path) Stem() Path {
	i := strings.LastIndexByte(p.s, '.')
	if i < 0 {
		return p
	}
	return Path{s: p.s[:i]}
}

// Parent returns the text before the last separator. A path with no
// separator has an empty parent. The filesystem root is its own parent:
// "/" stays "/", and a drive root such as "C:/" stays intact.
func (p Path) Parent() Path {
	i := convention.LastSeparator(p.s)
	if i < 0 {
		return Path{}
	}
	if convention.isDriveRoot(p.s, i) {
		return Path{s: p.s[:3]}
	}
	if i == 0 {
		return Path{s: p.s[:1]}
	}
	return Path{s: p.s[:i]}
}

// ReplaceExt returns p with everything from the last '.' onward replaced by
// ext. A '.' is inserted unless ext is empty or already carries one.
// ReplaceExt(Path{}) strips the extension.
func (p Path) ReplaceExt(ext Path) Path {
	s := p.s
	if i := strings.LastIndexByte(s, '.'); i >= 0 {
		s = s[:i]
	}
	if !ext.IsEmpty() && ext.s[0] != '.' {
		s += "."
	}
	return Path{s: s + ext.s}
}

// Equal compares the canonical absolute forms of both paths, so textually
// different spellings of the same location compare equal. When the working
// directory cannot be resolved (possible only for relative operands) the
// raw text is compared instead.
func (p Path) Equal(other Path) bool {
	a, err := Canonical(p)
	if err != nil {
		return p.s == other.s
	}
	b, err := Canonical(other)
	if err != nil {
		return p.s == other.s
	}
	return a.s == b.s
}

// Join composes s and p the way s.Join(p) would after promoting s to a Path.
func Join(s string, p Path) Path {
	return New(s).Join(p)
}

// Concat concatenates s and p with no separator logic.
func Concat(s string, p Path) Path {
	return New(s).Concat(p)
}

// EqualText compares s and p by canonical equality.
func EqualText(s string, p Path) bool {
	return New(s).Equal(p)
}

// Ext returns p.Ext(); free-function form for call sites that read better
// without the method chain.
func Ext(p Path) Path {
	return p.Ext()
}
