// Package pathfs is a small, portable filesystem-path toolkit: a textual
// path algebra (composition, decomposition, canonicalization), thin
// predicates over the OS, a lazy directory iterator, and an iterative
// recursive remover with bounded stack depth.
//
// Path text is kept byte-for-byte as given except where canonicalization is
// explicitly requested. The process working directory and the active path
// Convention are process-wide mutable state; the package performs no
// synchronization around them, so callers mixing SetCurrentPath or
// SetConvention with relative-path resolution on other goroutines must
// serialize access themselves.
package pathfs
