package pathfs

import "errors"

// Error kinds for the operations that must fail loudly rather than return a
// sentinel value. Wrapped with context at the failure site; match with
// errors.Is.
var (
	ErrWorkingDir = errors.New("cannot resolve working directory")
	ErrOpenDir    = errors.New("cannot open directory")
	ErrChangeDir  = errors.New("cannot change directory")
	ErrStat       = errors.New("cannot stat path")
)
