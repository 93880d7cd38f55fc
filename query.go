package pathfs

import (
	"fmt"
	"time"

	"github.com/portablefs/pathfs/internal/sysfs"
)

// system is the OS collaborator behind every filesystem-touching operation.
// Tests substitute a fake for failure injection.
var system sysfs.API = sysfs.Std{}

// Exists reports whether p refers to anything stat-able. The check is
// lstat-based: a dangling symlink still exists.
func Exists(p Path) bool {
	_, err := system.Lstat(p.s)
	return err == nil
}

// IsRegularFile reports whether p is a regular file. False on any stat
// failure.
func IsRegularFile(p Path) bool {
	info, err := system.Lstat(p.s)
	return err == nil && info.Regular
}

// IsDirectory reports whether p is a directory. False on any stat failure.
func IsDirectory(p Path) bool {
	info, err := system.Lstat(p.s)
	return err == nil && info.Dir
}

// LastWriteTime returns the modification time of p. Unlike the boolean
// predicates, a missing target is an error here.
func LastWriteTime(p Path) (time.Time, error) {
	info, err := system.Stat(p.s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %s: %v", ErrStat, p, err)
	}
	return info.ModTime, nil
}

// CreateDirectory makes the directory at p. Best effort: a pre-existing
// directory is not a failure and other errors are dropped, matching the
// fire-and-forget contract.
func CreateDirectory(p Path) {
	_ = system.Mkdir(p.s)
}

// CurrentPath returns the process working directory.
func CurrentPath() (Path, error) {
	wd, err := system.Getwd()
	if err != nil {
		return Path{}, fmt.Errorf("%w: %v", ErrWorkingDir, err)
	}
	return New(wd), nil
}

// SetCurrentPath changes the process working directory. The working
// directory is process-wide state; racing this against relative-path
// resolution on another goroutine is the caller's problem to serialize.
func SetCurrentPath(p Path) error {
	if err := system.Chdir(p.s); err != nil {
		return fmt.Errorf("%w %s: %v", ErrChangeDir, p, err)
	}
	logger.VerbosePrintf("chdir %s\n", p)
	return nil
}
