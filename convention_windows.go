//go:build windows

package pathfs

// Native is the path convention of the build platform.
var Native = Windows
