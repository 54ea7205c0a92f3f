//go:build unix

package main

import (
	"os"

	"golang.org/x/sys/unix"
)

// redirectStdIO points stdout and stderr at the given file. Dup2 rebinds the
// underlying descriptors, so panic stack traces and prints from any goroutine
// land in the file as well.
func redirectStdIO(path string) error {
	if path == "" {
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := unix.Dup2(int(f.Fd()), int(os.Stdout.Fd())); err != nil {
		return err
	}
	return unix.Dup2(int(f.Fd()), int(os.Stderr.Fd()))
}
