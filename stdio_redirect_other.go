//go:build !unix

package main

import "os"

// Fallback for platforms without Dup2. Swapping the os.Stdout/os.Stderr
// variables does not capture runtime-level output such as panics, but it
// keeps the flag functional everywhere.
func redirectStdIO(path string) error {
	if path == "" {
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	os.Stdout = f
	os.Stderr = f
	return nil
}
