package testenv

import (
	"os"
	"path/filepath"
	"testing"
)

// TempName creates a temporary filename in a temporary directory.
// The temporary directory and contained files are automatically deleted during cleanup.
func TempName(t testing.TB, name ...string) (filename string) {
	filename = "temp"
	if len(name) > 0 {
		filename = name[0]
	}
	return filepath.Join(t.TempDir(), filename)
}

// WriteTempFile writes content to a temporary file and returns its filename.
func WriteTempFile(t testing.TB, content []byte, name ...string) (filename string) {
	filename = TempName(t, name...)
	if e := os.WriteFile(filename, content, 0o644); e != nil {
		t.Fatal(e)
	}
	return filename
}
