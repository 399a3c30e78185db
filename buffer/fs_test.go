package buffer

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestOSFS_WriteFile_CreatesWith0644(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.txt")

	if err := (OSFS{}).WriteFile(path, []byte("hi")); err != nil {
		t.Fatalf("write: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "hi" {
		t.Fatalf("data=%q, want %q", data, "hi")
	}
	fi, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := fi.Mode().Perm(); got != 0o644 {
		t.Fatalf("mode=%v, want 0644", got)
	}
}

func TestOSFS_WriteFile_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")

	for i := 0; i < 3; i++ {
		if err := (OSFS{}).WriteFile(path, []byte("v")); err != nil {
			t.Fatalf("write %d: %v", i, err)
		}
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("dir entries=%d, want 1", len(entries))
	}
}

func TestOSFS_WriteFile_MissingDirFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "a.txt")

	err := (OSFS{}).WriteFile(path, []byte("v"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("err=%v, want fs.ErrNotExist", err)
	}
}

func TestOSFS_WriteFile_RejectsDirectory(t *testing.T) {
	dir := t.TempDir()

	if err := (OSFS{}).WriteFile(dir, []byte("v")); err == nil {
		t.Fatalf("expected writing over a directory to fail")
	}
}
