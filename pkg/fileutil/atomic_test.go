package fileutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

func TestAtomicWriteFile(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		perm os.FileMode
	}{
		{"shell config", []byte("alias ll=\"ls -la\"\n"), 0o644},
		{"empty data", []byte{}, 0o600},
		{"private file", []byte("export PATH=\"$PATH:/opt/bin\"\n"), 0o600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewOsFs()
			path := filepath.Join(t.TempDir(), ".zshrc")

			if err := AtomicWriteFile(fs, path, tt.data, tt.perm); err != nil {
				t.Fatalf("AtomicWriteFile() error = %v", err)
			}

			got, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("reading file: %v", err)
			}
			if string(got) != string(tt.data) {
				t.Errorf("content = %q, want %q", got, tt.data)
			}

			info, err := os.Stat(path)
			if err != nil {
				t.Fatalf("stat: %v", err)
			}
			if gotPerm := info.Mode().Perm(); gotPerm != tt.perm {
				t.Errorf("permissions = %o, want %o", gotPerm, tt.perm)
			}
		})
	}
}

func TestAtomicWriteFile_MemFs(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := fs.MkdirAll("/home/u", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := afero.WriteFile(fs, "/home/u/.bashrc", []byte("old\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := AtomicWriteFile(fs, "/home/u/.bashrc", []byte("new\n"), 0o644); err != nil {
		t.Fatalf("AtomicWriteFile() error = %v", err)
	}

	got, err := afero.ReadFile(fs, "/home/u/.bashrc")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "new\n" {
		t.Errorf("content = %q, want %q", got, "new\n")
	}

	entries, err := afero.ReadDir(fs, "/home/u")
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
}

func TestAtomicWriteFile_DirectoryNotExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "file")

	if err := AtomicWriteFile(afero.NewOsFs(), path, []byte("x"), 0o600); err == nil {
		t.Error("expected error for nonexistent directory")
	}
}

func TestFileMode(t *testing.T) {
	fs := afero.NewOsFs()
	path := filepath.Join(t.TempDir(), "rc")
	if err := os.WriteFile(path, nil, 0o640); err != nil {
		t.Fatal(err)
	}

	if got := FileMode(fs, path, 0o600); got != 0o640 {
		t.Errorf("FileMode() = %o, want 640", got)
	}
	if got := FileMode(fs, path+".missing", 0o600); got != 0o600 {
		t.Errorf("FileMode() fallback = %o, want 600", got)
	}
}

func TestReadFileWithLimit(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/rc", []byte("alias g=git\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := ReadFileWithLimit(fs, "/rc")
	if err != nil {
		t.Fatalf("ReadFileWithLimit() error = %v", err)
	}
	if string(got) != "alias g=git\n" {
		t.Errorf("content = %q", got)
	}

	if _, err := ReadFileWithLimit(fs, "/missing"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestReadFileWithLimit_TooLarge(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/big", make([]byte, MaxFileSize+1), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := ReadFileWithLimit(fs, "/big"); err != ErrFileTooLarge {
		t.Errorf("ReadFileWithLimit() error = %v, want ErrFileTooLarge", err)
	}
}
