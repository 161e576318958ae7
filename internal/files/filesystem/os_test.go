package filesystem

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestOSFileSystem_ReadDir(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "b.csv"), []byte("x"), 0644)
	os.WriteFile(filepath.Join(dir, "a.csv"), []byte("x"), 0644)
	os.Mkdir(filepath.Join(dir, "sub"), 0755)

	p := NewOSFileSystem()

	entries, err := p.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("ReadDir() returned %d entries, want 3", len(entries))
	}
	if entries[0].Name() != "a.csv" || entries[1].Name() != "b.csv" {
		t.Errorf("ReadDir() not sorted: %s, %s", entries[0].Name(), entries[1].Name())
	}
	if !entries[2].IsDir() {
		t.Error("sub should be reported as a directory")
	}
}

func TestOSFileSystem_ReadDir_Nonexistent(t *testing.T) {
	p := NewOSFileSystem()

	_, err := p.ReadDir(filepath.Join(t.TempDir(), "nonexistent"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ReadDir(nonexistent) error = %v, want fs.ErrNotExist", err)
	}
}

func TestOSFileSystem_ReadDir_FileNotDirectory(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "file.csv")
	os.WriteFile(filePath, []byte("content"), 0644)

	p := NewOSFileSystem()

	if _, err := p.ReadDir(filePath); err == nil {
		t.Error("ReadDir(file) should return error")
	}
}

func TestOSFileSystem_ReadFile(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "ventas.csv")
	expected := "a,b\n1,2\n"
	os.WriteFile(filePath, []byte(expected), 0644)

	p := NewOSFileSystem()

	data, err := p.ReadFile(filePath)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != expected {
		t.Errorf("ReadFile() = %q, want %q", string(data), expected)
	}
}

func TestOSFileSystem_Stat(t *testing.T) {
	dir := t.TempDir()
	p := NewOSFileSystem()

	info, err := p.Stat(dir)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if !info.IsDir() {
		t.Error("Stat(dir).IsDir() = false")
	}

	_, err = p.Stat(filepath.Join(dir, "missing"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Stat(missing) error = %v, want fs.ErrNotExist", err)
	}
}

func TestOSFileSystem_Join(t *testing.T) {
	p := NewOSFileSystem()
	if got := p.Join("data", "a.csv"); got != filepath.Join("data", "a.csv") {
		t.Errorf("Join() = %q", got)
	}
}
