package fileutil

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zip"
)

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "out.jdx")

	if err := WriteFileAtomic(path, []byte("first"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := WriteFileAtomic(path, []byte("second"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "second" {
		t.Fatalf("content mismatch: got %q, want %q", got, "second")
	}
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("temp files left behind: %v", entries)
	}
}

func TestWriteZip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "edited.zip")
	err := WriteZip(path, []ZipEntry{
		{Name: "a_edited.jdx", Data: []byte("##TITLE=a")},
		{Name: "b_edited.jdx", Data: []byte("##TITLE=b")},
		{Name: "a_edited.jdx", Data: []byte("##TITLE=a2")},
	})
	if err != nil {
		t.Fatal(err)
	}

	reader, err := zip.OpenReader(path)
	if err != nil {
		t.Fatal(err)
	}
	defer reader.Close()

	got := map[string]string{}
	for _, f := range reader.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatal(err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatal(err)
		}
		got[f.Name] = string(data)
	}
	want := map[string]string{
		"a_edited.jdx":   "##TITLE=a",
		"b_edited.jdx":   "##TITLE=b",
		"a_edited_2.jdx": "##TITLE=a2",
	}
	if len(got) != len(want) {
		t.Fatalf("unexpected entries: %v", got)
	}
	for name, content := range want {
		if got[name] != content {
			t.Fatalf("entry %s: got %q, want %q", name, got[name], content)
		}
	}
}

func TestUniqueName(t *testing.T) {
	used := map[string]int{}
	got := []string{
		UniqueName(used, "out/a_edited.jdx"),
		UniqueName(used, "out/a_edited.jdx"),
		UniqueName(used, "out/b_edited.jdx"),
		UniqueName(used, "out/a_edited.jdx"),
	}
	want := []string{"out/a_edited.jdx", "out/a_edited_2.jdx", "out/b_edited.jdx", "out/a_edited_3.jdx"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("call %d: got %q, want %q", i, got[i], want[i])
		}
	}
}
