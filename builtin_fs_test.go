package whale

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"
)

func TestReadWriteAppendMacros(t *testing.T) {
	path := filepath.Join(t.TempDir(), "note.txt")
	context := NewVariableMap()
	if err := context.SetValue("path", Str(path)); err != nil {
		t.Fatal(err)
	}

	if _, err := EvaluateWithContext(`write((path, "one"))`, context); err != nil {
		t.Fatal(err)
	}
	if _, err := EvaluateWithContext(`append((path, " two"))`, context); err != nil {
		t.Fatal(err)
	}
	contents, err := EvaluateWithContext("read(path)", context)
	if err != nil {
		t.Fatal(err)
	}
	wantStr(t, contents, "one two")
}

func TestFileExistsAndMetadataMacros(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.bin")
	if err := os.WriteFile(path, []byte("12345"), 0o644); err != nil {
		t.Fatal(err)
	}
	context := NewVariableMap()
	if err := context.SetValue("path", Str(path)); err != nil {
		t.Fatal(err)
	}

	exists, err := EvaluateWithContext("file_exists(path)", context)
	if err != nil {
		t.Fatal(err)
	}
	wantBool(t, exists, true)

	missing, err := EvaluateWithContext(`file_exists("`+filepath.Join(dir, "nope")+`")`, context)
	if err != nil {
		t.Fatal(err)
	}
	wantBool(t, missing, false)

	metadata, err := EvaluateWithContext("metadata(path)", context)
	if err != nil {
		t.Fatal(err)
	}
	fields, err := metadata.AsMap()
	if err != nil {
		t.Fatal(err)
	}
	size, _, err := fields.GetValue("size")
	if err != nil {
		t.Fatal(err)
	}
	wantInt(t, size, 5)
	isDir, _, err := fields.GetValue("is_directory")
	if err != nil {
		t.Fatal(err)
	}
	wantBool(t, isDir, false)
}

func TestReadDirMacro(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 3; i++ {
		name := filepath.Join(dir, "file"+strconv.Itoa(i))
		if err := os.WriteFile(name, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	context := NewVariableMap()
	if err := context.SetValue("dir", Str(dir)); err != nil {
		t.Fatal(err)
	}
	listing, err := EvaluateWithContext("read_dir(dir)", context)
	if err != nil {
		t.Fatal(err)
	}
	table, err := listing.AsTable()
	if err != nil {
		t.Fatal(err)
	}
	if table.Len() != 3 {
		t.Fatalf("want 3 entries, got %d", table.Len())
	}
	wantStr(t, table.Rows()[0][0], "file0")
}

func TestMakeDirMoveRemoveMacros(t *testing.T) {
	dir := t.TempDir()
	context := NewVariableMap()
	if err := context.SetValue("dir", Str(dir)); err != nil {
		t.Fatal(err)
	}
	if err := context.SetValue("nested", Str(filepath.Join(dir, "a", "b"))); err != nil {
		t.Fatal(err)
	}

	if _, err := EvaluateWithContext("make_dir(nested)", context); err != nil {
		t.Fatal(err)
	}
	if info, err := os.Stat(filepath.Join(dir, "a", "b")); err != nil || !info.IsDir() {
		t.Fatalf("nested directory missing: %v", err)
	}

	source := filepath.Join(dir, "src.txt")
	target := filepath.Join(dir, "dst.txt")
	if err := os.WriteFile(source, []byte("move me"), 0o644); err != nil {
		t.Fatal(err)
	}
	context.SetValue("src", Str(source))
	context.SetValue("dst", Str(target))
	if _, err := EvaluateWithContext("move((src, dst))", context); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(source); !os.IsNotExist(err) {
		t.Fatal("the source must be gone after a move")
	}

	if _, err := EvaluateWithContext("remove(dst)", context); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(target); !os.IsNotExist(err) {
		t.Fatal("the target must be gone after a remove")
	}
}
