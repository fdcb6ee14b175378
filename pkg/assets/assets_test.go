package assets

import (
	"io/fs"
	"sort"
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"templates/pages/catalog.html": {Data: []byte(`{{define "catalog-page"}}{{end}}`)},
		"templates/partials/head.html": {Data: []byte(`{{define "head"}}{{end}}`)},
		"templates/static/styles.css":  {Data: []byte("body{}")},
	}
}

func TestValidateFS(t *testing.T) {
	fsys := testFS()

	if err := ValidateFS(fsys, "templates"); err != nil {
		t.Errorf("ValidateFS() error = %v", err)
	}
	if err := ValidateFS(fsys, ""); err != nil {
		t.Errorf("ValidateFS(root) error = %v", err)
	}
	if err := ValidateFS(fsys, "missing"); err == nil {
		t.Error("ValidateFS(missing) expected error")
	}
	if err := ValidateFS(nil, "templates"); err == nil {
		t.Error("ValidateFS(nil) expected error")
	}
}

func TestValidateFS_EmptyDir(t *testing.T) {
	fsys := fstest.MapFS{
		"templates/pages": {Mode: fs.ModeDir | 0o755},
	}
	if err := ValidateFS(fsys, "templates"); err == nil {
		t.Error("ValidateFS() on empty directory expected error")
	}
}

func TestListFiles(t *testing.T) {
	files, err := ListFiles(fstest.MapFS{
		"templates/pages/catalog.html": {Data: []byte("x")},
		"templates/static/styles.css":  {Data: []byte("y")},
		"other/readme.txt":             {Data: []byte("z")},
	}, "templates")
	if err != nil {
		t.Fatalf("ListFiles() error = %v", err)
	}
	sort.Strings(files)
	want := []string{"templates/pages/catalog.html", "templates/static/styles.css"}
	if len(files) != len(want) {
		t.Fatalf("ListFiles() = %v, want %v", files, want)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Errorf("ListFiles()[%d] = %s, want %s", i, files[i], want[i])
		}
	}

	count, err := CountFiles(testFS(), "templates/pages")
	if err != nil {
		t.Fatalf("CountFiles() error = %v", err)
	}
	if count != 1 {
		t.Errorf("CountFiles() = %d, want 1", count)
	}
}
