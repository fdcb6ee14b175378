// Package assets inspects filesystems holding page templates and static
// files, so that a custom template set can be checked before it is layered
// over the embedded one.
package assets

import (
	"fmt"
	"io/fs"
)

// ValidateFS checks that rootPath exists in fsys and holds at least one file.
func ValidateFS(fsys fs.FS, rootPath string) error {
	if fsys == nil {
		return fmt.Errorf("filesystem is nil")
	}
	if rootPath == "" {
		rootPath = "."
	}

	if _, err := fs.Stat(fsys, rootPath); err != nil {
		return fmt.Errorf("root path %q does not exist in filesystem: %w", rootPath, err)
	}

	hasFiles := false
	err := fs.WalkDir(fsys, rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			hasFiles = true
			return fs.SkipAll
		}
		return nil
	})

	if err != nil {
		return fmt.Errorf("failed to walk filesystem: %w", err)
	}

	if !hasFiles {
		return fmt.Errorf("root path %q exists but contains no files", rootPath)
	}

	return nil
}

// ListFiles returns every file (not directory) under rootPath.
func ListFiles(fsys fs.FS, rootPath string) ([]string, error) {
	if rootPath == "" {
		rootPath = "."
	}

	var fileList []string
	err := fs.WalkDir(fsys, rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			fileList = append(fileList, path)
		}
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to walk filesystem: %w", err)
	}

	return fileList, nil
}

// CountFiles returns the number of files under rootPath.
func CountFiles(fsys fs.FS, rootPath string) (int, error) {
	fileList, err := ListFiles(fsys, rootPath)
	if err != nil {
		return 0, err
	}
	return len(fileList), nil
}
