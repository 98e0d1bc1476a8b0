package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var ErrInvalidName = errors.New("storage: invalid file name")

// Downloads writes user downloads into a single local directory.
type Downloads struct {
	dir string
}

// NewDownloads prepares dir, creating it when missing. An empty dir means the
// working directory.
func NewDownloads(dir string) (*Downloads, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: ensure download dir: %w", err)
	}
	return &Downloads{dir: dir}, nil
}

func (d *Downloads) Dir() string {
	return d.dir
}

// Save writes data under name, replacing an earlier file of the same name.
// The file is written to a temporary sibling first so readers never observe
// a partial image.
func (d *Downloads) Save(name string, data []byte) (string, error) {
	if err := checkName(name); err != nil {
		return "", err
	}
	tmp, err := os.CreateTemp(d.dir, "."+name+".*")
	if err != nil {
		return "", fmt.Errorf("storage: create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("storage: write file: %w", err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return "", fmt.Errorf("storage: chmod file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("storage: close file: %w", err)
	}

	path := filepath.Join(d.dir, name)
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("storage: move file into place: %w", err)
	}
	return path, nil
}

// checkName only admits plain file names so saves cannot leave the directory.
func checkName(name string) error {
	if name == "" || name == "." || name == ".." ||
		strings.ContainsAny(name, `/\`) || filepath.Base(name) != name {
		return ErrInvalidName
	}
	return nil
}
