// Package storage provides file persistence for uploaded documents and images.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalStore saves uploaded files under a root directory on the local
// filesystem. Stored filenames are randomized to avoid collisions and
// to never trust client-supplied names.
type LocalStore struct {
	root string
}

// NewLocalStore creates a LocalStore rooted at root.
// If root is empty, "./uploads" is used.
func NewLocalStore(root string) *LocalStore {
	if root == "" {
		root = "./uploads"
	}
	return &LocalStore{root: root}
}

// Save writes the contents of r into dir under the store root and returns
// the relative path of the stored file, e.g. "resumes/3f2a....pdf".
// Only the extension of the original filename is preserved.
func (s *LocalStore) Save(dir, filename string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	name := uuid.New().String() + ext

	absDir := filepath.Join(s.root, dir)
	if err := os.MkdirAll(absDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	f, err := os.Create(filepath.Join(absDir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return filepath.ToSlash(filepath.Join(dir, name)), nil
}
