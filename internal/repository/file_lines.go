package repository

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// FileLineStore keeps lines in a plain text file, one per line.
type FileLineStore struct {
	path string
}

// NewFileLineStore creates a FileLineStore for path. The file is not touched
// until the first operation.
func NewFileLineStore(path string) *FileLineStore {
	return &FileLineStore{path: path}
}

// Path returns the backing file path.
func (s *FileLineStore) Path() string {
	return s.path
}

func (s *FileLineStore) ReadAll(ctx context.Context) ([]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, s.wrap("reading", err)
	}
	return splitLines(string(data)), nil
}

// Append adds lines to the end of the file. If the file does not end with a
// newline one is inserted first so the new lines never merge into the last
// existing one.
func (s *FileLineStore) Append(ctx context.Context, lines ...string) error {
	if len(lines) == 0 {
		return nil
	}
	f, err := os.OpenFile(s.path, os.O_RDWR|os.O_APPEND, 0)
	if err != nil {
		return s.wrap("opening", err)
	}
	defer f.Close()

	prefix, err := missingNewline(f)
	if err != nil {
		return s.wrap("inspecting", err)
	}
	if _, err := f.WriteString(prefix + joinLines(lines)); err != nil {
		return s.wrap("appending to", err)
	}
	return nil
}

// OverwriteAll replaces the file contents through a temporary file and a
// rename, so a failed write leaves the previous contents intact.
func (s *FileLineStore) OverwriteAll(ctx context.Context, lines []string) error {
	info, err := os.Stat(s.path)
	if err != nil {
		return s.wrap("overwriting", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), "."+filepath.Base(s.path)+".*")
	if err != nil {
		return fmt.Errorf("creating temp file for %s: %w", s.path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(joinLines(lines)); err != nil {
		tmp.Close()
		return fmt.Errorf("writing temp file for %s: %w", s.path, err)
	}
	if err := tmp.Chmod(info.Mode().Perm()); err != nil {
		tmp.Close()
		return fmt.Errorf("setting mode on temp file for %s: %w", s.path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file for %s: %w", s.path, err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replacing %s: %w", s.path, err)
	}
	return nil
}

// Ensure creates the file with initial lines if it does not exist. An
// existing file is left untouched.
func (s *FileLineStore) Ensure(ctx context.Context, initial []string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", s.path, err)
	}
	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if errors.Is(err, fs.ErrExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("creating %s: %w", s.path, err)
	}
	defer f.Close()
	if _, err := f.WriteString(joinLines(initial)); err != nil {
		return fmt.Errorf("initializing %s: %w", s.path, err)
	}
	return nil
}

func (s *FileLineStore) wrap(op string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%s %s: %w", op, s.path, ErrStoreNotFound)
	}
	return fmt.Errorf("%s %s: %w", op, s.path, err)
}

func missingNewline(f *os.File) (string, error) {
	info, err := f.Stat()
	if err != nil {
		return "", err
	}
	if info.Size() == 0 {
		return "", nil
	}
	last := make([]byte, 1)
	if _, err := f.ReadAt(last, info.Size()-1); err != nil && err != io.EOF {
		return "", err
	}
	if last[0] == '\n' {
		return "", nil
	}
	return "\n", nil
}
