// Package storage wraps the filesystem the record stores persist to. The
// stores never touch the OS filesystem directly; they go through a Storage
// built on an afero.Fs, so tests run against an in-memory filesystem and
// production runs against the real one.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

type Storage struct {
	fs afero.Fs
}

func New(fs afero.Fs) *Storage {
	return &Storage{fs: fs}
}

// NewOS returns a Storage over the operating system filesystem.
func NewOS() *Storage {
	return &Storage{fs: afero.NewOsFs()}
}

// ReadLines returns the lines of the file at path, without trailing
// newlines. A file that does not exist yet is an expected startup state and
// yields (nil, nil), not an error.
func (s *Storage) ReadLines(path string) ([]string, error) {
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	raw := strings.Split(string(data), "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// WriteLines rewrites the file at path from lines, one record per line with
// a trailing newline. The content is written to a temporary file in the same
// directory and renamed over the target, so a concurrent reader never
// observes a truncated file.
func (s *Storage) WriteLines(path string, lines []string) error {
	dir := filepath.Dir(path)
	if err := s.fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create dir %s: %w", dir, err)
	}

	tmp, err := afero.TempFile(s.fs, dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	if _, err := tmp.WriteString(b.String()); err != nil {
		tmp.Close()
		s.fs.Remove(tmpName)
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		s.fs.Remove(tmpName)
		return fmt.Errorf("close %s: %w", tmpName, err)
	}

	if err := s.fs.Rename(tmpName, path); err != nil {
		s.fs.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}

// AppendLine appends one record to the file at path, creating it if absent.
// Existing content is never rewritten; each call writes a single
// newline-terminated line.
func (s *Storage) AppendLine(path string, line string) error {
	if err := s.fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create dir %s: %w", filepath.Dir(path), err)
	}

	f, err := s.fs.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s for append: %w", path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(line + "\n"); err != nil {
		return fmt.Errorf("append to %s: %w", path, err)
	}
	return nil
}
