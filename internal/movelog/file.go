package movelog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lgbarn/cmdchess-go/internal/chess"
	"github.com/lgbarn/cmdchess-go/internal/errors"
)

// Extension is appended to log names that lack it.
const Extension = ".txt"

// FileName validates a log name typed by a player and adds the extension.
// Empty names and names containing ':' are rejected.
func FileName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.Contains(name, ":") {
		return "", fmt.Errorf("log name %q: %w", name, errors.ErrInvalidLog)
	}
	if !strings.HasSuffix(name, Extension) {
		name += Extension
	}
	return name, nil
}

// Path returns where the log called name lives under dir.
func Path(dir, name string) (string, error) {
	file, err := FileName(name)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, file), nil
}

// Save writes the move table of records to dir, creating the folder when
// needed, and returns the path written.
func Save(dir, name string, records []chess.MoveRecord) (string, error) {
	path, err := Path(dir, name)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrapf(err, "creating %s", dir)
	}
	f, err := os.Create(path)
	if err != nil {
		return "", errors.Wrapf(err, "saving %s", path)
	}
	if err := Write(f, records); err != nil {
		f.Close()
		return "", errors.Wrapf(err, "saving %s", path)
	}
	if err := f.Close(); err != nil {
		return "", errors.Wrapf(err, "saving %s", path)
	}
	return path, nil
}
