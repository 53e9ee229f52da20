package writer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"catalogtree/converter/internal/domain"

	log "github.com/sirupsen/logrus"
)

// Writer persists the generated navigation tree.
type Writer interface {
	Write(root domain.Node) (string, error)
}

type fileWriter struct {
	path string
}

func NewFileWriter(path string) Writer {
	return &fileWriter{
		path: path,
	}
}

// Encode renders the tree as indented JSON with Unicode and HTML characters
// left unescaped and no trailing newline.
func Encode(root domain.Node) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(root); err != nil {
		return nil, fmt.Errorf("failed to encode catalog tree: %w", err)
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Write replaces the destination file atomically and returns its path.
func (w *fileWriter) Write(root domain.Node) (string, error) {
	data, err := Encode(root)
	if err != nil {
		return "", err
	}

	dir := filepath.Dir(w.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: failed to create %s: %v", domain.ErrWrite, dir, err)
	}

	if err := writeAtomic(w.path, data); err != nil {
		return "", fmt.Errorf("%w: %s: %v", domain.ErrWrite, w.path, err)
	}

	log.Debugf("Wrote %d bytes to %s", len(data), w.path)
	return w.path, nil
}

func writeAtomic(dest string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(dest), ".catalog-*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, dest); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}

	return nil
}
