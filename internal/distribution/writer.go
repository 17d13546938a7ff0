package distribution

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/goodnatureofminers/exposurewarn-backend/internal/model"
)

const indexFileName = "index"

type hourPackage struct {
	Hour    uint32 `json:"hour"`
	Records any    `json:"records"`
}

// FileWriter writes unsigned JSON documents below a root directory:
// <dir>/<hour>/index for packages and <dir>/index for the directory index.
type FileWriter struct {
	root string
}

func NewFileWriter(root string) (*FileWriter, error) {
	if root == "" {
		return nil, errors.New("output directory is required")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	return &FileWriter{root: root}, nil
}

func (w *FileWriter) WritePackage(_ context.Context, dir string, hour uint32, records any) error {
	target := filepath.Join(w.root, filepath.FromSlash(dir), strconv.FormatUint(uint64(hour), 10), indexFileName)
	return writeJSON(target, hourPackage{Hour: hour, Records: records})
}

func (w *FileWriter) WriteIndex(_ context.Context, dir string, index model.HourIndex) error {
	target := filepath.Join(w.root, filepath.FromSlash(dir), indexFileName)
	return writeJSON(target, index)
}

// writeJSON replaces target atomically.
func writeJSON(target string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", target, err)
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("create directory of %s: %w", target, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), ".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", target, err)
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod %s: %w", target, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", target, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", target, err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		return fmt.Errorf("rename %s: %w", target, err)
	}
	return nil
}
