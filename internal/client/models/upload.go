package models

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Upload is one selected file.
type Upload struct {
	Name    string
	Content io.Reader
}

// UploadFromFile reads path into memory. Assets are images, small enough
// to buffer.
func UploadFromFile(path string) (Upload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Upload{}, fmt.Errorf("read %s: %w", path, err)
	}
	return Upload{Name: filepath.Base(path), Content: bytes.NewReader(data)}, nil
}
