package reader

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Document is the raw content of one payload file.
type Document struct {
	Source string
	Data   []byte
}

type Reader interface {
	Read(ctx context.Context) (<-chan Document, <-chan error)
}

// FileReader reads a single payload file, or every *.json file below a directory.
type FileReader struct {
	path   string
	logger *zap.Logger
}

func NewFileReader(path string, logger *zap.Logger) *FileReader {
	return &FileReader{
		path:   path,
		logger: logger,
	}
}

func (r *FileReader) Read(ctx context.Context) (<-chan Document, <-chan error) {
	docsChan := make(chan Document)
	errChan := make(chan error, 1)

	go func() {
		defer close(docsChan)
		defer close(errChan)

		info, err := os.Stat(r.path)
		if err != nil {
			errChan <- fmt.Errorf("access path error: %w", err)
			return
		}

		if !info.IsDir() {
			r.logger.Info("reading payload file", zap.String("file", r.path))
			if err := r.send(ctx, docsChan, r.path); err != nil {
				errChan <- err
			}
			return
		}

		err = filepath.WalkDir(r.path, func(filePath string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() || !strings.EqualFold(filepath.Ext(d.Name()), ".json") {
				return nil
			}

			r.logger.Info("reading payload file", zap.String("file", d.Name()))
			return r.send(ctx, docsChan, filePath)
		})
		if err != nil {
			errChan <- fmt.Errorf("list files in path error: %w", err)
		}
	}()

	return docsChan, errChan
}

func (r *FileReader) send(ctx context.Context, docsChan chan<- Document, filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("read file error %s: %w", filePath, err)
	}

	select {
	case docsChan <- Document{Source: filePath, Data: data}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
