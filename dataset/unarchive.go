package dataset

import (
	"archive/zip"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pierrec/lz4"
)

// Open returns a reader over the decompressed contents of filePath.
// .gz, .lz4 and .zip are unpacked on the fly; a zip yields its largest file.
func Open(filePath string) (io.ReadCloser, error) {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".zip":
		return openZip(filePath)
	case ".gz":
		return openGzip(filePath)
	case ".lz4":
		return openLZ4(filePath)
	}
	return os.Open(filePath)
}

type multiCloser struct {
	io.Reader
	closers []io.Closer
}

// Close closes in reverse order of opening and reports the first error.
func (m *multiCloser) Close() error {
	var first error
	for i := len(m.closers) - 1; i >= 0; i-- {
		if err := m.closers[i].Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func openZip(filePath string) (io.ReadCloser, error) {
	r, err := zip.OpenReader(filePath)
	if err != nil {
		return nil, err
	}

	var largestFile *zip.File
	var largestSize uint64
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		if largestFile == nil || f.UncompressedSize64 > largestSize {
			largestFile = f
			largestSize = f.UncompressedSize64
		}
	}
	if largestFile == nil {
		r.Close()
		return nil, errors.New("zip archive contains no files: " + filePath)
	}

	rc, err := largestFile.Open()
	if err != nil {
		r.Close()
		return nil, fmt.Errorf("open %s in %s: %w", largestFile.Name, filePath, err)
	}
	return &multiCloser{Reader: rc, closers: []io.Closer{r, rc}}, nil
}

func openGzip(filePath string) (io.ReadCloser, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	gr, err := gzip.NewReader(file)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("gzip %s: %w", filePath, err)
	}
	return &multiCloser{Reader: gr, closers: []io.Closer{file, gr}}, nil
}

func openLZ4(filePath string) (io.ReadCloser, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	return &multiCloser{Reader: lz4.NewReader(file), closers: []io.Closer{file}}, nil
}
