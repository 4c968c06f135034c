package main

import (
	"io"
	"os"
	"strings"

	"github.com/ulikunitz/xz"

	apperrors "github.com/calyptra/charconv/core/errors"
)

// readInput reads a file into memory, transparently decompressing inputs
// with an .xz suffix.
func readInput(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".xz") {
		xr, err := xz.NewReader(f)
		if err != nil {
			return nil, apperrors.Wrapf(err, "open xz stream in %s", path)
		}
		r = xr
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, apperrors.Wrapf(err, "read %s", path)
	}
	return data, nil
}

// writeOutput writes data to path, compressing when the path has an .xz
// suffix. An empty path writes the raw bytes to stdout.
func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return apperrors.Wrap(err, "write stdout")
	}

	if strings.HasSuffix(path, ".xz") {
		f, err := os.Create(path)
		if err != nil {
			return apperrors.Wrapf(err, "create %s", path)
		}
		defer f.Close()

		w, err := xz.NewWriter(f)
		if err != nil {
			return apperrors.Wrapf(err, "open xz stream in %s", path)
		}
		if _, err := w.Write(data); err != nil {
			w.Close()
			return apperrors.Wrapf(err, "write %s", path)
		}
		if err := w.Close(); err != nil {
			return apperrors.Wrapf(err, "finish xz stream in %s", path)
		}
		return nil
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return apperrors.Wrapf(err, "write %s", path)
	}
	return nil
}
