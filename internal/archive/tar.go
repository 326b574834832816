package archive

import (
	"archive/tar"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"

	"sortdir/internal/classify"
)

func extractTar(ctx context.Context, src string, r io.Reader, dest string, quota *budget) error {
	tr := tar.NewReader(r)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		header, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return unreadable(src, err)
		}
		if header.Typeflag == tar.TypeXGlobalHeader {
			continue
		}
		target, err := entryPath(src, dest, header.Name)
		if err != nil {
			return err
		}
		switch header.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("create entry directory: %w", err)
			}
		case tar.TypeReg:
			if err := writeEntry(src, target, tr, quota); err != nil {
				return err
			}
		}
	}
}

func extractTarGz(ctx context.Context, src, dest string, quota *budget) error {
	file, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open archive: %w", err)
	}
	defer file.Close()

	zr, err := gzip.NewReader(file)
	if err != nil {
		return unreadable(src, err)
	}
	defer zr.Close()
	return extractTar(ctx, src, zr, dest, quota)
}

// gunzipFile decompresses a plain gzip stream into a single file named by
// the gzip header, falling back to the archive name without its suffix.
func gunzipFile(src, dest string, quota *budget) error {
	file, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open archive: %w", err)
	}
	defer file.Close()

	zr, err := gzip.NewReader(file)
	if err != nil {
		return unreadable(src, err)
	}
	defer zr.Close()

	name := filepath.Base(strings.TrimSpace(zr.Name))
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = classify.TrimExtension(filepath.Base(src))
	}
	target, err := entryPath(src, dest, name)
	if err != nil {
		return err
	}
	return writeEntry(src, target, zr, quota)
}
