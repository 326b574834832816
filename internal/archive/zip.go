package archive

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/klauspost/compress/zip"
)

func extractZip(ctx context.Context, src, dest string, quota *budget) error {
	file, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open archive: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return fmt.Errorf("stat archive: %w", err)
	}
	zr, err := zip.NewReader(file, info.Size())
	if err != nil {
		return unreadable(src, err)
	}

	for _, entry := range zr.File {
		if err := ctx.Err(); err != nil {
			return err
		}
		target, err := entryPath(src, dest, entry.Name)
		if err != nil {
			return err
		}
		mode := entry.Mode()
		switch {
		case mode.IsDir() || strings.HasSuffix(entry.Name, "/"):
			if err := os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("create entry directory: %w", err)
			}
			continue
		case !mode.IsRegular():
			// links and device entries are not materialized
			continue
		}

		rc, err := entry.Open()
		if err != nil {
			return unreadable(src, err)
		}
		err = writeEntry(src, target, rc, quota)
		rc.Close()
		if err != nil {
			return err
		}
	}
	return nil
}
