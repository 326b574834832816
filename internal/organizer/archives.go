package organizer

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"sortdir/internal/archive"
	"sortdir/internal/classify"
	"sortdir/internal/fileutil"
	"sortdir/internal/logging"
	"sortdir/internal/scanner"
	"sortdir/internal/services"
	"sortdir/internal/textutil"
)

const stagingPattern = ".extract-*"

func (o *Organizer) extractArchives(ctx context.Context, inv *scanner.Inventory, result *Result) error {
	files := inv.Files(classify.Archives)
	if len(files) == 0 {
		return nil
	}
	base := filepath.Join(inv.Root, classify.Archives.Folder())
	if err := os.MkdirAll(base, 0o755); err != nil {
		return services.Wrap(services.ErrFilesystem, "extract", "create archives folder", base, err)
	}
	for _, src := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		extraction, err := o.extractOne(ctx, base, src)
		if err != nil {
			return err
		}
		result.Extractions = append(result.Extractions, extraction)
	}
	return nil
}

// extractOne unpacks src into a staging directory beside its final folder so
// a failed extraction never leaves partial output under the archive's name.
func (o *Organizer) extractOne(ctx context.Context, base, src string) (Extraction, error) {
	logger := logging.WithContext(ctx, o.logger)
	target := filepath.Join(base, archiveFolder(filepath.Base(src)))
	extraction := Extraction{Archive: src, Target: target}

	staging, err := os.MkdirTemp(base, stagingPattern)
	if err != nil {
		return extraction, services.Wrap(services.ErrFilesystem, "extract", "create staging directory", base, err)
	}
	defer func() {
		if err := os.RemoveAll(staging); err != nil {
			logging.WarnWithContext(logger, "failed to remove extraction staging directory", "extract_staging_cleanup_failed",
				logging.String("path", staging),
				logging.Error(err),
				logging.String(logging.FieldErrorHint, "delete the hidden directory under archives manually"),
				logging.String(logging.FieldImpact, "partial extraction output remains on disk"),
			)
		}
	}()

	err = o.extractor.Extract(ctx, src, staging, classify.ExtensionOf(src))
	switch {
	case errors.Is(err, archive.ErrUnreadable):
		extraction.Err = err
		logging.WarnWithContext(logger, "archive could not be extracted", "archive_extract_failed",
			logging.String("archive", src),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "verify the archive opens with another tool"),
			logging.String(logging.FieldImpact, "archive removed without recovering its contents"),
		)
	case err != nil:
		return extraction, services.Wrap(services.ErrFilesystem, "extract", "extract archive", src, err)
	default:
		if err := mergeTree(staging, target); err != nil {
			return extraction, services.Wrap(services.ErrFilesystem, "extract", "merge extracted files", target, err)
		}
		logger.Debug("extracted archive",
			logging.String("archive", src),
			logging.String("target", target),
		)
	}

	if err := os.Remove(src); err != nil {
		return extraction, services.Wrap(services.ErrFilesystem, "extract", "delete archive", src, err)
	}
	return extraction, nil
}

// archiveFolder derives the destination folder name for an archive file name.
func archiveFolder(name string) string {
	folder := textutil.Normalize(classify.TrimExtension(name))
	if strings.Trim(folder, ".") == "" {
		folder = "_" + folder
	}
	return folder
}

// mergeTree moves everything under src into dst, creating directories as
// needed and replacing files that already exist.
func mergeTree(src, dst string) error {
	if _, err := os.Lstat(dst); errors.Is(err, fs.ErrNotExist) {
		return os.Rename(src, dst)
	}
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		return fileutil.MoveFile(path, target)
	})
}
