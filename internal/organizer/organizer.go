package organizer

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"sortdir/internal/archive"
	"sortdir/internal/classify"
	"sortdir/internal/fileutil"
	"sortdir/internal/logging"
	"sortdir/internal/scanner"
	"sortdir/internal/services"
	"sortdir/internal/textutil"
)

// Organizer moves, extracts, and cleans up according to a scanned inventory.
type Organizer struct {
	extractor archive.Extractor
	logger    *slog.Logger
}

// New constructs an organizer. A nil extractor falls back to an uncapped
// archive.MultiFormat.
func New(extractor archive.Extractor, logger *slog.Logger) *Organizer {
	if extractor == nil {
		extractor = archive.NewMultiFormat(0)
	}
	return &Organizer{
		extractor: extractor,
		logger:    logging.NewComponentLogger(logger, "organizer"),
	}
}

// Reorganize applies inv to the filesystem rooted at inv.Root. The returned
// Result describes everything done up to the point of any fatal error.
func (o *Organizer) Reorganize(ctx context.Context, inv *scanner.Inventory) (Result, error) {
	var result Result
	if inv == nil {
		return result, services.Wrap(services.ErrValidation, "organize", "reorganize", "inventory is nil", nil)
	}

	if err := o.moveFiles(services.WithStage(ctx, "move"), inv, &result); err != nil {
		return result, err
	}
	result.Left = append(result.Left, inv.Files(classify.Other)...)

	if err := o.extractArchives(services.WithStage(ctx, "extract"), inv, &result); err != nil {
		return result, err
	}

	o.cleanup(services.WithStage(ctx, "cleanup"), inv, &result)

	logging.WithContext(ctx, o.logger).Info("reorganization completed",
		logging.String("root", inv.Root),
		logging.Int("moved", len(result.Moved)),
		logging.Int("left_in_place", len(result.Left)),
		logging.Int("archives", len(result.Extractions)),
		logging.Int("archives_failed", len(result.FailedExtractions())),
		logging.Int("dirs_removed", len(result.Removed)),
		logging.Int("dirs_retained", len(result.Retained)),
	)
	return result, nil
}

func (o *Organizer) moveFiles(ctx context.Context, inv *scanner.Inventory, result *Result) error {
	logger := logging.WithContext(ctx, o.logger)
	for _, category := range classify.Sorted() {
		if category == classify.Archives {
			continue
		}
		files := inv.Files(category)
		if len(files) == 0 {
			continue
		}
		dir := filepath.Join(inv.Root, category.Folder())
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return services.Wrap(services.ErrFilesystem, "move", "create category folder", dir, err)
		}
		for _, src := range files {
			if err := ctx.Err(); err != nil {
				return err
			}
			name := filepath.Base(src)
			target := filepath.Join(dir, textutil.Normalize(name))
			if err := fileutil.MoveFile(src, target); err != nil {
				return services.Wrap(services.ErrFilesystem, "move", "move file", src, err)
			}
			result.Moved = append(result.Moved, Move{
				Category: category,
				Source:   src,
				Target:   target,
				Renamed:  !textutil.IsNormalized(name),
			})
			logger.Debug("moved file",
				logging.String("source", src),
				logging.String("target", target),
				logging.String("category", category.String()),
			)
		}
	}
	return nil
}
