package organizer

import (
	"context"
	"os"

	"sortdir/internal/logging"
	"sortdir/internal/scanner"
)

// cleanup removes recorded directories children first. A directory that
// still holds anything is kept and reported.
func (o *Organizer) cleanup(ctx context.Context, inv *scanner.Inventory, result *Result) {
	logger := logging.WithContext(ctx, o.logger)
	inv.WalkDirsPostOrder(func(dir string) {
		if err := os.Remove(dir); err != nil {
			result.Retained = append(result.Retained, CleanupError{Path: dir, Error: err})
			logging.WarnWithContext(logger, "directory retained", "cleanup_dir_retained",
				logging.String("path", dir),
				logging.Error(err),
				logging.String(logging.FieldErrorHint, "inspect the directory for unrecognised files"),
				logging.String(logging.FieldImpact, "directory left in place"),
			)
			return
		}
		result.Removed = append(result.Removed, dir)
		logger.Debug("removed directory", logging.String("path", dir))
	})
}
