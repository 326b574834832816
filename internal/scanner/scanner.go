package scanner

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"sortdir/internal/classify"
	"sortdir/internal/logging"
	"sortdir/internal/services"
)

// Scanner builds inventories using a fixed rule table.
type Scanner struct {
	rules  classify.RuleTable
	logger *slog.Logger
}

// New constructs a scanner. A nil logger discards output.
func New(rules classify.RuleTable, logger *slog.Logger) *Scanner {
	return &Scanner{rules: rules, logger: logging.NewComponentLogger(logger, "scanner")}
}

// Scan walks root depth-first and returns the populated inventory.
func (s *Scanner) Scan(ctx context.Context, root string) (*Inventory, error) {
	logger := logging.WithContext(ctx, s.logger)
	inv := NewInventory(root)
	if err := s.scanDir(ctx, inv, nil, root); err != nil {
		return nil, err
	}
	logger.Info("scan completed",
		logging.String("root", root),
		logging.Int("files", inv.Total()),
		logging.Int("directories", len(inv.Directories())),
		logging.Int("unknown_extensions", len(inv.unknown)),
	)
	return inv, nil
}

func (s *Scanner) scanDir(ctx context.Context, inv *Inventory, parent *Directory, dir string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return services.Wrap(services.ErrFilesystem, "scan", "read directory", dir, err)
	}
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			if classify.IsReserved(entry.Name()) {
				s.logger.Debug("skipping reserved folder", logging.String("path", path))
				continue
			}
			child := inv.AddDirectory(parent, path)
			if err := s.scanDir(ctx, inv, child, path); err != nil {
				return err
			}
			continue
		}
		ext := classify.ExtensionOf(entry.Name())
		category, known := s.rules.Classify(ext)
		inv.AddFile(path, category, ext, known)
	}
	return nil
}
