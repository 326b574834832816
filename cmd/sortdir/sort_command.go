package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"sortdir/internal/archive"
	"sortdir/internal/classify"
	"sortdir/internal/logging"
	"sortdir/internal/organizer"
	"sortdir/internal/preflight"
	"sortdir/internal/runlock"
	"sortdir/internal/scanner"
	"sortdir/internal/services"
)

func runSort(cmd *cobra.Command, ctx *commandContext, rootArg string) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	root, err := resolveRoot(rootArg)
	if err != nil {
		return err
	}
	if err := preflight.FirstFailure(preflight.RunAll(cfg, root)); err != nil {
		return err
	}

	baseLogger, err := ctx.newLogger(cmd)
	if err != nil {
		return err
	}

	lock, err := runlock.Acquire(cfg.Paths.LockDir, root)
	if err != nil {
		return err
	}
	defer func() {
		if err := lock.Release(); err != nil {
			baseLogger.Warn("failed to release run lock",
				logging.String("lock", lock.Path()),
				logging.Error(err),
				logging.String(logging.FieldEventType, "run_lock_release_failed"),
				logging.String(logging.FieldErrorHint, "remove the lock file if later runs report it as held"),
				logging.String(logging.FieldImpact, "none for this run"),
			)
		}
	}()

	signalCtx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	runID := uuid.NewString()
	runCtx := services.WithRunID(signalCtx, runID)
	logger := logging.WithContext(runCtx, baseLogger)
	logger.Info("sort started",
		logging.String("root", root),
		logging.String("lock", lock.Path()),
		logging.Int64("max_extracted_bytes", cfg.MaxExtractedBytes()),
	)

	inv, err := scanner.New(classify.DefaultRules(), baseLogger).Scan(services.WithStage(runCtx, "scan"), root)
	if err != nil {
		return err
	}

	org := organizer.New(archive.NewMultiFormat(cfg.MaxExtractedBytes()), baseLogger)
	result, err := org.Reorganize(runCtx, inv)
	if err != nil {
		if len(result.Moved) > 0 || len(result.Extractions) > 0 {
			fmt.Fprintln(cmd.ErrOrStderr(), renderSortSummary(root, runID, inv, result, false))
		}
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderSortSummary(root, runID, inv, result, shouldColorize(cmd.OutOrStdout())))
	return nil
}
