package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"

	"sortdir/internal/classify"
	"sortdir/internal/organizer"
	"sortdir/internal/scanner"
)

const (
	ansiReset  = "\x1b[0m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func renderSectionHeader(title string, colorize bool) []string {
	line := fmt.Sprintf("== %s ==", strings.TrimSpace(title))
	rule := strings.Repeat("-", len(line))
	if colorize {
		line = ansiBlue + line + ansiReset
		rule = ansiBlue + rule + ansiReset
	}
	return []string{line, rule}
}

func warnLine(text string, colorize bool) string {
	if colorize {
		return ansiYellow + text + ansiReset
	}
	return text
}

// relPath shortens path for display; it falls back to path when it is not under root.
func relPath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return filepath.ToSlash(rel)
}

func joinOrNone(values []string) string {
	if len(values) == 0 {
		return "none"
	}
	return strings.Join(values, ", ")
}

func renderSortSummary(root, runID string, inv *scanner.Inventory, result organizer.Result, colorize bool) string {
	lines := renderSectionHeader("Sorted "+root, colorize)
	lines = append(lines, "Run ID: "+runID, "")

	archivesOK := len(result.Extractions) - len(result.FailedExtractions())
	rows := make([][]string, 0, len(classify.Categories()))
	for _, category := range classify.Categories() {
		var handled string
		switch category {
		case classify.Archives:
			handled = fmt.Sprintf("%d extracted", archivesOK)
		case classify.Other:
			handled = fmt.Sprintf("%d left in place", len(result.Left))
		default:
			handled = fmt.Sprintf("%d moved", result.MovedCount(category))
		}
		folder := category.Folder()
		if category == classify.Other {
			folder = "-"
		}
		rows = append(rows, []string{category.String(), folder, strconv.Itoa(inv.Count(category)), handled})
	}
	lines = append(lines, renderTable(
		[]string{"Category", "Folder", "Found", "Result"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft},
		colorize,
	))

	lines = append(lines, "",
		fmt.Sprintf("Files renamed: %d", result.RenamedCount()),
		fmt.Sprintf("Directories removed: %d", len(result.Removed)),
		fmt.Sprintf("Directories kept: %d", len(result.Retained)),
	)
	for _, kept := range result.Retained {
		lines = append(lines, warnLine("  kept "+relPath(root, kept.Path), colorize))
	}
	if failed := result.FailedExtractions(); len(failed) > 0 {
		lines = append(lines, fmt.Sprintf("Unreadable archives removed: %d", len(failed)))
		for _, extraction := range failed {
			lines = append(lines, warnLine("  "+relPath(root, extraction.Archive)+": "+extraction.Err.Error(), colorize))
		}
	}
	lines = append(lines,
		"Known extensions: "+joinOrNone(inv.KnownExtensions()),
		"Unknown extensions: "+joinOrNone(inv.UnknownExtensions()),
	)
	return strings.Join(lines, "\n")
}

func renderScanReport(inv *scanner.Inventory, rules classify.RuleTable, colorize bool) string {
	lines := renderSectionHeader("Scan of "+inv.Root, colorize)

	rows := make([][]string, 0, len(classify.Categories())+1)
	for _, category := range classify.Categories() {
		extensions := "any other"
		if category != classify.Other {
			extensions = joinOrNone(rules.Extensions(category))
		}
		rows = append(rows, []string{category.String(), strconv.Itoa(inv.Count(category)), extensions})
	}
	rows = append(rows, []string{"Directories", strconv.Itoa(len(inv.Directories())), "-"})
	lines = append(lines, renderTable(
		[]string{"Category", "Files", "Extensions"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignLeft},
		colorize,
	))

	for _, category := range classify.Categories() {
		files := inv.Files(category)
		if len(files) == 0 {
			continue
		}
		lines = append(lines, "")
		lines = append(lines, renderSectionHeader(category.String(), colorize)...)
		for _, path := range files {
			lines = append(lines, "  "+relPath(inv.Root, path))
		}
	}

	lines = append(lines, "",
		"Known extensions: "+joinOrNone(inv.KnownExtensions()),
		"Unknown extensions: "+joinOrNone(inv.UnknownExtensions()),
	)
	return strings.Join(lines, "\n")
}
