package chartnote

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/ukaji3/chartnote-go/internal/logger"
	"github.com/ukaji3/chartnote-go/pkg/chartnote/models"
	"github.com/ukaji3/chartnote-go/pkg/chartnote/notes"
	"github.com/ukaji3/chartnote-go/pkg/chartnote/parser"
)

// AnalyzeNote analyzes every chart block of a note's content.
func AnalyzeNote(path string, src []byte, opts Options) models.NoteCharts {
	blocks := notes.ExtractBlocks(path, src, opts.languages())
	result := models.NoteCharts{Path: path, Blocks: make([]models.BlockAnalysis, 0, len(blocks))}
	for _, b := range blocks {
		result.Blocks = append(result.Blocks, models.BlockAnalysis{
			Block:    b,
			Analysis: parser.Analyze(b.Code),
		})
	}
	return result
}

// ScanNote reads a note from disk and analyzes its chart blocks.
func ScanNote(path string, opts Options) (*models.NoteCharts, error) {
	fi, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, NewScanError(path, "stat", err)
	}
	if opts.MaxNoteBytes > 0 && fi.Size() > opts.MaxNoteBytes {
		return nil, NewScanError(path, "stat", fmt.Errorf("%w: %d bytes", ErrNoteTooLarge, fi.Size()))
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, NewScanError(path, "read", err)
	}
	nc := AnalyzeNote(path, src, opts)
	return &nc, nil
}

// ScanVault scans every note below root. Failures on single notes are
// collected in the report rather than aborting the scan.
func ScanVault(root string, opts Options) (*models.VaultReport, error) {
	log := logger.Component("scan")
	started := time.Now()

	if fi, err := os.Stat(root); err != nil || !fi.IsDir() {
		return nil, NewScanError(root, "walk", fmt.Errorf("%w: %s", ErrFileNotFound, root))
	}
	paths, err := notes.Walk(root)
	if err != nil {
		return nil, NewScanError(root, "walk", err)
	}

	report := &models.VaultReport{Root: root, ScannedAt: started.UTC()}
	for _, path := range paths {
		nc, err := ScanNote(path, opts)
		if err != nil {
			log.Warn("Skipping note", logger.Fields{"path": path, "error": err.Error()})
			var scanErr *ScanError
			if !errors.As(err, &scanErr) {
				scanErr = NewScanError(path, "read", err)
			}
			report.Errors = append(report.Errors, scanErr)
			continue
		}
		report.NotesScanned++
		if len(nc.Blocks) == 0 && !opts.IncludeEmpty {
			continue
		}
		nc.Path = relative(root, path)
		for i := range nc.Blocks {
			nc.Blocks[i].Block.Note = nc.Path
		}
		report.Notes = append(report.Notes, *nc)
	}

	log.Info("Vault scanned", logger.Fields{
		"root":     root,
		"notes":    report.NotesScanned,
		"charts":   report.ChartCount(),
		"errors":   len(report.Errors),
		"duration": time.Since(started).String(),
	})
	return report, nil
}

func relative(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}
