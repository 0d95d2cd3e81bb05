package models

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

// CodeBlock is a fenced chart code block found in a note.
type CodeBlock struct {
	// Note is the path of the note owning the block.
	Note string `json:"note" yaml:"note"`
	// Index is the block's position among chart blocks of the note (0-based).
	Index int `json:"index" yaml:"index"`
	// Line is the 1-based line of the first code line, 0 if the block is empty.
	Line int `json:"line" yaml:"line"`
	// Language is the fence info-string language.
	Language string `json:"language" yaml:"language"`
	// Code is the block body.
	Code string `json:"code" yaml:"code"`
}

// BlockAnalysis pairs a code block with the analysis of its code.
type BlockAnalysis struct {
	Block    CodeBlock `json:"block" yaml:"block"`
	Analysis Analysis  `json:"analysis" yaml:"analysis"`
}

// NoteCharts groups the chart blocks of a single note.
type NoteCharts struct {
	Path   string          `json:"path" yaml:"path"`
	Blocks []BlockAnalysis `json:"blocks" yaml:"blocks"`
}

// VaultReport is the result of scanning a notes directory.
type VaultReport struct {
	// Root is the scanned directory.
	Root string `json:"root" yaml:"root"`
	// ScannedAt is the scan start time.
	ScannedAt time.Time `json:"scanned_at" yaml:"scanned_at"`
	// NotesScanned counts markdown files read.
	NotesScanned int `json:"notes_scanned" yaml:"notes_scanned"`
	// Notes lists notes containing at least one chart block.
	Notes []NoteCharts `json:"notes,omitempty" yaml:"notes,omitempty"`
	// Errors lists per-note failures.
	Errors []*ScanError `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// ChartCount returns the total number of chart blocks in the report.
func (r *VaultReport) ChartCount() int {
	n := 0
	for _, note := range r.Notes {
		n += len(note.Blocks)
	}
	return n
}

// ScanError represents a failure to scan one note.
type ScanError struct {
	Path  string
	Stage string // "stat", "read", "walk"
	Err   error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("scan error in %q (%s): %v", e.Path, e.Stage, e.Err)
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

// scanErrorView is the serialized form of a ScanError.
type scanErrorView struct {
	Path  string `json:"path" yaml:"path"`
	Stage string `json:"stage" yaml:"stage"`
	Error string `json:"error" yaml:"error"`
}

func (e *ScanError) view() scanErrorView {
	v := scanErrorView{Path: e.Path, Stage: e.Stage}
	if e.Err != nil {
		v.Error = e.Err.Error()
	}
	return v
}

// MarshalJSON writes the error as {path, stage, error}.
func (e *ScanError) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.view())
}

// MarshalYAML writes the error as {path, stage, error}.
func (e *ScanError) MarshalYAML() (any, error) {
	return e.view(), nil
}
