package chartnote

import (
	"errors"

	"github.com/ukaji3/chartnote-go/pkg/chartnote/models"
	"github.com/ukaji3/chartnote-go/pkg/chartnote/templates"
)

// ErrFileNotFound indicates the input file or directory does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrNoteTooLarge indicates a note exceeds Options.MaxNoteBytes.
var ErrNoteTooLarge = errors.New("note too large")

// ErrTemplateNotFound indicates an unknown template key.
var ErrTemplateNotFound = templates.ErrNotFound

// ScanError represents a failure to scan one note.
type ScanError = models.ScanError

// NewScanError creates a new ScanError.
func NewScanError(path, stage string, err error) *ScanError {
	return &ScanError{
		Path:  path,
		Stage: stage,
		Err:   err,
	}
}
