// Package chartnote infers editable chart descriptors from D3 chart scripts,
// synthesizes scripts back from descriptors and scans notes vaults for
// chart code blocks.
package chartnote

import "github.com/ukaji3/chartnote-go/pkg/chartnote/notes"

// DefaultMaxNoteBytes is the default size limit for a scanned note.
const DefaultMaxNoteBytes = 4 << 20

// Options configures note scanning.
type Options struct {
	// Languages lists the fence languages treated as chart code.
	// If nil, defaults to notes.DefaultLanguages.
	Languages []string
	// MaxNoteBytes skips notes larger than this many bytes. Zero disables the limit.
	MaxNoteBytes int64
	// IncludeEmpty keeps notes without chart blocks in vault reports.
	IncludeEmpty bool
}

// DefaultOptions returns default scan options.
func DefaultOptions() Options {
	return Options{
		Languages:    notes.DefaultLanguages,
		MaxNoteBytes: DefaultMaxNoteBytes,
	}
}

func (o Options) languages() []string {
	if o.Languages == nil {
		return notes.DefaultLanguages
	}
	return o.Languages
}
