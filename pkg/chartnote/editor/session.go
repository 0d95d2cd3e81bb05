// Package editor holds the state of one form-editing session: a descriptor
// opened from existing script text or a template, mutated field by field and
// turned back into code.
package editor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ukaji3/chartnote-go/pkg/chartnote/codegen"
	"github.com/ukaji3/chartnote-go/pkg/chartnote/models"
	"github.com/ukaji3/chartnote-go/pkg/chartnote/parser"
	"github.com/ukaji3/chartnote-go/pkg/chartnote/templates"
)

var (
	// ErrInvalidDimension is returned for a non-positive width or height.
	ErrInvalidDimension = errors.New("dimension must be positive")
	// ErrRecordIndex is returned for a record index out of range.
	ErrRecordIndex = errors.New("record index out of range")
	// ErrUnknownType is returned for a chart type tag outside the supported set.
	ErrUnknownType = errors.New("unknown chart type")
)

// Session is one editing session. It is not safe for concurrent use.
type Session struct {
	templates   codegen.TemplateSource
	templateKey string
	derivedKey  bool // templateKey follows desc.Type
	desc        models.Descriptor
	analysis    *models.Analysis
	dirty       bool
}

// NewSession opens a session on existing script text. Empty text, or text
// from which no data can be recovered, starts from sample data for the
// chart kind.
func NewSession(src, templateKey string) *Session {
	return NewSessionWith(templates.Default(), src, templateKey)
}

// NewSessionWith is NewSession with an explicit template source. An empty
// templateKey makes the template follow the chart kind, also across SetType.
func NewSessionWith(ts codegen.TemplateSource, src, templateKey string) *Session {
	s := &Session{templates: ts, templateKey: templateKey, derivedKey: templateKey == ""}
	if strings.TrimSpace(src) == "" {
		kind := parser.DefaultType
		if t, ok := ts.Get(templateKey); ok {
			kind = t.Kind
		}
		s.desc = models.Descriptor{
			Type:   kind,
			Data:   SampleData(kind),
			Width:  parser.DefaultWidth,
			Height: parser.DefaultHeight,
			Color:  parser.DefaultColor,
		}
		if s.derivedKey {
			s.templateKey = string(kind)
		}
		return s
	}

	a := parser.Analyze(src)
	s.analysis = &a
	s.desc = a.Descriptor.Clone()
	if len(s.desc.Data) == 0 {
		s.desc.Data = SampleData(s.desc.Type)
	}
	if s.derivedKey {
		s.templateKey = string(s.desc.Type)
	}
	return s
}

// Descriptor returns a copy of the current descriptor.
func (s *Session) Descriptor() models.Descriptor {
	return s.desc.Clone()
}

// Analysis returns the analysis the session was opened from, or nil when it
// started from a template.
func (s *Session) Analysis() *models.Analysis {
	return s.analysis
}

// TemplateKey returns the template used for code generation.
func (s *Session) TemplateKey() string {
	return s.templateKey
}

// Dirty reports whether the descriptor was edited since opening.
func (s *Session) Dirty() bool {
	return s.dirty
}

// SetTemplate switches the template used by Code. The key then stays put
// when the chart kind changes.
func (s *Session) SetTemplate(key string) {
	s.templateKey = key
	s.derivedKey = false
	s.dirty = true
}

// SetType changes the chart kind from a tag such as "pie". A template key
// that was derived from the previous kind moves to the built-in of the new
// one.
func (s *Session) SetType(tag string) error {
	ct, ok := models.ParseChartType(tag)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownType, tag)
	}
	s.desc.Type = ct
	if s.derivedKey {
		s.templateKey = string(ct)
	}
	s.dirty = true
	return nil
}

// SetWidth sets the chart width in pixels.
func (s *Session) SetWidth(w int) error {
	if w <= 0 {
		return fmt.Errorf("%w: width %d", ErrInvalidDimension, w)
	}
	s.desc.Width = w
	s.dirty = true
	return nil
}

// SetHeight sets the chart height in pixels.
func (s *Session) SetHeight(h int) error {
	if h <= 0 {
		return fmt.Errorf("%w: height %d", ErrInvalidDimension, h)
	}
	s.desc.Height = h
	s.dirty = true
	return nil
}

// SetColor sets the primary colour. Code only applies hex colours.
func (s *Session) SetColor(c string) {
	s.desc.Color = strings.TrimSpace(c)
	s.dirty = true
}

// SetData replaces all records.
func (s *Session) SetData(records []models.Record) {
	s.desc.Data = make([]models.Record, len(records))
	for i, r := range records {
		s.desc.Data[i] = r.Clone()
	}
	s.dirty = true
}

// AddRecord appends a record.
func (s *Session) AddRecord(r models.Record) {
	s.desc.Data = append(s.desc.Data, r.Clone())
	s.dirty = true
}

// UpdateRecord sets one field of record i.
func (s *Session) UpdateRecord(i int, field string, value any) error {
	if i < 0 || i >= len(s.desc.Data) {
		return fmt.Errorf("%w: %d of %d", ErrRecordIndex, i, len(s.desc.Data))
	}
	if s.desc.Data[i] == nil {
		s.desc.Data[i] = models.Record{}
	}
	s.desc.Data[i][field] = value
	s.dirty = true
	return nil
}

// RemoveRecord deletes record i.
func (s *Session) RemoveRecord(i int) error {
	if i < 0 || i >= len(s.desc.Data) {
		return fmt.Errorf("%w: %d of %d", ErrRecordIndex, i, len(s.desc.Data))
	}
	s.desc.Data = append(s.desc.Data[:i], s.desc.Data[i+1:]...)
	s.dirty = true
	return nil
}

// Code synthesizes script text from the current descriptor.
func (s *Session) Code() string {
	return codegen.SynthesizeWith(s.templates, s.desc, s.templateKey)
}
