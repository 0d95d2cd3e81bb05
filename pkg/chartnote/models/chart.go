// Package models defines data structures for chart analysis and synthesis.
package models

import "strings"

// ChartType is one tag from the closed set of supported chart kinds.
type ChartType string

const (
	Bar           ChartType = "bar"
	HorizontalBar ChartType = "horizontal-bar"
	StackedBar    ChartType = "stacked-bar"
	Line          ChartType = "line"
	Area          ChartType = "area"
	Pie           ChartType = "pie"
	Donut         ChartType = "donut"
	Scatter       ChartType = "scatter"
	Bubble        ChartType = "bubble"
	Histogram     ChartType = "histogram"
	Heatmap       ChartType = "heatmap"
	Radar         ChartType = "radar"
	Force         ChartType = "force"
	Chord         ChartType = "chord"
	Treemap       ChartType = "treemap"
	Timeline      ChartType = "timeline"
	Gantt         ChartType = "gantt"
)

// ChartTypes lists every supported chart kind in gallery order.
var ChartTypes = []ChartType{
	Bar, HorizontalBar, StackedBar, Line, Area, Pie, Donut, Scatter, Bubble,
	Histogram, Heatmap, Radar, Force, Chord, Treemap, Timeline, Gantt,
}

// ParseChartType maps a tag to a ChartType, ignoring case and surrounding space.
func ParseChartType(s string) (ChartType, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, ct := range ChartTypes {
		if string(ct) == s {
			return ct, true
		}
	}
	return "", false
}

// Record is one element of a chart's data array. Values are float64, string,
// bool or nil once decoded; no schema is enforced.
type Record map[string]any

// Clone returns a shallow copy of the record.
func (r Record) Clone() Record {
	c := make(Record, len(r))
	for k, v := range r {
		c[k] = v
	}
	return c
}

// Descriptor is the transient form-editor view of a chart.
type Descriptor struct {
	// Type is the chart kind.
	Type ChartType `json:"type" yaml:"type"`
	// Data is the chart's data array.
	Data []Record `json:"data" yaml:"data"`
	// Width is the chart width in pixels.
	Width int `json:"width" yaml:"width"`
	// Height is the chart height in pixels.
	Height int `json:"height" yaml:"height"`
	// Color is the primary colour, named or hex.
	Color string `json:"color" yaml:"color"`
}

// Clone returns a deep copy of the descriptor's data slice and records.
func (d Descriptor) Clone() Descriptor {
	c := d
	c.Data = make([]Record, len(d.Data))
	for i, r := range d.Data {
		c.Data[i] = r.Clone()
	}
	return c
}

// StyleParams holds the dimensions and primary colour recovered from a script.
type StyleParams struct {
	Width  int    `json:"width" yaml:"width"`
	Height int    `json:"height" yaml:"height"`
	Color  string `json:"color" yaml:"color"`
}

// Origin tells whether a value was recovered from text or defaulted.
type Origin string

const (
	OriginInferred Origin = "inferred"
	OriginDefault  Origin = "default"
)

// Analysis is a Descriptor plus the provenance of each of its fields.
type Analysis struct {
	Descriptor Descriptor `json:"descriptor" yaml:"descriptor"`
	// TypeOrigin is default when no priority rule matched.
	TypeOrigin   Origin `json:"type_origin" yaml:"type_origin"`
	DataOrigin   Origin `json:"data_origin" yaml:"data_origin"`
	WidthOrigin  Origin `json:"width_origin" yaml:"width_origin"`
	HeightOrigin Origin `json:"height_origin" yaml:"height_origin"`
	ColorOrigin  Origin `json:"color_origin" yaml:"color_origin"`
	// TypeRule names the priority rule that chose the type.
	TypeRule string `json:"type_rule,omitempty" yaml:"type_rule,omitempty"`
	// DataStage names the pipeline stage that produced the data.
	DataStage string `json:"data_stage,omitempty" yaml:"data_stage,omitempty"`
	// Recovered is set when analysis panicked and the fallback was returned.
	Recovered bool `json:"recovered,omitempty" yaml:"recovered,omitempty"`
}
