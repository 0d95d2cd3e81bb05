package models

// Template is a stored chart script that renders one chart kind.
type Template struct {
	// Key identifies the template in the gallery.
	Key string `json:"key" yaml:"key"`
	// Name is the display name.
	Name string `json:"name" yaml:"name"`
	// Kind is the chart kind the template draws.
	Kind ChartType `json:"kind" yaml:"kind"`
	// Description is a one-line summary shown in the gallery.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	// Tags are extra search terms.
	Tags []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	// Code is the script text.
	Code string `json:"code" yaml:"code"`
	// Source is the file a user template was loaded from; empty for built-ins.
	Source string `json:"source,omitempty" yaml:"-"`
}
