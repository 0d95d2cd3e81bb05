// Package codegen produces chart script text from an edited descriptor by
// substituting literals of a stored template.
package codegen

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/ukaji3/chartnote-go/pkg/chartnote/models"
	"github.com/ukaji3/chartnote-go/pkg/chartnote/parser"
	"github.com/ukaji3/chartnote-go/pkg/chartnote/templates"
)

// TemplateSource looks templates up by key.
type TemplateSource interface {
	Get(key string) (models.Template, bool)
}

// Substitutable lists the chart kinds whose templates take descriptor data.
// Templates of every other kind are returned unchanged by Synthesize.
var Substitutable = map[models.ChartType]bool{
	models.Bar:           true,
	models.HorizontalBar: true,
	models.Line:          true,
	models.Area:          true,
	models.Pie:           true,
	models.Scatter:       true,
}

// colorLiteral is the default colour every built-in template uses for its
// main marks.
const colorLiteral = parser.DefaultColor

var (
	widthLiteral  = regexp.MustCompile(`((?:^|[^\w-])width["']?\s*[:=,]\s*)\d+`)
	heightLiteral = regexp.MustCompile(`((?:^|[^\w-])height["']?\s*[:=,]\s*)\d+`)
	identPattern  = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)
)

// Synthesize renders d through the template stored under templateKey in the
// default gallery.
func Synthesize(d models.Descriptor, templateKey string) string {
	return SynthesizeWith(templates.Default(), d, templateKey)
}

// SynthesizeWith renders d through a template of src. An unknown key falls
// back to the built-in template for d.Type, then to the bar template, so the
// result is always a complete script.
func SynthesizeWith(src TemplateSource, d models.Descriptor, templateKey string) string {
	tpl := resolve(src, d.Type, templateKey)
	if !Substitutable[tpl.Kind] {
		return tpl.Code
	}

	code := tpl.Code
	if len(d.Data) > 0 {
		if start, end, ok := parser.FindAssignment(code, "data"); ok {
			// The data literal is spliced in after restyling so that its
			// values are never rewritten.
			return restyle(code[:start], d) + FormatData(d.Data) + restyle(code[end:], d)
		}
	}
	return restyle(code, d)
}

// restyle substitutes the descriptor's dimensions and hex colour into
// template text.
func restyle(code string, d models.Descriptor) string {
	if d.Width > 0 {
		code = widthLiteral.ReplaceAllString(code, "${1}"+strconv.Itoa(d.Width))
	}
	if d.Height > 0 {
		code = heightLiteral.ReplaceAllString(code, "${1}"+strconv.Itoa(d.Height))
	}
	if parser.IsHexColor(d.Color) {
		code = strings.ReplaceAll(code, `"`+colorLiteral+`"`, `"`+d.Color+`"`)
		code = strings.ReplaceAll(code, `'`+colorLiteral+`'`, `'`+d.Color+`'`)
	}
	return code
}

func resolve(src TemplateSource, kind models.ChartType, key string) models.Template {
	if src != nil {
		if t, ok := src.Get(key); ok {
			return t
		}
	}
	if t, ok := templates.Builtin(kind); ok {
		return t
	}
	t, _ := templates.Builtin(parser.DefaultType)
	return t
}

// FormatData writes records as a JS array literal, one record per line.
func FormatData(records []models.Record) string {
	if len(records) == 0 {
		return "[]"
	}
	var b strings.Builder
	b.WriteString("[\n")
	for i, r := range records {
		b.WriteString("  {")
		for j, k := range orderedKeys(r) {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(formatKey(k))
			b.WriteString(": ")
			b.WriteString(formatValue(r[k]))
		}
		b.WriteByte('}')
		if i < len(records)-1 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	b.WriteByte(']')
	return b.String()
}

// leadingKeys come first in a formatted record, in this order.
var leadingKeys = []string{"label", "x", "value", "y"}

func orderedKeys(r models.Record) []string {
	keys := make([]string, 0, len(r))
	for _, k := range leadingKeys {
		if _, ok := r[k]; ok {
			keys = append(keys, k)
		}
	}
	rest := make([]string, 0, len(r))
	for k := range r {
		if !isLeading(k) {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(keys, rest...)
}

func isLeading(k string) bool {
	for _, l := range leadingKeys {
		if k == l {
			return true
		}
	}
	return false
}

func formatKey(k string) string {
	if identPattern.MatchString(k) {
		return k
	}
	return marshal(k)
}

func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return marshal(x)
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return formatFloat(x)
	case float32:
		return formatFloat(float64(x))
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case json.Number:
		return x.String()
	}
	return marshal(v)
}

func formatFloat(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "null"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func marshal(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "null"
	}
	return string(b)
}
