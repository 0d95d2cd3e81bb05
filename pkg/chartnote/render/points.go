// Package render draws preview images of chart descriptors, as interactive
// HTML pages or static PNG/SVG images.
package render

import (
	"errors"
	"image/color"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/colornames"

	"github.com/ukaji3/chartnote-go/pkg/chartnote/models"
	"github.com/ukaji3/chartnote-go/pkg/chartnote/parser"
)

// ErrNoData is returned when a descriptor has no plottable records.
var ErrNoData = errors.New("no plottable data")

// point is one plottable record.
type point struct {
	Label string
	X     float64
	Y     float64
	Size  float64
}

// points maps records to plottable points. A record needs a numeric value
// (or y) field; its label comes from label, name or x, else its position.
func points(data []models.Record) []point {
	var result []point
	for i, r := range data {
		y, ok := number(r["value"])
		if !ok {
			if y, ok = number(r["y"]); !ok {
				continue
			}
		}
		p := point{Y: y, X: float64(i)}
		if x, ok := number(r["x"]); ok {
			p.X = x
		}
		p.Size, _ = number(r["r"])
		p.Label = labelOf(r, i)
		result = append(result, p)
	}
	return result
}

// hasX reports whether any record carries a numeric x field.
func hasX(data []models.Record) bool {
	for _, r := range data {
		if _, ok := number(r["x"]); ok {
			return true
		}
	}
	return false
}

func labelOf(r models.Record, i int) string {
	for _, k := range []string{"label", "name", "x"} {
		switch v := r[k].(type) {
		case string:
			if v != "" {
				return v
			}
		case nil:
		default:
			if f, ok := number(v); ok {
				return strconv.FormatFloat(f, 'g', -1, 64)
			}
		}
	}
	return strconv.Itoa(i + 1)
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

// cssColor returns the descriptor colour, or the default when unset.
func cssColor(c string) string {
	if strings.TrimSpace(c) == "" {
		return parser.DefaultColor
	}
	return strings.TrimSpace(c)
}

// drawingColor resolves a hex or named CSS colour. Unknown names fall back
// to the default colour.
func drawingColor(c string) drawing.Color {
	c = cssColor(c)
	if parser.IsHexColor(c) {
		return drawing.ColorFromHex(strings.TrimPrefix(c, "#"))
	}
	if rgba, ok := colornames.Map[strings.ToLower(c)]; ok {
		return fromRGBA(rgba)
	}
	return fromRGBA(colornames.Map[parser.DefaultColor])
}

func fromRGBA(c color.RGBA) drawing.Color {
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
