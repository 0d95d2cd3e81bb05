package render

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/ukaji3/chartnote-go/pkg/chartnote/models"
	"github.com/ukaji3/chartnote-go/pkg/chartnote/parser"
)

// ImageFormat is a static image format.
type ImageFormat string

const (
	PNG ImageFormat = "png"
	SVG ImageFormat = "svg"
)

// ParseImageFormat maps a format name to an ImageFormat.
func ParseImageFormat(s string) (ImageFormat, error) {
	switch f := ImageFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case PNG, SVG:
		return f, nil
	}
	return "", fmt.Errorf("unknown image format %q (must be png or svg)", s)
}

type imageRenderer interface {
	Render(rp chart.RendererProvider, w io.Writer) error
}

// Image writes a static preview of d to w.
func Image(w io.Writer, d models.Descriptor, format ImageFormat) error {
	var provider chart.RendererProvider
	switch format {
	case PNG, "":
		provider = chart.PNG
	case SVG:
		provider = chart.SVG
	default:
		return fmt.Errorf("unknown image format %q", format)
	}

	pts := points(d.Data)
	if len(pts) == 0 {
		return ErrNoData
	}
	width, height := d.Width, d.Height
	if width <= 0 {
		width = parser.DefaultWidth
	}
	if height <= 0 {
		height = parser.DefaultHeight
	}
	style := chart.Style{FillColor: drawingColor(d.Color), StrokeColor: drawingColor(d.Color)}

	var graph imageRenderer
	switch d.Type {
	case models.Pie, models.Donut:
		g, err := pieImage(pts, width, height)
		if err != nil {
			return err
		}
		graph = g
	case models.Line, models.Area:
		graph = lineImage(pts, d, width, height, style)
	case models.Scatter, models.Bubble:
		graph = scatterImage(pts, width, height, style)
	default:
		graph = barImage(pts, width, height, style)
	}
	if err := graph.Render(provider, w); err != nil {
		return fmt.Errorf("failed to render %s chart: %w", d.Type, err)
	}
	return nil
}

func barImage(pts []point, width, height int, style chart.Style) *chart.BarChart {
	bars := make([]chart.Value, len(pts))
	for i, p := range pts {
		bars[i] = chart.Value{Label: p.Label, Value: p.Y, Style: style}
	}
	return &chart.BarChart{
		Width:  width,
		Height: height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		YAxis: chart.YAxis{Range: span(yValues(pts), true)},
		Bars:  bars,
	}
}

func pieImage(pts []point, width, height int) (*chart.PieChart, error) {
	values := make([]chart.Value, 0, len(pts))
	for _, p := range pts {
		if p.Y > 0 {
			values = append(values, chart.Value{Label: p.Label, Value: p.Y})
		}
	}
	if len(values) == 0 {
		return nil, ErrNoData
	}
	return &chart.PieChart{Width: width, Height: height, Values: values}, nil
}

func lineImage(pts []point, d models.Descriptor, width, height int, style chart.Style) *chart.Chart {
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	var ticks []chart.Tick
	for i, p := range pts {
		xs[i], ys[i] = p.X, p.Y
		if !hasX(d.Data) {
			xs[i] = float64(i)
			ticks = append(ticks, chart.Tick{Value: float64(i), Label: p.Label})
		}
	}
	series := chart.ContinuousSeries{
		Name:    string(d.Type),
		XValues: xs,
		YValues: ys,
		Style:   chart.Style{StrokeColor: style.StrokeColor, StrokeWidth: 2},
	}
	if d.Type == models.Area && len(pts) > 1 {
		series.Style.FillColor = style.FillColor.WithAlpha(96)
	}
	if len(pts) == 1 {
		// A lone point has no segment to stroke or fill, and go-chart
		// derives the x range from the ticks, which must therefore span it.
		series.Style.DotWidth = 5
		series.Style.DotColor = style.StrokeColor
		if ticks != nil {
			ticks = []chart.Tick{{Value: -1}, ticks[0], {Value: 1}}
		}
	}
	return &chart.Chart{
		Width:  width,
		Height: height,
		XAxis:  chart.XAxis{Ticks: ticks, Range: span(xs, false)},
		YAxis:  chart.YAxis{Range: span(ys, d.Type == models.Area)},
		Series: []chart.Series{series},
	}
}

func scatterImage(pts []point, width, height int, style chart.Style) *chart.Chart {
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	for i, p := range pts {
		xs[i], ys[i] = p.X, p.Y
	}
	return &chart.Chart{
		Width:  width,
		Height: height,
		XAxis:  chart.XAxis{Range: span(xs, false)},
		YAxis:  chart.YAxis{Range: span(ys, false)},
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeWidth: chart.Disabled,
					DotWidth:    5,
					DotColor:    style.FillColor,
				},
			},
		},
	}
}

func yValues(pts []point) []float64 {
	result := make([]float64, len(pts))
	for i, p := range pts {
		result[i] = p.Y
	}
	return result
}

// span is the value range of vals, widened so it is never empty. With
// fromZero the range always includes zero.
func span(vals []float64, fromZero bool) *chart.ContinuousRange {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range vals {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if fromZero {
		lo = math.Min(lo, 0)
		hi = math.Max(hi, 0)
	}
	if lo == hi {
		lo, hi = lo-1, hi+1
	}
	return &chart.ContinuousRange{Min: lo, Max: hi}
}
