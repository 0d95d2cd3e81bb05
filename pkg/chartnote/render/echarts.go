package render

import (
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/ukaji3/chartnote-go/pkg/chartnote/models"
)

type renderer interface {
	Render(w io.Writer) error
}

// HTML writes an interactive preview page of d to w.
func HTML(w io.Writer, d models.Descriptor, title string) error {
	pts := points(d.Data)
	if len(pts) == 0 {
		return ErrNoData
	}
	if title == "" {
		title = string(d.Type)
	}
	global := []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Width:     px(d.Width),
			Height:    px(d.Height),
		}),
		charts.WithTitleOpts(opts.Title{Title: title}),
	}
	color := cssColor(d.Color)

	var chart renderer
	switch d.Type {
	case models.Line, models.Area:
		chart = lineHTML(pts, d.Type, color, global)
	case models.Pie, models.Donut:
		chart = pieHTML(pts, d.Type, color, global)
	case models.Scatter, models.Bubble:
		chart = scatterHTML(pts, d.Type, color, global)
	default:
		chart = barHTML(pts, d.Type, color, global)
	}
	return chart.Render(w)
}

func px(n int) string {
	if n <= 0 {
		return ""
	}
	return strconv.Itoa(n) + "px"
}

func labels(pts []point) []string {
	result := make([]string, len(pts))
	for i, p := range pts {
		result[i] = p.Label
	}
	return result
}

func barHTML(pts []point, kind models.ChartType, color string, global []charts.GlobalOpts) renderer {
	bar := charts.NewBar()
	bar.SetGlobalOptions(global...)
	items := make([]opts.BarData, len(pts))
	for i, p := range pts {
		items[i] = opts.BarData{Name: p.Label, Value: p.Y}
	}
	bar.SetXAxis(labels(pts)).
		AddSeries(string(kind), items, charts.WithItemStyleOpts(opts.ItemStyle{Color: color}))
	if kind == models.HorizontalBar {
		bar.XYReversal()
	}
	return bar
}

func lineHTML(pts []point, kind models.ChartType, color string, global []charts.GlobalOpts) renderer {
	line := charts.NewLine()
	line.SetGlobalOptions(global...)
	items := make([]opts.LineData, len(pts))
	for i, p := range pts {
		items[i] = opts.LineData{Name: p.Label, Value: p.Y}
	}
	series := []charts.SeriesOpts{
		charts.WithItemStyleOpts(opts.ItemStyle{Color: color}),
		charts.WithLineStyleOpts(opts.LineStyle{Color: color}),
	}
	if kind == models.Area {
		series = append(series, charts.WithAreaStyleOpts(opts.AreaStyle{Color: color}))
	}
	line.SetXAxis(labels(pts)).AddSeries(string(kind), items, series...)
	return line
}

func pieHTML(pts []point, kind models.ChartType, color string, global []charts.GlobalOpts) renderer {
	pie := charts.NewPie()
	pie.SetGlobalOptions(global...)
	items := make([]opts.PieData, 0, len(pts))
	for _, p := range pts {
		items = append(items, opts.PieData{Name: p.Label, Value: p.Y})
	}
	radius := "75%"
	var inner any = radius
	if kind == models.Donut {
		inner = []string{"40%", radius}
	}
	pie.AddSeries(string(kind), items,
		charts.WithPieChartOpts(opts.PieChart{Radius: inner}),
		charts.WithItemStyleOpts(opts.ItemStyle{BorderColor: color}),
	)
	return pie
}

func scatterHTML(pts []point, kind models.ChartType, color string, global []charts.GlobalOpts) renderer {
	scatter := charts.NewScatter()
	global = append(global,
		charts.WithXAxisOpts(opts.XAxis{Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value"}),
	)
	scatter.SetGlobalOptions(global...)
	items := make([]opts.ScatterData, len(pts))
	for i, p := range pts {
		items[i] = opts.ScatterData{Name: p.Label, Value: []float64{p.X, p.Y}}
		if kind == models.Bubble && p.Size > 0 {
			items[i].SymbolSize = int(p.Size)
		}
	}
	scatter.AddSeries(string(kind), items, charts.WithItemStyleOpts(opts.ItemStyle{Color: color}))
	return scatter
}
