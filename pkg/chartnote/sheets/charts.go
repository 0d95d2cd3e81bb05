package sheets

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/chartnote-go/pkg/chartnote/models"
	"github.com/ukaji3/chartnote-go/pkg/chartnote/parser"
)

// plotKinds maps OOXML plot elements to chart kinds.
var plotKinds = map[string]models.ChartType{
	"lineChart":      models.Line,
	"line3DChart":    models.Line,
	"stockChart":     models.Line,
	"barChart":       models.Bar,
	"bar3DChart":     models.Bar,
	"areaChart":      models.Area,
	"area3DChart":    models.Area,
	"pieChart":       models.Pie,
	"pie3DChart":     models.Pie,
	"ofPieChart":     models.Pie,
	"doughnutChart":  models.Donut,
	"scatterChart":   models.Scatter,
	"bubbleChart":    models.Bubble,
	"radarChart":     models.Radar,
	"surfaceChart":   models.Heatmap,
	"surface3DChart": models.Heatmap,
}

// plotSpec is what ImportChart needs from a chart part.
type plotSpec struct {
	element  string
	barDir   string
	grouping string
	series   []seriesRef
}

// seriesRef holds the cell references of one series.
type seriesRef struct {
	categories string
	values     string
	color      string
}

func (p plotSpec) kind() models.ChartType {
	kind, ok := plotKinds[p.element]
	if !ok {
		return parser.DefaultType
	}
	if kind == models.Bar {
		switch {
		case p.grouping == "stacked" || p.grouping == "percentStacked":
			return models.StackedBar
		case p.barDir == "bar":
			return models.HorizontalBar
		}
	}
	return kind
}

// ImportChart reads the first chart of a workbook and the cells its first
// series refers to.
func ImportChart(path string) (models.Descriptor, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return models.Descriptor{}, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer r.Close()

	name := firstChartPart(&r.Reader)
	if name == "" {
		return models.Descriptor{}, ErrNoChart
	}
	data, err := readZipFile(&r.Reader, name)
	if err != nil {
		return models.Descriptor{}, fmt.Errorf("failed to read %s: %w", name, err)
	}
	plot := parseChartXML(data)
	if plot.element == "" || len(plot.series) == 0 {
		return models.Descriptor{}, fmt.Errorf("%s: %w", name, ErrNoChart)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return models.Descriptor{}, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	kind := plot.kind()
	records, err := seriesRecords(f, plot.series[0], kind)
	if err != nil {
		return models.Descriptor{}, err
	}

	d := models.Descriptor{
		Type:   kind,
		Data:   records,
		Width:  parser.DefaultWidth,
		Height: parser.DefaultHeight,
		Color:  parser.DefaultColor,
	}
	if c := plot.series[0].color; c != "" {
		d.Color = c
	}
	return d, nil
}

// firstChartPart returns the lowest-numbered xl/charts/chartN.xml part.
func firstChartPart(r *zip.Reader) string {
	var names []string
	for _, f := range r.File {
		if strings.HasPrefix(f.Name, "xl/charts/chart") && strings.HasSuffix(f.Name, ".xml") {
			names = append(names, f.Name)
		}
	}
	if len(names) == 0 {
		return ""
	}
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) < len(names[j])
		}
		return names[i] < names[j]
	})
	return names[0]
}

// seriesRecords builds label/value records, or x/y records for scatter
// kinds, from a series' category and value cells.
func seriesRecords(f *excelize.File, s seriesRef, kind models.ChartType) ([]models.Record, error) {
	if s.values == "" {
		return nil, ErrNoRecords
	}
	values, err := refValues(f, s.values)
	if err != nil {
		return nil, err
	}
	var cats []string
	if s.categories != "" {
		if cats, err = refValues(f, s.categories); err != nil {
			return nil, err
		}
	}

	xy := kind == models.Scatter || kind == models.Bubble
	records := []models.Record{}
	for i, v := range values {
		n, ok := parseValue(v).(float64)
		if !ok {
			continue
		}
		label := strconv.Itoa(i + 1)
		if i < len(cats) && cats[i] != "" {
			label = cats[i]
		}
		if xy {
			var x any = float64(i + 1)
			if i < len(cats) {
				x = parseValue(cats[i])
			}
			records = append(records, models.Record{"x": x, "y": n})
			continue
		}
		records = append(records, models.Record{"label": label, "value": n})
	}
	if len(records) == 0 {
		return nil, ErrNoRecords
	}
	return records, nil
}

// refValues returns the cell values of a reference in row-major order.
func refValues(f *excelize.File, ref string) ([]string, error) {
	a, err := parseReference(ref)
	if err != nil {
		return nil, err
	}
	grid, err := readArea(f, a)
	if err != nil {
		return nil, err
	}
	var result []string
	for _, row := range grid {
		result = append(result, row...)
	}
	return result, nil
}

// parseChartXML finds the first plot element of a chart part and the
// references of its series.
func parseChartXML(data []byte) plotSpec {
	decoder := xml.NewDecoder(strings.NewReader(string(data)))
	for {
		token, err := decoder.Token()
		if err != nil {
			return plotSpec{}
		}
		if se, ok := token.(xml.StartElement); ok {
			if _, known := plotKinds[se.Name.Local]; known {
				return parsePlot(decoder, se.Name.Local)
			}
		}
	}
}

func parsePlot(decoder *xml.Decoder, element string) plotSpec {
	plot := plotSpec{element: element}
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "barDir":
				plot.barDir = attr(t, "val")
			case "grouping":
				plot.grouping = attr(t, "val")
			case "ser":
				plot.series = append(plot.series, parseSeries(decoder))
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}
	return plot
}

func parseSeries(decoder *xml.Decoder) seriesRef {
	var s seriesRef
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "cat", "xVal":
				s.categories = parseFormula(decoder)
				depth--
			case "val", "yVal":
				s.values = parseFormula(decoder)
				depth--
			case "spPr":
				if c := parseFillColor(decoder); s.color == "" {
					s.color = c
				}
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}
	return s
}

// parseFormula returns the text of the first f element below the current one.
func parseFormula(decoder *xml.Decoder) string {
	var formula string
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "f" && formula == "" {
				if txt, err := readElementText(decoder); err == nil {
					formula = strings.TrimSpace(txt)
				}
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}
	return formula
}

// parseFillColor returns the solid fill colour of a shape property block as
// a lowercase #rrggbb literal.
func parseFillColor(decoder *xml.Decoder) string {
	var color string
	depth := 1
	inFill := 0

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "solidFill":
				inFill = depth
			case "srgbClr":
				if inFill > 0 && color == "" {
					if v := attr(t, "val"); len(v) == 6 {
						color = "#" + strings.ToLower(v)
					}
				}
			}
		case xml.EndElement:
			if depth == inFill {
				inFill = 0
			}
			depth--
		}
	}
	return color
}

func attr(se xml.StartElement, name string) string {
	for _, a := range se.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

func readZipFile(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, fmt.Errorf("%s: not found", name)
}

// readElementText collects character data up to the end of the current element.
func readElementText(decoder *xml.Decoder) (string, error) {
	var text strings.Builder
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return text.String(), err
		}
		switch t := token.(type) {
		case xml.CharData:
			text.Write(t)
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}
	return text.String(), nil
}
