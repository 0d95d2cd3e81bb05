package sheets

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goccy/go-json"
	"github.com/xuri/excelize/v2"
	"golang.org/x/image/colornames"

	"github.com/ukaji3/chartnote-go/pkg/chartnote/models"
	"github.com/ukaji3/chartnote-go/pkg/chartnote/parser"
)

// DataSheet is the sheet Export writes records to.
const DataSheet = "Data"

// DataName is the defined name Export gives the written data range.
const DataName = "chartdata"

// exportKinds maps chart kinds to native workbook charts.
var exportKinds = map[models.ChartType]excelize.ChartType{
	models.Bar:           excelize.Col,
	models.Histogram:     excelize.Col,
	models.HorizontalBar: excelize.Bar,
	models.StackedBar:    excelize.ColStacked,
	models.Line:          excelize.Line,
	models.Area:          excelize.Area,
	models.Pie:           excelize.Pie,
	models.Donut:         excelize.Doughnut,
	models.Scatter:       excelize.Scatter,
	models.Radar:         excelize.Radar,
}

// Export writes d's records to a new workbook at path: a header row, one
// row per record and, for kinds a workbook can draw, a native chart.
func Export(path string, d models.Descriptor) error {
	if len(d.Data) == 0 {
		return ErrNoRecords
	}

	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", DataSheet); err != nil {
		return err
	}

	keys := exportKeys(d.Data)
	header := make([]any, len(keys))
	for i, k := range keys {
		header[i] = k
	}
	if err := f.SetSheetRow(DataSheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, rec := range d.Data {
		row := make([]any, len(keys))
		for j, k := range keys {
			row[j] = cellValue(rec[k])
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(DataSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	lastRow := len(d.Data) + 1
	if err := f.SetDefinedName(&excelize.DefinedName{
		Name:     DataName,
		RefersTo: absoluteRef(DataSheet, 1, 1, len(keys), lastRow),
	}); err != nil {
		return fmt.Errorf("failed to define %s: %w", DataName, err)
	}

	if chart := exportChart(d, keys, lastRow); chart != nil {
		anchor, _ := excelize.CoordinatesToCellName(len(keys)+2, 1)
		if err := f.AddChart(DataSheet, anchor, chart); err != nil {
			return fmt.Errorf("failed to add chart: %w", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// exportChart builds the native chart for d, or nil when the kind has no
// workbook counterpart or the records lack a value column.
func exportChart(d models.Descriptor, keys []string, lastRow int) *excelize.Chart {
	kind, ok := exportKinds[d.Type]
	if !ok {
		return nil
	}
	valueCol, catCol := column(keys, "value"), column(keys, "label")
	if valueCol == 0 {
		valueCol, catCol = column(keys, "y"), column(keys, "x")
	}
	if valueCol == 0 {
		return nil
	}

	series := excelize.ChartSeries{
		Name:   absoluteRef(DataSheet, valueCol, 1, valueCol, 1),
		Values: absoluteRef(DataSheet, valueCol, 2, valueCol, lastRow),
	}
	if catCol > 0 {
		series.Categories = absoluteRef(DataSheet, catCol, 2, catCol, lastRow)
	}
	if hex, ok := hexColor(d.Color); ok && d.Type != models.Pie && d.Type != models.Donut {
		series.Fill = excelize.Fill{Type: "pattern", Color: []string{hex}, Pattern: 1}
	}
	return &excelize.Chart{
		Type:   kind,
		Series: []excelize.ChartSeries{series},
		Title:  []excelize.RichTextRun{{Text: string(d.Type)}},
	}
}

// column returns the 1-based column of key, or 0.
func column(keys []string, key string) int {
	for i, k := range keys {
		if k == key {
			return i + 1
		}
	}
	return 0
}

var exportLeading = []string{"label", "value", "x", "y"}

// exportKeys returns the union of record keys: label, value, x and y first,
// then the rest sorted.
func exportKeys(records []models.Record) []string {
	seen := make(map[string]bool)
	for _, r := range records {
		for k := range r {
			seen[k] = true
		}
	}
	keys := make([]string, 0, len(seen))
	for _, k := range exportLeading {
		if seen[k] {
			keys = append(keys, k)
			delete(seen, k)
		}
	}
	rest := make([]string, 0, len(seen))
	for k := range seen {
		rest = append(rest, k)
	}
	sort.Strings(rest)
	return append(keys, rest...)
}

func cellValue(v any) any {
	switch v.(type) {
	case nil:
		return nil
	case string, bool, float64, float32, int, int64:
		return v
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(data)
}

// hexColor returns a colour as RRGGBB, resolving CSS names.
func hexColor(c string) (string, bool) {
	c = strings.TrimSpace(c)
	if parser.IsHexColor(c) {
		h := strings.ToUpper(strings.TrimPrefix(c, "#"))
		switch len(h) {
		case 3, 4:
			return string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]}), true
		default:
			return h[:6], true
		}
	}
	if rgba, ok := colornames.Map[strings.ToLower(c)]; ok {
		return fmt.Sprintf("%02X%02X%02X", rgba.R, rgba.G, rgba.B), true
	}
	return "", false
}
