package sheets

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/ukaji3/chartnote-go/pkg/chartnote/models"
	"github.com/ukaji3/chartnote-go/pkg/chartnote/parser"
)

func descriptor(kind models.ChartType) models.Descriptor {
	return models.Descriptor{
		Type: kind,
		Data: []models.Record{
			{"label": "A", "value": 30.0},
			{"label": "B", "value": 80.0},
			{"label": "C", "value": 45.0},
		},
		Width:  parser.DefaultWidth,
		Height: parser.DefaultHeight,
		Color:  parser.DefaultColor,
	}
}

func TestExportImportChart(t *testing.T) {
	kinds := []models.ChartType{
		models.Bar, models.HorizontalBar, models.StackedBar, models.Line,
		models.Area, models.Pie, models.Donut, models.Radar,
	}
	for _, kind := range kinds {
		t.Run(string(kind), func(t *testing.T) {
			d := descriptor(kind)
			path := filepath.Join(t.TempDir(), "chart.xlsx")
			if err := Export(path, d); err != nil {
				t.Fatalf("Export() error = %v", err)
			}

			got, err := ImportChart(path)
			if err != nil {
				t.Fatalf("ImportChart() error = %v", err)
			}
			if got.Type != kind {
				t.Errorf("Type = %s, want %s", got.Type, kind)
			}
			if !reflect.DeepEqual(got.Data, d.Data) {
				t.Errorf("Data = %v, want %v", got.Data, d.Data)
			}
		})
	}
}

func TestExportImportScatter(t *testing.T) {
	d := models.Descriptor{
		Type: models.Scatter,
		Data: []models.Record{
			{"x": 1.0, "y": 10.0},
			{"x": 2.5, "y": 20.0},
		},
	}
	path := filepath.Join(t.TempDir(), "scatter.xlsx")
	if err := Export(path, d); err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	got, err := ImportChart(path)
	if err != nil {
		t.Fatalf("ImportChart() error = %v", err)
	}
	if got.Type != models.Scatter {
		t.Errorf("Type = %s, want scatter", got.Type)
	}
	if !reflect.DeepEqual(got.Data, d.Data) {
		t.Errorf("Data = %v, want %v", got.Data, d.Data)
	}
}

func TestExportRecords(t *testing.T) {
	d := descriptor(models.Gantt)
	d.Data[1]["extra"] = "note"
	path := filepath.Join(t.TempDir(), "gantt.xlsx")
	if err := Export(path, d); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	got, err := ImportRecords(path, DataSheet)
	if err != nil {
		t.Fatalf("ImportRecords() error = %v", err)
	}
	if !reflect.DeepEqual(got, d.Data) {
		t.Errorf("ImportRecords() = %v, want %v", got, d.Data)
	}

	named, err := ImportRange(path, DataName)
	if err != nil {
		t.Fatalf("ImportRange(%s) error = %v", DataName, err)
	}
	if !reflect.DeepEqual(named, d.Data) {
		t.Errorf("ImportRange() = %v, want %v", named, d.Data)
	}

	if _, err := ImportChart(path); !errors.Is(err, ErrNoChart) {
		t.Errorf("ImportChart(no chart) error = %v, want ErrNoChart", err)
	}
}

func TestExportEmpty(t *testing.T) {
	err := Export(filepath.Join(t.TempDir(), "x.xlsx"), models.Descriptor{Type: models.Bar})
	if !errors.Is(err, ErrNoRecords) {
		t.Errorf("Export(empty) error = %v, want ErrNoRecords", err)
	}
}

func TestExportKeys(t *testing.T) {
	got := exportKeys([]models.Record{
		{"zeta": 1.0, "value": 2.0},
		{"alpha": 1.0, "label": "A", "y": 3.0},
	})
	want := []string{"label", "value", "y", "alpha", "zeta"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("exportKeys() = %v, want %v", got, want)
	}
}

func TestHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"#ff8800", "FF8800", true},
		{"#f80", "FF8800", true},
		{"#ff880080", "FF8800", true},
		{"steelblue", "4682B4", true},
		{"notacolour", "", false},
	}
	for _, tt := range tests {
		got, ok := hexColor(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("hexColor(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

const chartXML = `<?xml version="1.0" encoding="UTF-8"?>
<c:chartSpace xmlns:c="http://schemas.openxmlformats.org/drawingml/2006/chart" xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main">
  <c:chart>
    <c:plotArea>
      <c:barChart>
        <c:barDir val="bar"/>
        <c:grouping val="clustered"/>
        <c:ser>
          <c:tx><c:strRef><c:f>Sheet1!$B$1</c:f></c:strRef></c:tx>
          <c:spPr><a:solidFill><a:srgbClr val="1F77B4"/></a:solidFill></c:spPr>
          <c:cat><c:strRef><c:f>Sheet1!$A$2:$A$4</c:f></c:strRef></c:cat>
          <c:val><c:numRef><c:f>Sheet1!$B$2:$B$4</c:f></c:numRef></c:val>
        </c:ser>
      </c:barChart>
    </c:plotArea>
  </c:chart>
</c:chartSpace>`

func TestParseChartXML(t *testing.T) {
	plot := parseChartXML([]byte(chartXML))
	if plot.element != "barChart" {
		t.Errorf("element = %q, want barChart", plot.element)
	}
	if plot.kind() != models.HorizontalBar {
		t.Errorf("kind() = %s, want horizontal-bar", plot.kind())
	}
	if len(plot.series) != 1 {
		t.Fatalf("series = %d, want 1", len(plot.series))
	}
	want := seriesRef{
		categories: "Sheet1!$A$2:$A$4",
		values:     "Sheet1!$B$2:$B$4",
		color:      "#1f77b4",
	}
	if plot.series[0] != want {
		t.Errorf("series[0] = %+v, want %+v", plot.series[0], want)
	}
}

func TestPlotSpecKind(t *testing.T) {
	tests := []struct {
		plot plotSpec
		want models.ChartType
	}{
		{plotSpec{element: "barChart", barDir: "col", grouping: "clustered"}, models.Bar},
		{plotSpec{element: "barChart", barDir: "col", grouping: "percentStacked"}, models.StackedBar},
		{plotSpec{element: "bar3DChart", barDir: "bar"}, models.HorizontalBar},
		{plotSpec{element: "doughnutChart"}, models.Donut},
		{plotSpec{element: "surfaceChart"}, models.Heatmap},
		{plotSpec{element: "unknownChart"}, models.Bar},
	}
	for _, tt := range tests {
		if got := tt.plot.kind(); got != tt.want {
			t.Errorf("%+v.kind() = %s, want %s", tt.plot, got, tt.want)
		}
	}
}
