package sheets

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/chartnote-go/pkg/chartnote/models"
)

// writeWorkbook saves rows to Sheet1 of a new workbook starting at origin.
func writeWorkbook(t *testing.T, origin string, rows [][]any) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	col, row, err := excelize.CellNameToCoordinates(origin)
	if err != nil {
		t.Fatalf("CellNameToCoordinates: %v", err)
	}
	for i, r := range rows {
		cell, _ := excelize.CoordinatesToCellName(col, row+i)
		values := r
		if err := f.SetSheetRow("Sheet1", cell, &values); err != nil {
			t.Fatalf("SetSheetRow: %v", err)
		}
	}
	path := filepath.Join(t.TempDir(), "book.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}
	return path
}

func TestImportRecords(t *testing.T) {
	path := writeWorkbook(t, "B3", [][]any{
		{"label", "value", "note"},
		{"A", 30, "first"},
		{"B", 80.5, nil},
		{nil, nil, nil},
		{"C", 45, "third"},
	})

	got, err := ImportRecords(path, "")
	if err != nil {
		t.Fatalf("ImportRecords() error = %v", err)
	}
	want := []models.Record{
		{"label": "A", "value": 30.0, "note": "first"},
		{"label": "B", "value": 80.5},
		{"label": "C", "value": 45.0, "note": "third"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ImportRecords() = %v, want %v", got, want)
	}
}

func TestImportRecordsErrors(t *testing.T) {
	empty := writeWorkbook(t, "A1", nil)
	if _, err := ImportRecords(empty, ""); !errors.Is(err, ErrNoRecords) {
		t.Errorf("ImportRecords(empty) error = %v, want ErrNoRecords", err)
	}

	if _, err := ImportRecords(empty, "Missing"); err == nil {
		t.Error("ImportRecords(missing sheet) expected error")
	}

	if _, err := ImportRecords(filepath.Join(t.TempDir(), "nope.xlsx"), ""); err == nil {
		t.Error("ImportRecords(missing file) expected error")
	}
}

func TestImportRange(t *testing.T) {
	path := writeWorkbook(t, "A1", [][]any{
		{"title", "ignored"},
		{"x", "y"},
		{1, 2},
		{3, 4},
	})

	got, err := ImportRange(path, "Sheet1!$A$2:$B$4")
	if err != nil {
		t.Fatalf("ImportRange() error = %v", err)
	}
	want := []models.Record{{"x": 1.0, "y": 2.0}, {"x": 3.0, "y": 4.0}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ImportRange() = %v, want %v", got, want)
	}

	if _, err := ImportRange(path, "unknownName"); err == nil {
		t.Error("ImportRange(unknown name) expected error")
	}
	if _, err := ImportRange(path, "Sheet1!$A$1:$B$1"); !errors.Is(err, ErrNoRecords) {
		t.Errorf("ImportRange(header only) error = %v, want ErrNoRecords", err)
	}
}

func TestParseReference(t *testing.T) {
	tests := []struct {
		ref     string
		want    area
		wantErr bool
	}{
		{"Sheet1!A1:B3", area{"Sheet1", 1, 1, 3, 2}, false},
		{"'My Data'!$B$2:$C$9", area{"My Data", 2, 2, 9, 3}, false},
		{"=Sheet1!$C$3", area{"Sheet1", 3, 3, 3, 3}, false},
		{"Sheet1!B3:A1", area{"Sheet1", 1, 1, 3, 2}, false},
		{"Sheet1!A1:A2,Sheet1!C1:C2", area{"Sheet1", 1, 1, 2, 1}, false},
		{"A1:B2", area{}, true},
		{"Sheet1!ZZZZZ", area{}, true},
	}

	for _, tt := range tests {
		got, err := parseReference(tt.ref)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseReference(%q) error = %v, wantErr %v", tt.ref, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parseReference(%q) = %+v, want %+v", tt.ref, got, tt.want)
		}
	}
}

func TestRecordsFromGrid(t *testing.T) {
	grid := [][]string{
		{"label", "", " value "},
		{"A", "x", "1.5"},
		{"", "", ""},
	}
	got := recordsFromGrid(grid)
	want := []models.Record{{"label": "A", "column2": "x", "value": 1.5}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("recordsFromGrid() = %v, want %v", got, want)
	}

	if got := recordsFromGrid(nil); got == nil || len(got) != 0 {
		t.Errorf("recordsFromGrid(nil) = %v, want empty non-nil", got)
	}
}
