package parser

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/ukaji3/chartnote-go/pkg/chartnote/models"
)

func TestExtractData(t *testing.T) {
	tests := []struct {
		name      string
		src       string
		want      []models.Record
		wantStage string
	}{
		{
			name: "label value literal",
			src:  `const data = [{label: "A", value: 30}, {label: 'B', value: 80.5}];`,
			want: []models.Record{
				{"label": "A", "value": 30.0},
				{"label": "B", "value": 80.5},
			},
			wantStage: "assignment/strict",
		},
		{
			name:      "json literal",
			src:       `var data = [{"label": "A", "value": -2e3}]`,
			want:      []models.Record{{"label": "A", "value": -2000.0}},
			wantStage: "assignment/strict",
		},
		{
			name: "comments and trailing commas",
			src: `let data = [
  // first
  {label: "a]b", value: 1,}, /* second */
  {label: ` + "`c`" + `, value: 2},
];`,
			want: []models.Record{
				{"label": "a]b", "value": 1.0},
				{"label": "c", "value": 2.0},
			},
			wantStage: "assignment/strict",
		},
		{
			name: "nested values",
			src:  `const nodes = [{id: "a", meta: {x: 1, tags: ["t"]}, ok: true, none: null}];`,
			want: []models.Record{
				{"id": "a", "meta": map[string]any{"x": 1.0, "tags": []any{"t"}}, "ok": true, "none": nil},
			},
			wantStage: "assignment/strict",
		},
		{
			name:      "events alias",
			src:       `const events = [{date: "2021-01-01", label: "Start"}];`,
			want:      []models.Record{{"date": "2021-01-01", "label": "Start"}},
			wantStage: "assignment/strict",
		},
		{
			name:      "tasks alias without declaration",
			src:       `tasks = [{task: "Build", start: 1, end: 4}]`,
			want:      []models.Record{{"task": "Build", "start": 1.0, "end": 4.0}},
			wantStage: "assignment/strict",
		},
		{
			name:      "computed field dropped by permissive scan",
			src:       `const data = [{label: "A", value: 10}, {label: "B", value: compute(2)}];`,
			want:      []models.Record{{"label": "A", "value": 10.0}},
			wantStage: "assignment/permissive",
		},
		{
			name: "label value rescue",
			src:  `const data = [{label: "A", value: 5, color: pick()}, {name: "x", size: f()}];`,
			want: []models.Record{
				{"label": "A", "value": 5.0},
			},
			wantStage: "assignment/permissive",
		},
		{
			name:      "arithmetic value is not a literal",
			src:       `const data = [{label: "A", value: 10 * 2}, {label: "B", value: 3}];`,
			want:      []models.Record{{"label": "B", "value": 3.0}},
			wantStage: "assignment/permissive",
		},
		{
			name:      "bind call",
			src:       `svg.selectAll("rect").data([{label: "X", value: 1}]).join("rect");`,
			want:      []models.Record{{"label": "X", "value": 1.0}},
			wantStage: "bind/strict",
		},
		{
			name:      "bind after unusable assignment",
			src:       `const data = [1, 2, 3]; g.datum([{label: "X", value: 1}]);`,
			want:      []models.Record{{"label": "X", "value": 1.0}},
			wantStage: "bind/strict",
		},
		{
			name:      "bind permissive",
			src:       `sel.data([{label: "X", value: 1}, {label: "Y", value: y(2)}])`,
			want:      []models.Record{{"label": "X", "value": 1.0}},
			wantStage: "bind/permissive",
		},
		{
			name:      "assignment wins over bind",
			src:       `sel.data([{label: "bound", value: 1}]); const data = [{label: "assigned", value: 2}];`,
			want:      []models.Record{{"label": "assigned", "value": 2.0}},
			wantStage: "assignment/strict",
		},
		{
			name: "matrix of arrays",
			src:  `const matrix = [[1, 2], [3, 4]];`,
			want: []models.Record{
				{"row": 0.0, "values": []any{1.0, 2.0}},
				{"row": 1.0, "values": []any{3.0, 4.0}},
			},
			wantStage: "assignment/strict",
		},
		{
			name:      "empty array",
			src:       `let data = [];`,
			want:      []models.Record{},
			wantStage: "",
		},
		{
			name:      "no literal",
			src:       `d3.csv("data.csv").then(draw);`,
			want:      []models.Record{},
			wantStage: "",
		},
		{
			name:      "unterminated",
			src:       `const data = [{label: "A", value: 1}`,
			want:      []models.Record{},
			wantStage: "",
		},
		{
			name:      "similar names ignored",
			src:       `const dataset = [{label: "A", value: 1}]; const mydata = [{label: "B", value: 2}];`,
			want:      []models.Record{},
			wantStage: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, stage := extractData(tt.src)
			if got == nil {
				t.Fatal("extractData() returned nil slice")
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("extractData() = %v, want %v", got, tt.want)
			}
			if stage != tt.wantStage {
				t.Errorf("extractData() stage = %q, want %q", stage, tt.wantStage)
			}
		})
	}
}

func TestExtractDataEmptyIsNonNil(t *testing.T) {
	for _, src := range []string{"", "garbage", "data = [", "]]]]"} {
		got := ExtractData(src)
		if got == nil || len(got) != 0 {
			t.Errorf("ExtractData(%q) = %#v, want empty non-nil", src, got)
		}
	}
}

func TestExtractDataLarge(t *testing.T) {
	var b strings.Builder
	b.WriteString("const data = [")
	for i := 0; i < 5000; i++ {
		b.WriteString(`{label: "row", value: 1},`)
	}
	b.WriteString("];")

	if got := ExtractData(b.String()); len(got) != 5000 {
		t.Errorf("ExtractData() returned %d records, want 5000", len(got))
	}
}

func TestExtractDataUnclosedIsLinear(t *testing.T) {
	inputs := map[string]string{
		"binds":       strings.Repeat(".data([", 160000),
		"assignments": strings.Repeat("data=[", 180000),
		"mismatched":  strings.Repeat("data=[", 180000) + ")",
	}
	for name, src := range inputs {
		t.Run(name, func(t *testing.T) {
			if len(src) < 1<<20 {
				t.Fatalf("input is %d bytes, want at least 1 MB", len(src))
			}
			start := time.Now()
			got := ExtractData(src)
			if elapsed := time.Since(start); elapsed > 5*time.Second {
				t.Errorf("ExtractData() took %v", elapsed)
			}
			if len(got) != 0 {
				t.Errorf("ExtractData() = %d records, want none", len(got))
			}
		})
	}
}

func TestLabelValue(t *testing.T) {
	tests := []struct {
		group string
		want  models.Record
		ok    bool
	}{
		{`{label: "A", value: 3}`, models.Record{"label": "A", "value": 3.0}, true},
		{`{"label": 'B', "value": -1.5}`, models.Record{"label": "B", "value": -1.5}, true},
		{`{value: 3, label: "C"}`, models.Record{"label": "C", "value": 3.0}, true},
		{`{label: "D"}`, nil, false},
		{`{value: 3}`, nil, false},
		{`{label: "E", value: f(3)}`, nil, false},
		{`{sublabel: "F", value: 1}`, nil, false},
	}
	for _, tt := range tests {
		got, ok := labelValue(tt.group)
		if ok != tt.ok || !reflect.DeepEqual(got, tt.want) {
			t.Errorf("labelValue(%q) = %v, %v; want %v, %v", tt.group, got, ok, tt.want, tt.ok)
		}
	}
}
