package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/ukaji3/chartnote-go/pkg/chartnote/models"
)

func sampleDescriptor() models.Descriptor {
	return models.Descriptor{
		Type:   models.Pie,
		Data:   []models.Record{{"label": "A", "value": 1.5}},
		Width:  320,
		Height: 240,
		Color:  "#ff0000",
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"json", JSON, false},
		{"", JSON, false},
		{"YAML", YAML, false},
		{"yml", YAML, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestToJSON(t *testing.T) {
	d := sampleDescriptor()

	compact, err := ToJSON(d, false)
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}
	if bytes.Contains(compact, []byte("\n")) {
		t.Errorf("compact JSON contains newline: %s", compact)
	}

	pretty, err := ToJSON(d, true)
	if err != nil {
		t.Fatalf("ToJSON(pretty) error = %v", err)
	}
	if !bytes.Contains(pretty, []byte("\n  \"type\": \"pie\"")) {
		t.Errorf("pretty JSON not indented: %s", pretty)
	}

	var back models.Descriptor
	if err := json.Unmarshal(compact, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back.Type != d.Type || back.Width != d.Width || back.Color != d.Color {
		t.Errorf("decoded %+v, want %+v", back, d)
	}
	if back.Data[0]["value"] != 1.5 {
		t.Errorf("value = %v, want 1.5", back.Data[0]["value"])
	}
}

func TestToYAML(t *testing.T) {
	data, err := ToYAML(sampleDescriptor())
	if err != nil {
		t.Fatalf("ToYAML() error = %v", err)
	}
	s := string(data)
	for _, want := range []string{"type: pie", "width: 320", "color: '#ff0000'", "  - label: A"} {
		if !strings.Contains(s, want) {
			t.Errorf("YAML missing %q:\n%s", want, s)
		}
	}

	var back models.Descriptor
	if err := yaml.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back.Height != 240 {
		t.Errorf("Height = %d, want 240", back.Height)
	}
}

func TestWrite(t *testing.T) {
	tests := []struct {
		format  Format
		prefix  string
		wantErr bool
	}{
		{JSON, "{\"type\":\"pie\"", false},
		{YAML, "type: pie", false},
		{Format("toml"), "", true},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			var buf bytes.Buffer
			err := Write(&buf, sampleDescriptor(), tt.format, false)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Write() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !strings.HasPrefix(buf.String(), tt.prefix) {
				t.Errorf("Write() = %q, want prefix %q", buf.String(), tt.prefix)
			}
			if !strings.HasSuffix(buf.String(), "\n") {
				t.Error("Write() output does not end with newline")
			}
		})
	}
}
