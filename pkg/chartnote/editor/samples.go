package editor

import "github.com/ukaji3/chartnote-go/pkg/chartnote/models"

// SampleData returns starter records shaped for the given chart kind.
func SampleData(kind models.ChartType) []models.Record {
	switch kind {
	case models.Scatter:
		return []models.Record{
			{"x": 5.0, "y": 20.0},
			{"x": 14.0, "y": 38.0},
			{"x": 25.0, "y": 31.0},
			{"x": 33.0, "y": 52.0},
		}
	case models.StackedBar:
		return []models.Record{
			{"label": "2022", "a": 10.0, "b": 20.0},
			{"label": "2023", "a": 15.0, "b": 12.0},
		}
	case models.Heatmap:
		return []models.Record{
			{"row": "Mon", "col": "9am", "value": 3.0},
			{"row": "Mon", "col": "12pm", "value": 8.0},
			{"row": "Tue", "col": "9am", "value": 5.0},
			{"row": "Tue", "col": "12pm", "value": 1.0},
		}
	case models.Radar:
		return []models.Record{
			{"axis": "Speed", "value": 0.8},
			{"axis": "Power", "value": 0.6},
			{"axis": "Range", "value": 0.9},
		}
	case models.Force:
		return []models.Record{{"id": "alpha"}, {"id": "beta"}, {"id": "gamma"}}
	case models.Timeline:
		return []models.Record{
			{"label": "Kickoff", "date": "2024-01-10"},
			{"label": "Launch", "date": "2024-05-20"},
		}
	case models.Gantt:
		return []models.Record{
			{"label": "Design", "start": "2024-01-01", "end": "2024-01-20"},
			{"label": "Build", "start": "2024-01-15", "end": "2024-03-01"},
		}
	case models.Histogram:
		return []models.Record{{"value": 2.0}, {"value": 3.0}, {"value": 3.0}, {"value": 5.0}}
	}
	return []models.Record{
		{"label": "A", "value": 30.0},
		{"label": "B", "value": 80.0},
		{"label": "C", "value": 45.0},
		{"label": "D", "value": 60.0},
	}
}
