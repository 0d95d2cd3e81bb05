package parser

import (
	"github.com/ukaji3/chartnote-go/pkg/chartnote/models"
)

// FallbackDescriptor is returned when analysis fails unexpectedly.
func FallbackDescriptor() models.Descriptor {
	return models.Descriptor{
		Type: DefaultType,
		Data: []models.Record{
			{"label": "A", "value": 30.0},
			{"label": "B", "value": 80.0},
			{"label": "C", "value": 45.0},
			{"label": "D", "value": 60.0},
			{"label": "E", "value": 20.0},
		},
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Color:  DefaultColor,
	}
}

// InferMetadata composes type, data and style recovery into a descriptor.
// It never fails.
func InferMetadata(src string) models.Descriptor {
	return Analyze(src).Descriptor
}

// Analyze is InferMetadata with the provenance of every field.
func Analyze(src string) (a models.Analysis) {
	defer func() {
		if r := recover(); r != nil {
			a = models.Analysis{
				Descriptor:   FallbackDescriptor(),
				TypeOrigin:   models.OriginDefault,
				DataOrigin:   models.OriginDefault,
				WidthOrigin:  models.OriginDefault,
				HeightOrigin: models.OriginDefault,
				ColorOrigin:  models.OriginDefault,
				Recovered:    true,
			}
		}
	}()

	chartType, rule := inferChartType(src)
	data, stage := extractData(src)
	style, found := extractStyle(src)

	return models.Analysis{
		Descriptor: models.Descriptor{
			Type:   chartType,
			Data:   data,
			Width:  style.Width,
			Height: style.Height,
			Color:  style.Color,
		},
		TypeOrigin:   origin(rule != ""),
		DataOrigin:   origin(stage != ""),
		WidthOrigin:  origin(found.width),
		HeightOrigin: origin(found.height),
		ColorOrigin:  origin(found.color),
		TypeRule:     rule,
		DataStage:    stage,
	}
}

func origin(inferred bool) models.Origin {
	if inferred {
		return models.OriginInferred
	}
	return models.OriginDefault
}
