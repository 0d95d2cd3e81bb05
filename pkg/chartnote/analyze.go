package chartnote

import (
	"github.com/ukaji3/chartnote-go/pkg/chartnote/codegen"
	"github.com/ukaji3/chartnote-go/pkg/chartnote/models"
	"github.com/ukaji3/chartnote-go/pkg/chartnote/parser"
)

// InferMetadata recovers a chart descriptor from script text. It never
// fails; unrecognised text yields defaults.
func InferMetadata(src string) models.Descriptor {
	return parser.InferMetadata(src)
}

// Analyze is InferMetadata with the provenance of each recovered field.
func Analyze(src string) models.Analysis {
	return parser.Analyze(src)
}

// Synthesize produces script text for d from the template with the given
// key. Unknown keys fall back to the built-in template for d.Type.
func Synthesize(d models.Descriptor, templateKey string) string {
	return codegen.Synthesize(d, templateKey)
}
