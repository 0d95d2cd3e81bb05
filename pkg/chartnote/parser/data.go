package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ukaji3/chartnote-go/pkg/chartnote/models"
)

// DataNames are the conventional variable names a data literal is assigned to.
var DataNames = []string{"data", "events", "nodes", "tasks", "matrix"}

var (
	assignmentPattern = regexp.MustCompile(`\b(?:(?:const|let|var)\s+)?(?:` + strings.Join(DataNames, "|") + `)\s*=\s*\[`)
	bindPattern       = regexp.MustCompile(`\.(?:data|datum)\(\s*\[`)

	groupPattern = regexp.MustCompile(`\{[^{}]*\}`)
	labelPattern = regexp.MustCompile(`\blabel["']?\s*:\s*["'\x60]([^"'\x60]*)["'\x60]`)
	valuePattern = regexp.MustCompile(`\bvalue["']?\s*:\s*(-?\d+(?:\.\d+)?(?:[eE][-+]?\d+)?)\s*(?:,|\}|$)`)
)

// dataStage is one attempt of the extraction pipeline: a way to find a
// literal in the script and a way to decode it.
type dataStage struct {
	name   string
	locate func(pairs *brackets) (string, bool)
	decode func(lit string) ([]models.Record, bool)
}

// dataPipeline is tried in order; the first stage yielding records wins.
// The bind stages only run when both assignment stages came up empty.
var dataPipeline = []dataStage{
	{name: "assignment/strict", locate: locateAssignment, decode: decodeStrict},
	{name: "assignment/permissive", locate: locateAssignment, decode: decodePermissive},
	{name: "bind/strict", locate: locateBind, decode: decodeStrict},
	{name: "bind/permissive", locate: locateBind, decode: decodePermissive},
}

// ExtractData recovers the chart's data array from script text. It returns
// an empty, non-nil slice when nothing can be recovered.
func ExtractData(src string) []models.Record {
	records, _ := extractData(src)
	return records
}

func extractData(src string) ([]models.Record, string) {
	pairs := matchBrackets(src)
	for _, stage := range dataPipeline {
		lit, ok := stage.locate(pairs)
		if !ok {
			continue
		}
		if records, ok := stage.decode(lit); ok && len(records) > 0 {
			return records, stage.name
		}
	}
	return []models.Record{}, ""
}

func locateAssignment(pairs *brackets) (string, bool) {
	return locateFirst(assignmentPattern, pairs)
}

func locateBind(pairs *brackets) (string, bool) {
	return locateFirst(bindPattern, pairs)
}

// locateFirst returns the first balanced literal opened by a match of
// pattern. Every match pattern produces ends on the opening bracket.
func locateFirst(pattern *regexp.Regexp, pairs *brackets) (string, bool) {
	for _, loc := range pattern.FindAllStringIndex(pairs.src, -1) {
		if lit, ok := pairs.literalAt(loc[1] - 1); ok {
			return lit, true
		}
	}
	return "", false
}

// decodePermissive decodes each flat {...} group of the literal on its own.
// A group that fails strict decoding still yields a record when a literal
// label and a literal numeric value can be read from it; otherwise it is
// dropped.
func decodePermissive(lit string) ([]models.Record, bool) {
	var records []models.Record
	for _, group := range groupPattern.FindAllString(lit, -1) {
		if rec, ok := decodeObject(group); ok {
			records = append(records, rec)
			continue
		}
		if rec, ok := labelValue(group); ok {
			records = append(records, rec)
		}
	}
	return records, len(records) > 0
}

func labelValue(group string) (models.Record, bool) {
	label := labelPattern.FindStringSubmatch(group)
	value := valuePattern.FindStringSubmatch(group)
	if label == nil || value == nil {
		return nil, false
	}
	v, err := strconv.ParseFloat(value[1], 64)
	if err != nil {
		return nil, false
	}
	return models.Record{"label": label[1], "value": v}, true
}
