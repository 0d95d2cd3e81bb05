package parser

import (
	"regexp"
	"strings"

	"github.com/ukaji3/chartnote-go/pkg/chartnote/models"
)

// TypeRule is one row of the chart type priority table.
type TypeRule struct {
	Name  string
	Match func(src string) bool
	Type  models.ChartType
}

var (
	innerRadiusPattern = regexp.MustCompile(`innerRadius\(\s*([^)]*?)\s*\)`)
	tasksPattern       = regexp.MustCompile(`\b(?:const|let|var)\s+tasks\s*=`)
	eventsPattern      = regexp.MustCompile(`\b(?:const|let|var)\s+events\s*=`)
	circlePattern      = regexp.MustCompile(`(?:append|join)\(\s*["']circle["']\s*\)`)
	cxPattern          = regexp.MustCompile(`["']cx["']`)
	rectPattern        = regexp.MustCompile(`append\(\s*["']rect["']\s*\)`)
	pathPattern        = regexp.MustCompile(`append\(\s*["']path["']\s*\)`)
)

// TypeRules is the ordered priority table. Predicates overlap (a stacked bar
// chart also uses a band scale), so earlier rows take precedence.
var TypeRules = []TypeRule{
	{Name: "donut", Match: isDonut, Type: models.Donut},
	{Name: "pie", Match: contains("d3.pie"), Type: models.Pie},
	{Name: "chord", Match: contains("d3.chord"), Type: models.Chord},
	{Name: "force", Match: contains("forceSimulation"), Type: models.Force},
	{Name: "treemap", Match: contains("d3.treemap"), Type: models.Treemap},
	{Name: "radar", Match: anyOf(contains("lineRadial"), contains("radialLine")), Type: models.Radar},
	{Name: "gantt", Match: tasksPattern.MatchString, Type: models.Gantt},
	{Name: "timeline", Match: eventsPattern.MatchString, Type: models.Timeline},
	{Name: "stacked-bar", Match: contains("d3.stack", "scaleBand"), Type: models.StackedBar},
	{Name: "heatmap", Match: anyOf(contains("scaleSequential", "scaleBand"), contains("heatmap")), Type: models.Heatmap},
	{Name: "histogram", Match: anyOf(contains("d3.bin"), contains("d3.histogram")), Type: models.Histogram},
	{Name: "horizontal-bar", Match: contains("scaleBand", "y.bandwidth()"), Type: models.HorizontalBar},
	{Name: "bar", Match: contains("scaleBand"), Type: models.Bar},
	{Name: "area", Match: contains("d3.area"), Type: models.Area},
	{Name: "bubble", Match: anyOf(contains("d3.pack"), allOf(contains("scaleSqrt"), circlePattern.MatchString)), Type: models.Bubble},
	{Name: "line", Match: contains("d3.line"), Type: models.Line},
	{Name: "scatter", Match: allOf(circlePattern.MatchString, cxPattern.MatchString), Type: models.Scatter},
}

// ShapeRules run only when no TypeRules row matched: they guess from the
// generic shape a script draws.
var ShapeRules = []TypeRule{
	{Name: "shape/rect", Match: rectPattern.MatchString, Type: models.Bar},
	{Name: "shape/path", Match: pathPattern.MatchString, Type: models.Line},
	{Name: "shape/circle", Match: circlePattern.MatchString, Type: models.Scatter},
}

// DefaultType is returned when neither table matches.
const DefaultType = models.Bar

// InferChartType returns the chart kind of a script. It always returns one
// of models.ChartTypes.
func InferChartType(src string) models.ChartType {
	t, _ := inferChartType(src)
	return t
}

// inferChartType also reports the name of the matching rule, or "" when the
// default was used.
func inferChartType(src string) (models.ChartType, string) {
	for _, rules := range [][]TypeRule{TypeRules, ShapeRules} {
		for _, rule := range rules {
			if rule.Match(src) {
				return rule.Type, rule.Name
			}
		}
	}
	return DefaultType, ""
}

// isDonut reports a pie layout whose arcs have a non-zero inner radius.
func isDonut(src string) bool {
	if !strings.Contains(src, "d3.pie") {
		return false
	}
	for _, m := range innerRadiusPattern.FindAllStringSubmatch(src, -1) {
		switch m[1] {
		case "", "0", "0.0", "0.", ".0":
		default:
			return true
		}
	}
	return false
}

// contains matches when every substring is present.
func contains(subs ...string) func(string) bool {
	return func(src string) bool {
		for _, s := range subs {
			if !strings.Contains(src, s) {
				return false
			}
		}
		return true
	}
}

func allOf(preds ...func(string) bool) func(string) bool {
	return func(src string) bool {
		for _, p := range preds {
			if !p(src) {
				return false
			}
		}
		return true
	}
}

func anyOf(preds ...func(string) bool) func(string) bool {
	return func(src string) bool {
		for _, p := range preds {
			if p(src) {
				return true
			}
		}
		return false
	}
}
