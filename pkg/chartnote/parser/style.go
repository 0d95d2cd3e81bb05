package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ukaji3/chartnote-go/pkg/chartnote/models"
)

// Defaults used when a style value cannot be found.
const (
	DefaultWidth  = 600
	DefaultHeight = 400
	DefaultColor  = "steelblue"
)

var (
	widthPattern  = regexp.MustCompile(`(?:^|[^\w-])width["']?\s*[:=,]\s*(\d+)`)
	heightPattern = regexp.MustCompile(`(?:^|[^\w-])height["']?\s*[:=,]\s*(\d+)`)
	colorPattern  = regexp.MustCompile(`(?:^|[^\w-])(?:fill|stroke|color)["']?\s*[:=,]\s*["'\x60]([^"'\x60\n]+)["'\x60]`)

	hexColorPattern   = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3,4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
	funcColorPattern  = regexp.MustCompile(`^(?:rgba?|hsla?)\([^)]*\)$`)
	namedColorPattern = regexp.MustCompile(`^[a-zA-Z]+$`)
)

// nonColors are keyword values of fill/stroke that name no colour.
var nonColors = map[string]bool{
	"none":         true,
	"transparent":  true,
	"currentcolor": true,
	"inherit":      true,
	"initial":      true,
	"unset":        true,
}

// ExtractStyleParams recovers width, height and primary colour. Each value
// defaults independently.
func ExtractStyleParams(src string) models.StyleParams {
	p, _ := extractStyle(src)
	return p
}

// styleFound records which style values were read from the text.
type styleFound struct {
	width, height, color bool
}

func extractStyle(src string) (models.StyleParams, styleFound) {
	p := models.StyleParams{Width: DefaultWidth, Height: DefaultHeight, Color: DefaultColor}
	var found styleFound
	if v, ok := firstDimension(widthPattern, src); ok {
		p.Width, found.width = v, true
	}
	if v, ok := firstDimension(heightPattern, src); ok {
		p.Height, found.height = v, true
	}
	for _, m := range colorPattern.FindAllStringSubmatch(src, -1) {
		if c := strings.TrimSpace(m[1]); IsColor(c) {
			p.Color, found.color = c, true
			break
		}
	}
	return p, found
}

func firstDimension(pattern *regexp.Regexp, src string) (int, bool) {
	for _, m := range pattern.FindAllStringSubmatch(src, -1) {
		if v, err := strconv.Atoi(m[1]); err == nil && v > 0 {
			return v, true
		}
	}
	return 0, false
}

// IsColor reports whether s looks like a CSS colour: a hex literal, an
// rgb()/hsl() call or a plain colour name.
func IsColor(s string) bool {
	switch {
	case hexColorPattern.MatchString(s), funcColorPattern.MatchString(s):
		return true
	case namedColorPattern.MatchString(s):
		return !nonColors[strings.ToLower(s)]
	}
	return false
}

// IsHexColor reports whether s is a #rgb, #rgba, #rrggbb or #rrggbbaa literal.
func IsHexColor(s string) bool {
	return hexColorPattern.MatchString(s)
}
