// Package parser recovers chart metadata from D3 script text.
//
// Everything here is heuristic pattern matching over the script source. No
// expression is ever evaluated and no function in this package returns an
// error: failures resolve to empty results or documented defaults.
package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/ukaji3/chartnote-go/pkg/chartnote/models"
)

// FindAssignment locates the bracketed literal assigned to name, as in
// `const name = [...]`. It returns the literal's byte offsets in src.
func FindAssignment(src, name string) (start, end int, ok bool) {
	pattern, err := regexp.Compile(`\b(?:(?:const|let|var)\s+)?` + regexp.QuoteMeta(name) + `\s*=\s*\[`)
	if err != nil {
		return 0, 0, false
	}
	locs := pattern.FindAllStringIndex(src, -1)
	if len(locs) == 0 {
		return 0, 0, false
	}
	pairs := matchBrackets(src)
	for _, loc := range locs {
		start = loc[1] - 1
		if lit, ok := pairs.literalAt(start); ok {
			return start, start + len(lit), true
		}
	}
	return 0, 0, false
}

// brackets holds the bracket pairs of a script, computed in a single pass.
type brackets struct {
	src   string
	close map[int]int // opener offset -> closer offset
}

// matchBrackets pairs every bracket of src in one left-to-right pass.
// Strings in any JS quote style and comments are skipped. A mismatched
// closer leaves every bracket still open at that point unpaired, and an
// unterminated string ends the pass.
func matchBrackets(src string) *brackets {
	b := &brackets{src: src, close: make(map[int]int)}
	var open []int
	for i := 0; i < len(src); i++ {
		c := src[i]
		switch c {
		case '"', '\'', '`':
			end, closed := skipString(src, i)
			if !closed {
				return b
			}
			i = end - 1
		case '/':
			if i+1 < len(src) && (src[i+1] == '/' || src[i+1] == '*') {
				i = skipComment(src, i) - 1
			}
		case '[', '{', '(':
			open = append(open, i)
		case ']', '}', ')':
			if len(open) == 0 {
				continue
			}
			top := open[len(open)-1]
			if src[top] == opener(c) {
				b.close[top] = i
				open = open[:len(open)-1]
			} else {
				open = open[:0]
			}
		}
	}
	return b
}

func opener(closer byte) byte {
	switch closer {
	case ']':
		return '['
	case '}':
		return '{'
	}
	return '('
}

// literalAt returns the array or object literal opening at offset start.
func (b *brackets) literalAt(start int) (string, bool) {
	if start < 0 || start >= len(b.src) || (b.src[start] != '[' && b.src[start] != '{') {
		return "", false
	}
	end, ok := b.close[start]
	if !ok {
		return "", false
	}
	return b.src[start : end+1], true
}

// skipString returns the index just past the string literal opening at s[i].
func skipString(s string, i int) (end int, closed bool) {
	quote := s[i]
	for j := i + 1; j < len(s); j++ {
		switch s[j] {
		case '\\':
			j++
		case quote:
			return j + 1, true
		}
	}
	return len(s), false
}

// skipComment returns the index just past the comment opening at s[i].
func skipComment(s string, i int) int {
	if s[i+1] == '/' {
		if nl := strings.IndexByte(s[i:], '\n'); nl >= 0 {
			return i + nl
		}
		return len(s)
	}
	if end := strings.Index(s[i+2:], "*/"); end >= 0 {
		return i + 2 + end + 2
	}
	return len(s)
}

// normalizeLiteral rewrites a JS object/array literal into JSON: bare keys
// are quoted, single-quoted and backtick strings become double-quoted,
// comments and trailing commas are dropped. Anything else, including
// expressions, passes through unchanged and makes decoding fail.
func normalizeLiteral(lit string) string {
	var b strings.Builder
	b.Grow(len(lit) + len(lit)/4)
	var last byte
	for i := 0; i < len(lit); {
		c := lit[i]
		switch {
		case c == '"':
			end, _ := skipString(lit, i)
			b.WriteString(lit[i:end])
			last = '"'
			i = end
		case c == '\'' || c == '`':
			end, closed := skipString(lit, i)
			body := lit[i+1 : end]
			if closed {
				body = lit[i+1 : end-1]
			}
			b.WriteString(requote(body, c))
			last = '"'
			i = end
		case c == '/' && i+1 < len(lit) && (lit[i+1] == '/' || lit[i+1] == '*'):
			i = skipComment(lit, i)
		case c == ',':
			if k := nextSignificant(lit, i+1); k < len(lit) && (lit[k] == ']' || lit[k] == '}') {
				i++
				continue
			}
			b.WriteByte(c)
			last = c
			i++
		case isIdentStart(c):
			j := i + 1
			for j < len(lit) && isIdentPart(lit[j]) {
				j++
			}
			word := lit[i:j]
			if k := nextSignificant(lit, j); k < len(lit) && lit[k] == ':' && (last == '{' || last == ',') {
				b.WriteString(strconv.Quote(word))
			} else {
				b.WriteString(word)
			}
			last = lit[j-1]
			i = j
		default:
			b.WriteByte(c)
			if !isSpace(c) {
				last = c
			}
			i++
		}
	}
	return b.String()
}

// requote converts the body of a single-quoted or template string to a JSON
// string literal.
func requote(body string, quote byte) string {
	var b strings.Builder
	b.Grow(len(body) + 2)
	b.WriteByte('"')
	for i := 0; i < len(body); i++ {
		c := body[i]
		switch {
		case c == '\\' && i+1 < len(body) && body[i+1] == quote:
			b.WriteByte(quote)
			i++
		case c == '\\' && i+1 < len(body):
			b.WriteByte(c)
			b.WriteByte(body[i+1])
			i++
		case c == '"':
			b.WriteString(`\"`)
		case c == '\n':
			b.WriteString(`\n`)
		case c == '\r':
			b.WriteString(`\r`)
		case c == '\t':
			b.WriteString(`\t`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}

func nextSignificant(s string, i int) int {
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	return i
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isIdentStart(c byte) bool {
	return c == '_' || c == '$' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

// decodeStrict decodes a whole array literal. It fails atomically: one
// non-literal value, or an element that is neither an object nor an array,
// rejects the entire array. An array of arrays is a matrix and decodes to
// one {row, values} record per row; objects and rows never mix.
func decodeStrict(lit string) ([]models.Record, bool) {
	var items []any
	if err := json.Unmarshal([]byte(normalizeLiteral(lit)), &items); err != nil {
		return nil, false
	}
	records := make([]models.Record, 0, len(items))
	var objects, rows int
	for i, item := range items {
		switch v := item.(type) {
		case map[string]any:
			objects++
			records = append(records, models.Record(v))
		case []any:
			// matrix row
			rows++
			records = append(records, models.Record{"row": float64(i), "values": v})
		default:
			return nil, false
		}
	}
	if objects > 0 && rows > 0 {
		return nil, false
	}
	return records, true
}

// decodeObject decodes a single object literal.
func decodeObject(lit string) (models.Record, bool) {
	var obj map[string]any
	if err := json.Unmarshal([]byte(normalizeLiteral(lit)), &obj); err != nil || obj == nil {
		return nil, false
	}
	return models.Record(obj), true
}
