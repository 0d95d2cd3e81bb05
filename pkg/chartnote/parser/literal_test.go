package parser

import (
	"testing"
)

func TestFindAssignment(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		varName string
		want    string
		ok      bool
	}{
		{"const", `x(); const data = [1, [2], "]"]; y();`, "data", `[1, [2], "]"]`, true},
		{"bare", `tasks=[{a: 1}]`, "tasks", `[{a: 1}]`, true},
		{"missing", `const other = [1];`, "data", "", false},
		{"skips unterminated", "data = [ oops;\ndata = [3]", "data", "[3]", true},
		{"not a prefix", `const metadata = [1];`, "data", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, ok := FindAssignment(tt.src, tt.varName)
			if ok != tt.ok {
				t.Fatalf("FindAssignment() ok = %v, want %v", ok, tt.ok)
			}
			if ok && tt.src[start:end] != tt.want {
				t.Errorf("FindAssignment() = %q, want %q", tt.src[start:end], tt.want)
			}
		})
	}
}

func TestMatchBrackets(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
		ok   bool
	}{
		{"flat", `[1, 2] tail`, `[1, 2]`, true},
		{"nested", `{a: [1, {b: 2}]} tail`, `{a: [1, {b: 2}]}`, true},
		{"quoted brackets", "[\"]\", '[', `}`]", "[\"]\", '[', `}`]", true},
		{"escaped quote", `["a\"]"] x`, `["a\"]"]`, true},
		{"line comment", "[1, // ]\n 2]", "[1, // ]\n 2]", true},
		{"block comment", `[1, /* ] */ 2]`, `[1, /* ] */ 2]`, true},
		{"call", `[f(a, b)]`, `[f(a, b)]`, true},
		{"mismatch", `[1, 2)`, "", false},
		{"unterminated", `[1, 2`, "", false},
		{"open string", `["open]`, "", false},
		{"not a bracket", `x[1]`, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := matchBrackets(tt.src).literalAt(0)
			if ok != tt.ok || got != tt.want {
				t.Errorf("literalAt(0) = %q, %v; want %q, %v", got, ok, tt.want, tt.ok)
			}
		})
	}

	pairs := matchBrackets("[1]")
	if _, ok := pairs.literalAt(5); ok {
		t.Error("literalAt() accepted an out of range start")
	}
	if _, ok := pairs.literalAt(-1); ok {
		t.Error("literalAt() accepted a negative start")
	}
}

func TestMatchBracketsInner(t *testing.T) {
	// An unclosed outer bracket leaves the inner pairs usable.
	src := `data = [ oops; sel.data([{a: 1}]).join("x")`
	pairs := matchBrackets(src)
	if _, ok := pairs.literalAt(7); ok {
		t.Error("literalAt(7) paired an unclosed bracket")
	}
	got, ok := pairs.literalAt(24)
	if !ok || got != `[{a: 1}]` {
		t.Errorf("literalAt(24) = %q, %v", got, ok)
	}
}

func TestNormalizeLiteral(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare keys and single quotes", `{a: 1, 'b': 'x'}`, `{"a": 1, "b": "x"}`},
		{"trailing comma", `[1, 2, ]`, `[1, 2 ]`},
		{"escaped quotes", `{s: 'it\'s "q"'}`, `{"s": "it's \"q\""}`},
		{"keywords", `{t: true, n: null}`, `{"t": true, "n": null}`},
		{"expression passes through", `{a: b}`, `{"a": b}`},
		{"comment", `{a: 1 /* c */}`, `{"a": 1 }`},
		{"template string", "{t: `a\nb`}", `{"t": "a\nb"}`},
		{"exponent", `[-2e3]`, `[-2e3]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeLiteral(tt.in); got != tt.want {
				t.Errorf("normalizeLiteral() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecodeStrict(t *testing.T) {
	tests := []struct {
		lit  string
		n    int
		want bool
	}{
		{`[{a: 1}, {b: "x"}]`, 2, true},
		{`[]`, 0, true},
		{`[{a: 1}, 2]`, 0, false},
		{`[[1, 2], [3, 4]]`, 2, true},
		{`[{a: 1}, [2]]`, 0, false},
		{`[{a: f()}]`, 0, false},
		{`{a: 1}`, 0, false},
	}
	for _, tt := range tests {
		got, ok := decodeStrict(tt.lit)
		if ok != tt.want || len(got) != tt.n {
			t.Errorf("decodeStrict(%q) = %v, %v", tt.lit, got, ok)
		}
	}
}
