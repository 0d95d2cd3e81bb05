// Package notes finds chart code blocks in markdown notes and watches a
// notes vault for changes.
package notes

import (
	"bytes"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	gmAst "github.com/yuin/goldmark/ast"
	gmText "github.com/yuin/goldmark/text"

	"github.com/ukaji3/chartnote-go/pkg/chartnote/models"
)

// DefaultLanguages are the fence languages treated as chart code.
var DefaultLanguages = []string{"d3"}

// NoteExtensions are the file extensions treated as notes.
var NoteExtensions = []string{".md", ".markdown"}

var md = goldmark.New()

// ExtractBlocks returns the fenced code blocks of src whose language is one
// of languages (case-insensitive). A nil languages uses DefaultLanguages.
func ExtractBlocks(path string, src []byte, languages []string) []models.CodeBlock {
	if languages == nil {
		languages = DefaultLanguages
	}
	doc := md.Parser().Parse(gmText.NewReader(src))

	var blocks []models.CodeBlock
	_ = gmAst.Walk(doc, func(node gmAst.Node, entering bool) (gmAst.WalkStatus, error) {
		if !entering {
			return gmAst.WalkContinue, nil
		}
		fcb, ok := node.(*gmAst.FencedCodeBlock)
		if !ok {
			return gmAst.WalkContinue, nil
		}
		lang := string(fcb.Language(src))
		if !matchLanguage(lang, languages) {
			return gmAst.WalkSkipChildren, nil
		}
		code, line := acceptRawText(fcb, src)
		blocks = append(blocks, models.CodeBlock{
			Note:     path,
			Index:    len(blocks),
			Line:     line,
			Language: lang,
			Code:     code,
		})
		return gmAst.WalkSkipChildren, nil
	})
	return blocks
}

// acceptRawText joins the block's lines and returns the 1-based line of the
// first one.
func acceptRawText(node gmAst.Node, src []byte) (string, int) {
	lines := node.Lines()
	if lines.Len() == 0 {
		return "", 0
	}
	var b strings.Builder
	for i := 0; i < lines.Len(); i++ {
		s := lines.At(i)
		b.Write(s.Value(src))
	}
	first := lines.At(0).Start
	return b.String(), bytes.Count(src[:first], []byte{'\n'}) + 1
}

func matchLanguage(lang string, languages []string) bool {
	if lang == "" {
		return false
	}
	for _, l := range languages {
		if strings.EqualFold(lang, l) {
			return true
		}
	}
	return false
}

// IsNote reports whether path has a note extension.
func IsNote(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range NoteExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Walk lists the notes under root in lexical order, skipping hidden
// directories such as .obsidian or .git.
func Walk(root string) ([]string, error) {
	var result []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && isHidden(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if IsNote(path) {
			result = append(result, path)
		}
		return nil
	})
	return result, err
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}
