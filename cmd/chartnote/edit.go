package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/ukaji3/chartnote-go/pkg/chartnote/editor"
	"github.com/ukaji3/chartnote-go/pkg/chartnote/models"
)

type editFlags struct {
	templateKey string
	chartType   string
	width       int
	height      int
	color       string
	set         []string
	add         []string
	remove      []int
	descriptor  bool
}

func newEditCmd() *cobra.Command {
	var f editFlags

	cmd := &cobra.Command{
		Use:   "edit [file|-]",
		Short: "Apply form edits to a D3 script and print the regenerated code",
		Long: `edit opens a script the way the form editor does, applies the edits given
as flags in order (type, size, colour, record updates, additions, removals)
and prints the regenerated script.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var src []byte
			if len(args) > 0 {
				var err error
				if src, err = readInput(cmd, args); err != nil {
					return err
				}
			}
			s := editor.NewSession(string(src), f.templateKey)
			if err := applyEdits(s, f, cmd.Flags().Changed); err != nil {
				return err
			}
			if f.descriptor {
				return writeResult(cmd, s.Descriptor())
			}
			return writeText(cmd, s.Code())
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&f.templateKey, "template", "t", "", "Template key (default: the inferred chart type)")
	flags.StringVar(&f.chartType, "type", "", "Chart type")
	flags.IntVar(&f.width, "width", 0, "Width in pixels")
	flags.IntVar(&f.height, "height", 0, "Height in pixels")
	flags.StringVar(&f.color, "color", "", "Primary colour, named or hex")
	flags.StringArrayVar(&f.set, "set", nil, "Record update INDEX.FIELD=VALUE (repeatable)")
	flags.StringArrayVar(&f.add, "add", nil, "Record to append as a JSON object (repeatable)")
	flags.IntSliceVar(&f.remove, "remove", nil, "Record index to remove (repeatable)")
	flags.BoolVar(&f.descriptor, "descriptor", false, "Print the edited descriptor instead of code")
	return cmd
}

func applyEdits(s *editor.Session, f editFlags, changed func(string) bool) error {
	if f.chartType != "" {
		if err := s.SetType(f.chartType); err != nil {
			return err
		}
	}
	if changed("width") {
		if err := s.SetWidth(f.width); err != nil {
			return err
		}
	}
	if changed("height") {
		if err := s.SetHeight(f.height); err != nil {
			return err
		}
	}
	if f.color != "" {
		s.SetColor(f.color)
	}
	for _, set := range f.set {
		idx, field, value, err := parseSet(set)
		if err != nil {
			return err
		}
		if err := s.UpdateRecord(idx, field, value); err != nil {
			return err
		}
	}
	for _, add := range f.add {
		var r models.Record
		if err := json.Unmarshal([]byte(add), &r); err != nil {
			return fmt.Errorf("invalid record %q: %w", add, err)
		}
		s.AddRecord(r)
	}

	// Highest index first.
	remove := append([]int(nil), f.remove...)
	sort.Sort(sort.Reverse(sort.IntSlice(remove)))
	for _, i := range remove {
		if err := s.RemoveRecord(i); err != nil {
			return err
		}
	}
	return nil
}

// parseSet parses INDEX.FIELD=VALUE. VALUE becomes a float64 or bool when
// it parses as one, otherwise a string with surrounding quotes removed.
func parseSet(s string) (int, string, any, error) {
	lhs, rhs, ok := strings.Cut(s, "=")
	if !ok {
		return 0, "", nil, fmt.Errorf("invalid --set %q: want INDEX.FIELD=VALUE", s)
	}
	idxStr, field, ok := strings.Cut(lhs, ".")
	if !ok || field == "" {
		return 0, "", nil, fmt.Errorf("invalid --set %q: want INDEX.FIELD=VALUE", s)
	}
	idx, err := strconv.Atoi(idxStr)
	if err != nil {
		return 0, "", nil, fmt.Errorf("invalid --set %q: %w", s, err)
	}
	return idx, field, parseScalar(rhs), nil
}

func parseScalar(s string) any {
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}
