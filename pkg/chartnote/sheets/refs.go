package sheets

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// area is a rectangular cell range on one sheet, 1-based and inclusive.
type area struct {
	Sheet  string
	R1, C1 int
	R2, C2 int
}

// parseReference parses 'Sheet Name'!$A$1:$D$10, Sheet1!B2:B9 or Sheet1!C3.
// Only the first range of a comma-separated list is used.
func parseReference(ref string) (area, error) {
	ref = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(ref), "="))
	if i := strings.Index(ref, ","); i >= 0 {
		ref = ref[:i]
	}
	idx := strings.LastIndex(ref, "!")
	if idx <= 0 {
		return area{}, fmt.Errorf("invalid reference %q: missing sheet", ref)
	}
	sheet := strings.Trim(ref[:idx], "'")
	cells := strings.ReplaceAll(ref[idx+1:], "$", "")

	parts := strings.Split(cells, ":")
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}
	if len(parts) != 2 {
		return area{}, fmt.Errorf("invalid reference %q", ref)
	}
	c1, r1, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return area{}, fmt.Errorf("invalid reference %q: %w", ref, err)
	}
	c2, r2, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return area{}, fmt.Errorf("invalid reference %q: %w", ref, err)
	}
	if r2 < r1 {
		r1, r2 = r2, r1
	}
	if c2 < c1 {
		c1, c2 = c2, c1
	}
	return area{Sheet: sheet, R1: r1, C1: c1, R2: r2, C2: c2}, nil
}

// absoluteRef formats a range as 'Sheet'!$A$1:$A$9.
func absoluteRef(sheet string, c1, r1, c2, r2 int) string {
	start, _ := excelize.CoordinatesToCellName(c1, r1, true)
	end, _ := excelize.CoordinatesToCellName(c2, r2, true)
	return fmt.Sprintf("'%s'!%s:%s", sheet, start, end)
}
