// File: pkg/formatter/table.go
package formatter

import (
	"strings"
)

type Table struct {
	Headers      []string
	Rows         [][]string
	columnWidths []int
}

// Creates a new table with the given headers
func NewTable(headers []string) *Table {
	return &Table{
		Headers: headers,
		Rows:    [][]string{},
	}
}

func (t *Table) AddRow(row []string) {
	t.Rows = append(t.Rows, row)
}

func (t *Table) calculateColumnWidths() {
	t.columnWidths = make([]int, len(t.Headers))
	for i, h := range t.Headers {
		t.columnWidths[i] = len(h)
	}

	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(t.columnWidths) && len(cell) > t.columnWidths[i] {
				t.columnWidths[i] = len(cell)
			}
		}
	}
}

// Returns the string representation of the table
func (t *Table) String() string {
	if len(t.Headers) == 0 {
		return ""
	}

	t.calculateColumnWidths()

	var sb strings.Builder

	t.writeBorder(&sb)
	sb.WriteString("\n")
	t.writeRow(&sb, t.Headers)
	t.writeBorder(&sb)
	sb.WriteString("\n")

	for _, row := range t.Rows {
		t.writeRow(&sb, row)
	}

	t.writeBorder(&sb)
	return sb.String()
}

func (t *Table) writeRow(sb *strings.Builder, cells []string) {
	sb.WriteString("| ")
	for i, cell := range cells {
		if i >= len(t.columnWidths) {
			break
		}
		sb.WriteString(cell)
		sb.WriteString(strings.Repeat(" ", t.columnWidths[i]-len(cell)))
		sb.WriteString(" | ")
	}
	sb.WriteString("\n")
}

// writeBorder writes a horizontal border to the string builder
func (t *Table) writeBorder(sb *strings.Builder) {
	sb.WriteString("+")
	for _, width := range t.columnWidths {
		sb.WriteString(strings.Repeat("-", width+2))
		sb.WriteString("+")
	}
}

// Formats a simple section title
func FormatSectionTitle(title string) string {
	return "-- " + title + " --"
}
