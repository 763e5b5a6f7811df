// File: pkg/formatter/table_test.go
package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableString(t *testing.T) {
	table := NewTable([]string{"Property", "Value"})
	table.AddRow([]string{"Type", "file"})
	table.AddRow([]string{"Size", "2.0 KiB"})

	out := table.String()

	assert.Contains(t, out, "Property")
	assert.Contains(t, out, "2.0 KiB")

	// Every rendered line has the same width once trailing padding is dropped.
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	for _, line := range lines[1:] {
		assert.Len(t, strings.TrimRight(line, " "), len(lines[0]))
	}
}

func TestTableEmptyHeaders(t *testing.T) {
	table := NewTable(nil)
	assert.Empty(t, table.String())
}
