// File: pkg/formatter/stat_formatter.go
package formatter

import (
	"fmt"
	"strings"

	"s3lync/internal/service"
	"s3lync/pkg/storage"
)

type StatFormatter struct{}

func NewStatFormatter() *StatFormatter {
	return &StatFormatter{}
}

// FormatStat renders the stat result for one address as a detail table.
func (f *StatFormatter) FormatStat(result service.StatResult) string {
	var sb strings.Builder

	sb.WriteString(FormatSectionTitle(result.URI))
	sb.WriteString("\n")

	table := NewTable([]string{"Property", "Value"})

	if result.IsDir {
		table.AddRow([]string{"Type", "directory"})
		table.AddRow([]string{"Objects", fmt.Sprintf("%d", result.ObjectCount)})
		table.AddRow([]string{"Total Size", storage.FormatBytes(result.TotalSize)})
	} else {
		table.AddRow([]string{"Type", "file"})
		table.AddRow([]string{"Size", storage.FormatBytes(result.Meta.Size)})
		table.AddRow([]string{"ETag", result.Meta.ETag})
		if !result.Meta.LastModified.IsZero() {
			table.AddRow([]string{"Last Modified", result.Meta.LastModified.UTC().Format("2006-01-02 15:04:05 MST")})
		}
		if result.Meta.Composite() {
			table.AddRow([]string{"Fingerprint", "composite (not verifiable)"})
		}
	}

	if result.BucketUsage >= 0 {
		table.AddRow([]string{"Bucket Usage", storage.FormatBytes(result.BucketUsage)})
	}

	sb.WriteString(table.String())
	return sb.String()
}
