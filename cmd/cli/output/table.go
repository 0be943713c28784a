package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
)

// RenderTable prints a pretty table to stdout. A footer row carries the
// pagination summary when caption is set.
func RenderTable(headers []string, rows [][]interface{}, caption string) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)

	headerRow := table.Row{}
	for _, h := range headers {
		headerRow = append(headerRow, h)
	}
	t.AppendHeader(headerRow)

	for _, row := range rows {
		t.AppendRow(table.Row(row))
	}
	if caption != "" {
		t.SetCaption(caption)
	}

	t.Render()
}

// RenderJSON pretty-prints raw JSON to stdout.
func RenderJSON(raw json.RawMessage) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return err
	}
	fmt.Println(buf.String())
	return nil
}

// Value formats an optional string for a table cell.
func Value(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
