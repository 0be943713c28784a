package output

import (
	"encoding/json"
	"fmt"

	"github.com/crucial707/hci-inventory/cmd/cli/client"
	"github.com/crucial707/hci-inventory/cmd/cli/config"
	"github.com/crucial707/hci-inventory/internal/models"
)

// List prints a list response as a table, or as JSON with --json.
func List[T any](resp *client.Response, headers []string, row func(T) []interface{}) error {
	if config.Current.JSON {
		return RenderJSON(resp.Data)
	}
	var items []T
	if err := json.Unmarshal(resp.Data, &items); err != nil {
		return fmt.Errorf("decode list: %w", err)
	}
	rows := make([][]interface{}, 0, len(items))
	for _, it := range items {
		rows = append(rows, row(it))
	}
	RenderTable(headers, rows, Caption(resp.Meta))
	return nil
}

// One prints a single entity as a one-row table, or as JSON with --json.
func One[T any](resp *client.Response, headers []string, row func(T) []interface{}) error {
	if config.Current.JSON {
		return RenderJSON(resp.Data)
	}
	var item T
	if err := json.Unmarshal(resp.Data, &item); err != nil {
		return fmt.Errorf("decode item: %w", err)
	}
	RenderTable(headers, [][]interface{}{row(item)}, "")
	return nil
}

// Message prints the "message" field of a response such as a delete.
func Message(resp *client.Response, fallback string) {
	var body struct {
		Message string `json:"message"`
	}
	if len(resp.Data) > 0 && json.Unmarshal(resp.Data, &body) == nil && body.Message != "" {
		fmt.Println(body.Message)
		return
	}
	fmt.Println(fallback)
}

// Caption summarises a pagination block.
func Caption(m *client.Meta) string {
	if m == nil {
		return ""
	}
	return fmt.Sprintf("page %d, %d of %d total (offset %d)", m.Page, min(m.Limit, max(m.Total-m.Offset, 0)), m.Total, m.Offset)
}

// AuditHeaders and AuditRow render audit entries for both audit commands.
var AuditHeaders = []string{"Time", "Entity", "Entity ID", "Action", "Company", "Actor"}

func AuditRow(e models.AuditEntry) []interface{} {
	return []interface{}{e.CreatedAt.Format("2006-01-02 15:04:05"), e.EntityType, e.EntityID, e.Action, Value(e.CompanyID), Value(e.Actor)}
}
