package export

import (
	"fmt"
	"strings"
	"time"
)

const Version = "1.0"

type TasksExport struct {
	Version    string      `json:"version"`
	ExportedAt time.Time   `json:"exported_at"`
	Tasks      []*TaskData `json:"tasks"`
}

type TaskData struct {
	ID         int64  `json:"id"`
	TaskName   string `json:"taskName"`
	Status     string `json:"status"`
	Importance string `json:"importance"`
	CreatedAt  string `json:"createdAt"`
	UpdatedAt  string `json:"updatedAt"`
}

type ExportFormat string

const (
	FormatJSON     ExportFormat = "json"
	FormatCSV      ExportFormat = "csv"
	FormatMarkdown ExportFormat = "markdown"
)

func ParseFormat(s string) (ExportFormat, error) {
	switch f := ExportFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatCSV, FormatMarkdown:
		return f, nil
	case "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("unsupported export format %q (use json, csv or markdown)", s)
	}
}
