package export

import (
	"context"
	"fmt"
	"io"

	"todolist/internal/repository"
)

// Exporter writes the tasks matching filter in one format.
type Exporter interface {
	Export(ctx context.Context, w io.Writer, filter repository.TaskFilter) error
}

func NewExporter(format ExportFormat, taskRepo repository.TaskRepository) (Exporter, error) {
	switch format {
	case FormatJSON:
		return NewJSONExporter(taskRepo), nil
	case FormatCSV:
		return NewCSVExporter(taskRepo), nil
	case FormatMarkdown:
		return NewMarkdownExporter(taskRepo), nil
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
}
