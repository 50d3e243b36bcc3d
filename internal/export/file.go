package export

import (
	"context"
	"fmt"
	"os"

	"github.com/spacesedan/sentiscore/internal/report"
	"github.com/spacesedan/sentiscore/internal/utils"
)

// FileExporter writes the report as indented JSON.
type FileExporter struct {
	Path string
}

func (f *FileExporter) Name() string { return "file" }

func (f *FileExporter) Export(_ context.Context, rep *report.Report) error {
	data, err := utils.SerializeToIndentedJSON(rep)
	if err != nil {
		return fmt.Errorf("[FileExporter] failed to encode report: %w", err)
	}
	if err := os.WriteFile(f.Path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("[FileExporter] failed to write %s: %w", f.Path, err)
	}
	return nil
}
