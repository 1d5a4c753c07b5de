package memory

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/trackforge/kartchar/internal/characteristics"
)

// ExportFileName is the base name of the export file.
const ExportFileName = "kartchar_snapshots"

// Export is the root JSON structure of an export file
type Export struct {
	Snapshots map[string]characteristics.Snapshot `json:"snapshots"`
}

// exportJSON writes the stored snapshots to a JSON file, gzipped when
// configured. Callers hold b.mu.
func (b *Backend) exportJSON() error {
	filename := ExportFileName + ".json"
	if b.cfg.CompressOutput {
		filename += ".gz"
	}
	outputPath := filepath.Join(b.cfg.OutputDir, filename)

	// Ensure output directory exists
	if err := os.MkdirAll(b.cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	export := Export{Snapshots: b.snapshots}
	var err error
	if b.cfg.CompressOutput {
		err = writeGzipJSON(outputPath, export)
	} else {
		err = writeJSON(outputPath, export)
	}
	if err != nil {
		return err
	}

	b.lastExportPath = outputPath
	return nil
}

func writeJSON(path string, data Export) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	return json.NewEncoder(f).Encode(data)
}

func writeGzipJSON(path string, data Export) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	gzWriter := gzip.NewWriter(f)
	if err := json.NewEncoder(gzWriter).Encode(data); err != nil {
		return err
	}
	return gzWriter.Close()
}
