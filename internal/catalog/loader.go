package catalog

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/parquet-go/parquet-go"
	"github.com/phytoscan/phytoscan/internal/models"
)

// FileSource loads the catalog from a local dataset dump: a JSON document
// (bare list or wrapped under "diseases"), JSONL, or Parquet.
type FileSource struct {
	path string
}

// NewFileSource creates a catalog source backed by a local file.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (f *FileSource) Diseases(ctx context.Context) ([]models.DiseaseRecord, error) {
	var (
		raws []RawRecord
		err  error
	)

	switch ext := strings.ToLower(filepath.Ext(f.path)); ext {
	case ".parquet":
		raws, err = f.loadParquet()
	case ".jsonl":
		raws, err = f.loadJSONL()
	case ".json":
		raws, err = f.loadJSON()
	default:
		return nil, fmt.Errorf("unsupported catalog file format: %s (supported: .json, .jsonl, .parquet)", ext)
	}
	if err != nil {
		return nil, err
	}

	slog.Debug("Loaded catalog file", "path", f.path, "records", len(raws))
	return NormalizeAll(raws), nil
}

// loadJSON reads a whole-document dump, either a bare array or the
// service's {"diseases": [...]} envelope.
func (f *FileSource) loadJSON() ([]RawRecord, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var raws []RawRecord
	if err := json.Unmarshal(data, &raws); err == nil {
		return raws, nil
	}

	var wrapped struct {
		Diseases []RawRecord `json:"diseases"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, fmt.Errorf("failed to parse catalog JSON: %w", err)
	}
	return wrapped.Diseases, nil
}

func (f *FileSource) loadJSONL() ([]RawRecord, error) {
	file, err := os.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer file.Close()

	var raws []RawRecord
	scanner := bufio.NewScanner(file)

	// Scraped records carry full image lists, so lines can get big.
	const maxCapacity = 1024 * 1024
	buf := make([]byte, maxCapacity)
	scanner.Buffer(buf, maxCapacity)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var raw RawRecord
		if err := json.Unmarshal(line, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse catalog JSONL at line %d: %w", lineNum, err)
		}
		raws = append(raws, raw)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading catalog file: %w", err)
	}
	return raws, nil
}

func (f *FileSource) loadParquet() ([]RawRecord, error) {
	file, err := os.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat parquet file: %w", err)
	}

	pf, err := parquet.OpenFile(file, info.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet: %w", err)
	}

	reader := parquet.NewGenericReader[RawRecord](pf)
	defer reader.Close()

	var raws []RawRecord
	rows := make([]RawRecord, 64)
	for {
		n, err := reader.Read(rows)
		if n > 0 {
			raws = append(raws, rows[:n]...)
		}
		if err != nil {
			break
		}
	}
	return raws, nil
}
