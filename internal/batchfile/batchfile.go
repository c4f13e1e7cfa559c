// Package batchfile reads record batches (transactions or orders) from disk.
//
// Supported formats, chosen by file extension:
//   - .json: a top-level array, or an object holding the array under a key
//   - .yaml / .yml: same shapes as JSON
//   - .csv: header row followed by data rows
//   - .xlsx: first sheet, header row followed by data rows
//
// Tabular formats yield string values; callers run them through the coerce
// package like any other loosely-typed input.
package batchfile

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for file extensions Read does not understand.
var ErrUnsupportedFormat = errors.New("unsupported batch file format")

// Batch is the decoded content of a batch file.
type Batch struct {
	Records []map[string]interface{}

	// Invalid counts array entries that were not objects.
	Invalid int
}

// Read loads the batch at path. For JSON and YAML documents whose top level
// is an object, the records are taken from key.
func Read(path, key string) (*Batch, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		return decodeJSON(data, key)
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		return decodeYAML(data, key)
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
		defer f.Close()
		return decodeCSV(f)
	case ".xlsx":
		return readXLSX(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

func decodeJSON(data []byte, key string) (*Batch, error) {
	var doc interface{}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	return fromDocument(doc, key)
}

func decodeYAML(data []byte, key string) (*Batch, error) {
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return fromDocument(doc, key)
}

func fromDocument(doc interface{}, key string) (*Batch, error) {
	items, ok := doc.([]interface{})
	if !ok {
		obj, isObj := doc.(map[string]interface{})
		if !isObj {
			return nil, fmt.Errorf("batch must be an array or an object with a %q array", key)
		}
		items, ok = obj[key].([]interface{})
		if !ok {
			return nil, fmt.Errorf("batch object has no %q array", key)
		}
	}

	b := &Batch{Records: make([]map[string]interface{}, 0, len(items))}
	for _, item := range items {
		record, ok := item.(map[string]interface{})
		if !ok {
			b.Invalid++
			continue
		}
		b.Records = append(b.Records, record)
	}
	return b, nil
}

func decodeCSV(r io.Reader) (*Batch, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("decode csv: %w", err)
	}
	return fromRows(rows), nil
}

func readXLSX(path string) (*Batch, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	return fromRows(rows), nil
}

// fromRows maps data rows onto the header row. Blank cells are left out so
// that they read as absent fields, and fully blank rows are skipped.
func fromRows(rows [][]string) *Batch {
	b := &Batch{Records: []map[string]interface{}{}}
	if len(rows) == 0 {
		return b
	}

	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.TrimSpace(h)
	}

	for _, row := range rows[1:] {
		record := make(map[string]interface{}, len(header))
		for i, cell := range row {
			if i >= len(header) || header[i] == "" {
				continue
			}
			if cell = strings.TrimSpace(cell); cell != "" {
				record[header[i]] = cell
			}
		}
		if len(record) == 0 {
			continue
		}
		b.Records = append(b.Records, record)
	}
	return b
}
