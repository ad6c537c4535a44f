package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"call-retrieval-go/internal/logger"
)

// KeyColumn identifies a row; it becomes the lookup key, not a field.
const KeyColumn = "Recording URL"

const nullMarker = "N/A"

// ErrKeyColumnMissing means the source file has no Recording URL column.
var ErrKeyColumnMissing = errors.New("key column missing")

// The source table carries two differently-purposed columns that collide on
// the name City; the suffixed one holds the caller's city and is authoritative.
var columnRenames = map[string]string{
	"City.1": "City",
}

// Load reads the source table at path into a snapshot. On failure it returns
// an Empty snapshot together with the diagnostic, never a nil dataset; the
// caller logs and keeps serving.
func Load(path string) (*Dataset, error) {
	rows, err := readTable(path)
	if err != nil {
		return Empty(), fmt.Errorf("read %s: %w", path, err)
	}
	return build(rows)
}

// readTable returns all rows including the header. The extension selects the
// reader: Excel workbooks go through excelize, everything else is CSV.
func readTable(path string) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		f, err := excelize.OpenFile(path)
		if err != nil {
			return nil, fmt.Errorf("open workbook: %w", err)
		}
		defer f.Close()
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("no sheets")
		}
		rows, err := f.GetRows(sheets[0])
		if err != nil {
			return nil, fmt.Errorf("read rows: %w", err)
		}
		return rows, nil
	default:
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r := csv.NewReader(f)
		r.FieldsPerRecord = -1
		r.LazyQuotes = true
		return r.ReadAll()
	}
}

func build(rows [][]string) (*Dataset, error) {
	log := logger.New().WithField("component", "dataset.loader")
	if len(rows) == 0 {
		return Empty(), fmt.Errorf("no header row")
	}

	header := rows[0]
	names := make([]string, len(header))
	renamed := map[string]bool{}
	keyIdx := -1
	for i, h := range header {
		name := strings.TrimSpace(h)
		if target, ok := columnRenames[name]; ok {
			name = target
			renamed[name] = true
		}
		names[i] = name
		if name == KeyColumn && keyIdx == -1 {
			keyIdx = i
		}
	}
	// Drop bare columns shadowed by a renamed duplicate so the authoritative
	// value survives regardless of header order.
	for i, h := range header {
		name := strings.TrimSpace(h)
		if _, isRename := columnRenames[name]; !isRename && renamed[name] {
			names[i] = ""
		}
	}
	if keyIdx == -1 {
		return Empty(), fmt.Errorf("%w: %q", ErrKeyColumnMissing, KeyColumn)
	}

	out := make(map[string]Row, len(rows)-1)
	overwritten := 0
	for _, r := range rows[1:] {
		if keyIdx >= len(r) {
			continue
		}
		key := strings.TrimSpace(r[keyIdx])
		if key == "" || key == nullMarker {
			// a null key is unreachable by lookup, skip the row
			continue
		}
		row := Row{}
		for i, cell := range r {
			if i == keyIdx || i >= len(names) || names[i] == "" {
				continue
			}
			v := strings.TrimSpace(cell)
			if v == "" || v == nullMarker {
				continue
			}
			row[names[i]] = v
		}
		if _, dup := out[key]; dup {
			overwritten++
		}
		out[key] = row // duplicate keys: last row wins
	}
	if overwritten > 0 {
		log.WithField("overwritten_rows", overwritten).Warn("duplicate recording URLs in source, kept last occurrence")
	}
	return &Dataset{rows: out}, nil
}
