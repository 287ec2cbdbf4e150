package recipe

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

//go:embed assets/recipes.csv
var bundledCatalog []byte

// Column positions in the catalog file.
const (
	colID               = 1
	colJob              = 2
	colLevel            = 3
	colName             = 4
	colDifficultyFactor = 29
	colQualityFactor    = 30
	colDurabilityFactor = 31

	levelPrefix = "RecipeLevelTable#"
)

// ErrMalformedCatalog reports a catalog record that cannot be parsed. A bundled
// catalog failing this way is a packaging defect.
type ErrMalformedCatalog struct {
	Line   int
	Reason string
}

func (e *ErrMalformedCatalog) Error() string {
	return fmt.Sprintf("malformed recipe catalog at line %d: %s", e.Line, e.Reason)
}

// BundledCatalog parses the catalog compiled into the binary.
func BundledCatalog() ([]Row, error) {
	return ParseCatalog(bytes.NewReader(bundledCatalog))
}

// ParseCatalog reads a catalog CSV. Lines starting with '#' are comments and
// the first record is a header. Rows keep file order; the repository
// orders by ID when listing.
func ParseCatalog(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.FieldsPerRecord = -1

	var rows []Row
	header := true
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			line := 0
			if errors.As(err, &parseErr) {
				line = parseErr.Line
			}
			return nil, &ErrMalformedCatalog{Line: line, Reason: err.Error()}
		}
		line, _ := reader.FieldPos(0)
		if header {
			header = false
			continue
		}
		row, err := parseRecord(record)
		if err != nil {
			return nil, &ErrMalformedCatalog{Line: line, Reason: err.Error()}
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func parseRecord(record []string) (Row, error) {
	if len(record) <= colDurabilityFactor {
		return Row{}, fmt.Errorf("expected at least %d columns, got %d", colDurabilityFactor+1, len(record))
	}

	levelField := record[colLevel]
	if !strings.HasPrefix(levelField, levelPrefix) {
		return Row{}, fmt.Errorf("recipe level %q lacks %q prefix", levelField, levelPrefix)
	}

	var row Row
	ints := []struct {
		name  string
		value string
		dst   *int
	}{
		{"id", record[colID], &row.ID},
		{"rlv", strings.TrimPrefix(levelField, levelPrefix), &row.Level},
		{"difficulty_factor", record[colDifficultyFactor], &row.DifficultyFactor},
		{"quality_factor", record[colQualityFactor], &row.QualityFactor},
		{"durability_factor", record[colDurabilityFactor], &row.DurabilityFactor},
	}
	for _, f := range ints {
		n, err := strconv.Atoi(strings.TrimSpace(f.value))
		if err != nil {
			return Row{}, fmt.Errorf("%s: %w", f.name, err)
		}
		*f.dst = n
	}
	row.Job = record[colJob]
	row.Name = record[colName]
	return row, nil
}
