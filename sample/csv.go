package sample

import (
	"bufio"
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/spf13/cast"
)

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	ValueColumn string // Column name for values (default: "y")
	HasHeader   bool   // Whether CSV has header row (default: true)
	Delimiter   rune   // Field delimiter (default: ',')
	SkipRows    int    // Number of rows to skip at start
	ColumnIndex int    // Value column index when there is no header
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		ValueColumn: "y",
		HasHeader:   true,
		Delimiter:   ',',
	}
}

// LoadCSV loads a sample from a CSV file.
func LoadCSV(filename string, opts *CSVOptions) (*Sample, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	s, err := LoadCSVFromReader(file, opts)
	if err != nil {
		return nil, err
	}
	return s.WithName(filename), nil
}

// LoadCSVFromReader loads a sample from an io.Reader.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Sample, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	// Skip rows if needed
	for i := 0; i < opts.SkipRows; i++ {
		_, err := reader.Read()
		if err != nil {
			return nil, err
		}
	}

	valueIdx := opts.ColumnIndex

	if opts.HasHeader {
		header, err := reader.Read()
		if err != nil {
			return nil, err
		}

		valueIdx = -1
		for i, h := range header {
			h = strings.TrimSpace(strings.Trim(h, "\""))
			if h == opts.ValueColumn || (opts.ValueColumn == "" && (h == "y" || h == "value" || h == "Value")) {
				valueIdx = i
				break
			}
		}

		// Default to last column if not found
		if valueIdx == -1 {
			valueIdx = len(header) - 1
		}
	}

	var values []float64

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if valueIdx < 0 || valueIdx >= len(record) {
			continue
		}

		valStr := strings.TrimSpace(strings.Trim(record[valueIdx], "\""))
		if valStr == "" || valStr == "NA" || valStr == "NaN" || valStr == "null" {
			continue
		}
		val, err := cast.ToFloat64E(valStr)
		if err != nil {
			continue // Skip invalid values
		}
		values = append(values, val)
	}

	if len(values) == 0 {
		return nil, ErrNoData
	}

	return &Sample{values: values}, nil
}

// LoadCSVColumn loads a specific column from a CSV file as a sample.
func LoadCSVColumn(filename string, column string) (*Sample, error) {
	opts := DefaultCSVOptions()
	opts.ValueColumn = column
	return LoadCSV(filename, opts)
}

// SaveCSV saves a sample to a CSV file with a single "y" column.
func SaveCSV(s *Sample, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)

	if _, err := writer.WriteString("y\n"); err != nil {
		return err
	}
	for _, v := range s.values {
		if _, err := writer.WriteString(cast.ToString(v) + "\n"); err != nil {
			return err
		}
	}

	return writer.Flush()
}
