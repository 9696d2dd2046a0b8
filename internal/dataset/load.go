package dataset

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrEmptyFile indicates a required JSONL file had no records.
var ErrEmptyFile = errors.New("file is empty; expected at least one record")

// Record is one decoded JSONL line.
type Record struct {
	Line  int
	Value JSONValue
}

// ReadJSONL reads newline-delimited JSON objects from path. Blank lines are
// skipped. An empty file is an error unless allowEmpty is set.
func ReadJSONL(path string, allowEmpty bool) ([]Record, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("file not found: %s: %w", path, err)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	records, err := decodeJSONL(file, path)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 && !allowEmpty {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyFile)
	}
	return records, nil
}

func decodeJSONL(r io.Reader, path string) ([]Record, error) {
	reader := bufio.NewReader(r)
	records := make([]Record, 0)
	lineNo := 0
	for {
		line, readErr := reader.ReadBytes('\n')
		if readErr != nil && readErr != io.EOF {
			return nil, fmt.Errorf("read %s: %w", path, readErr)
		}
		if len(line) > 0 {
			lineNo++
			trimmed := bytes.TrimSpace(line)
			if len(trimmed) > 0 {
				var value JSONValue
				if err := json.Unmarshal(trimmed, &value); err != nil {
					return nil, fmt.Errorf("invalid JSON on line %d of %s: %w", lineNo, path, err)
				}
				if value.Kind != JSONObject {
					return nil, fmt.Errorf("line %d of %s: expected a JSON object, got %s", lineNo, path, value.Kind)
				}
				records = append(records, Record{Line: lineNo, Value: value})
			}
		}
		if readErr == io.EOF {
			return records, nil
		}
	}
}
