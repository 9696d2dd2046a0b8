package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingUUID indicates a record without a non-empty string uuid.
	ErrMissingUUID = errors.New("each record must contain a non-empty string uuid")
	// ErrDuplicateUUID indicates two records share a uuid.
	ErrDuplicateUUID = errors.New("duplicate uuid detected")
)

// Index maps uuids to records while keeping file order.
type Index struct {
	order  []string
	byUUID map[string]Record
}

// BuildIndex indexes records by their uuid field.
func BuildIndex(records []Record, source string) (Index, error) {
	index := Index{
		order:  make([]string, 0, len(records)),
		byUUID: make(map[string]Record, len(records)),
	}
	for _, record := range records {
		uuid, ok := recordUUID(record.Value)
		if !ok {
			return Index{}, fmt.Errorf("line %d of %s: %w", record.Line, source, ErrMissingUUID)
		}
		if _, exists := index.byUUID[uuid]; exists {
			return Index{}, fmt.Errorf("line %d of %s: %w: %s", record.Line, source, ErrDuplicateUUID, uuid)
		}
		index.order = append(index.order, uuid)
		index.byUUID[uuid] = record
	}
	return index, nil
}

// Get returns the record for uuid.
func (idx Index) Get(uuid string) (Record, bool) {
	record, ok := idx.byUUID[uuid]
	return record, ok
}

// Len returns the number of indexed records.
func (idx Index) Len() int {
	return len(idx.order)
}

func recordUUID(value JSONValue) (string, bool) {
	field, ok := value.Field("uuid")
	if !ok {
		return "", false
	}
	uuid, ok := field.StringValue()
	if !ok || uuid == "" {
		return "", false
	}
	return uuid, true
}
