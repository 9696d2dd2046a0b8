package dataset

import (
	"errors"
	"reflect"
	"testing"
)

// TestBuildIndexKeepsOrder verifies uuids are returned in file order.
func TestBuildIndexKeepsOrder(t *testing.T) {
	dir := t.TempDir()
	records, err := ReadJSONL(writeJSONL(t, dir, "gt.jsonl", `{"uuid":"z"}`, `{"uuid":"a"}`), false)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	index, err := BuildIndex(records, "gt.jsonl")
	if err != nil {
		t.Fatalf("index: %v", err)
	}
	if got := index.order; !reflect.DeepEqual(got, []string{"z", "a"}) {
		t.Fatalf("unexpected order: %v", got)
	}
}

// TestBuildIndexRejectsBadUUIDs verifies uuid presence and uniqueness.
func TestBuildIndexRejectsBadUUIDs(t *testing.T) {
	cases := []struct {
		name string
		line string
		want error
	}{
		{name: "missing", line: `{"component":"db"}`, want: ErrMissingUUID},
		{name: "empty", line: `{"uuid":""}`, want: ErrMissingUUID},
		{name: "number", line: `{"uuid":7}`, want: ErrMissingUUID},
		{name: "duplicate", line: `{"uuid":"a"}`, want: ErrDuplicateUUID},
	}
	for _, tc := range cases {
		dir := t.TempDir()
		records, err := ReadJSONL(writeJSONL(t, dir, "in.jsonl", `{"uuid":"a"}`, tc.line), false)
		if err != nil {
			t.Fatalf("%s: read: %v", tc.name, err)
		}
		if _, err := BuildIndex(records, "in.jsonl"); !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}
