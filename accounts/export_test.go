package accounts

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"strings"
	"testing"
	"time"
)

func TestExportSnapshotCSVRoundTrip(t *testing.T) {
	t.Parallel()

	records := sampleRecords()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	path, err := ExportSnapshot(t.TempDir(), records, FormatCSV, now)
	if err != nil {
		t.Fatalf("ExportSnapshot() error = %v", err)
	}
	if !strings.HasSuffix(path, "chats_20260301_120000.csv") {
		t.Fatalf("path = %q, want timestamped csv name", path)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	// Header plus one row per record.
	if got := len(rows) - 1; got != len(records) {
		t.Fatalf("csv rows = %d, want %d", got, len(records))
	}
	if rows[0][0] != "Account" {
		t.Fatalf("header = %v", rows[0])
	}
}

func TestExportSnapshotJSONRoundTrip(t *testing.T) {
	t.Parallel()

	records := sampleRecords()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	path, err := ExportSnapshot(t.TempDir(), records, FormatJSON, now)
	if err != nil {
		t.Fatalf("ExportSnapshot() error = %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	var back []ChatRecord
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if len(back) != len(records) {
		t.Fatalf("json records = %d, want %d", len(back), len(records))
	}
}

func TestExportSnapshotUnknownFormat(t *testing.T) {
	t.Parallel()

	_, err := ExportSnapshot(t.TempDir(), nil, "xml", time.Now())
	if err == nil {
		t.Fatal("ExportSnapshot(xml) = nil error, want error")
	}
}
