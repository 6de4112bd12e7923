package accounts

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Export formats accepted by ExportSnapshot.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// ExportSnapshot writes records to a timestamped file under dir and
// returns its path. The caller sends the file and removes it afterwards.
func ExportSnapshot(dir string, records []ChatRecord, format string, now time.Time) (string, error) {
	stamp := now.Format("20060102_150405")
	switch format {
	case FormatCSV:
		path := filepath.Join(dir, fmt.Sprintf("chats_%s.csv", stamp))
		f, err := os.Create(path)
		if err != nil {
			return "", err
		}
		if err := WriteCSV(f, records); err != nil {
			_ = f.Close()
			return "", err
		}
		return path, f.Close()
	case FormatJSON:
		path := filepath.Join(dir, fmt.Sprintf("chats_%s.json", stamp))
		raw, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return "", err
		}
		return path, os.WriteFile(path, raw, 0o644)
	default:
		return "", fmt.Errorf("unsupported export format: %s", format)
	}
}

// WriteCSV writes the snapshot as delimited text, one row per record
// plus a header.
func WriteCSV(w io.Writer, records []ChatRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Account", "Chat ID", "Title", "Username", "Type", "Unread", "Last Active"}); err != nil {
		return err
	}
	for _, rec := range records {
		lastActive := ""
		if rec.LastMessageAt != nil {
			lastActive = rec.LastMessageAt.Format(time.RFC3339)
		}
		row := []string{
			rec.AccountName,
			strconv.FormatInt(rec.ChatID, 10),
			rec.Title,
			rec.Username,
			string(rec.Kind),
			strconv.Itoa(rec.UnreadCount),
			lastActive,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
