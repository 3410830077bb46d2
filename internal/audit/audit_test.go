package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestRecord_CreatesFileAndDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "audit.jsonl")
	trail := Trail{Path: path}

	entry := NewEntry("encrypt")
	entry.File = "/posts/secret.md"
	if err := trail.Record(entry); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("Audit log file was not created")
	}
}

func TestRecord_AppendsEntries(t *testing.T) {
	trail := Trail{Path: filepath.Join(t.TempDir(), "audit.jsonl")}

	for _, file := range []string{"a.md", "b.md", "c.md"} {
		entry := NewEntry("encrypt")
		entry.File = file
		if err := trail.Record(entry); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	entries, err := trail.ReadEntries()
	if err != nil {
		t.Fatalf("ReadEntries failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(entries))
	}
	if entries[0].File != "a.md" || entries[2].File != "c.md" {
		t.Errorf("entries out of order: %+v", entries)
	}
	if entries[0].ID == entries[1].ID {
		t.Error("entries should have distinct ids")
	}
}

func TestRecord_PopulatesFields(t *testing.T) {
	trail := Trail{Path: filepath.Join(t.TempDir(), "audit.jsonl")}

	entry := NewEntry("encrypt")
	entry.File = "post.md"
	entry.BodyBytes = 12
	entry.BlobBytes = 56
	entry.PasswordSource = "header"
	if err := trail.Record(entry); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	data, err := os.ReadFile(trail.Path)
	if err != nil {
		t.Fatalf("Failed to read log: %v", err)
	}

	var got Entry
	if err := json.Unmarshal([]byte(strings.TrimSpace(string(data))), &got); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if _, err := uuid.Parse(got.ID); err != nil {
		t.Errorf("ID %q is not a UUID: %v", got.ID, err)
	}
	if got.Timestamp == "" || !strings.HasSuffix(got.Timestamp, "Z") {
		t.Errorf("Timestamp = %q, want UTC timestamp", got.Timestamp)
	}
	if got.Operation != "encrypt" || got.BodyBytes != 12 || got.BlobBytes != 56 || got.PasswordSource != "header" {
		t.Errorf("unexpected entry: %+v", got)
	}
}

func TestRecord_ZeroTrailDiscards(t *testing.T) {
	if err := (Trail{}).Record(NewEntry("encrypt")); err != nil {
		t.Fatalf("Record on a zero Trail should be a no-op, got %v", err)
	}
	entries, err := (Trail{}).ReadEntries()
	if err != nil || entries != nil {
		t.Errorf("ReadEntries = %v, %v", entries, err)
	}
}

func TestReadEntries_MissingFile(t *testing.T) {
	trail := Trail{Path: filepath.Join(t.TempDir(), "missing.jsonl")}

	entries, err := trail.ReadEntries()
	if err != nil {
		t.Fatalf("ReadEntries failed: %v", err)
	}
	if entries != nil {
		t.Errorf("Expected nil entries, got %v", entries)
	}
}

func TestParseEntries_SkipsMalformedLines(t *testing.T) {
	data := []byte(`{"id":"1","op":"encrypt","file":"a.md"}
not json
{"id":"2","op":"encrypt","file":"b.md"}

{"id":"3","op":"encrypt"`)

	entries := ParseEntries(data)
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[1].File != "b.md" {
		t.Errorf("second entry = %+v", entries[1])
	}
}
