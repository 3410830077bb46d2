package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/PolarWolf314/sealpost/internal/utils"
	"github.com/google/uuid"
)

// Entry represents a single audit log entry.
type Entry struct {
	ID        string `json:"id"`   // Random UUID for the operation.
	Timestamp string `json:"ts"`   // RFC3339 with microseconds.
	User      string `json:"user"` // Local username performing the action.
	Host      string `json:"host"` // Hostname performing the action.
	Operation string `json:"op"`   // Operation name.
	File      string `json:"file"` // Absolute path of the post.

	// Optional fields depending on operation.
	BodyBytes      int    `json:"body_bytes,omitempty"`      // Plaintext body size.
	BlobBytes      int    `json:"blob_bytes,omitempty"`      // Decoded blob size.
	PasswordSource string `json:"password_source,omitempty"` // header, env, prompt or stdin.
}

// Trail appends entries to a JSON Lines file. A zero Trail discards entries.
type Trail struct {
	Path string
}

// NewEntry returns an entry for op with id, user and host populated.
func NewEntry(op string) Entry {
	entry := Entry{
		ID:        uuid.NewString(),
		Operation: op,
	}
	if user, err := utils.GetUsername(); err == nil {
		entry.User = user
	}
	if host, err := utils.GetHostname(); err == nil {
		entry.Host = host
	}
	return entry
}

// Record appends entry to the trail. Callers treat a returned error as a
// warning: an operation never fails because its audit entry could not be
// written.
func (t Trail) Record(entry Entry) error {
	if t.Path == "" {
		return nil
	}

	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format("2006-01-02T15:04:05.000000Z")
	}

	if err := os.MkdirAll(filepath.Dir(t.Path), 0700); err != nil {
		return err
	}

	f, err := os.OpenFile(t.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	_, err = f.Write(append(data, '\n'))
	return err
}

// ReadEntries reads all entries from the trail.
// Returns an empty slice if the log doesn't exist.
func (t Trail) ReadEntries() ([]Entry, error) {
	if t.Path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(t.Path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return ParseEntries(data), nil
}

// ParseEntries parses JSON Lines data into audit entries.
// Malformed lines are silently skipped.
func ParseEntries(data []byte) []Entry {
	var entries []Entry
	start := 0

	for i := 0; i <= len(data); i++ {
		if i == len(data) || data[i] == '\n' {
			line := data[start:i]
			start = i + 1

			if len(line) == 0 {
				continue
			}

			var entry Entry
			if err := json.Unmarshal(line, &entry); err != nil {
				continue
			}
			entries = append(entries, entry)
		}
	}

	return entries
}
