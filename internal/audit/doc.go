// Package audit records which posts were sealed, when, and by whom.
//
// The trail is a JSON Lines file (one JSON object per line), by default
// audit.jsonl next to the config file. Each entry carries a random UUID,
// a UTC timestamp with microseconds, the local user and host, the post path,
// body and blob sizes, and which kind of source supplied the password.
// The password itself is never recorded.
//
// # Failure Handling
//
// Audit logging is best-effort. Record returns an error so the caller can
// warn, but the encryption has already succeeded by then and stands.
//
// # Reading Logs
//
// Use Trail.ReadEntries() to parse the log. Malformed lines are skipped to
// tolerate partial writes.
package audit
