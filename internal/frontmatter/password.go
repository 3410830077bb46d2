package frontmatter

import "strings"

const passwordKey = "password:"

// ExtractPassword finds the first `password:` line in header and returns the
// header with every such line removed, together with the trimmed, unquoted
// value. ok is false when no line carries a non-empty value, in which case
// the header is returned unchanged unless it held an empty password line.
func ExtractPassword(header string) (stripped string, password string, ok bool) {
	lines := strings.SplitAfter(header, "\n")

	var b strings.Builder
	found := false
	for _, line := range lines {
		value, isPassword := passwordValue(line)
		if !isPassword {
			b.WriteString(line)
			continue
		}
		if !found {
			password = value
			found = true
		}
	}

	if !found {
		return header, "", false
	}
	return b.String(), password, password != ""
}

// passwordValue matches lines of the form `password:<ws><value>`.
func passwordValue(line string) (string, bool) {
	if !strings.HasPrefix(line, passwordKey) {
		return "", false
	}

	raw := strings.TrimRight(line[len(passwordKey):], "\r\n")
	if raw == "" {
		return "", false
	}

	value := strings.TrimSpace(raw)
	value = strings.Trim(value, `"`)
	value = strings.Trim(value, `'`)
	return value, true
}
