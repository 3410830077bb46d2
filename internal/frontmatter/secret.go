package frontmatter

import (
	"strings"

	"gopkg.in/yaml.v3"
)

const secretMarker = "secret: true"

// IsSecret reports whether the header marks the post for encryption.
//
// In strict mode the header is decoded as YAML and the top-level `secret`
// key must be the boolean true; a quoted "true" does not count. Headers that
// are not valid YAML fall back to looking for a line reading exactly
// `secret: true`. Loose mode accepts the marker anywhere in the header.
func IsSecret(header string, strict bool) bool {
	if !strict {
		return strings.Contains(header, secretMarker)
	}

	var fields map[string]any
	if err := yaml.Unmarshal([]byte(inner(header)), &fields); err != nil {
		return hasSecretLine(header)
	}

	secret, ok := fields["secret"].(bool)
	return ok && secret
}

func hasSecretLine(header string) bool {
	for _, line := range strings.Split(header, "\n") {
		if strings.TrimSpace(line) == secretMarker {
			return true
		}
	}
	return false
}
