package postgresdb

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	dangerousChars    = regexp.MustCompile(`[;'"\\()]`)
	identifierPattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*$`)
)

// QuoteIdentifier validates and quotes SQL identifiers. Supports plain names
// and schema.table format. Returns the properly quoted identifier or an error
// if invalid. Sort fields come from an allow-list upstream, but quoting here
// keeps the store layer safe on its own.
func QuoteIdentifier(name string) (string, error) {
	if dangerousChars.MatchString(name) {
		return "", fmt.Errorf("identifier contains dangerous characters: %s", name)
	}

	segments := strings.Split(name, ".")
	if len(segments) > 2 {
		return "", fmt.Errorf("invalid identifier format (too many segments): %s", name)
	}

	quoted := make([]string, len(segments))
	for i, segment := range segments {
		if !identifierPattern.MatchString(segment) {
			return "", fmt.Errorf("invalid identifier segment at position %d: %s", i, segment)
		}
		quoted[i] = fmt.Sprintf(`"%s"`, segment)
	}

	return strings.Join(quoted, "."), nil
}
