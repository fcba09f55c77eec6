package request

import (
	"bytes"

	json "github.com/goccy/go-json"
)

// decimalLiteral extracts the textual form of a decimal wire field that may
// be encoded either as a JSON string ("10.5") or a bare JSON number (10.5).
func decimalLiteral(raw json.RawMessage) (string, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) >= 2 && trimmed[0] == '"' && trimmed[len(trimmed)-1] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return "", err
		}
		return s, nil
	}
	return string(trimmed), nil
}
