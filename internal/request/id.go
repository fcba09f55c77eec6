package request

import (
	"bytes"
	"encoding/binary"
	"strconv"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"matchbook/internal/common"
)

// parseID accepts either dialect the wire format permits: a hyphenated UUID
// string, or a bare 64-bit integer. An integer id is mapped into a UUID
// deterministically (zero prefix, big-endian value in the low 8 bytes) so
// the same wire id always yields the same OrderID within a deployment.
func parseID(raw json.RawMessage) (common.OrderID, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) >= 2 && trimmed[0] == '"' && trimmed[len(trimmed)-1] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return common.OrderID{}, err
		}
		return uuid.Parse(s)
	}

	n, err := strconv.ParseUint(string(trimmed), 10, 64)
	if err != nil {
		return common.OrderID{}, err
	}
	var id uuid.UUID
	binary.BigEndian.PutUint64(id[8:], n)
	return id, nil
}
