package point

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common/math"
)

// DecodeID decodes a contract integer id. The node may return it as a json number,
// a decimal or hex string, or a serialized big number object ({"type":"BigNumber","hex":"0x.."}).
// The result is always a decimal string.
func DecodeID(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", fmt.Errorf("decode id: empty value")
	}

	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", fmt.Errorf("decode id: %w", err)
		}
		return normalizeID(s)
	case '{':
		var bn struct {
			Hex string `json:"hex"`
		}
		if err := json.Unmarshal(raw, &bn); err != nil {
			return "", fmt.Errorf("decode id: %w", err)
		}
		return normalizeID(bn.Hex)
	default:
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return "", fmt.Errorf("decode id: %w", err)
		}
		return normalizeID(n.String())
	}
}

func normalizeID(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("decode id: empty value")
	}
	v, ok := math.ParseBig256(s)
	if !ok || v.Sign() < 0 {
		return "", fmt.Errorf("decode id: [%s] is not a non-negative 256 bit integer", s)
	}
	return v.String(), nil
}
