package queries

import (
	"encoding/base64"
	"fmt"
	"strings"
)

const (
	MaxListLimit    = 200
	CursorVersionV1 = "v1"

	// item names may contain any printable character, so the cursor payload
	// is joined on an unlikely control byte
	cursorSep = "\x1f"
)

// EncodeAfterCursor packs the last seen (name, id) keyset position.
func EncodeAfterCursor(name, id string) string {
	cursorData := CursorVersionV1 + ":" + name + cursorSep + id
	return base64.URLEncoding.EncodeToString([]byte(cursorData))
}

func DecodeAfterCursor(cursor string) (name string, id string, err error) {
	if cursor == "" {
		return "", "", fmt.Errorf("cursor cannot be empty")
	}

	decoded, err := base64.URLEncoding.DecodeString(cursor)
	if err != nil {
		return "", "", fmt.Errorf("invalid cursor encoding: %w", err)
	}
	decodedStr := string(decoded)
	if !strings.HasPrefix(decodedStr, CursorVersionV1+":") {
		return "", "", fmt.Errorf("unsupported cursor version")
	}

	payload := strings.TrimPrefix(decodedStr, CursorVersionV1+":")
	parts := strings.SplitN(payload, cursorSep, 2)
	if len(parts) != 2 || parts[1] == "" {
		return "", "", fmt.Errorf("invalid cursor format: expected '<name><sep><id>'")
	}
	return parts[0], parts[1], nil
}

type Cursor struct {
	After string `json:"after,omitempty"`
}

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return 20 // default limit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
