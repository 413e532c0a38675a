package simstore

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

// cursor is the keyset position of the last returned record. Tokens are
// opaque to callers, mirroring the continuation tokens of a real token-paged
// store.
type cursor struct {
	startMs int64
	id      string
}

func encodeCursor(c *cursor) string {
	if c == nil {
		return ""
	}
	raw := fmt.Sprintf("%d|%s", c.startMs, c.id)
	return base64.StdEncoding.EncodeToString([]byte(raw))
}

func decodeCursor(token string) (*cursor, error) {
	if strings.TrimSpace(token) == "" {
		return nil, nil
	}
	decoded, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("invalid page token: %w", err)
	}
	parts := strings.SplitN(string(decoded), "|", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid page token format")
	}
	startMs, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid page token position: %w", err)
	}
	return &cursor{startMs: startMs, id: parts[1]}, nil
}
