package usecase

import (
	"encoding/base64"
	"encoding/json"
)

// pageCursor is the decoded form of the opaque continuation token handed to
// callers. With keyset scans the store's own continuation point and the
// resumption point after residual-filter truncation are both "resume after
// this primary key", so one field covers both cases.
type pageCursor struct {
	LastKey string `json:"last_key"`
}

func encodeCursor(lastKey string) string {
	raw, _ := json.Marshal(pageCursor{LastKey: lastKey})
	return base64.URLEncoding.EncodeToString(raw)
}

// decodeCursor rejects anything it cannot fully account for: a corrupted
// cursor is a client error, never a silent reset to page one.
func decodeCursor(token string) (pageCursor, error) {
	var c pageCursor

	raw, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return c, ValidationError{"cursor", "is not a valid pagination cursor"}
	}
	if err := json.Unmarshal(raw, &c); err != nil {
		return c, ValidationError{"cursor", "is not a valid pagination cursor"}
	}
	if c.LastKey == "" {
		return c, ValidationError{"cursor", "is not a valid pagination cursor"}
	}

	return c, nil
}
