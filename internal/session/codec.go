package session

import (
	"encoding/json"
	"fmt"

	"github.com/nguyenedu/truyen-fe/internal/model"
)

// isSentinel guards against values that were stringified incorrectly
// upstream: the literal strings "undefined" and "null" have been
// observed in persisted records and mean absent, not a value.
func isSentinel(s string) bool {
	return s == "" || s == "undefined" || s == "null"
}

// decodeUser parses a persisted user record. Absent or sentinel records
// decode to nil without error; anything unparseable is an error so the
// caller can reset the session.
func decodeUser(raw string) (*model.User, error) {
	if isSentinel(raw) {
		return nil, nil
	}

	user := &model.User{}
	if err := json.Unmarshal([]byte(raw), user); err != nil {
		return nil, fmt.Errorf("malformed user record: %w", err)
	}
	return user, nil
}

func encodeUser(user *model.User) (string, error) {
	raw, err := json.Marshal(user)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
