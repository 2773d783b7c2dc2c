// Copyright 2026 The Nickview Authors
// SPDX-License-Identifier: Apache-2.0

package nickname

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// NoFilter is the filter value meaning "every user".
const NoFilter = ""

// UserRef is an entry in the owner picker.
type UserRef struct {
	ID       string
	Username string
}

// Record is one nickname as displayed on a card. ID and Owner are the
// normalized forms of the store's dual-named fields; ID may be empty
// when the store sent neither spelling.
type Record struct {
	ID          string
	Owner       string
	Nickname    string
	Character   string
	Anime       string
	Description string
}

// Editable reports whether the record carries an identifier the store
// can address for edit or delete.
func (record Record) Editable() bool {
	return record.ID != ""
}

// wireRecord mirrors every field spelling the store is known to emit.
type wireRecord struct {
	UnderscoreID json.RawMessage `json:"_id"`
	ID           json.RawMessage `json:"id"`
	CreatedBy    json.RawMessage `json:"created_by"`
	UserID       json.RawMessage `json:"user_id"`
	Nickname     string          `json:"nickname"`
	Character    string          `json:"character"`
	Anime        string          `json:"anime"`
	Description  string          `json:"description"`
}

// UnmarshalJSON decodes a store record, preferring _id over id and
// created_by over user_id. A field counts as present when it decodes
// to a non-empty identifier, so {"_id": "", "id": "n1"} resolves to
// "n1".
func (record *Record) UnmarshalJSON(data []byte) error {
	var wire wireRecord
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	id, err := firstIdentifier(wire.UnderscoreID, wire.ID)
	if err != nil {
		return fmt.Errorf("nickname record id: %w", err)
	}
	owner, err := firstIdentifier(wire.CreatedBy, wire.UserID)
	if err != nil {
		return fmt.Errorf("nickname record owner: %w", err)
	}
	*record = Record{
		ID:          id,
		Owner:       owner,
		Nickname:    CleanText(wire.Nickname, false),
		Character:   CleanText(wire.Character, false),
		Anime:       CleanText(wire.Anime, false),
		Description: CleanText(wire.Description, true),
	}
	return nil
}

// MarshalJSON emits the canonical shape (_id, created_by).
func (record Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID          string `json:"_id,omitempty"`
		Owner       string `json:"created_by,omitempty"`
		Nickname    string `json:"nickname"`
		Character   string `json:"character"`
		Anime       string `json:"anime"`
		Description string `json:"description"`
	}{record.ID, record.Owner, record.Nickname, record.Character, record.Anime, record.Description})
}

// UnmarshalJSON decodes a user, preferring _id over id.
func (user *UserRef) UnmarshalJSON(data []byte) error {
	var wire struct {
		UnderscoreID json.RawMessage `json:"_id"`
		ID           json.RawMessage `json:"id"`
		Username     string          `json:"username"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	id, err := firstIdentifier(wire.UnderscoreID, wire.ID)
	if err != nil {
		return fmt.Errorf("user id: %w", err)
	}
	*user = UserRef{ID: id, Username: CleanText(wire.Username, false)}
	return nil
}

// firstIdentifier returns the first candidate that decodes to a
// non-empty identifier.
func firstIdentifier(candidates ...json.RawMessage) (string, error) {
	for _, raw := range candidates {
		id, err := decodeIdentifier(raw)
		if err != nil {
			return "", err
		}
		if id != "" {
			return id, nil
		}
	}
	return "", nil
}

// decodeIdentifier accepts the identifier shapes seen in practice: a
// string, an integer, or an embedded document carrying its own _id or
// id (a populated owner reference). null and absent decode to "".
func decodeIdentifier(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", nil
	}
	switch raw[0] {
	case '"':
		var value string
		if err := json.Unmarshal(raw, &value); err != nil {
			return "", err
		}
		return value, nil
	case '{':
		var embedded struct {
			UnderscoreID json.RawMessage `json:"_id"`
			ID           json.RawMessage `json:"id"`
		}
		if err := json.Unmarshal(raw, &embedded); err != nil {
			return "", err
		}
		return firstIdentifier(embedded.UnderscoreID, embedded.ID)
	default:
		var number json.Number
		if err := json.Unmarshal(raw, &number); err != nil {
			return "", fmt.Errorf("unsupported identifier %s", raw)
		}
		if integer, err := strconv.ParseInt(number.String(), 10, 64); err == nil {
			return strconv.FormatInt(integer, 10), nil
		}
		return number.String(), nil
	}
}
