package usecase

import (
	"bytes"
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"cv-exporter/internal/domain"
)

// displayLimit caps rendered diff values; stored diffs keep full values.
const displayLimit = 200

// DiffFields computes the per-field changes between two flat record
// snapshots. Change order follows the key order of the new snapshot's
// JSON document; fields that only exist in the old snapshot follow, in
// the old document's key order. Comparison is on the serialized value.
func DiffFields(oldRaw, newRaw json.RawMessage) []domain.FieldChange {
	oldFields, oldKeys := decodeOrdered(oldRaw)
	newFields, newKeys := decodeOrdered(newRaw)

	changes := []domain.FieldChange{}
	for _, k := range newKeys {
		newVal := newFields[k]
		oldVal, inOld := oldFields[k]
		switch {
		case !inOld || isAbsent(oldVal):
			if isAbsent(newVal) {
				continue
			}
			changes = append(changes, domain.FieldChange{
				Field: k, Type: domain.ChangeAdded, NewValue: newVal,
			})
		case isAbsent(newVal):
			changes = append(changes, domain.FieldChange{
				Field: k, Type: domain.ChangeRemoved, OldValue: oldVal,
			})
		case !valueEqual(oldVal, newVal):
			changes = append(changes, domain.FieldChange{
				Field: k, Type: domain.ChangeModified, OldValue: oldVal, NewValue: newVal,
			})
		}
	}
	for _, k := range oldKeys {
		if _, inNew := newFields[k]; inNew {
			continue
		}
		if isAbsent(oldFields[k]) {
			continue
		}
		changes = append(changes, domain.FieldChange{
			Field: k, Type: domain.ChangeRemoved, OldValue: oldFields[k],
		})
	}
	return changes
}

// TruncateForDisplay shortens long string values for preview rendering
// only; it never touches the underlying diff record. The limit counts
// runes, so multibyte text is never cut mid-sequence.
func TruncateForDisplay(v any) any {
	s, ok := v.(string)
	if !ok || utf8.RuneCountInString(s) <= displayLimit {
		return v
	}
	return string([]rune(s)[:displayLimit]) + "…"
}

// DisplayChanges returns a render-ready copy of the changes with long
// values truncated.
func DisplayChanges(changes []domain.FieldChange) []domain.FieldChange {
	out := make([]domain.FieldChange, len(changes))
	for i, c := range changes {
		c.OldValue = TruncateForDisplay(c.OldValue)
		c.NewValue = TruncateForDisplay(c.NewValue)
		out[i] = c
	}
	return out
}

// decodeOrdered unmarshals a flat JSON object and records its key
// order with a token scan, since Go maps do not preserve it. Malformed
// or non-object input decodes to an empty record.
func decodeOrdered(raw json.RawMessage) (map[string]any, []string) {
	fields := map[string]any{}
	if len(raw) == 0 {
		return fields, nil
	}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return map[string]any{}, nil
	}

	keys := make([]string, 0, len(fields))
	seen := make(map[string]bool, len(fields))
	dec := json.NewDecoder(bytes.NewReader(raw))
	if tok, err := dec.Token(); err != nil || tok != json.Delim('{') {
		return fields, keys
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		key, ok := tok.(string)
		if !ok {
			break
		}
		// a duplicated key decodes to one map entry; record it once
		if !seen[key] {
			seen[key] = true
			keys = append(keys, key)
		}
		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			break
		}
	}
	return fields, keys
}

func isAbsent(v any) bool {
	return v == nil
}

func valueEqual(a, b any) bool {
	ab, err := json.Marshal(a)
	if err != nil {
		ab = []byte(fmt.Sprintf("%v", a))
	}
	bb, err := json.Marshal(b)
	if err != nil {
		bb = []byte(fmt.Sprintf("%v", b))
	}
	return bytes.Equal(ab, bb)
}
