package usecase

import (
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf8"

	"cv-exporter/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffFieldsAdded(t *testing.T) {
	old := json.RawMessage(`{"title": "A"}`)
	new := json.RawMessage(`{"title": "A", "subtitle": "B"}`)

	changes := DiffFields(old, new)
	require.Len(t, changes, 1)
	assert.Equal(t, "subtitle", changes[0].Field)
	assert.Equal(t, domain.ChangeAdded, changes[0].Type)
	assert.Nil(t, changes[0].OldValue)
	assert.Equal(t, "B", changes[0].NewValue)
}

func TestDiffFieldsRemovedAndModified(t *testing.T) {
	old := json.RawMessage(`{"title": "A", "subtitle": "B", "location": "Paris"}`)
	new := json.RawMessage(`{"title": "A2", "location": "Paris"}`)

	changes := DiffFields(old, new)
	require.Len(t, changes, 2)

	assert.Equal(t, "title", changes[0].Field)
	assert.Equal(t, domain.ChangeModified, changes[0].Type)
	assert.Equal(t, "A", changes[0].OldValue)
	assert.Equal(t, "A2", changes[0].NewValue)

	assert.Equal(t, "subtitle", changes[1].Field)
	assert.Equal(t, domain.ChangeRemoved, changes[1].Type)
	assert.Equal(t, "B", changes[1].OldValue)
}

func TestDiffFieldsOrderFollowsNewDocument(t *testing.T) {
	old := json.RawMessage(`{}`)
	new := json.RawMessage(`{"zebra": "1", "alpha": "2", "mid": "3"}`)

	changes := DiffFields(old, new)
	require.Len(t, changes, 3)
	// declaration order of the new record, not alphabetical
	assert.Equal(t, "zebra", changes[0].Field)
	assert.Equal(t, "alpha", changes[1].Field)
	assert.Equal(t, "mid", changes[2].Field)
}

func TestDiffFieldsNullTreatedAsAbsent(t *testing.T) {
	old := json.RawMessage(`{"title": null}`)
	new := json.RawMessage(`{"title": "A"}`)

	changes := DiffFields(old, new)
	require.Len(t, changes, 1)
	assert.Equal(t, domain.ChangeAdded, changes[0].Type)

	// null -> null is no change at all
	assert.Empty(t, DiffFields(json.RawMessage(`{"x": null}`), json.RawMessage(`{"x": null}`)))
}

func TestDiffFieldsEqualValuesNoChange(t *testing.T) {
	doc := json.RawMessage(`{"title": "A", "tags": ["x", "y"], "level": 3}`)
	assert.Empty(t, DiffFields(doc, doc))
}

func TestDiffFieldsStructuredValues(t *testing.T) {
	old := json.RawMessage(`{"contact": {"email": "a@b.c"}}`)
	new := json.RawMessage(`{"contact": {"email": "d@e.f"}}`)

	changes := DiffFields(old, new)
	require.Len(t, changes, 1)
	assert.Equal(t, domain.ChangeModified, changes[0].Type)
}

func TestDiffFieldsDuplicateKeysReportedOnce(t *testing.T) {
	// a duplicated key in the raw JSON decodes to one value; the diff
	// must not report the field twice
	old := json.RawMessage(`{"title": "A"}`)
	new := json.RawMessage(`{"title": "B", "title": "B", "subtitle": "C"}`)

	changes := DiffFields(old, new)
	require.Len(t, changes, 2)
	assert.Equal(t, "title", changes[0].Field)
	assert.Equal(t, domain.ChangeModified, changes[0].Type)
	assert.Equal(t, "subtitle", changes[1].Field)
}

func TestDiffFieldsMalformedInputDegrades(t *testing.T) {
	changes := DiffFields(json.RawMessage(`not json`), json.RawMessage(`{"a": 1}`))
	require.Len(t, changes, 1)
	assert.Equal(t, domain.ChangeAdded, changes[0].Type)

	assert.Empty(t, DiffFields(nil, nil))
}

func TestTruncateForDisplay(t *testing.T) {
	long := strings.Repeat("x", 450)
	got := TruncateForDisplay(long)
	s, ok := got.(string)
	require.True(t, ok)
	assert.Len(t, []rune(s), 201)
	assert.True(t, strings.HasSuffix(s, "…"))

	short := "short value"
	assert.Equal(t, short, TruncateForDisplay(short))
	assert.Equal(t, 42, TruncateForDisplay(42))
	assert.Nil(t, TruncateForDisplay(nil))
}

func TestTruncateForDisplayMultibyte(t *testing.T) {
	// a French bio whose 200th character sits inside a multibyte rune
	long := strings.Repeat("x", 199) + strings.Repeat("également ", 30)
	got := TruncateForDisplay(long)
	s, ok := got.(string)
	require.True(t, ok)
	assert.True(t, utf8.ValidString(s))
	assert.Len(t, []rune(s), 201)
	assert.True(t, strings.HasSuffix(s, "…"))

	// 200 runes of multibyte text is under the limit and untouched
	exact := strings.Repeat("é", 200)
	assert.Equal(t, exact, TruncateForDisplay(exact))
}

func TestDisplayChangesDoesNotMutateStoredDiff(t *testing.T) {
	long := strings.Repeat("y", 300)
	stored := []domain.FieldChange{{Field: "bio", Type: domain.ChangeModified, OldValue: long, NewValue: long}}

	display := DisplayChanges(stored)
	require.Len(t, display, 1)
	assert.NotEqual(t, long, display[0].NewValue)
	// the stored record keeps the full value
	assert.Equal(t, long, stored[0].NewValue)
	assert.Equal(t, long, stored[0].OldValue)
}
