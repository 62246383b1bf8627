package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConvertible struct {
	t time.Time
}

func (f fakeConvertible) AsTime() time.Time { return f.t }

func TestToISOStringNativeTime(t *testing.T) {
	ts := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	got := ToISOString(ts)
	require.NotNil(t, got)
	assert.Equal(t, "2020-01-01T00:00:00.000Z", *got)

	parsed, err := time.Parse(time.RFC3339, *got)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(ts))
}

func TestToISOStringStringPassesThrough(t *testing.T) {
	in := "2020-01-01T00:00:00.000Z"
	got := ToISOString(in)
	require.NotNil(t, got)
	assert.Equal(t, in, *got)
}

func TestToISOStringConvertible(t *testing.T) {
	ts := time.Date(2021, 6, 30, 12, 0, 0, 0, time.UTC)
	got := ToISOString(fakeConvertible{t: ts})
	require.NotNil(t, got)
	assert.Equal(t, "2021-06-30T12:00:00.000Z", *got)
}

func TestToISOStringFailsClosed(t *testing.T) {
	assert.Nil(t, ToISOString(nil))
	assert.Nil(t, ToISOString(42))
	assert.Nil(t, ToISOString(3.14))
	assert.Nil(t, ToISOString(struct{ X int }{1}))
	assert.Nil(t, ToISOString([]string{"2020"}))
	assert.Nil(t, ToISOString((*time.Time)(nil)))
}

func TestToISOStringNonUTCNormalized(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	ts := time.Date(2020, 1, 1, 1, 0, 0, 0, loc)
	got := ToISOString(ts)
	require.NotNil(t, got)
	assert.Equal(t, "2020-01-01T00:00:00.000Z", *got)
}
